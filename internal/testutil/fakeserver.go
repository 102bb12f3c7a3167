package testutil

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"taskman/internal/service"
)

// FakeServer is an in-memory task REST API: GET/POST /tasks and
// PUT/DELETE /tasks/:id, with server-assigned ids.
type FakeServer struct {
	mu       sync.Mutex
	tasks    []service.Task
	requests []string

	// NewID generates ids for created tasks. Defaults to random UUIDs.
	NewID func() string

	// FailStatus, when non-zero, makes every request answer with that status.
	FailStatus int
}

// NewFakeServer creates an empty FakeServer.
func NewFakeServer() *FakeServer {
	return &FakeServer{
		NewID: func() string { return uuid.NewString() },
	}
}

// Start serves the fake on a local listener closed at the end of the test.
func (s *FakeServer) Start(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(s.Handler())
	t.Cleanup(srv.Close)
	return srv
}

// Handler returns the gin engine serving the API.
func (s *FakeServer) Handler() http.Handler {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(s.recordRequest, s.injectFailure)

	r.GET("/tasks", s.list)
	r.POST("/tasks", s.create)
	r.PUT("/tasks/:id", s.update)
	r.DELETE("/tasks/:id", s.remove)
	return r
}

// Seed stores tasks directly.
func (s *FakeServer) Seed(tasks ...service.Task) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks = append(s.tasks, tasks...)
}

// Tasks returns a copy of the stored tasks.
func (s *FakeServer) Tasks() []service.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	result := make([]service.Task, len(s.tasks))
	copy(result, s.tasks)
	return result
}

// Requests returns "METHOD path" for every request received, in order.
func (s *FakeServer) Requests() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	result := make([]string, len(s.requests))
	copy(result, s.requests)
	return result
}

func (s *FakeServer) recordRequest(c *gin.Context) {
	s.mu.Lock()
	s.requests = append(s.requests, c.Request.Method+" "+c.Request.URL.Path)
	s.mu.Unlock()
	c.Next()
}

func (s *FakeServer) injectFailure(c *gin.Context) {
	s.mu.Lock()
	status := s.FailStatus
	s.mu.Unlock()
	if status != 0 {
		c.AbortWithStatusJSON(status, gin.H{"error": http.StatusText(status)})
		return
	}
	c.Next()
}

func (s *FakeServer) list(c *gin.Context) {
	c.JSON(http.StatusOK, s.Tasks())
}

func (s *FakeServer) create(c *gin.Context) {
	var fields service.Fields
	if err := c.ShouldBindJSON(&fields); err != nil || strings.TrimSpace(fields.Title) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title must not be blank"})
		return
	}
	if fields.Status == "" {
		fields.Status = service.StatusTodo
	}

	s.mu.Lock()
	task := service.Task{
		ID:          s.NewID(),
		Title:       fields.Title,
		Description: fields.Description,
		Status:      fields.Status,
	}
	s.tasks = append(s.tasks, task)
	s.mu.Unlock()

	c.JSON(http.StatusCreated, task)
}

func (s *FakeServer) update(c *gin.Context) {
	var fields service.Fields
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	id := c.Param("id")

	s.mu.Lock()
	defer s.mu.Unlock()
	for i, t := range s.tasks {
		if t.ID == id {
			s.tasks[i] = service.Task{
				ID:          id,
				Title:       fields.Title,
				Description: fields.Description,
				Status:      fields.Status,
			}
			c.JSON(http.StatusOK, s.tasks[i])
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
}

func (s *FakeServer) remove(c *gin.Context) {
	id := c.Param("id")

	s.mu.Lock()
	defer s.mu.Unlock()
	for i, t := range s.tasks {
		if t.ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			c.Status(http.StatusNoContent)
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
}
