// Package httpapi implements the service.Service interface over the task REST API.
package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"taskman/internal/service"
)

const (
	// tasksPath is the task collection resource.
	tasksPath = "/tasks"

	// maxErrorBody bounds how much of a failed response is kept for logging.
	maxErrorBody = 512
)

// StatusError is returned when the API answers with a non-2xx status.
type StatusError struct {
	Method string
	Path   string
	Code   int
	Body   string
}

func (e *StatusError) Error() string {
	msg := fmt.Sprintf("%s %s: %d %s", e.Method, e.Path, e.Code, http.StatusText(e.Code))
	if e.Body != "" {
		msg += ": " + e.Body
	}
	return msg
}

// Client implements service.Service using plain HTTP and JSON.
type Client struct {
	base *url.URL
	http *http.Client
	log  zerolog.Logger

	// lists collapses concurrent ListTasks calls into one GET.
	lists singleflight.Group
}

// New creates a client for the API at baseURL using http.DefaultClient.
func New(baseURL string, log zerolog.Logger) (*Client, error) {
	return NewWithHTTPClient(baseURL, http.DefaultClient, log)
}

// NewWithHTTPClient creates a client with a custom HTTP client (for testing).
func NewWithHTTPClient(baseURL string, httpClient *http.Client, log zerolog.Logger) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid api url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid api url: scheme must be http or https, got %q", u.Scheme)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("invalid api url: missing host")
	}
	return &Client{base: u, http: httpClient, log: log}, nil
}

// ListTasks returns the full task collection in API order. Callers that
// overlap share a single request and each get their own copy of the result.
// The shared request outlives any one caller; each caller stops waiting when
// its own ctx is done.
func (c *Client) ListTasks(ctx context.Context) ([]service.Task, error) {
	if err := ctx.Err(); err != nil {
		return nil, wrapError(err)
	}

	shared := context.WithoutCancel(ctx)
	ch := c.lists.DoChan(tasksPath, func() (interface{}, error) {
		var tasks []service.Task
		if err := c.do(shared, http.MethodGet, tasksPath, nil, &tasks); err != nil {
			return nil, err
		}
		return tasks, nil
	})

	select {
	case <-ctx.Done():
		return nil, wrapError(ctx.Err())
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		tasks := res.Val.([]service.Task)
		if res.Shared {
			c.log.Debug().Int("count", len(tasks)).Msg("shared list response")
		}
		return append([]service.Task(nil), tasks...), nil
	}
}

// CreateTask submits a new task.
func (c *Client) CreateTask(ctx context.Context, fields service.Fields) (service.Task, error) {
	var task service.Task
	if err := c.do(ctx, http.MethodPost, tasksPath, fields, &task); err != nil {
		return service.Task{}, err
	}
	return task, nil
}

// UpdateTask replaces the task identified by id.
func (c *Client) UpdateTask(ctx context.Context, id string, fields service.Fields) (service.Task, error) {
	var task service.Task
	if err := c.do(ctx, http.MethodPut, taskPath(id), fields, &task); err != nil {
		return service.Task{}, err
	}
	return task, nil
}

// DeleteTask removes the task identified by id.
func (c *Client) DeleteTask(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, taskPath(id), nil, nil)
}

func taskPath(id string) string {
	return tasksPath + "/" + url.PathEscape(id)
}

// do sends one request. body is encoded as JSON when non-nil; the response is
// decoded into out when out is non-nil.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base.String()+path, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Debug().Err(err).Str("method", method).Str("path", path).Msg("request failed")
		return wrapError(err)
	}
	defer resp.Body.Close()

	c.log.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("took", time.Since(start)).
		Msg("request")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &StatusError{
			Method: method,
			Path:   path,
			Code:   resp.StatusCode,
			Body:   strings.TrimSpace(string(snippet)),
		}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, path, err)
	}
	return nil
}

// wrapError wraps transport errors with short messages.
func wrapError(err error) error {
	switch {
	case errors.Is(err, context.Canceled):
		return fmt.Errorf("request cancelled: %w", err)
	case errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("request timed out: %w", err)
	default:
		return fmt.Errorf("request failed: %w", err)
	}
}
