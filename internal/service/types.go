package service

// Status is the workflow state of a task.
type Status string

const (
	StatusTodo       Status = "TODO"
	StatusInProgress Status = "IN_PROGRESS"
	StatusDone       Status = "DONE"
)

// FallbackColor is used for statuses outside the known set.
const FallbackColor = "#95a5a6"

var statusColors = map[Status]string{
	StatusTodo:       "#f39c12", // amber
	StatusInProgress: "#3498db", // blue
	StatusDone:       "#27ae60", // green
}

var statusLabels = map[Status]string{
	StatusTodo:       "To do",
	StatusInProgress: "In progress",
	StatusDone:       "Done",
}

// Statuses returns the known statuses in workflow order.
func Statuses() []Status {
	return []Status{StatusTodo, StatusInProgress, StatusDone}
}

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	_, ok := statusColors[s]
	return ok
}

// Color returns the hex display colour for s.
func (s Status) Color() string {
	if c, ok := statusColors[s]; ok {
		return c
	}
	return FallbackColor
}

// Label returns a human readable name. Unknown statuses are returned verbatim.
func (s Status) Label() string {
	if l, ok := statusLabels[s]; ok {
		return l
	}
	return string(s)
}

// Fields is a task without its id: the body of create and update requests.
type Fields struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Status      Status `json:"status"`
}

// Task represents a single task item.
// ID is empty until the server has stored the task.
type Task struct {
	ID          string `json:"id,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Status      Status `json:"status"`
}

// Persisted reports whether the task has a server-assigned id.
func (t Task) Persisted() bool {
	return t.ID != ""
}

// Fields returns the task without its id.
func (t Task) Fields() Fields {
	return Fields{
		Title:       t.Title,
		Description: t.Description,
		Status:      t.Status,
	}
}
