package board

import "errors"

// Op names a board action for error reporting.
type Op string

const (
	OpFetch  Op = "fetch"
	OpCreate Op = "create"
	OpUpdate Op = "update"
	OpDelete Op = "delete"
)

var opMessages = map[Op]string{
	OpFetch:  "Failed to fetch tasks",
	OpCreate: "Failed to create task",
	OpUpdate: "Failed to update task",
	OpDelete: "Failed to delete task",
}

// Message returns the fixed user-visible message for a failed op.
func (o Op) Message() string {
	if m, ok := opMessages[o]; ok {
		return m
	}
	return "Operation failed"
}

// Failure is the user-visible form of a failed action. Error returns only the
// fixed message; the cause stays reachable through Unwrap.
type Failure struct {
	Op  Op
	Err error
}

func (f *Failure) Error() string { return f.Op.Message() }

func (f *Failure) Unwrap() error { return f.Err }

var (
	// ErrEmptyTitle is returned when a task title is empty after trimming.
	ErrEmptyTitle = errors.New("title required")

	// ErrNotPersisted is returned for actions on a task without an id.
	ErrNotPersisted = errors.New("task has no id")
)
