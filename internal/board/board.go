// Package board holds the task view state: the cached task list, the loading
// flag and one shared error slot. It is the controller between user actions
// and the task service.
//
// Every action is split in two: a Prepare step that applies the guards and
// builds the request, and a Finish step that applies the server's answer.
// The interactive view runs the service call in between on its own; the
// synchronous helpers in sync.go do all three in one call.
package board

import (
	"strings"

	"github.com/rs/zerolog"

	"taskman/internal/service"
)

// Board is not safe for concurrent use. The owner must serialize calls.
type Board struct {
	tasks   []service.Task
	loading bool
	failure *Failure
	log     zerolog.Logger
}

// New creates an empty board logging failures to log.
func New(log zerolog.Logger) *Board {
	return &Board{log: log}
}

// Tasks returns a copy of the cached task list.
func (b *Board) Tasks() []service.Task {
	result := make([]service.Task, len(b.tasks))
	copy(result, b.tasks)
	return result
}

// Len returns the number of cached tasks.
func (b *Board) Len() int { return len(b.tasks) }

// Task returns the task at index i.
func (b *Board) Task(i int) (service.Task, bool) {
	if i < 0 || i >= len(b.tasks) {
		return service.Task{}, false
	}
	return b.tasks[i], true
}

// Find returns the cached task with the given id.
func (b *Board) Find(id string) (service.Task, bool) {
	for _, t := range b.tasks {
		if t.ID == id {
			return t, true
		}
	}
	return service.Task{}, false
}

// Loading reports whether the initial fetch is in flight.
func (b *Board) Loading() bool { return b.loading }

// Err returns the current error message, or "" when the slot is clear.
func (b *Board) Err() string {
	if b.failure == nil {
		return ""
	}
	return b.failure.Error()
}

// Failure returns the failure occupying the error slot, if any.
func (b *Board) Failure() *Failure { return b.failure }

// StartLoad marks the fetch as in flight.
func (b *Board) StartLoad() {
	b.loading = true
}

// FinishLoad applies the result of a list call. On success the cached list is
// replaced and the error cleared; on failure the list is left as it was.
func (b *Board) FinishLoad(tasks []service.Task, err error) error {
	b.loading = false
	if err != nil {
		return b.fail(OpFetch, err)
	}
	b.tasks = append([]service.Task(nil), tasks...)
	b.failure = nil
	b.log.Debug().Int("count", len(tasks)).Msg("loaded tasks")
	return nil
}

// PrepareCreate validates a title and returns the fields for a new TODO task.
// A title that is empty after trimming yields ErrEmptyTitle and no fields;
// otherwise title and description are sent as given.
func PrepareCreate(title, description string) (service.Fields, error) {
	if strings.TrimSpace(title) == "" {
		return service.Fields{}, ErrEmptyTitle
	}
	return service.Fields{
		Title:       title,
		Description: description,
		Status:      service.StatusTodo,
	}, nil
}

// FinishCreate applies the result of a create call. On success the returned
// task is appended; the caller then clears its input.
func (b *Board) FinishCreate(task service.Task, err error) error {
	if err != nil {
		return b.fail(OpCreate, err)
	}
	b.tasks = append(b.tasks, task)
	b.failure = nil
	b.log.Debug().Str("id", task.ID).Msg("created task")
	return nil
}

// PrepareDone returns the id and the fields marking task as done. Title and
// description are kept as they are.
func PrepareDone(task service.Task) (string, service.Fields, error) {
	if !task.Persisted() {
		return "", service.Fields{}, ErrNotPersisted
	}
	fields := task.Fields()
	fields.Status = service.StatusDone
	return task.ID, fields, nil
}

// FinishUpdate applies the result of an update call to the entry with id.
func (b *Board) FinishUpdate(id string, task service.Task, err error) error {
	if err != nil {
		return b.fail(OpUpdate, err)
	}
	for i, t := range b.tasks {
		if t.ID == id {
			b.tasks[i] = task
		}
	}
	b.failure = nil
	b.log.Debug().Str("id", id).Str("status", string(task.Status)).Msg("updated task")
	return nil
}

// PrepareDelete returns the id to delete.
func PrepareDelete(task service.Task) (string, error) {
	if !task.Persisted() {
		return "", ErrNotPersisted
	}
	return task.ID, nil
}

// FinishDelete applies the result of a delete call, dropping the entries
// with id and nothing else.
func (b *Board) FinishDelete(id string, err error) error {
	if err != nil {
		return b.fail(OpDelete, err)
	}
	kept := b.tasks[:0]
	for _, t := range b.tasks {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	b.tasks = kept
	b.failure = nil
	b.log.Debug().Str("id", id).Msg("deleted task")
	return nil
}

func (b *Board) fail(op Op, err error) *Failure {
	f := &Failure{Op: op, Err: err}
	b.failure = f
	b.log.Error().Err(err).Str("op", string(op)).Msg(f.Error())
	return f
}
