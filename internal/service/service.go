// Package service defines the backend-agnostic interface for task operations.
package service

import "context"

// Service defines the interface for task backend operations.
// All HTTP calls go through this interface; the board, the view and the
// commands never talk to the transport directly.
type Service interface {
	// ListTasks returns the full task collection in API order.
	ListTasks(ctx context.Context) ([]Task, error)

	// CreateTask submits a new task and returns the stored record,
	// including the id assigned by the server.
	CreateTask(ctx context.Context, fields Fields) (Task, error)

	// UpdateTask replaces the task identified by id and returns the
	// updated record.
	UpdateTask(ctx context.Context, id string, fields Fields) (Task, error)

	// DeleteTask removes the task identified by id.
	DeleteTask(ctx context.Context, id string) error
}
