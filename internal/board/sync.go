package board

import (
	"context"

	"taskman/internal/service"
)

// Load fetches the full task list.
func (b *Board) Load(ctx context.Context, svc service.Service) error {
	b.StartLoad()
	tasks, err := svc.ListTasks(ctx)
	return b.FinishLoad(tasks, err)
}

// Create adds a TODO task. Guard failures return before any request is made.
func (b *Board) Create(ctx context.Context, svc service.Service, title, description string) (service.Task, error) {
	fields, err := PrepareCreate(title, description)
	if err != nil {
		return service.Task{}, err
	}
	task, err := svc.CreateTask(ctx, fields)
	if err := b.FinishCreate(task, err); err != nil {
		return service.Task{}, err
	}
	return task, nil
}

// MarkDone sets the status of task to DONE.
func (b *Board) MarkDone(ctx context.Context, svc service.Service, task service.Task) (service.Task, error) {
	id, fields, err := PrepareDone(task)
	if err != nil {
		return service.Task{}, err
	}
	updated, err := svc.UpdateTask(ctx, id, fields)
	if err := b.FinishUpdate(id, updated, err); err != nil {
		return service.Task{}, err
	}
	return updated, nil
}

// Delete removes task.
func (b *Board) Delete(ctx context.Context, svc service.Service, task service.Task) error {
	id, err := PrepareDelete(task)
	if err != nil {
		return err
	}
	return b.FinishDelete(id, svc.DeleteTask(ctx, id))
}
