package commands

import (
	"context"
	"errors"
	"fmt"
	"io"

	"taskman/internal/board"
	"taskman/internal/exitcode"
	"taskman/internal/service"
)

// report prints err and maps it to an exit code: board failures are backend
// errors, everything else is a user error.
func report(errOut io.Writer, err error) int {
	fmt.Fprintf(errOut, "error: %s\n", err)
	var f *board.Failure
	if errors.As(err, &f) {
		return exitcode.BackendError
	}
	return exitcode.UserError
}

// loadTask loads the board and resolves the task referenced by args.
// On failure the error has been reported and the exit code is returned.
func loadTask(ctx context.Context, env *Env, args []string, byID bool) (*board.Board, service.Task, int) {
	ref, err := ParseTaskRef(args, byID)
	if err != nil {
		return nil, service.Task{}, report(env.ErrOut, err)
	}

	b := board.New(env.Log)
	if err := b.Load(ctx, env.Service); err != nil {
		return nil, service.Task{}, report(env.ErrOut, err)
	}

	task, err := ref.Resolve(b)
	if err != nil {
		return nil, service.Task{}, report(env.ErrOut, err)
	}
	return b, task, exitcode.Success
}
