package commands

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"taskman/internal/board"
	"taskman/internal/service"
)

// TaskRef identifies a task either by its 1-based position in `list` output
// or by its id.
type TaskRef struct {
	Num int    // set when the reference is a position
	ID  string // set when the reference is an id
}

// ErrTaskRefRequired indicates no task reference was provided.
var ErrTaskRefRequired = errors.New("task reference required")

// ParseTaskRef parses a task reference from args.
// All-digit references are positions unless byID is set; anything else is an id.
func ParseTaskRef(args []string, byID bool) (TaskRef, error) {
	if len(args) == 0 {
		return TaskRef{}, ErrTaskRefRequired
	}
	if len(args) > 1 {
		return TaskRef{}, fmt.Errorf("unexpected argument: %s", args[1])
	}

	ref := strings.TrimSpace(args[0])
	if ref == "" {
		return TaskRef{}, ErrTaskRefRequired
	}
	if byID || !isAllDigits(ref) {
		return TaskRef{ID: ref}, nil
	}

	num, err := strconv.Atoi(ref)
	if err != nil || num < 1 {
		return TaskRef{}, fmt.Errorf("task number out of range: %s", ref)
	}
	return TaskRef{Num: num}, nil
}

// Resolve finds the referenced task among the tasks loaded on b.
func (r TaskRef) Resolve(b *board.Board) (service.Task, error) {
	if r.ID != "" {
		task, ok := b.Find(r.ID)
		if !ok {
			return service.Task{}, fmt.Errorf("task not found: %s", r.ID)
		}
		return task, nil
	}
	task, ok := b.Task(r.Num - 1)
	if !ok {
		return service.Task{}, fmt.Errorf("task number out of range: %d", r.Num)
	}
	return task, nil
}

// isAllDigits returns true if s consists only of ASCII digits and is non-empty.
func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
