package commands

import (
	"context"
	"flag"
	"fmt"

	"taskman/internal/board"
	"taskman/internal/exitcode"
	"taskman/internal/output"
)

func init() {
	Register(&ListCmd{})
}

// ListCmd implements the list command.
type ListCmd struct {
	ids bool
}

// SetIDs switches to the id-per-line format (for testing).
func (c *ListCmd) SetIDs(v bool) {
	c.ids = v
}

func (c *ListCmd) Name() string       { return "list" }
func (c *ListCmd) Aliases() []string  { return []string{"ls"} }
func (c *ListCmd) Synopsis() string   { return "List tasks" }
func (c *ListCmd) Usage() string      { return "taskman list [--ids]" }
func (c *ListCmd) NeedsBackend() bool { return true }

func (c *ListCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.BoolVar(&c.ids, "ids", false, "")
}

func (c *ListCmd) Run(ctx context.Context, env *Env, args []string) int {
	if len(args) > 0 {
		return report(env.ErrOut, fmt.Errorf("unexpected argument: %s", args[0]))
	}

	b := board.New(env.Log)
	if err := b.Load(ctx, env.Service); err != nil {
		return report(env.ErrOut, err)
	}

	tasks := b.Tasks()
	switch {
	case c.ids:
		output.FormatTaskIDs(env.Out, tasks)
	case len(tasks) == 0 && env.Config.Quiet:
	default:
		output.FormatTasks(env.Out, tasks)
	}
	return exitcode.Success
}
