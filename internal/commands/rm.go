package commands

import (
	"context"
	"flag"
	"fmt"

	"taskman/internal/exitcode"
)

func init() {
	Register(&RmCmd{})
}

// RmCmd implements the rm command.
type RmCmd struct {
	byID bool
}

func (c *RmCmd) Name() string       { return "rm" }
func (c *RmCmd) Aliases() []string  { return []string{"delete"} }
func (c *RmCmd) Synopsis() string   { return "Delete a task" }
func (c *RmCmd) Usage() string      { return "taskman rm [--id] <ref>" }
func (c *RmCmd) NeedsBackend() bool { return true }

func (c *RmCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.BoolVar(&c.byID, "id", false, "")
}

func (c *RmCmd) Run(ctx context.Context, env *Env, args []string) int {
	b, task, code := loadTask(ctx, env, args, c.byID)
	if code != exitcode.Success {
		return code
	}

	if err := b.Delete(ctx, env.Service, task); err != nil {
		return report(env.ErrOut, err)
	}

	if !env.Config.Quiet {
		fmt.Fprintln(env.Out, "ok")
	}
	return exitcode.Success
}
