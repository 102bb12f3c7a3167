package commands

import (
	"context"
	"flag"
	"fmt"

	"taskman/internal/exitcode"
	"taskman/internal/service"
)

func init() {
	Register(&DoneCmd{})
}

// DoneCmd implements the done command.
type DoneCmd struct {
	byID bool
}

// SetByID makes the reference always read as an id (for testing).
func (c *DoneCmd) SetByID(v bool) {
	c.byID = v
}

func (c *DoneCmd) Name() string       { return "done" }
func (c *DoneCmd) Aliases() []string  { return nil }
func (c *DoneCmd) Synopsis() string   { return "Mark a task done" }
func (c *DoneCmd) Usage() string      { return "taskman done [--id] <ref>" }
func (c *DoneCmd) NeedsBackend() bool { return true }

func (c *DoneCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.BoolVar(&c.byID, "id", false, "")
}

func (c *DoneCmd) Run(ctx context.Context, env *Env, args []string) int {
	b, task, code := loadTask(ctx, env, args, c.byID)
	if code != exitcode.Success {
		return code
	}

	// Nothing to send: there is no transition out of DONE.
	if task.Status == service.StatusDone {
		if !env.Config.Quiet {
			fmt.Fprintln(env.Out, "already done")
		}
		return exitcode.Success
	}

	if _, err := b.MarkDone(ctx, env.Service, task); err != nil {
		return report(env.ErrOut, err)
	}

	if !env.Config.Quiet {
		fmt.Fprintln(env.Out, "ok")
	}
	return exitcode.Success
}
