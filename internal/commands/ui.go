package commands

import (
	"context"
	"flag"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"taskman/internal/exitcode"
	"taskman/internal/ui"
)

func init() {
	Register(&UICmd{})
}

// UICmd starts the interactive task page.
type UICmd struct {
	opts []tea.ProgramOption
}

// SetProgramOptions sets extra Bubble Tea program options (for testing).
func (c *UICmd) SetProgramOptions(opts ...tea.ProgramOption) {
	c.opts = opts
}

func (c *UICmd) Name() string       { return "ui" }
func (c *UICmd) Aliases() []string  { return nil }
func (c *UICmd) Synopsis() string   { return "Open the interactive task page" }
func (c *UICmd) Usage() string      { return "taskman ui" }
func (c *UICmd) NeedsBackend() bool { return true }
func (c *UICmd) Interactive() bool  { return true }

func (c *UICmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *UICmd) Run(ctx context.Context, env *Env, args []string) int {
	if err := ui.Run(ctx, env.Service, env.Log, c.opts...); err != nil {
		env.Log.Error().Err(err).Msg("ui stopped")
		fmt.Fprintf(env.ErrOut, "error: %v\n", err)
		return exitcode.RuntimeError
	}
	return exitcode.Success
}
