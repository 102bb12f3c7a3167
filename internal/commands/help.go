package commands

import (
	"context"
	"flag"
	"fmt"

	"taskman/internal/exitcode"
)

func init() {
	Register(&HelpCmd{})
}

// HelpCmd implements the help command.
type HelpCmd struct{}

func (c *HelpCmd) Name() string       { return "help" }
func (c *HelpCmd) Aliases() []string  { return nil }
func (c *HelpCmd) Synopsis() string   { return "Print usage" }
func (c *HelpCmd) Usage() string      { return "taskman help" }
func (c *HelpCmd) NeedsBackend() bool { return false }

func (c *HelpCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, env *Env, args []string) int {
	fmt.Fprint(env.Out, helpText)
	return exitcode.Success
}

const helpText = `Usage:
  taskman                                    Open the interactive task page
  taskman ui [common flags]
  taskman list [common flags] [--ids]        List tasks
  taskman add [common flags] [--description <text>] <title...>
  taskman done [common flags] [--id] <ref>
  taskman rm [common flags] [--id] <ref>
  taskman help
  taskman version

A <ref> is a task number as printed by list, or a task id.

Common flags:
  --config <dir>   Override config directory
  --api <url>      Task API base address (default http://localhost:8080)
  --quiet          Suppress informational output
  --debug          Print debug logs

Environment:
  TASKMAN_API_URL    Task API base address
  TASKMAN_LOG_FILE   Log file for the interactive page
`
