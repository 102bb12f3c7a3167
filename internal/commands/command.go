// Package commands provides the command interface and implementations.
package commands

import (
	"context"
	"flag"
	"io"

	"github.com/rs/zerolog"

	"taskman/internal/config"
	"taskman/internal/service"
)

// Env carries everything a command needs besides its arguments.
type Env struct {
	Config  *config.Config
	Service service.Service // nil if NeedsBackend() returns false
	Log     zerolog.Logger
	Out     io.Writer
	ErrOut  io.Writer
}

// Command defines the interface for CLI commands.
type Command interface {
	// Name returns the primary command name.
	Name() string

	// Aliases returns alternative names for the command.
	Aliases() []string

	// Synopsis returns a short description for help output.
	Synopsis() string

	// Usage returns the usage string for help output.
	Usage() string

	// NeedsBackend returns true if the command talks to the task API.
	NeedsBackend() bool

	// RegisterFlags registers command-specific flags.
	RegisterFlags(fs *flag.FlagSet)

	// Run executes the command with the positional arguments left after
	// flag parsing. Returns exit code.
	Run(ctx context.Context, env *Env, args []string) int
}

// Interactive is implemented by commands that take over the terminal.
// Their logs go to the log file instead of stderr.
type Interactive interface {
	Interactive() bool
}

// IsInteractive reports whether c takes over the terminal.
func IsInteractive(c Command) bool {
	i, ok := c.(Interactive)
	return ok && i.Interactive()
}
