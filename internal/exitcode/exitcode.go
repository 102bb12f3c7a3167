// Package exitcode defines exit codes for the CLI.
package exitcode

const (
	// Success indicates successful completion.
	Success = 0

	// UserError indicates a user error (bad args, empty title, unknown task).
	UserError = 1

	// ConfigError indicates bad configuration (config dir, env, api url).
	ConfigError = 2

	// BackendError indicates a failed call to the task API.
	BackendError = 3

	// RuntimeError indicates the interactive page failed (terminal I/O).
	RuntimeError = 4
)
