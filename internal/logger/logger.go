// Package logger builds the zerolog logger shared by the CLI and the view.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New returns a console logger writing to w.
// Debug enables debug level; otherwise only warnings and errors are written.
func New(w io.Writer, debug bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if debug {
		level = zerolog.DebugLevel
	}

	cw := zerolog.NewConsoleWriter()
	cw.TimeFormat = time.DateTime
	cw.Out = w
	cw.NoColor = true

	return zerolog.New(cw).
		Level(level).
		With().
		Timestamp().
		Logger()
}

// OpenFile returns a logger appending to the file at path, plus a function
// closing it. The file is created with mode 0600.
func OpenFile(path string, debug bool) (zerolog.Logger, func() error, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return zerolog.Nop(), nil, err
	}
	log := New(f, debug).With().Int("pid", os.Getpid()).Logger()
	return log, f.Close, nil
}
