package cli

import (
	"os"

	"github.com/rs/zerolog"
)

// newLogger returns a debug-level console logger on stderr when verbose
// tracing is requested, and a no-op logger otherwise. Diagnostics never
// touch stdout; the report stream stays clean for piping.
func newLogger(verbose bool) zerolog.Logger {
	if !verbose {
		return zerolog.Nop()
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().Timestamp().Logger().
		Level(zerolog.DebugLevel)
}
