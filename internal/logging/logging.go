// Package logging is the ambient zerolog setup shared by cmd/vteterm and
// the pty/terminal packages (SPEC_FULL.md §10), grounded in the
// console-writer-for-a-terminal-program idiom used across the
// vibetunnel example repos' logging setup.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Options configures New.
type Options struct {
	// Verbose lowers the level to Debug; otherwise Info.
	Verbose bool
	// Writer overrides the destination (tests can point this at a
	// bytes.Buffer); nil defaults to stderr so log lines never collide
	// with the terminal content written to stdout.
	Writer io.Writer
}

// New builds a zerolog.Logger writing structured console output.
func New(opts Options) zerolog.Logger {
	w := opts.Writer
	if w == nil {
		w = os.Stderr
	}
	cw := zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}

	level := zerolog.InfoLevel
	if opts.Verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(cw).Level(level).With().Timestamp().Logger()
}
