// Package logging builds the diagnostic logger. Everything it writes is for
// humans on stderr; stdout is reserved for the report.
package logging

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"golang.org/x/term"
)

// TimeFormat is the timestamp layout on console lines.
const TimeFormat = "15:04:05"

// New returns a console logger writing to w. Colour is used only when w is a
// terminal.
func New(w io.Writer, debug bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}

	console := zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    !IsTerminal(w),
		TimeFormat: TimeFormat,
	}

	return zerolog.New(console).Level(level).With().Timestamp().Logger()
}

// IsTerminal reports whether w is a file attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
