package console

import (
	"io"
	"log/slog"
)

// NewLogger returns the diagnostic logger shared by the commands. Records
// carry a component attribute in place of a bracketed prefix.
func NewLogger(w io.Writer, component string, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(h).With("component", component)
}
