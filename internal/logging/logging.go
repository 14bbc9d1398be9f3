// Package logging sets up the diagnostics logger. The dashboard owns the
// terminal, so logs go to a file; best-effort failures (control actions,
// participant removal) are recorded here and nowhere else.
package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/s41205/hangarctl/internal/config"
)

// New returns a JSON logger writing to the given file, which is created if
// missing. An empty path falls back to the state directory; if no file can
// be opened the logger discards everything rather than corrupting the TUI.
func New(path, level string) *slog.Logger {
	if path == "" {
		if dir, err := config.StateDir(); err == nil {
			path = filepath.Join(dir, "hangarctl.log")
		}
	}

	var out io.Writer = io.Discard
	if path != "" {
		if f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644); err == nil {
			out = f
		}
	}

	h := slog.NewJSONHandler(out, &slog.HandlerOptions{Level: parseLevel(level)})
	return slog.New(h)
}

func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
