package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-hclog"
)

const defaultCLILogLevel = "warn"

func parseLevel(s string, fallback hclog.Level) hclog.Level {
	if s == "" {
		return fallback
	}
	if lvl := hclog.LevelFromString(s); lvl != hclog.NoLevel {
		return lvl
	}
	return fallback
}

func newCLILogger(w io.Writer, level string) hclog.Logger {
	return hclog.New(&hclog.LoggerOptions{
		Name:   "taskdeck",
		Level:  parseLevel(level, hclog.LevelFromString(defaultCLILogLevel)),
		Output: w,
	})
}

// newTUILogger writes to path when set. The alternate screen owns the terminal,
// so without a path everything is discarded.
func newTUILogger(path, level string) (hclog.Logger, func(), error) {
	if path == "" {
		return hclog.NewNullLogger(), func() {}, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("debug log: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("debug log: %w", err)
	}
	log := hclog.New(&hclog.LoggerOptions{
		Name:       "taskdeck.tui",
		Level:      parseLevel(level, hclog.Debug),
		Output:     f,
		JSONFormat: true,
	})
	return log, func() { _ = f.Close() }, nil
}
