// Package util provides common utilities including logging helpers,
// XDG path resolution and small numeric helpers.
package util

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
)

var debugEnabled bool

// LogError logs an error with context if it is non-nil.
func LogError(context string, err error) {
	if err != nil {
		log.Printf("%s: %v", context, err)
	}
}

// EnableDebug turns Debugf output on or off.
func EnableDebug(on bool) {
	debugEnabled = on
}

// DebugEnabled reports whether Debugf writes anything.
func DebugEnabled() bool {
	return debugEnabled
}

// Debugf logs a message only when debug logging is enabled.
func Debugf(format string, args ...any) {
	if !debugEnabled {
		return
	}
	log.Printf("debug: "+format, args...)
}

// SetupLogging points the standard logger at path. The terminal belongs to
// the TUI, so without a path log output is discarded. The returned closer
// must be called on exit.
func SetupLogging(path string) (io.Closer, error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return io.NopCloser(nil), nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := tea.LogToFile(path, "durpick")
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return f, nil
}
