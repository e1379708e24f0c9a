package util

import (
	"os"
	"path/filepath"
	"strings"
)

// ConfigDir returns the XDG config directory for app, or "" when no home
// directory can be resolved.
func ConfigDir(app string) string {
	return xdgDir("XDG_CONFIG_HOME", app, ".config")
}

// StateDir returns the XDG state directory for app.
func StateDir(app string) string {
	return xdgDir("XDG_STATE_HOME", app, filepath.Join(".local", "state"))
}

func xdgDir(env, app, fallback string) string {
	if base := strings.TrimSpace(os.Getenv(env)); base != "" {
		return filepath.Join(expandHome(base), app)
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return ""
	}
	return filepath.Join(home, fallback, app)
}

func expandHome(path string) string {
	if !strings.Contains(path, "$HOME") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return strings.ReplaceAll(path, "$HOME", "")
	}
	return strings.ReplaceAll(path, "$HOME", home)
}
