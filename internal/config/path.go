// Package config resolves spend settings from flags, environment and files.
package config

import (
	"os"
	"path/filepath"
	"strings"
)

const appDir = "spend"

// ExpandPath expands a leading ~ and $VAR references in path.
func ExpandPath(path string) string {
	switch {
	case path == "":
		return path
	case path == "~":
		if home, err := os.UserHomeDir(); err == nil {
			path = home
		}
	case strings.HasPrefix(path, "~/"):
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, path[2:])
		}
	}
	return os.ExpandEnv(path)
}

// DataPath returns name inside spend's data directory
// ($XDG_DATA_HOME/spend, falling back to ~/.local/share/spend).
func DataPath(name string) string {
	return xdgPath("XDG_DATA_HOME", filepath.Join(".local", "share"), name)
}

// StatePath returns name inside spend's state directory
// ($XDG_STATE_HOME/spend, falling back to ~/.local/state/spend).
func StatePath(name string) string {
	return xdgPath("XDG_STATE_HOME", filepath.Join(".local", "state"), name)
}

func xdgPath(env, fallback, name string) string {
	base := os.Getenv(env)
	if base == "" || !filepath.IsAbs(base) {
		base = ExpandPath(filepath.Join("~", fallback))
	}
	return filepath.Join(base, appDir, name)
}
