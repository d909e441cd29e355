package config

import (
	"os"
	"path/filepath"
)

const (
	// DefaultFile is the todo document used when nothing else is configured.
	DefaultFile = "~/todo.md"

	// DefaultDir is the directory the index scans for documents.
	DefaultDir = "~"
)

// FilePath returns the todo document path from the PRIOLIST_FILE env var,
// falling back to DefaultFile.
func FilePath() string {
	if env := os.Getenv("PRIOLIST_FILE"); env != "" {
		return env
	}
	return DefaultFile
}

// Debug reports whether verbose diagnostic notifications are enabled,
// via the PRIOLIST_DEBUG env var.
func Debug() bool {
	return os.Getenv("PRIOLIST_DEBUG") != ""
}

// DirPath returns the indexed directory from the PRIOLIST_DIR env var,
// falling back to the directory of the configured file.
func DirPath() string {
	if env := os.Getenv("PRIOLIST_DIR"); env != "" {
		return env
	}
	if env := os.Getenv("PRIOLIST_FILE"); env != "" {
		return filepath.Dir(env)
	}
	return DefaultDir
}
