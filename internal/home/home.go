// Package home manages the dates-le home directory layout.
//
// The home directory owns the tool's persistent state: the config file and
// saved scan sessions.
//
// Layout:
//
//	<root>/
//	  config.toml    (user configuration)
//	  sessions/      (saved scan sessions)
package home

import (
	"fmt"
	"os"
	"path/filepath"
)

// Dir represents a dates-le home directory.
type Dir struct {
	root string
}

// New creates a Dir with an explicit root path.
func New(root string) Dir {
	return Dir{root: root}
}

// Default returns a Dir using the platform-appropriate default location:
//   - Linux:   ~/.config/dates-le
//   - macOS:   ~/Library/Application Support/dates-le
//   - Windows: %APPDATA%/dates-le
func Default() (Dir, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return Dir{}, fmt.Errorf("determine config directory: %w", err)
	}
	return Dir{root: filepath.Join(base, "dates-le")}, nil
}

// Root returns the home directory path.
func (d Dir) Root() string {
	return d.root
}

// ConfigPath returns the path to the TOML config file.
func (d Dir) ConfigPath() string {
	return filepath.Join(d.root, "config.toml")
}

// SessionsDir returns the directory holding saved scan sessions.
func (d Dir) SessionsDir() string {
	return filepath.Join(d.root, "sessions")
}

// SessionPath returns the path for a named session file.
func (d Dir) SessionPath(name string) string {
	return filepath.Join(d.SessionsDir(), name+".dls")
}

// EnsureExists creates the home directory tree if it doesn't exist.
func (d Dir) EnsureExists() error {
	if err := os.MkdirAll(d.SessionsDir(), 0o750); err != nil {
		return fmt.Errorf("create home directory %s: %w", d.root, err)
	}
	return nil
}
