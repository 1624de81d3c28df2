package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// ExpandPath expands a leading ~ to the user's home directory. ~user
// forms are returned unchanged.
func ExpandPath(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}

	if len(path) > 1 && path[1] != '/' && path[1] != filepath.Separator {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("expanding %s: %w", path, err)
	}

	if len(path) == 1 {
		return homeDir, nil
	}
	return filepath.Join(homeDir, path[2:]), nil
}

// expandPaths applies ExpandPath to the filesystem settings.
func (s *Settings) expandPaths() error {
	var err error
	if s.RegistryPath, err = ExpandPath(s.RegistryPath); err != nil {
		return err
	}
	if s.OutputDir, err = ExpandPath(s.OutputDir); err != nil {
		return err
	}
	return nil
}
