package config

import (
	"os"
	"path/filepath"
)

// GetRuntimePath is readable before the .env file inside it is loaded.
func GetRuntimePath() string {
	path := os.Getenv("TUSK_RUNTIME_PATH")
	if path == "" {
		path = ".tuskshell"
	}
	return absFromHome(path)
}

func absFromHome(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path)
}
