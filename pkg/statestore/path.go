package statestore

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

const baseName = "tuskshell"

// CacheDir returns the per-project state directory under home:
//
//	linux, others  ~/.cache/<project>
//	windows        ~/AppData/Local/<project>
//	darwin         ~/Library/Application Support/<project>
func CacheDir(goos, home, project string) string {
	var root string
	switch goos {
	case "windows":
		root = filepath.Join(home, "AppData", "Local")
	case "darwin":
		root = filepath.Join(home, "Library", "Application Support")
	default:
		root = filepath.Join(home, ".cache")
	}
	return filepath.Join(root, project)
}

// CachePath is the JSON state file inside CacheDir.
func CachePath(goos, home, project string) string {
	return filepath.Join(CacheDir(goos, home, project), baseName+".json")
}

// DefaultCachePath resolves CachePath for the running platform and user.
// A project given as a program path is reduced to its base name.
func DefaultCachePath(project string) (string, error) {
	dir, err := DefaultCacheDir(project)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, baseName+".json"), nil
}

func DefaultCacheDir(project string) (string, error) {
	project = filepath.Base(project)
	if project == "" || project == "." || project == string(filepath.Separator) {
		return "", fmt.Errorf("invalid project name %q", project)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return CacheDir(runtime.GOOS, home, project), nil
}
