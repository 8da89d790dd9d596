package utils

import (
	"os"
	"path/filepath"
)

const maxParentLookups = 20

// FindProjectRoot returns the nearest directory, starting at path (or its
// parent when path is a file), that contains a package.json.
// It returns an empty string when none is found.
func FindProjectRoot(path string) string {
	dir, err := filepath.Abs(path)
	if err != nil {
		return ""
	}
	if isDir, err := IsDirectory(dir); err != nil || !isDir {
		dir = filepath.Dir(dir)
	}

	for i := 0; i < maxParentLookups; i++ {
		if _, err := os.Stat(filepath.Join(dir, "package.json")); err == nil {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return ""
}
