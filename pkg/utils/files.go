package utils

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"

	"github.com/siyuan-infoblox/js-imports-sort/pkg/errors"
)

// Matcher selects files by include and ignore glob patterns.
// Patterns are matched against slash-separated paths relative to the root.
type Matcher struct {
	include []glob.Glob
	ignore  []glob.Glob
}

// NewMatcher compiles the include and ignore patterns.
func NewMatcher(globs, ignore []string) (*Matcher, error) {
	include, err := compileGlobs(globs)
	if err != nil {
		return nil, err
	}
	ignored, err := compileGlobs(ignore)
	if err != nil {
		return nil, err
	}
	return &Matcher{include: include, ignore: ignored}, nil
}

func compileGlobs(patterns []string) ([]glob.Glob, error) {
	compiled := make([]glob.Glob, 0, len(patterns))
	for _, pattern := range patterns {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, fmt.Errorf(errors.ErrMsgFailedToCompileGlob+": %w", pattern, err)
		}
		compiled = append(compiled, g)
	}
	return compiled, nil
}

// Match reports whether relPath is included and not ignored.
func (m *Matcher) Match(relPath string) bool {
	relPath = filepath.ToSlash(relPath)
	return matchesAny(m.include, relPath) && !matchesAny(m.ignore, relPath)
}

// IgnoresDir reports whether the whole directory at relPath is ignored.
func (m *Matcher) IgnoresDir(relPath string) bool {
	return matchesAny(m.ignore, filepath.ToSlash(relPath)+"/")
}

func matchesAny(globs []glob.Glob, path string) bool {
	for _, g := range globs {
		if g.Match(path) {
			return true
		}
	}
	return false
}

// SkipDir reports whether a directory name is never descended into:
// hidden directories and node_modules.
func SkipDir(name string) bool {
	return name == "node_modules" || (strings.HasPrefix(name, ".") && name != "." && name != "..")
}

// FindSourceFiles recursively finds the files under root selected by m,
// in lexical order.
func FindSourceFiles(root string, m *Matcher) ([]string, error) {
	var files []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}

		// Skip node_modules, hidden and ignored directories (but not the root directory)
		if d.IsDir() {
			if path != root && (SkipDir(d.Name()) || m.IgnoresDir(rel)) {
				return filepath.SkipDir
			}
			return nil
		}

		if d.Type().IsRegular() && m.Match(rel) {
			files = append(files, path)
		}
		return nil
	})

	return files, err
}

// IsDirectory checks if the given path is a directory
func IsDirectory(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, err
	}
	return info.IsDir(), nil
}
