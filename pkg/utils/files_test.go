package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

var defaultGlobs = []string{"**.js", "**.jsx", "**.ts", "**.tsx"}

func TestMatcher_Match(t *testing.T) {
	m, err := NewMatcher(defaultGlobs, []string{"dist/**", "**/*.min.js"})
	require.NoError(t, err)

	tests := []struct {
		name     string
		path     string
		expected bool
	}{
		{
			name:     "js file in root",
			path:     "index.js",
			expected: true,
		},
		{
			name:     "tsx file with path",
			path:     "src/components/App.tsx",
			expected: true,
		},
		{
			name:     "jsx file",
			path:     "src/App.jsx",
			expected: true,
		},
		{
			name:     "declaration file",
			path:     "types/global.d.ts",
			expected: true,
		},
		{
			name:     "stylesheet",
			path:     "src/style.css",
			expected: false,
		},
		{
			name:     "file with .js in middle",
			path:     "file.js.map",
			expected: false,
		},
		{
			name:     "ignored directory",
			path:     "dist/bundle.js",
			expected: false,
		},
		{
			name:     "ignored by name",
			path:     "vendor/lib.min.js",
			expected: false,
		},
		{
			name:     "empty string",
			path:     "",
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			result := m.Match(tt.path)
			req.Equal(tt.expected, result, "Match(%q) = %v, want %v", tt.path, result, tt.expected)
		})
	}
}

func TestMatcher_IgnoresDir(t *testing.T) {
	req := require.New(t)
	m, err := NewMatcher(defaultGlobs, []string{"dist/**", "**/build/**"})
	req.NoError(err)

	req.True(m.IgnoresDir("dist"))
	req.True(m.IgnoresDir("packages/app/build"))
	req.False(m.IgnoresDir("src"))
	req.False(m.IgnoresDir("distribution"))
}

func TestNewMatcher_invalidGlob(t *testing.T) {
	req := require.New(t)
	_, err := NewMatcher([]string{"src/[a-"}, nil)
	req.Error(err)
	req.Contains(err.Error(), "src/[a-")
}

func TestSkipDir(t *testing.T) {
	req := require.New(t)
	req.True(SkipDir("node_modules"))
	req.True(SkipDir(".git"))
	req.True(SkipDir(".cache"))
	req.False(SkipDir("src"))
	req.False(SkipDir("."))
	req.False(SkipDir(".."))
}

func TestIsDirectory(t *testing.T) {
	req := require.New(t)
	// Create a temporary directory for testing
	tempDir := t.TempDir()

	// Create a temporary file
	tempFile := filepath.Join(tempDir, "test.txt")
	err := os.WriteFile(tempFile, []byte("test"), 0644)
	req.NoError(err, "Failed to create temp file: %v", err)

	tests := []struct {
		name      string
		path      string
		expected  bool
		expectErr bool
	}{
		{
			name:      "existing directory",
			path:      tempDir,
			expected:  true,
			expectErr: false,
		},
		{
			name:      "existing file",
			path:      tempFile,
			expected:  false,
			expectErr: false,
		},
		{
			name:      "non-existent path",
			path:      "/non/existent/path",
			expected:  false,
			expectErr: true,
		},
		{
			name:      "current directory",
			path:      ".",
			expected:  true,
			expectErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			result, err := IsDirectory(tt.path)

			if tt.expectErr {
				req.Error(err, "IsDirectory(%q) expected error, got nil", tt.path)
			} else {
				req.NoError(err, "IsDirectory(%q) unexpected error: %v", tt.path, err)
				req.Equal(tt.expected, result, "IsDirectory(%q) = %v, want %v", tt.path, result, tt.expected)
			}
		})
	}
}

func TestFindSourceFiles(t *testing.T) {
	req := require.New(t)
	// Create a temporary directory structure for testing
	tempDir := t.TempDir()

	dirs := []string{
		"src/components",
		"src/utils",
		"dist",
		"node_modules/react",
		".git",
		".hidden",
	}

	for _, dir := range dirs {
		err := os.MkdirAll(filepath.Join(tempDir, dir), 0755)
		req.NoError(err, "Failed to create directory %s: %v", dir, err)
	}

	files := map[string]string{
		"index.js":                    "import a from 'a';",
		"src/components/App.tsx":      "import React from 'react';",
		"src/components/Button.jsx":   "import React from 'react';",
		"src/utils/phone.ts":          "export const a = 1;",
		"src/components/style.css":    "body {}",              // Should be excluded (not matched)
		"dist/bundle.js":              "bundle",               // Should be excluded (ignored dir)
		"node_modules/react/index.js": "module.exports = {};", // Should be excluded (node_modules)
		".git/config":                 "config",               // Should be excluded (hidden dir)
		".hidden/hidden.js":           "hidden",               // Should be excluded (hidden dir)
		"README.md":                   "# README",             // Should be excluded (not matched)
	}

	for filePath, content := range files {
		fullPath := filepath.Join(tempDir, filePath)
		err := os.WriteFile(fullPath, []byte(content), 0644)
		req.NoError(err, "Failed to create file %s: %v", filePath, err)
	}

	err := os.Mkdir(filepath.Join(tempDir, "empty"), 0755)
	req.NoError(err, "Failed to create empty directory: %v", err)

	m, err := NewMatcher(defaultGlobs, []string{"dist/**"})
	req.NoError(err)

	t.Run("find source files in temp directory", func(t *testing.T) {
		req := require.New(t)
		result, err := FindSourceFiles(tempDir, m)
		req.NoError(err)
		req.Equal([]string{
			filepath.Join(tempDir, "index.js"),
			filepath.Join(tempDir, "src/components/App.tsx"),
			filepath.Join(tempDir, "src/components/Button.jsx"),
			filepath.Join(tempDir, "src/utils/phone.ts"),
		}, result)
	})

	t.Run("non-existent directory", func(t *testing.T) {
		req := require.New(t)
		_, err := FindSourceFiles("/non/existent/path", m)
		req.Error(err)
	})

	t.Run("empty directory", func(t *testing.T) {
		req := require.New(t)
		result, err := FindSourceFiles(filepath.Join(tempDir, "empty"), m)
		req.NoError(err)
		req.Empty(result)
	})
}
