package std

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsGlobalPackage(t *testing.T) {
	req := require.New(t)
	tests := []struct {
		name     string
		module   string
		expected bool
	}{
		{"global package - react", "react", true},
		{"global package - lodash", "lodash", true},
		{"global package - prop-types", "prop-types", true},
		{"sub path of global package", "lodash/merge", false},
		{"similar name", "react-dom", false},
		{"scoped package", "@testing-library/react", false},
		{"local path", "./react", false},
		{"empty string", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := IsGlobalPackage(tt.module)
			req.Equal(tt.expected, result, "IsGlobalPackage(%q)", tt.module)
		})
	}
}

func TestGlobalPackagesMapNotEmpty(t *testing.T) {
	req := require.New(t)
	req.NotEmpty(GlobalPackages, "GlobalPackages map should not be empty")
	req.Len(GlobalPackages, 3)
}
