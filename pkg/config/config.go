package config

import (
	"fmt"

	"github.com/gobwas/glob"
)

// Config represents the complete jisort configuration.
// It can be loaded from .jisort.yaml with environment variable and flag overrides.
type Config struct {
	Path     string   `yaml:"path" mapstructure:"path"`         // file or directory to process
	Check    bool     `yaml:"check" mapstructure:"check"`       // only report, never write
	Force    bool     `yaml:"force" mapstructure:"force"`       // rewrite dangerous files too
	List     bool     `yaml:"list" mapstructure:"list"`         // list selected files and stop
	Globs    []string `yaml:"globs" mapstructure:"globs"`       // files to include
	Ignore   []string `yaml:"ignore" mapstructure:"ignore"`     // files and directories to skip
	Jobs     int      `yaml:"jobs" mapstructure:"jobs"`         // files processed concurrently
	Progress bool     `yaml:"progress" mapstructure:"progress"` // show a progress bar
	Verbose  bool     `yaml:"verbose" mapstructure:"verbose"`   // debug logging
}

// DefaultGlobs returns the default globs for js files.
func DefaultGlobs() []string {
	return []string{"**.js", "**.jsx", "**.ts", "**.tsx"}
}

// DefaultIgnore returns the paths skipped by default.
func DefaultIgnore() []string {
	return []string{
		"node_modules/**",
		"**/node_modules/**",
		"dist/**",
		"build/**",
		"coverage/**",
	}
}

// Default returns a configuration with sensible defaults.
func Default() *Config {
	return &Config{
		Path:   ".",
		Globs:  DefaultGlobs(),
		Ignore: DefaultIgnore(),
		Jobs:   1,
	}
}

// Validate checks the configuration for values no run could use.
func Validate(cfg *Config) error {
	if cfg.Path == "" {
		return fmt.Errorf("path must not be empty")
	}
	if len(cfg.Globs) == 0 {
		return fmt.Errorf("at least one glob is required")
	}
	if cfg.Jobs < 1 {
		return fmt.Errorf("jobs must be at least 1, got %d", cfg.Jobs)
	}
	for _, patterns := range [][]string{cfg.Globs, cfg.Ignore} {
		for _, pattern := range patterns {
			if _, err := glob.Compile(pattern, '/'); err != nil {
				return fmt.Errorf("invalid glob %q: %w", pattern, err)
			}
		}
	}
	return nil
}
