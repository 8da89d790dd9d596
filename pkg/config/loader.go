package config

import (
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/siyuan-infoblox/js-imports-sort/pkg/utils"
)

// EnvPrefix prefixes every environment variable read by the loader.
const EnvPrefix = "JISORT"

// ConfigName is the base name of the configuration file.
const ConfigName = ".jisort"

// Loader loads configuration for one target path.
type Loader struct {
	path  string
	flags *pflag.FlagSet
}

// NewLoader creates a loader for path. Flags that were set on the command
// line override every other source; flags may be nil.
func NewLoader(path string, flags *pflag.FlagSet) *Loader {
	if path == "" {
		path = "."
	}
	return &Loader{path: path, flags: flags}
}

// Load loads configuration with the following priority (highest to lowest):
// 1. Command line flags
// 2. Environment variables (JISORT_*)
// 3. Config file (.jisort.yaml or .jisort.yml in the project root)
// 4. Default values
func (l *Loader) Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName(ConfigName)
	v.SetConfigType("yaml")
	v.AddConfigPath(l.configDir())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if l.flags != nil {
		if err := v.BindPFlags(l.flags); err != nil {
			return nil, errors.Wrap(err, "binding flags")
		}
	}

	if err := v.ReadInConfig(); err != nil {
		// Config file not found is acceptable - defaults, env and flags still apply
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, errors.Wrap(err, "reading config file")
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.Wrap(err, "parsing config")
	}
	// The target path always comes from the command line.
	cfg.Path = l.path

	if err := Validate(cfg); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}
	return cfg, nil
}

// configDir is the project root of the target path, or the target itself
// (its directory for a file) when no package.json is found.
func (l *Loader) configDir() string {
	if root := utils.FindProjectRoot(l.path); root != "" {
		return root
	}
	if isDir, err := utils.IsDirectory(l.path); err == nil && !isDir {
		return filepath.Dir(l.path)
	}
	return l.path
}

// setDefaults configures viper with default values.
func setDefaults(v *viper.Viper) {
	defaults := Default()

	v.SetDefault("check", defaults.Check)
	v.SetDefault("force", defaults.Force)
	v.SetDefault("list", defaults.List)
	v.SetDefault("globs", defaults.Globs)
	v.SetDefault("ignore", defaults.Ignore)
	v.SetDefault("jobs", defaults.Jobs)
	v.SetDefault("progress", defaults.Progress)
	v.SetDefault("verbose", defaults.Verbose)
}
