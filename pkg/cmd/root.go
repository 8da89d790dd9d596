package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/siyuan-infoblox/js-imports-sort/pkg/config"
	"github.com/siyuan-infoblox/js-imports-sort/pkg/errors"
	"github.com/siyuan-infoblox/js-imports-sort/pkg/formatter"
	"github.com/siyuan-infoblox/js-imports-sort/pkg/report"
	"github.com/siyuan-infoblox/js-imports-sort/pkg/version"
)

const (
	UseDescription   = "jisort [flags] [PATH]"
	ShortDescription = "JavaScript imports sorter - A tool to sort JS/TS imports"
	LongDescription  = `jisort is a command-line tool that sorts the imports at the top of
JavaScript and TypeScript files.

Imports are ordered by category, then alphabetically by module:
1. Global packages (react, lodash, prop-types)
2. Scoped modules (@scope/package)
3. Modules (package)
4. Aliases (@/path)
5. Local files (./file, ../file)
6. Styles (*.css)

A blank line separates categories. Files with comments between imports are
reported as dangerous and left untouched unless --force is given.

PATH can be either a single file or a directory (default "."). When a directory
is specified, files matching --globs are processed recursively.`
)

// options holds the flags shared by every command. Values that can also come
// from the environment or .jisort.yaml are read through config.Loader.
type options struct {
	showVersion bool
}

// NewRootCommand builds the jisort command tree.
func NewRootCommand() *cobra.Command {
	opts := &options{}
	rootCmd := &cobra.Command{
		Use:          UseDescription,
		Short:        ShortDescription,
		Long:         LongDescription,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, opts)
		},
	}

	defaults := config.Default()
	flags := rootCmd.PersistentFlags()
	flags.Bool("check", defaults.Check, "Check import order without modifying files, exit 1 if some files are badly sorted")
	flags.Bool("force", defaults.Force, "Also sort files with comments between imports")
	flags.Bool("list", defaults.List, "List the files that would be processed, then stop")
	flags.StringSlice("globs", defaults.Globs, "Comma-separated globs of files to process")
	flags.StringSlice("ignore", defaults.Ignore, "Comma-separated globs of files and directories to skip")
	flags.IntP("jobs", "j", defaults.Jobs, "Number of files processed concurrently")
	flags.Bool("progress", defaults.Progress, "Show a progress bar on stderr")
	flags.Bool("verbose", defaults.Verbose, "Enable debug logging")
	rootCmd.Flags().BoolVarP(&opts.showVersion, "version", "v", false, "Show version information")

	rootCmd.AddCommand(newWatchCommand())
	return rootCmd
}

func run(cmd *cobra.Command, args []string, opts *options) error {
	if opts.showVersion {
		fmt.Fprintln(cmd.OutOrStdout(), version.Get())
		return nil
	}

	cfg, logger, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}
	g, err := newFormatter(cmd, cfg, logger)
	if err != nil {
		return err
	}

	if cfg.List {
		files, err := g.Files(cfg.Path)
		if err != nil {
			return err
		}
		for _, file := range files {
			fmt.Fprintln(cmd.OutOrStdout(), file)
		}
		return nil
	}

	rep, err := g.ProcessPath(cmd.Context(), cfg.Path)
	if rep == nil {
		return err
	}
	printReport(cmd, rep)
	if err != nil {
		return err
	}
	if cfg.Check && rep.Err() {
		return fmt.Errorf("%w: "+errors.ErrMsgFilesBadlySorted, errors.ErrUnsorted, len(rep.(*report.CheckReport).ErroredFiles))
	}
	return nil
}

// loadConfig resolves the configuration for the PATH argument and builds
// the logger it asks for.
func loadConfig(cmd *cobra.Command, args []string) (*config.Config, *slog.Logger, error) {
	path := "."
	if len(args) == 1 {
		path = args[0]
	}
	cfg, err := config.NewLoader(path, cmd.Flags()).Load()
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", errors.ErrMsgFailedToLoadConfig, err)
	}
	logger := newLogger(cmd.ErrOrStderr(), cfg.Verbose)
	logger.Debug("configuration loaded", "path", cfg.Path, "check", cfg.Check, "force", cfg.Force, "jobs", cfg.Jobs)
	return cfg, logger, nil
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func newFormatter(cmd *cobra.Command, cfg *config.Config, logger *slog.Logger) (*formatter.Formatter, error) {
	var progress io.Writer
	if cfg.Progress {
		progress = cmd.ErrOrStderr()
	}
	return formatter.New(formatter.FormatterConfig{
		Globs:    cfg.Globs,
		Ignore:   cfg.Ignore,
		Check:    cfg.Check,
		Force:    cfg.Force,
		Jobs:     cfg.Jobs,
		Progress: progress,
		Logger:   logger,
	})
}

// printReport prints the run summary on stdout and, for fix runs that
// skipped dangerous files, the warning on stderr.
func printReport(cmd *cobra.Command, rep report.Report) {
	fmt.Fprintln(cmd.OutOrStdout(), rep.String())
	if fix, ok := rep.(*report.FixReport); ok {
		if warning := fix.Warning(); warning != "" {
			fmt.Fprintln(cmd.ErrOrStderr(), warning)
		}
	}
}

// Execute runs the root command until it returns or the process is
// interrupted.
func Execute(v string) error {
	if v != "" && v != "(devel)" {
		version.Version = v
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return NewRootCommand().ExecuteContext(ctx)
}
