package cmd

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/siyuan-infoblox/js-imports-sort/pkg/errors"
	"github.com/siyuan-infoblox/js-imports-sort/pkg/formatter"
	"github.com/siyuan-infoblox/js-imports-sort/pkg/report"
	"github.com/siyuan-infoblox/js-imports-sort/pkg/utils"
	"github.com/siyuan-infoblox/js-imports-sort/pkg/watcher"
)

func newWatchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "watch [flags] [PATH]",
		Short: "Sort or check imports whenever source files change",
		Long: `watch processes the directory once, then keeps watching it and processes
every changed file again until interrupted.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE:         runWatch,
	}
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, logger, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}
	isDir, err := utils.IsDirectory(cfg.Path)
	if err != nil {
		return fmt.Errorf("%s: %w", errors.ErrMsgFailedToCheckPath, err)
	}
	if !isDir {
		return fmt.Errorf("%s: %s is not a directory", errors.ErrMsgFailedToWatchDirectory, cfg.Path)
	}
	root, err := filepath.Abs(cfg.Path)
	if err != nil {
		return fmt.Errorf("%s: %w", errors.ErrMsgFailedToCheckPath, err)
	}

	g, err := newFormatter(cmd, cfg, logger)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	rep, err := g.ProcessPath(ctx, root)
	if rep == nil {
		return err
	}
	printReport(cmd, rep)

	w, err := watcher.New(root, g.Matcher(), logger)
	if err != nil {
		return err
	}
	logger.Info(fmt.Sprintf(errors.InfoMsgWatching, root, w.Dirs()))

	return w.Run(ctx, func(ctx context.Context, files []string) {
		process(ctx, cmd, g, files)
	})
}

// process handles one batch of changed files. Failures are logged by the
// formatter and never stop watching.
func process(ctx context.Context, cmd *cobra.Command, g *formatter.Formatter, files []string) {
	rep, err := g.ProcessFiles(ctx, files)
	if rep == nil {
		return
	}
	if err != nil || worthReporting(rep) {
		printReport(cmd, rep)
	}
}

// worthReporting skips batches where nothing happened, such as the events
// caused by the previous batch's own writes.
func worthReporting(rep report.Report) bool {
	if rep.Err() {
		return true
	}
	fix, ok := rep.(*report.FixReport)
	return ok && len(fix.SortedFiles) > 0
}
