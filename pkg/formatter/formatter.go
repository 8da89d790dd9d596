package formatter

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/schollz/progressbar/v3"
	"golang.org/x/sync/errgroup"

	"github.com/siyuan-infoblox/js-imports-sort/pkg/errors"
	"github.com/siyuan-infoblox/js-imports-sort/pkg/report"
	"github.com/siyuan-infoblox/js-imports-sort/pkg/utils"
)

type FormatterConfig struct {
	Globs    []string     // files to include, relative to the processed directory
	Ignore   []string     // files and directories to skip
	Check    bool         // only check import order, never write
	Force    bool         // also fix dangerous files
	Jobs     int          // files processed concurrently, 1 when unset
	Progress io.Writer    // progress bar output, none when nil
	Logger   *slog.Logger // slog.Default() when nil
}

// Formatter sorts or checks the imports of a set of files.
type Formatter struct {
	config  FormatterConfig
	matcher *utils.Matcher
	logger  *slog.Logger
}

// New creates a new Formatter, compiling the configured globs.
func New(config FormatterConfig) (*Formatter, error) {
	matcher, err := utils.NewMatcher(config.Globs, config.Ignore)
	if err != nil {
		return nil, err
	}
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}
	if config.Jobs < 1 {
		config.Jobs = 1
	}
	return &Formatter{config: config, matcher: matcher, logger: logger}, nil
}

// Matcher returns the file selection rules of the formatter.
func (g *Formatter) Matcher() *utils.Matcher {
	return g.matcher
}

// Files returns the files selected under path. A file path is returned as
// is, without glob filtering.
func (g *Formatter) Files(path string) ([]string, error) {
	isDir, err := utils.IsDirectory(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errors.ErrMsgFailedToCheckPath, err)
	}
	if !isDir {
		return []string{path}, nil
	}

	files, err := utils.FindSourceFiles(path, g.matcher)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errors.ErrMsgFailedToFindFiles, err)
	}
	g.logger.Debug("found source files", "path", path, "count", len(files))
	return files, nil
}

// ProcessPath checks or fixes every file selected under path.
func (g *Formatter) ProcessPath(ctx context.Context, path string) (report.Report, error) {
	files, err := g.Files(path)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		g.logger.Info(fmt.Sprintf(errors.InfoMsgNoFilesFound, path))
	}
	return g.ProcessFiles(ctx, files)
}

// ProcessFiles checks or fixes the given files, depending on the Check
// setting. An I/O failure on one file does not stop the others; failures are
// listed in the report and summed up in the returned error.
func (g *Formatter) ProcessFiles(ctx context.Context, files []string) (report.Report, error) {
	var rep report.Report
	if g.config.Check {
		r, err := g.CheckFiles(ctx, files)
		if err != nil {
			return nil, err
		}
		rep = r
	} else {
		r, err := g.FixFiles(ctx, files)
		if err != nil {
			return nil, err
		}
		rep = r
	}

	if failed := rep.Failed(); len(failed) > 0 {
		for _, f := range failed {
			g.logger.Error("failed to process file", "path", f.Path, "error", f.Err)
		}
		return rep, fmt.Errorf("%w: "+errors.ErrMsgFilesFailedToProcess, errors.ErrFilesFailed, len(failed))
	}
	return rep, nil
}

// CheckFiles reports which files have their imports sorted.
func (g *Formatter) CheckFiles(ctx context.Context, files []string) (*report.CheckReport, error) {
	sorted := make([]bool, len(files))
	failures, err := g.forEach(ctx, files, "Checking imports", func(i int, file File) error {
		block, _, err := file.Parse()
		if err != nil {
			return err
		}
		sorted[i] = file.Check(block)
		g.logger.Debug("checked file", "path", file.Path, "sorted", sorted[i])
		return nil
	})
	if err != nil {
		return nil, err
	}

	rep := &report.CheckReport{}
	for i, path := range files {
		switch {
		case failures[i] != nil:
			rep.FailedFiles = append(rep.FailedFiles, report.FileError{Path: path, Err: failures[i]})
		case sorted[i]:
			rep.OKFiles = append(rep.OKFiles, path)
		default:
			rep.ErroredFiles = append(rep.ErroredFiles, path)
		}
	}
	return rep, nil
}

type fixOutcome int

const (
	unchanged fixOutcome = iota
	fixed
	dangerous
)

// FixFiles rewrites files whose imports are not in canonical form.
// Dangerous files are skipped unless Force is set.
func (g *Formatter) FixFiles(ctx context.Context, files []string) (*report.FixReport, error) {
	outcomes := make([]fixOutcome, len(files))
	failures, err := g.forEach(ctx, files, "Sorting imports", func(i int, file File) error {
		block, src, err := file.Parse()
		if err != nil {
			return err
		}
		if block.IsDangerous() && !g.config.Force {
			g.logger.Debug("skipping dangerous file", "path", file.Path)
			outcomes[i] = dangerous
			return nil
		}
		written, err := file.Fix(block, src)
		if err != nil {
			return err
		}
		if written {
			g.logger.Debug("sorted file", "path", file.Path)
			outcomes[i] = fixed
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	rep := &report.FixReport{}
	for i, path := range files {
		if failures[i] != nil {
			rep.FailedFiles = append(rep.FailedFiles, report.FileError{Path: path, Err: failures[i]})
			continue
		}
		switch outcomes[i] {
		case fixed:
			rep.SortedFiles = append(rep.SortedFiles, path)
		case dangerous:
			rep.DangerousFiles = append(rep.DangerousFiles, path)
		default:
			rep.UnchangedFiles = append(rep.UnchangedFiles, path)
		}
	}
	return rep, nil
}

// forEach runs fn for every file with at most Jobs files in flight. Errors
// returned by fn are collected per file; only context cancellation stops
// the run.
func (g *Formatter) forEach(ctx context.Context, files []string, description string, fn func(i int, file File) error) ([]error, error) {
	failures := make([]error, len(files))
	bar := g.newProgressBar(len(files), description)

	var eg errgroup.Group
	eg.SetLimit(g.config.Jobs)
	for i, path := range files {
		if ctx.Err() != nil {
			break
		}
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			failures[i] = fn(i, File{Path: path})
			if bar != nil {
				_ = bar.Add(1)
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if bar != nil {
		_ = bar.Finish()
	}
	return failures, nil
}

func (g *Formatter) newProgressBar(total int, description string) *progressbar.ProgressBar {
	if g.config.Progress == nil || total == 0 {
		return nil
	}
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(g.config.Progress),
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
		progressbar.OptionSetItsString("files/s"),
		progressbar.OptionThrottle(65*time.Millisecond),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprintln(g.config.Progress)
		}),
	)
}
