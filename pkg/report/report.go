// Package report sums up a check or fix run.
package report

import (
	"fmt"

	"github.com/siyuan-infoblox/js-imports-sort/pkg/errors"
)

// Report is implemented by every run summary.
type Report interface {
	// Len is the total number of processed files.
	Len() int
	// All returns every processed file path.
	All() []string
	// Err tells whether the run found something to report. This is not a
	// hard error: badly sorted files on check, dangerous files on fix.
	Err() bool
	// Failed lists files that could not be read or written.
	Failed() []FileError
	String() string
}

// FileError is an I/O failure that aborted the processing of one file.
type FileError struct {
	Path string
	Err  error
}

func (e FileError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e FileError) Unwrap() error {
	return e.Err
}

// CheckReport represents the result of a check run.
type CheckReport struct {
	OKFiles      []string    // imports sorted correctly
	ErroredFiles []string    // imports not sorted properly
	FailedFiles  []FileError // unreadable files
}

func (r *CheckReport) Len() int {
	return len(r.OKFiles) + len(r.ErroredFiles) + len(r.FailedFiles)
}

func (r *CheckReport) All() []string {
	all := make([]string, 0, r.Len())
	all = append(all, r.OKFiles...)
	all = append(all, r.ErroredFiles...)
	return append(all, failedPaths(r.FailedFiles)...)
}

func (r *CheckReport) Err() bool {
	return len(r.ErroredFiles) > 0
}

func (r *CheckReport) Failed() []FileError {
	return r.FailedFiles
}

func (r *CheckReport) String() string {
	s := fmt.Sprintf("%d files checked. %d files ok. %d files badly sorted.",
		r.Len(), len(r.OKFiles), len(r.ErroredFiles))
	return s + failedSuffix(r.FailedFiles)
}

// FixReport represents the result of a fix run. Files are either left
// unchanged, sorted, or skipped because they are dangerous.
type FixReport struct {
	UnchangedFiles []string    // already in canonical form, not written
	SortedFiles    []string    // rewritten
	DangerousFiles []string    // comments between imports, not written
	FailedFiles    []FileError // unreadable or unwritable files
}

func (r *FixReport) Len() int {
	return len(r.UnchangedFiles) + len(r.SortedFiles) + len(r.DangerousFiles) + len(r.FailedFiles)
}

func (r *FixReport) All() []string {
	all := make([]string, 0, r.Len())
	all = append(all, r.SortedFiles...)
	all = append(all, r.UnchangedFiles...)
	all = append(all, r.DangerousFiles...)
	return append(all, failedPaths(r.FailedFiles)...)
}

func (r *FixReport) Err() bool {
	return len(r.DangerousFiles) > 0
}

func (r *FixReport) Failed() []FileError {
	return r.FailedFiles
}

func (r *FixReport) String() string {
	s := fmt.Sprintf("%d files checked. %d files sorted. %d dangerous files.",
		r.Len(), len(r.SortedFiles), len(r.DangerousFiles))
	return s + failedSuffix(r.FailedFiles)
}

// Warning returns the advice printed when dangerous files were skipped,
// or an empty string.
func (r *FixReport) Warning() string {
	if !r.Err() {
		return ""
	}
	return fmt.Sprintf(errors.WarnMsgDangerousFiles, len(r.DangerousFiles)) + "\n" + errors.InfoMsgUseForceFlag
}

func failedPaths(failed []FileError) []string {
	paths := make([]string, len(failed))
	for i, f := range failed {
		paths[i] = f.Path
	}
	return paths
}

func failedSuffix(failed []FileError) string {
	if len(failed) == 0 {
		return ""
	}
	return " " + fmt.Sprintf(errors.ErrMsgFilesFailedToProcess, len(failed)) + "."
}
