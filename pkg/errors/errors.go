package errors

import "errors"

// Sentinel errors returned by a run
var (
	// ErrUnsorted is returned by a check run that found badly sorted files
	ErrUnsorted = errors.New("imports are not sorted")
	// ErrFilesFailed is returned when some files could not be read or written
	ErrFilesFailed = errors.New("files failed to process")
)

// Error message constants for the jisort application
const (
	// File processing errors
	ErrMsgFailedToReadFile   = "failed to read file"
	ErrMsgFailedToWriteFile  = "failed to write file"
	ErrMsgFailedToStatFile   = "failed to stat file"
	ErrMsgFailedToRenameFile = "failed to replace file"

	// Directory processing errors
	ErrMsgFailedToCheckPath      = "failed to check path"
	ErrMsgFailedToFindFiles      = "failed to find source files in directory"
	ErrMsgFailedToCompileGlob    = "failed to compile glob %q"
	ErrMsgFilesFailedToProcess   = "%d files failed to process"
	ErrMsgFilesBadlySorted       = "%d files badly sorted"
	ErrMsgFailedToLoadConfig     = "failed to load configuration"
	ErrMsgFailedToCreateWatcher  = "failed to create file watcher"
	ErrMsgFailedToWatchDirectory = "failed to watch directory"

	// Info/warning messages
	WarnMsgDangerousFiles = "Comments have been located between imports of %d files. Sorting is dangerous."
	InfoMsgUseForceFlag   = "Use --force to process those files anyway."
	InfoMsgNoFilesFound   = "No source files found in: %s"
	InfoMsgWatching       = "Watching %s for changes (%d directories)"
)
