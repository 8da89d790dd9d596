package formatter

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/siyuan-infoblox/js-imports-sort/pkg/errors"
)

// File is a source file that can be parsed, checked and fixed.
type File struct {
	Path string
}

// Parse reads the file and scans its import block.
func (f File) Parse() (*Block, string, error) {
	src, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", errors.ErrMsgFailedToReadFile, err)
	}
	text := string(src)
	return Scan(text), text, nil
}

// Check reports whether the imports of block are correctly sorted.
func (f File) Check(block *Block) bool {
	return block.IsSorted()
}

// Fix rewrites the file with the regenerated import block and reports
// whether it was written. It does not look at dangerousness: callers decide
// whether a dangerous block may be fixed. Files without imports and files
// already in canonical form are left untouched.
func (f File) Fix(block *Block, src string) (bool, error) {
	if len(block.Imports) == 0 {
		return false, nil
	}
	content := block.Render()
	if content == src {
		return false, nil
	}
	if err := writeFileAtomic(f.Path, []byte(content)); err != nil {
		return false, err
	}
	return true, nil
}

func (f File) String() string {
	return f.Path
}

// renameFile is os.Rename, replaced in tests.
var renameFile = os.Rename

// writeFileAtomic writes data to a temporary file next to path and renames
// it over path, so the original is either fully replaced or left intact.
// Symlinks are followed: the file they point to is replaced, not the link.
func writeFileAtomic(path string, data []byte) (err error) {
	path, err = filepath.EvalSymlinks(path)
	if err != nil {
		return fmt.Errorf("%s: %w", errors.ErrMsgFailedToStatFile, err)
	}
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("%s: %w", errors.ErrMsgFailedToStatFile, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".jisort-*")
	if err != nil {
		return fmt.Errorf("%s: %w", errors.ErrMsgFailedToWriteFile, err)
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("%s: %w", errors.ErrMsgFailedToWriteFile, err)
	}
	if err = tmp.Chmod(info.Mode().Perm()); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("%s: %w", errors.ErrMsgFailedToWriteFile, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("%s: %w", errors.ErrMsgFailedToWriteFile, err)
	}
	if err = renameFile(tmp.Name(), path); err != nil {
		return fmt.Errorf("%s: %w", errors.ErrMsgFailedToRenameFile, err)
	}
	return nil
}
