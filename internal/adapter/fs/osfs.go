package fs

import (
	"errors"
	"fmt"
	iofs "io/fs"
	"os"

	"github.com/omegaatt36/renamer/internal/domain"
)

// OSFileSystem implements port.FileSystem using the real OS filesystem.
type OSFileSystem struct{}

func (f *OSFileSystem) ReadDir(path string) ([]os.DirEntry, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrDirectoryRead, err)
	}
	return entries, nil
}

func (f *OSFileSystem) ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrFileRead, err)
	}
	return data, nil
}

// Rename never replaces an existing newpath.
func (f *OSFileSystem) Rename(oldpath, newpath string) error {
	return renameNoReplace(oldpath, newpath)
}

// renameChecked refuses to clobber by looking at newpath first. The check and
// the rename are not atomic. A newpath that is the same file as oldpath (a
// case-only rename on a case-insensitive filesystem) is allowed.
func renameChecked(oldpath, newpath string) error {
	dst, err := os.Lstat(newpath)
	switch {
	case err == nil:
		src, serr := os.Lstat(oldpath)
		if serr != nil || !os.SameFile(src, dst) {
			return &os.LinkError{Op: "rename", Old: oldpath, New: newpath, Err: iofs.ErrExist}
		}
	case !errors.Is(err, iofs.ErrNotExist):
		return err
	}
	return os.Rename(oldpath, newpath)
}
