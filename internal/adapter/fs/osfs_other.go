//go:build !linux

package fs

func renameNoReplace(oldpath, newpath string) error {
	return renameChecked(oldpath, newpath)
}
