package writer

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// saveFunc persists content to the path it was bound to.
type saveFunc func(content []byte) error

// readForUpdate returns the current content of path, or nil when the file does
// not exist, together with a save function bound to the same path. It never
// creates the file; that happens when save is called.
func readForUpdate(path string) ([]byte, saveFunc, error) {
	data, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, nil, &FileAccessError{Op: OpRead, Path: path, Err: err}
	}

	save := func(content []byte) error {
		if err := replaceFile(path, content); err != nil {
			return &FileAccessError{Op: OpWrite, Path: path, Err: err}
		}

		return nil
	}

	return data, save, nil
}

// replaceFile writes content to a temporary file next to path and renames it
// over path. The mode of an existing file is kept.
func replaceFile(path string, content []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return err
	}

	perm := os.FileMode(filePerm)
	if info, err := os.Stat(path); err == nil {
		perm = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}

	tmpPath := tmp.Name()

	if _, err := tmp.Write(content); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)

		return err
	}

	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)

		return err
	}

	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}

	if err := os.Chmod(tmpPath, perm); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}

	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}

	return nil
}
