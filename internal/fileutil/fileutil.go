// Package fileutil provides scoped file writes with optional atomic
// replacement and advisory locking.
package fileutil

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// WriteOptions selects how WriteFile replaces the target.
type WriteOptions struct {
	// Atomic writes to a temp file in the target directory, syncs it, and
	// renames it over the target so readers never observe a partial file.
	Atomic bool
	// Lock holds an exclusive advisory lock on LockPath(path) for the
	// duration of the write.
	Lock bool
	// Mode is the permission for newly created files; zero means 0o644.
	Mode os.FileMode
}

// LockPath returns the advisory lock file guarding path.
func LockPath(path string) string {
	return path + ".lock"
}

// WriteFile truncates (or atomically replaces) path with whatever fn writes.
// The file handle is closed on every return path.
func WriteFile(path string, opts WriteOptions, fn func(io.Writer) error) (err error) {
	mode := opts.Mode
	if mode == 0 {
		mode = 0o644
	}

	if opts.Lock {
		lock := flock.New(LockPath(path))
		if err := lock.Lock(); err != nil {
			return fmt.Errorf("acquire lock %s: %w", LockPath(path), err)
		}
		defer func() {
			if unlockErr := lock.Unlock(); unlockErr != nil && err == nil {
				err = fmt.Errorf("release lock %s: %w", LockPath(path), unlockErr)
			}
		}()
	}

	if opts.Atomic {
		return writeAtomic(path, mode, fn)
	}
	return writeTruncate(path, mode, fn)
}

func writeTruncate(path string, mode os.FileMode, fn func(io.Writer) error) error {
	out, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, mode)
	if err != nil {
		return err
	}
	defer out.Close()

	if err := fn(out); err != nil {
		return err
	}
	return out.Close()
}

func writeAtomic(path string, mode os.FileMode, fn func(io.Writer) error) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	committed := false
	defer func() {
		_ = tmp.Close()
		if !committed {
			_ = os.Remove(tmpPath)
		}
	}()

	if err := fn(tmp); err != nil {
		return err
	}
	if err := tmp.Chmod(mode); err != nil {
		return err
	}
	if err := tmp.Sync(); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return err
	}
	committed = true
	return nil
}

// Size returns the byte size of path, or an error wrapping fs.ErrNotExist.
func Size(path string) (int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, err
	}
	if info.IsDir() {
		return 0, errors.New(path + " is a directory")
	}
	return info.Size(), nil
}
