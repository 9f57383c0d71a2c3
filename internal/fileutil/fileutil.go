// Package fileutil holds the small filesystem helpers shared by the pipeline
// stages: required-input checks and atomic replacement writes.
package fileutil

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
)

// MissingInputError reports a required input file that does not exist.
type MissingInputError struct {
	// Role names the input, e.g. "input" or "media".
	Role string
	Path string
}

func (e *MissingInputError) Error() string {
	return fmt.Sprintf("missing %s file: %s", e.Role, e.Path)
}

// IsMissingInput reports whether err wraps a *MissingInputError.
func IsMissingInput(err error) bool {
	var e *MissingInputError
	return errors.As(err, &e)
}

// RequireFile returns a *MissingInputError when path does not exist. Other
// stat failures are returned wrapped.
func RequireFile(role, path string) error {
	_, err := os.Stat(path)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, fs.ErrNotExist):
		return &MissingInputError{Role: role, Path: path}
	default:
		return fmt.Errorf("stat %s file: %w", role, err)
	}
}

// renameFunc is swapped in tests to simulate rename failures.
var renameFunc = os.Rename

// WriteFileAtomic replaces path with data by writing a temp file in the same
// directory, syncing it, and renaming it over the destination. The temp file
// is removed on any failure.
func WriteFileAtomic(path string, data []byte, perm os.FileMode) error {
	dir, name := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output directory %q: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+name+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer func() {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
	}()

	if _, err := tmp.Write(data); err != nil {
		return err
	}
	if err := tmp.Chmod(perm); err != nil {
		return err
	}
	if err := tmp.Sync(); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := renameFunc(tmpName, path); err != nil {
		return err
	}

	_ = syncDir(dir)
	return nil
}

func syncDir(dir string) error {
	if runtime.GOOS == "windows" {
		return nil
	}
	f, err := os.Open(dir)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.Sync()
}
