// Package fsutil provides file system utility functions.
package fsutil

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Exists reports whether anything, file or directory, exists at path.
func Exists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}

// HasExtension reports whether path ends with extension. The comparison is
// case-sensitive and made on the raw string.
func HasExtension(path, extension string) bool {
	if extension == "" {
		panic("extension must not be empty")
	}
	return strings.HasSuffix(path, extension)
}

// FindFileInDir looks for a regular file called name directly inside dir. It
// returns the file's path and true if found. A missing file is not an error.
func FindFileInDir(dir, name string) (string, bool, error) {
	path := filepath.Join(dir, name)
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("error accessing path %s: %w", path, err)
	}
	if info.IsDir() {
		return "", false, nil
	}
	return path, true, nil
}

// FindFileUpward looks for a regular file called name in startDir and then in
// each parent directory up to the filesystem root. The nearest match wins.
func FindFileUpward(startDir, name string) (string, bool, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve %s: %w", startDir, err)
	}
	for {
		path, found, err := FindFileInDir(dir, name)
		if err != nil || found {
			return path, found, err
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false, nil
		}
		dir = parent
	}
}
