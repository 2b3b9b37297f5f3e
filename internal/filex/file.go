// Package filex holds small filesystem helpers for the local tools.
package filex

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// IsDirPath reports whether p names a directory: it already is one, or it
// ends with a path separator.
func IsDirPath(p string) bool {
	if strings.HasSuffix(p, "/") || strings.HasSuffix(p, string(filepath.Separator)) {
		return true
	}
	fi, err := os.Stat(p)
	return err == nil && fi.IsDir()
}

// EnsureDir creates dir and its parents when missing and returns it cleaned.
func EnsureDir(dir string) (string, error) {
	dir = filepath.Clean(dir)

	if err := os.MkdirAll(dir, 0o750); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", dir, err)
	}

	return dir, nil
}
