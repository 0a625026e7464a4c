package fileutils

import (
	"os"
	"path/filepath"
)

// EnsureDir resolves path to an absolute directory, creating it and any missing parents.
func EnsureDir(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(abs, 0o755); err != nil {
		return "", err
	}

	return abs, nil
}

// WriteText writes s to path byte-for-byte, replacing any existing file.
func WriteText(path, s string) error {
	return os.WriteFile(path, []byte(s), 0o644)
}
