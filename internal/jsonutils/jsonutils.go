package jsonutils

import (
	"encoding/json"
	"os"
)

// WriteFile marshals data into pretty JSON (two-space indent, no trailing newline) and writes it
// at path, replacing any existing file.
func WriteFile(path string, data any) error {
	b, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, b, 0o644)
}
