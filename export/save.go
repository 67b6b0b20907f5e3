package export

import (
	"fmt"
	"os"
	"path/filepath"
)

// SaveFile writes data to path, replacing any existing file without asking.
// Missing parent directories are created.
func SaveFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
