package render

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// WriteArtifact writes a rendered artifact to path atomically.
// The data is written to a uniquely named temp file in the target directory
// and renamed into place, so a concurrent reader never observes a partial
// artifact. Parent directories are created as needed.
func WriteArtifact(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}

	tmp := filepath.Join(dir, fmt.Sprintf(".%s.%s.tmp", filepath.Base(path), uuid.NewString()))
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("rename %s: %w", path, err)
	}
	return nil
}
