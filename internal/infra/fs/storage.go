package fs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/neuroscan/adni-dataset-service/internal/dataset"
)

// Storage is the local-filesystem scan store. Listing order is whatever
// os.ReadDir yields, which downstream code treats as the sample order.
type Storage struct{}

func NewStorage() *Storage {
	return &Storage{}
}

func (s *Storage) ListImages(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", dataset.ErrDirectoryNotFound, dir, err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() || !isImageFile(entry.Name()) {
			continue
		}
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}
	return paths, nil
}

func (s *Storage) DirExists(dir string) bool {
	info, err := os.Stat(dir)
	return err == nil && info.IsDir()
}

func (s *Storage) EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create dir %s: %w", dir, err)
	}
	return nil
}

func isImageFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".png", ".jpg", ".jpeg":
		return true
	}
	return false
}
