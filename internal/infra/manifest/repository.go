package manifest

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/neuroscan/adni-dataset-service/internal/domain/entity"
)

const fileName = ".preprocess_run.json"

// Repository persists run records as a JSON manifest beside the processed
// directories of each split, one file per split, last write wins.
type Repository struct {
	root string
}

func NewRepository(root string) *Repository {
	return &Repository{root: root}
}

func (r *Repository) Save(ctx context.Context, run *entity.Run) error {
	data, err := json.MarshalIndent(run, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal run: %w", err)
	}

	path := r.path(run.Split)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write run manifest: %w", err)
	}
	return nil
}

func (r *Repository) Load(ctx context.Context, split string) (*entity.Run, error) {
	data, err := os.ReadFile(r.path(split))
	if err != nil {
		return nil, fmt.Errorf("read run manifest: %w", err)
	}

	var run entity.Run
	if err := json.Unmarshal(data, &run); err != nil {
		return nil, fmt.Errorf("unmarshal run manifest: %w", err)
	}
	return &run, nil
}

func (r *Repository) path(split string) string {
	return filepath.Join(r.root, split, fileName)
}
