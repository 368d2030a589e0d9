package port

import (
	"context"

	"github.com/neuroscan/adni-dataset-service/internal/domain/entity"
)

type RunRepository interface {
	Save(ctx context.Context, run *entity.Run) error
	Load(ctx context.Context, split string) (*entity.Run, error)
}
