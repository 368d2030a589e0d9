package usecase

import (
	"context"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/neuroscan/adni-dataset-service/internal/dataset"
	"github.com/neuroscan/adni-dataset-service/internal/domain/entity"
	"github.com/neuroscan/adni-dataset-service/internal/domain/port"
)

// BuildDatasetUseCase constructs the indexable dataset for a split:
// preprocessing runs first, then the processed directories are listed so
// the samples reflect processed images, AD before NC.
type BuildDatasetUseCase struct {
	preprocess *PreprocessUseCase
	storage    port.ScanStorage
	logger     *zap.Logger
	root       string
}

func NewBuildDatasetUseCase(
	preprocess *PreprocessUseCase,
	storage port.ScanStorage,
	logger *zap.Logger,
	cfg PreprocessConfig,
) *BuildDatasetUseCase {
	return &BuildDatasetUseCase{
		preprocess: preprocess,
		storage:    storage,
		logger:     logger,
		root:       cfg.Root,
	}
}

func (uc *BuildDatasetUseCase) Execute(ctx context.Context, split string, transform dataset.Transform) (*dataset.Dataset, error) {
	if _, err := uc.preprocess.Execute(ctx, split); err != nil {
		return nil, err
	}

	splitDir := filepath.Join(uc.root, split)

	adPaths, err := uc.storage.ListImages(filepath.Join(splitDir, entity.ClassDirAD+entity.ProcessedSuffix))
	if err != nil {
		return nil, err
	}
	ncPaths, err := uc.storage.ListImages(filepath.Join(splitDir, entity.ClassDirNC+entity.ProcessedSuffix))
	if err != nil {
		return nil, err
	}

	samples := make([]entity.Sample, 0, len(adPaths)+len(ncPaths))
	for _, p := range adPaths {
		samples = append(samples, entity.Sample{Path: p, Label: entity.LabelAD})
	}
	for _, p := range ncPaths {
		samples = append(samples, entity.Sample{Path: p, Label: entity.LabelNC})
	}

	uc.logger.Info("dataset built",
		zap.String("split", split),
		zap.Int("ad_samples", len(adPaths)),
		zap.Int("nc_samples", len(ncPaths)),
	)
	return dataset.New(samples, transform), nil
}
