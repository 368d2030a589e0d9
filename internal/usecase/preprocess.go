package usecase

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/neuroscan/adni-dataset-service/internal/dataset"
	"github.com/neuroscan/adni-dataset-service/internal/domain/entity"
	"github.com/neuroscan/adni-dataset-service/internal/domain/port"
	"github.com/neuroscan/adni-dataset-service/internal/infra/metrics"
)

// PreprocessUseCase runs the one-time crop-and-resize pass over the AD
// and NC directories of a split. A class is skipped entirely when its
// processed directory already exists; that check is directory existence
// only, never content, so a partially written directory is trusted as-is.
type PreprocessUseCase struct {
	storage   port.ScanStorage
	processor port.DirectoryProcessor
	runs      port.RunRepository
	logger    *zap.Logger
	root      string
}

type PreprocessConfig struct {
	Root string
}

func NewPreprocessUseCase(
	storage port.ScanStorage,
	processor port.DirectoryProcessor,
	runs port.RunRepository,
	logger *zap.Logger,
	cfg PreprocessConfig,
) *PreprocessUseCase {
	return &PreprocessUseCase{
		storage:   storage,
		processor: processor,
		runs:      runs,
		logger:    logger,
		root:      cfg.Root,
	}
}

func (uc *PreprocessUseCase) Execute(ctx context.Context, split string) (*entity.Run, error) {
	tracer := otel.Tracer("usecase")
	ctx, span := tracer.Start(ctx, "PreprocessUseCase.Execute")
	defer span.End()

	totalTimer := time.Now()

	splitDir := filepath.Join(uc.root, split)
	if !uc.storage.DirExists(splitDir) {
		return nil, fmt.Errorf("%w: %s", dataset.ErrDirectoryNotFound, splitDir)
	}

	run := entity.NewRun(split)
	span.SetAttributes(
		attribute.String("run.id", run.ID.String()),
		attribute.String("run.split", split),
	)
	log := uc.logger.With(zap.String("run_id", run.ID.String()), zap.String("split", split))

	if err := uc.runs.Save(ctx, run); err != nil {
		log.Error("failed to save run record", zap.Error(err))
		return nil, fmt.Errorf("save run: %w", err)
	}

	run.MarkProcessing()
	if err := uc.runs.Save(ctx, run); err != nil {
		log.Error("failed to update run to PROCESSING", zap.Error(err))
		return nil, fmt.Errorf("save run: %w", err)
	}

	metrics.ActiveRuns.Inc()
	defer metrics.ActiveRuns.Dec()

	adCount, err := uc.processClass(ctx, splitDir, entity.ClassDirAD, log)
	if err != nil {
		return nil, uc.fail(ctx, run, log, err)
	}

	ncCount, err := uc.processClass(ctx, splitDir, entity.ClassDirNC, log)
	if err != nil {
		return nil, uc.fail(ctx, run, log, err)
	}

	run.MarkCompleted(adCount, ncCount)
	if err := uc.runs.Save(ctx, run); err != nil {
		log.Error("failed to update run to COMPLETED", zap.Error(err))
		return nil, fmt.Errorf("save run: %w", err)
	}

	metrics.RunsTotal.WithLabelValues("completed").Inc()
	metrics.PreprocessDuration.WithLabelValues("total").Observe(time.Since(totalTimer).Seconds())

	log.Info("preprocessing completed",
		zap.Int("ad_images", adCount),
		zap.Int("nc_images", ncCount),
	)
	return run, nil
}

// processClass preprocesses one class directory and returns how many
// processed images it now holds.
func (uc *PreprocessUseCase) processClass(ctx context.Context, splitDir, class string, log *zap.Logger) (int, error) {
	tracer := otel.Tracer("usecase")
	ctx, span := tracer.Start(ctx, "preprocess_"+strings.ToLower(class))
	defer span.End()

	inputDir := filepath.Join(splitDir, class)
	outputDir := filepath.Join(splitDir, class+entity.ProcessedSuffix)

	if uc.storage.DirExists(outputDir) {
		metrics.CacheHitsTotal.WithLabelValues(class).Inc()
		log.Info("processed directory exists, skipping class",
			zap.String("class", class),
			zap.String("output_dir", outputDir),
		)
		existing, err := uc.storage.ListImages(outputDir)
		if err != nil {
			return 0, err
		}
		return len(existing), nil
	}

	if err := uc.storage.EnsureDir(outputDir); err != nil {
		return 0, err
	}

	stageTimer := time.Now()
	result, err := uc.processor.ProcessDirectory(ctx, inputDir, outputDir)
	if err != nil {
		log.Error("class preprocessing failed",
			zap.String("class", class),
			zap.Error(err),
		)
		return 0, err
	}
	metrics.PreprocessDuration.WithLabelValues(strings.ToLower(class)).Observe(time.Since(stageTimer).Seconds())
	metrics.ImagesProcessedTotal.WithLabelValues(class).Add(float64(result.Count))

	return result.Count, nil
}

func (uc *PreprocessUseCase) fail(ctx context.Context, run *entity.Run, log *zap.Logger, cause error) error {
	run.MarkFailed(cause.Error())
	if err := uc.runs.Save(ctx, run); err != nil {
		log.Error("failed to update run to FAILED", zap.Error(err))
	}
	metrics.RunsTotal.WithLabelValues("failed").Inc()
	return cause
}
