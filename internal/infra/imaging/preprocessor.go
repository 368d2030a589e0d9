package imaging

import (
	"context"
	"fmt"
	"image"
	"image/draw"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"

	"github.com/neuroscan/adni-dataset-service/internal/dataset"
	"github.com/neuroscan/adni-dataset-service/internal/domain/port"
)

// Processor implements port.DirectoryProcessor: per scan, decode to
// grayscale, crop to the foreground box, resize to TargetSize x
// TargetSize with Catmull-Rom (cubic) resampling, and write the result
// under the same filename.
type Processor struct {
	storage  port.ScanStorage
	cropper  port.Cropper
	size     int
	progress bool
	logger   *zap.Logger
}

type ProcessorConfig struct {
	TargetSize   int
	ShowProgress bool
}

func NewProcessor(storage port.ScanStorage, cropper port.Cropper, cfg ProcessorConfig, logger *zap.Logger) *Processor {
	return &Processor{
		storage:  storage,
		cropper:  cropper,
		size:     cfg.TargetSize,
		progress: cfg.ShowProgress,
		logger:   logger,
	}
}

func (p *Processor) ProcessDirectory(ctx context.Context, inputDir string, outputDir string) (*port.ProcessResult, error) {
	files, err := p.storage.ListImages(inputDir)
	if err != nil {
		return nil, err
	}

	var bar *progressbar.ProgressBar
	if p.progress {
		bar = progressbar.Default(int64(len(files)), "preprocess "+filepath.Base(inputDir))
	}

	result := &port.ProcessResult{}
	for _, file := range files {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		outPath := filepath.Join(outputDir, filepath.Base(file))
		if err := p.processImage(file, outPath); err != nil {
			return nil, err
		}
		result.Files = append(result.Files, outPath)
		result.Count++
		if bar != nil {
			_ = bar.Add(1)
		}
	}

	p.logger.Info("directory processed",
		zap.String("input_dir", inputDir),
		zap.Int("count", result.Count),
	)
	return result, nil
}

func (p *Processor) processImage(inputPath, outputPath string) error {
	img, err := imaging.Open(inputPath)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", dataset.ErrImageDecode, inputPath, err)
	}

	gray := toGray(img)
	rect, err := p.cropper.ForegroundRect(gray)
	if err != nil {
		return fmt.Errorf("%s: %w", inputPath, err)
	}

	// Crop the original grayscale intensities, not the thresholded mask.
	cropped := imaging.Crop(gray, rect)
	resized := imaging.Resize(cropped, p.size, p.size, imaging.CatmullRom)

	if err := imaging.Save(toGray(resized), outputPath); err != nil {
		return fmt.Errorf("save %s: %w", outputPath, err)
	}
	return nil
}

func toGray(img image.Image) *image.Gray {
	if g, ok := img.(*image.Gray); ok {
		return g
	}
	b := img.Bounds()
	gray := image.NewGray(b)
	draw.Draw(gray, b, img, b.Min, draw.Src)
	return gray
}
