package integration

import (
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/neuroscan/adni-dataset-service/internal/dataset"
	"github.com/neuroscan/adni-dataset-service/internal/domain/entity"
	"github.com/neuroscan/adni-dataset-service/internal/infra/fs"
	scanimaging "github.com/neuroscan/adni-dataset-service/internal/infra/imaging"
	"github.com/neuroscan/adni-dataset-service/internal/infra/manifest"
	"github.com/neuroscan/adni-dataset-service/internal/usecase"
)

func writeSyntheticScan(t *testing.T, path string, brain image.Rectangle) {
	t.Helper()

	img := image.NewGray(image.Rect(0, 0, 256, 192))
	for y := brain.Min.Y; y < brain.Max.Y; y++ {
		for x := brain.Min.X; x < brain.Max.X; x++ {
			img.SetGray(x, y, color.Gray{Y: 180})
		}
	}

	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
}

func TestDatasetEndToEnd(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	root := t.TempDir()
	adDir := filepath.Join(root, "train", entity.ClassDirAD)
	ncDir := filepath.Join(root, "train", entity.ClassDirNC)
	require.NoError(t, os.MkdirAll(adDir, 0755))
	require.NoError(t, os.MkdirAll(ncDir, 0755))

	brain := image.Rect(60, 40, 200, 160)
	adScans, ncScans := 6, 4
	for i := 0; i < adScans; i++ {
		writeSyntheticScan(t, filepath.Join(adDir, "ad_"+strings.Repeat("0", i)+"scan.png"), brain)
	}
	for i := 0; i < ncScans; i++ {
		writeSyntheticScan(t, filepath.Join(ncDir, "nc_"+strings.Repeat("0", i)+"scan.png"), brain)
	}

	ctx := context.Background()
	log := zap.NewNop()
	storage := fs.NewStorage()
	processor := scanimaging.NewProcessor(storage, scanimaging.NewOtsuCropper(), scanimaging.ProcessorConfig{TargetSize: 210}, log)
	runs := manifest.NewRepository(root)
	pre := usecase.NewPreprocessUseCase(storage, processor, runs, log, usecase.PreprocessConfig{Root: root})
	build := usecase.NewBuildDatasetUseCase(pre, storage, log, usecase.PreprocessConfig{Root: root})

	ds, err := build.Execute(ctx, "train", nil)
	require.NoError(t, err)
	require.Equal(t, adScans+ncScans, ds.Len())

	// Every sample decodes to the fixed processed resolution with the
	// label implied by its processed directory.
	for i := 0; i < ds.Len(); i++ {
		img, label, err := ds.Get(i)
		require.NoError(t, err)
		assert.Equal(t, 210, img.Bounds().Dx())
		assert.Equal(t, 210, img.Bounds().Dy())

		s, err := ds.Sample(i)
		require.NoError(t, err)
		if strings.Contains(s.Path, entity.ClassDirAD+entity.ProcessedSuffix) {
			assert.Equal(t, 1, label)
		} else {
			assert.Equal(t, 0, label)
		}
	}

	// The run record reflects the completed pass.
	run, err := runs.Load(ctx, "train")
	require.NoError(t, err)
	assert.Equal(t, entity.RunStatusCompleted, run.Status)
	assert.Equal(t, adScans, run.ADImages)
	assert.Equal(t, ncScans, run.NCImages)

	// Seeded splits partition the dataset deterministically.
	train, val, err := dataset.SplitWithSeed(ds, 0.8, 42)
	require.NoError(t, err)
	assert.Equal(t, 8, train.Len())
	assert.Equal(t, 2, val.Len())
	assert.Equal(t, ds.Len(), train.Len()+val.Len())

	train2, val2, err := dataset.SplitWithSeed(ds, 0.8, 42)
	require.NoError(t, err)
	assert.Equal(t, train.Indices(), train2.Indices())
	assert.Equal(t, val.Indices(), val2.Indices())

	// Views resolve through the underlying dataset.
	img, _, err := train.Get(0)
	require.NoError(t, err)
	assert.Equal(t, 210, img.Bounds().Dx())

	// Intensity statistics are available for normalization.
	mean, std, err := ds.Stats()
	require.NoError(t, err)
	assert.Greater(t, mean, 0.0)
	assert.GreaterOrEqual(t, std, 0.0)

	// Rebuilding the dataset reuses the processed directories untouched.
	ds2, err := build.Execute(ctx, "train", nil)
	require.NoError(t, err)
	assert.Equal(t, ds.Len(), ds2.Len())
}
