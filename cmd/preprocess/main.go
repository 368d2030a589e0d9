package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/neuroscan/adni-dataset-service/internal/dataset"
	"github.com/neuroscan/adni-dataset-service/internal/infra/config"
	"github.com/neuroscan/adni-dataset-service/internal/infra/fs"
	scanimaging "github.com/neuroscan/adni-dataset-service/internal/infra/imaging"
	"github.com/neuroscan/adni-dataset-service/internal/infra/manifest"
	"github.com/neuroscan/adni-dataset-service/internal/infra/metrics"
	"github.com/neuroscan/adni-dataset-service/internal/infra/tracing"
	"github.com/neuroscan/adni-dataset-service/internal/usecase"
	"github.com/neuroscan/adni-dataset-service/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	fatalOnErr(err, "load config")

	log, err := logger.New(cfg.LogLevel)
	fatalOnErr(err, "init logger")
	defer log.Sync()

	log.Info("starting adni-dataset-service preprocessing")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		log.Info("received shutdown signal", zap.String("signal", sig.String()))
		cancel()
	}()

	// Tracing (non-fatal if the collector is unavailable)
	tp, err := tracing.InitTracer(ctx, cfg.JaegerEndpoint)
	if err != nil {
		log.Warn("tracing init failed, continuing without tracing", zap.Error(err))
	} else {
		defer tp.Shutdown(ctx)
	}

	// Metrics server
	metricsSrv := metrics.StartMetricsServer(ctx, cfg.MetricsPort, log)

	// Infra adapters
	storage := fs.NewStorage()
	cropper := scanimaging.NewOtsuCropper()
	processor := scanimaging.NewProcessor(storage, cropper, scanimaging.ProcessorConfig{
		TargetSize:   cfg.TargetSize,
		ShowProgress: cfg.ShowProgress,
	}, log)
	runs := manifest.NewRepository(cfg.DatasetRoot)

	// Use cases
	pre := usecase.NewPreprocessUseCase(storage, processor, runs, log, usecase.PreprocessConfig{
		Root: cfg.DatasetRoot,
	})
	build := usecase.NewBuildDatasetUseCase(pre, storage, log, usecase.PreprocessConfig{
		Root: cfg.DatasetRoot,
	})

	ds, err := build.Execute(ctx, cfg.DatasetSplit, nil)
	if err != nil {
		log.Error("preprocessing failed", zap.Error(err))
		shutdownMetrics(metricsSrv)
		os.Exit(1)
	}

	trainSize, valSize := dataset.SplitSizes(ds.Len(), cfg.SplitRatio)
	log.Info("dataset ready",
		zap.String("split", cfg.DatasetSplit),
		zap.Int("samples", ds.Len()),
		zap.Float64("split_ratio", cfg.SplitRatio),
		zap.Int64("split_seed", cfg.SplitSeed),
		zap.Int("train_partition", trainSize),
		zap.Int("val_partition", valSize),
	)

	shutdownMetrics(metricsSrv)
	log.Info("adni-dataset-service preprocessing finished")
}

func shutdownMetrics(srv *http.Server) {
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	srv.Shutdown(shutdownCtx)
}

func fatalOnErr(err error, msg string) {
	if err != nil {
		panic(msg + ": " + err.Error())
	}
}
