package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ImagesProcessedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "adni_images_processed_total",
		Help: "Total number of scans preprocessed, by class",
	}, []string{"class"})

	PreprocessDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "adni_preprocess_duration_seconds",
		Help:    "Duration of the preprocessing pipeline",
		Buckets: []float64{0.1, 0.5, 1, 5, 10, 30, 60, 120, 300},
	}, []string{"stage"})

	RunsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "adni_preprocess_runs_total",
		Help: "Total number of preprocessing runs, by status",
	}, []string{"status"})

	ActiveRuns = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "adni_active_preprocess_runs",
		Help: "Number of preprocessing runs currently in flight",
	})

	CacheHitsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "adni_preprocess_cache_hits_total",
		Help: "Class directories skipped because the processed directory already existed",
	}, []string{"class"})
)
