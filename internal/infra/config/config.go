package config

import (
	"github.com/caarlos0/env/v11"
)

type Config struct {
	DatasetRoot  string `env:"DATASET_ROOT"  envDefault:"/data/adni"`
	DatasetSplit string `env:"DATASET_SPLIT" envDefault:"train"`

	TargetSize   int  `env:"TARGET_SIZE"   envDefault:"210"`
	ShowProgress bool `env:"SHOW_PROGRESS" envDefault:"true"`

	SplitRatio float64 `env:"SPLIT_RATIO" envDefault:"0.8"`
	SplitSeed  int64   `env:"SPLIT_SEED"  envDefault:"42"`

	MetricsPort    int    `env:"METRICS_PORT"    envDefault:"8083"`
	JaegerEndpoint string `env:"JAEGER_ENDPOINT" envDefault:"http://jaeger:4318/v1/traces"`
	LogLevel       string `env:"LOG_LEVEL"       envDefault:"info"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
