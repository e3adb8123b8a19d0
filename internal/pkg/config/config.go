package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"

	"github.com/99minutos/user-registry/internal/pkg/validation"
)

type Config struct {
	Env       string `env:"ENV,       default=development" validate:"oneof=development staging production"`
	LogLevel  string `env:"LOG_LEVEL, default=info"        validate:"oneof=trace debug info warn error"`
	LogPretty bool   `env:"LOG_PRETTY, default=false"`

	Registry RegistryConfig

	// SeedFile is an optional YAML file of users imported at startup.
	SeedFile string `env:"SEED_FILE"`
	// MetricsTextfile is an optional path the metrics are written to on exit.
	MetricsTextfile string `env:"METRICS_TEXTFILE"`
}

type RegistryConfig struct {
	MaxUsers  int    `env:"REGISTRY_MAX_USERS,  default=1000"     validate:"gte=0"`
	BatchMode string `env:"REGISTRY_BATCH_MODE, default=failfast" validate:"oneof=failfast atomic"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	return load(ctx, envconfig.OsLookuper())
}

func load(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookuper,
	}); err != nil {
		return nil, fmt.Errorf("config: process env: %w", err)
	}
	if err := validation.Struct(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
