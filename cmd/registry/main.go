package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/99minutos/user-registry/internal/core/ports"
	"github.com/99minutos/user-registry/internal/core/service"
	"github.com/99minutos/user-registry/internal/infrastructure/memory"
	"github.com/99minutos/user-registry/internal/infrastructure/seed"
	"github.com/99minutos/user-registry/internal/pkg/config"
	"github.com/99minutos/user-registry/internal/pkg/metrics"
	"github.com/99minutos/user-registry/pkg/logger"
)

func main() {
	cfg, err := config.Load(context.Background())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.LogPretty,
		Service: "user-registry",
		Env:     cfg.Env,
	})

	if err := run(cfg, log); err != nil {
		log.Error().Err(err).Msg("registry run failed")
		os.Exit(1)
	}
}

func run(cfg *config.Config, log zerolog.Logger) error {
	registry := memory.NewUserRegistry(memory.Config{Capacity: cfg.Registry.MaxUsers})
	svc := service.NewUserService(registry, ports.BatchMode(cfg.Registry.BatchMode), log)

	if cfg.SeedFile != "" {
		entries, err := seed.Load(cfg.SeedFile)
		if err != nil {
			return err
		}
		users, err := seed.Users(entries)
		if err != nil {
			return err
		}
		if _, err := svc.Import(users); err != nil {
			return err
		}
	} else {
		if _, err := svc.Register(1, "John Doe", "john@example.com"); err != nil {
			return err
		}
		if _, err := svc.Register(2, "Jane Smith", "jane@example.com"); err != nil {
			return err
		}
	}

	log.Info().
		Int("active_users", len(svc.ListActive())).
		Int("total_users", svc.Count()).
		Msg("registry ready")

	if cfg.MetricsTextfile != "" {
		if err := metrics.WriteTextfile(cfg.MetricsTextfile); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
		log.Debug().Str("path", cfg.MetricsTextfile).Msg("metrics written")
	}
	return nil
}
