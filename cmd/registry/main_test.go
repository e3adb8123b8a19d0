package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/99minutos/user-registry/internal/pkg/config"
)

func baseConfig() *config.Config {
	return &config.Config{
		Env:      "development",
		LogLevel: "info",
		Registry: config.RegistryConfig{MaxUsers: 1000, BatchMode: "failfast"},
	}
}

func TestRun_SampleUsers(t *testing.T) {
	cfg := baseConfig()
	cfg.MetricsTextfile = filepath.Join(t.TempDir(), "registry.prom")

	if err := run(cfg, zerolog.Nop()); err != nil {
		t.Fatalf("run returned error: %v", err)
	}

	data, err := os.ReadFile(cfg.MetricsTextfile)
	if err != nil {
		t.Fatalf("metrics file not written: %v", err)
	}
	if !strings.Contains(string(data), `user_registry_users{state="active"} 2`) {
		t.Fatalf("expected active gauge of 2 in:\n%s", data)
	}
}

func TestRun_SeedFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "users.yaml")
	doc := "users:\n  - id: 5\n    name: a\n    email: a@x.io\n  - id: 5\n    name: b\n    email: b@x.io\n"
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatalf("write seed: %v", err)
	}

	cfg := baseConfig()
	cfg.SeedFile = path

	err := run(cfg, zerolog.Nop())
	if err == nil || !strings.Contains(err.Error(), "already exists") {
		t.Fatalf("expected duplicate id error, got %v", err)
	}
}

func TestRun_MissingSeedFile(t *testing.T) {
	cfg := baseConfig()
	cfg.SeedFile = filepath.Join(t.TempDir(), "absent.yaml")

	if err := run(cfg, zerolog.Nop()); err == nil {
		t.Fatalf("expected error for missing seed file")
	}
}
