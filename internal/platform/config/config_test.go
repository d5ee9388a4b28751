package config

import (
	"strings"
	"testing"
)

type envTestConfig struct {
	Port int    `env:"TEST_PORT" envDefault:"123"`
	Name string `env:"TEST_NAME" envDefault:"dashboard"`
}

func TestParseEnvDefaults(t *testing.T) {
	var cfg envTestConfig

	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Port != 123 {
		t.Fatalf("expected default port 123, got %d", cfg.Port)
	}
	if cfg.Name != "dashboard" {
		t.Fatalf("expected default name, got %q", cfg.Name)
	}
}

func TestParseEnvUsesPrefix(t *testing.T) {
	t.Setenv("TEST_PORT", "1")
	t.Setenv("LAUNCHDASH_TEST_PORT", "8050")
	t.Setenv("LAUNCHDASH_TEST_NAME", "")

	var cfg envTestConfig
	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Port != 8050 {
		t.Fatalf("expected prefixed port 8050, got %d", cfg.Port)
	}
	if cfg.Name != "dashboard" {
		t.Fatalf("expected empty value to fall back to default, got %q", cfg.Name)
	}
}

func TestParseEnvError(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("LAUNCHDASH_TEST_PORT", "not-an-int")

	err := ParseEnv(&cfg)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}
