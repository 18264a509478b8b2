package config

import (
	"strings"
	"testing"
)

func TestLoadRequiresJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error when JWT_SECRET is unset")
	}
}

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("DB_PATH", "/tmp/test.db")
	t.Setenv("GRPC_ADDRESS", ":60051")
	t.Setenv("IMAGES_DIR", "/tmp/images")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Database.Path != "/tmp/test.db" {
		t.Errorf("db path: got %s", cfg.Database.Path)
	}
	if cfg.GRPC.Address != ":60051" {
		t.Errorf("grpc address: got %s", cfg.GRPC.Address)
	}
	if cfg.Auth.JWTSecret != "test-secret" {
		t.Errorf("jwt secret: got %s", cfg.Auth.JWTSecret)
	}
	if cfg.Images.Dir != "/tmp/images" {
		t.Errorf("images dir: got %s", cfg.Images.Dir)
	}
}

func TestLoadWithDefaultsFallsBack(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	cfg, err := LoadWithDefaults()
	if err != nil {
		t.Fatalf("load with defaults: %v", err)
	}
	if cfg.Auth.JWTSecret == "" {
		t.Fatalf("expected a development fallback secret")
	}
	if cfg.Database.Path == "" || cfg.GRPC.Address == "" || cfg.Images.Dir == "" {
		t.Fatalf("defaults missing: %+v", cfg)
	}
}

func TestStringMasksSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "super-secret-value")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	s := cfg.String()
	if strings.Contains(s, "super-secret-value") {
		t.Fatalf("secret leaked in String(): %s", s)
	}
}
