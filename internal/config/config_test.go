package config

import (
	"testing"
	"time"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("MONGODB_URI", "mongodb://localhost:27017")
	t.Setenv("JWT_SECRET", "test-secret")
}

func TestLoadConfig_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}

	if cfg.Port != "8080" {
		t.Fatalf("Port = %q, want %q", cfg.Port, "8080")
	}
	if cfg.Environment != "development" {
		t.Fatalf("Environment = %q, want %q", cfg.Environment, "development")
	}
	if cfg.JWTExpires != 120*time.Hour {
		t.Fatalf("JWTExpires = %v, want %v", cfg.JWTExpires, 120*time.Hour)
	}
}

func TestLoadConfig_RequiredFields(t *testing.T) {
	t.Setenv("MONGODB_URI", "")
	t.Setenv("JWT_SECRET", "test-secret")
	if _, err := LoadConfig(); err == nil {
		t.Fatal("expected error without MONGODB_URI")
	}

	t.Setenv("MONGODB_URI", "mongodb://localhost:27017")
	t.Setenv("JWT_SECRET", "")
	if _, err := LoadConfig(); err == nil {
		t.Fatal("expected error without JWT_SECRET")
	}
}

func TestLoadConfig_InvalidExpires(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("JWT_EXPIRES", "not-a-duration")

	if _, err := LoadConfig(); err == nil {
		t.Fatal("expected error for invalid JWT_EXPIRES")
	}
}

func TestEnvironmentPredicates(t *testing.T) {
	prod := &Config{Environment: "production"}
	if !prod.IsProduction() || prod.IsDevelopment() {
		t.Fatal("production config misclassified")
	}

	dev := &Config{Environment: "development"}
	if dev.IsProduction() || !dev.IsDevelopment() {
		t.Fatal("development config misclassified")
	}

	staging := &Config{Environment: "staging"}
	if staging.IsProduction() || staging.IsDevelopment() {
		t.Fatal("staging config should be neither production nor development")
	}
}
