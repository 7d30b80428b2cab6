package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Server.ReadTimeout != 30*time.Second {
		t.Errorf("Server.ReadTimeout = %v, want 30s", cfg.Server.ReadTimeout)
	}
	if cfg.Database.Path != "ats_analyzer.db" {
		t.Errorf("Database.Path = %q, want ats_analyzer.db", cfg.Database.Path)
	}
	if cfg.Analyzer.RateLimit != 30 {
		t.Errorf("Analyzer.RateLimit = %d, want 30", cfg.Analyzer.RateLimit)
	}
	if cfg.Analyzer.MaxUploadSize != 5*1024*1024 {
		t.Errorf("Analyzer.MaxUploadSize = %d, want 5MB", cfg.Analyzer.MaxUploadSize)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want info", cfg.Logging.Level)
	}
}

func TestLoadConfigFromYAML(t *testing.T) {
	content := `server:
  port: 9090
  host: "127.0.0.1"
database:
  path: "custom.db"
analyzer:
  history_limit: 25
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.Server.Host != "127.0.0.1" {
		t.Errorf("Server.Host = %q, want 127.0.0.1", cfg.Server.Host)
	}
	if cfg.Database.Path != "custom.db" {
		t.Errorf("Database.Path = %q, want custom.db", cfg.Database.Path)
	}
	if cfg.Analyzer.HistoryLimit != 25 {
		t.Errorf("Analyzer.HistoryLimit = %d, want 25", cfg.Analyzer.HistoryLimit)
	}

	// untouched sections keep their defaults
	if cfg.Analyzer.RateLimit != 30 {
		t.Errorf("Analyzer.RateLimit = %d, want default 30", cfg.Analyzer.RateLimit)
	}
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "7070")
	t.Setenv("DATABASE_PATH", "/tmp/env.db")
	t.Setenv("ANALYZER_RATE_LIMIT", "5")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.Server.Port != 7070 {
		t.Errorf("Server.Port = %d, want env override 7070", cfg.Server.Port)
	}
	if cfg.Database.Path != "/tmp/env.db" {
		t.Errorf("Database.Path = %q, want env override", cfg.Database.Path)
	}
	if cfg.Analyzer.RateLimit != 5 {
		t.Errorf("Analyzer.RateLimit = %d, want env override 5", cfg.Analyzer.RateLimit)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want env override debug", cfg.Logging.Level)
	}
}

func TestExpandEnvVars(t *testing.T) {
	t.Setenv("TEST_DB_PATH", "/data/app.db")

	got := expandEnvVars("path: ${TEST_DB_PATH}")
	if got != "path: /data/app.db" {
		t.Errorf("expandEnvVars() = %q, want substituted value", got)
	}

	// unset variables are left untouched
	got = expandEnvVars("path: ${DOES_NOT_EXIST_XYZ}")
	if got != "path: ${DOES_NOT_EXIST_XYZ}" {
		t.Errorf("expandEnvVars() = %q, want original text", got)
	}
}

func TestLoadConfigInvalidEnvValuesIgnored(t *testing.T) {
	t.Setenv("PORT", "not-a-number")

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want default 8080 when env value is invalid", cfg.Server.Port)
	}
}
