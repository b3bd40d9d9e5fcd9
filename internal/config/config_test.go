package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/garnizeh/treeline/internal/config"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := config.LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Addr != ":8080" {
		t.Fatalf("expected default addr :8080, got %q", cfg.Addr)
	}
	if cfg.Storage != config.StorageMemory {
		t.Fatalf("expected default storage memory, got %q", cfg.Storage)
	}
	if !cfg.Seed {
		t.Fatalf("expected seeding enabled by default")
	}
	if cfg.APITimeout != 15*time.Second {
		t.Fatalf("expected default timeout 15s, got %v", cfg.APITimeout)
	}
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	os.Setenv("TREELINE_ADDR", ":9999")
	os.Setenv("TREELINE_STORAGE", "sqlite")
	os.Setenv("TREELINE_SEED", "false")
	defer func() {
		os.Unsetenv("TREELINE_ADDR")
		os.Unsetenv("TREELINE_STORAGE")
		os.Unsetenv("TREELINE_SEED")
	}()

	cfg, err := config.LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Addr != ":9999" {
		t.Fatalf("expected addr :9999, got %q", cfg.Addr)
	}
	if cfg.Storage != config.StorageSQLite {
		t.Fatalf("expected storage sqlite, got %q", cfg.Storage)
	}
	if cfg.Seed {
		t.Fatalf("expected seeding disabled")
	}
}

func TestLoadConfig_YAMLOverlay(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	body := "addr: \":7070\"\nstorage: sqlite\ndatabase_path: /tmp/test.db\n"
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := config.LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Addr != ":7070" {
		t.Fatalf("expected addr :7070, got %q", cfg.Addr)
	}
	if cfg.Storage != config.StorageSQLite || cfg.DatabasePath != "/tmp/test.db" {
		t.Fatalf("unexpected storage config: %q %q", cfg.Storage, cfg.DatabasePath)
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	if _, err := config.LoadConfig("/nonexistent/config.yaml"); err == nil {
		t.Fatalf("expected error for missing config file")
	}
}

func TestValidate_UnknownStorage(t *testing.T) {
	cfg := &config.Config{Addr: ":8080", Storage: "postgres", APITimeout: time.Second}
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected Validate to reject unknown storage backend")
	}
}

func TestValidate_SQLiteNeedsPath(t *testing.T) {
	cfg := &config.Config{Addr: ":8080", Storage: config.StorageSQLite, APITimeout: time.Second}
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected Validate to require database_path for sqlite")
	}
}

func TestValidate_OK(t *testing.T) {
	cfg := &config.Config{Addr: ":8080", Storage: config.StorageMemory, APITimeout: time.Second}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected Validate to pass, got: %v", err)
	}
}
