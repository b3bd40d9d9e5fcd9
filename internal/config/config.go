package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Storage backend names.
const (
	StorageMemory = "memory"
	StorageSQLite = "sqlite"
)

type Config struct {
	Addr         string        `yaml:"addr"`
	Storage      string        `yaml:"storage"`
	DatabasePath string        `yaml:"database_path"`
	APITimeout   time.Duration `yaml:"timeout"`
	Seed         bool          `yaml:"seed"`
}

// LoadConfig builds the config from TREELINE_* environment defaults, then
// overlays the YAML file at path when one is given.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{
		Addr:         getEnv("TREELINE_ADDR", ":8080"),
		Storage:      getEnv("TREELINE_STORAGE", StorageMemory),
		DatabasePath: getEnv("TREELINE_DATABASE_PATH", "treeline.db"),
		APITimeout:   15 * time.Second,
		Seed:         getEnv("TREELINE_SEED", "true") != "false",
	}
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		dec := yaml.NewDecoder(f)
		if err := dec.Decode(cfg); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

// Validate rejects configurations the server cannot start with.
func (c *Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("addr is required")
	}
	switch c.Storage {
	case StorageMemory:
	case StorageSQLite:
		if c.DatabasePath == "" {
			return fmt.Errorf("database_path is required for sqlite storage")
		}
	default:
		return fmt.Errorf("unknown storage backend %q", c.Storage)
	}
	if c.APITimeout <= 0 {
		return fmt.Errorf("timeout must be positive")
	}

	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return def
}
