package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/kelseyhightower/envconfig"
)

const (
	DriverFile   = "file"
	DriverSQLite = "sqlite"
)

type Config struct {
	App struct {
		Name string `envconfig:"APP_NAME" default:"Centavo"`
	}

	Storage struct {
		// Driver selects the key/value backend: "file" or "sqlite".
		Driver string `envconfig:"STORAGE_DRIVER" default:"file"`
		Dir    string `envconfig:"DATA_DIR"`
	}
}

// DataDir resolves the data directory, defaulting to ~/.centavo.
func (c *Config) DataDir() (string, error) {
	if c.Storage.Dir != "" {
		return c.Storage.Dir, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}

	return filepath.Join(home, ".centavo"), nil
}

// SQLitePath is the database file used by the sqlite driver.
func (c *Config) SQLitePath() (string, error) {
	dir, err := c.DataDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(dir, "centavo.db"), nil
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	if cfg.Storage.Driver != DriverFile && cfg.Storage.Driver != DriverSQLite {
		return nil, fmt.Errorf("unknown storage driver: %s", cfg.Storage.Driver)
	}

	return &cfg, nil
}
