package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"centavo/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_NAME", "")
	t.Setenv("STORAGE_DRIVER", "")
	t.Setenv("DATA_DIR", "")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "Centavo", cfg.App.Name)
	assert.Equal(t, config.DriverFile, cfg.Storage.Driver)

	dir, err := cfg.DataDir()
	require.NoError(t, err)
	assert.Contains(t, dir, ".centavo")
}

func TestLoad_ExplicitValues(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "sqlite")
	t.Setenv("DATA_DIR", "/tmp/centavo-test")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, config.DriverSQLite, cfg.Storage.Driver)

	path, err := cfg.SQLitePath()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/centavo-test/centavo.db", path)
}

func TestLoad_RejectsUnknownDriver(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "postgres")

	_, err := config.Load()
	assert.Error(t, err)
}
