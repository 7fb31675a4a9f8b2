package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/plvalidator/pkg/config"
)

type cliConfig struct {
	LogLevel  string `env:"LOG_LEVEL" envDefault:"warn"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
	Strict    bool   `env:"STRICT" envDefault:"false"`
}

type requiredConfig struct {
	Value string `env:"REQUIRED_VALUE,required"`
}

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		var cfg cliConfig
		err := config.Load(&cfg, config.WithEnvironment(map[string]string{}))
		require.NoError(t, err)
		assert.Equal(t, "warn", cfg.LogLevel)
		assert.Equal(t, "text", cfg.LogFormat)
		assert.False(t, cfg.Strict)
	})

	t.Run("process environment with prefix", func(t *testing.T) {
		t.Setenv("PLV_TEST_LOG_LEVEL", "debug")
		t.Setenv("PLV_TEST_STRICT", "true")
		t.Setenv("LOG_FORMAT", "json")

		var cfg cliConfig
		err := config.Load(&cfg, config.WithPrefix("PLV_TEST_"), config.WithDotenv())
		require.NoError(t, err)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, "text", cfg.LogFormat)
		assert.True(t, cfg.Strict)
	})

	t.Run("explicit environment", func(t *testing.T) {
		var cfg cliConfig
		err := config.Load(&cfg, config.WithEnvironment(map[string]string{
			"LOG_LEVEL":  "error",
			"LOG_FORMAT": "json",
		}))
		require.NoError(t, err)
		assert.Equal(t, "error", cfg.LogLevel)
		assert.Equal(t, "json", cfg.LogFormat)
	})

	t.Run("missing required value", func(t *testing.T) {
		var cfg requiredConfig
		err := config.Load(&cfg, config.WithEnvironment(map[string]string{}))
		require.Error(t, err)
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("invalid value", func(t *testing.T) {
		var cfg cliConfig
		err := config.Load(&cfg, config.WithEnvironment(map[string]string{"STRICT": "maybe"}))
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("nil pointer", func(t *testing.T) {
		var cfg *cliConfig
		assert.ErrorIs(t, config.Load(cfg), config.ErrNilPointer)
	})
}

func TestLoadDotenv(t *testing.T) {
	t.Run("reads values from file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "test.env")
		require.NoError(t, os.WriteFile(path, []byte("DOTENV_ONLY_VALUE=from-file\n"), 0o600))
		t.Cleanup(func() { _ = os.Unsetenv("DOTENV_ONLY_VALUE") })

		var cfg struct {
			Value string `env:"DOTENV_ONLY_VALUE"`
		}
		err := config.Load(&cfg, config.WithDotenv(path))
		require.NoError(t, err)
		assert.Equal(t, "from-file", cfg.Value)
	})

	t.Run("environment wins over file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "test.env")
		require.NoError(t, os.WriteFile(path, []byte("DOTENV_OVERRIDE_VALUE=from-file\n"), 0o600))
		t.Setenv("DOTENV_OVERRIDE_VALUE", "from-env")

		var cfg struct {
			Value string `env:"DOTENV_OVERRIDE_VALUE"`
		}
		require.NoError(t, config.Load(&cfg, config.WithDotenv(path)))
		assert.Equal(t, "from-env", cfg.Value)
	})

	t.Run("missing file is skipped", func(t *testing.T) {
		var cfg cliConfig
		err := config.Load(&cfg, config.WithDotenv(filepath.Join(t.TempDir(), "absent.env")))
		assert.NoError(t, err)
	})

	t.Run("directory instead of file", func(t *testing.T) {
		var cfg cliConfig
		err := config.Load(&cfg, config.WithDotenv(t.TempDir()))
		assert.ErrorIs(t, err, config.ErrLoadingDotenv)
	})
}

func TestMustLoad(t *testing.T) {
	assert.Panics(t, func() {
		var cfg requiredConfig
		config.MustLoad(&cfg, config.WithEnvironment(map[string]string{}))
	})

	assert.NotPanics(t, func() {
		var cfg cliConfig
		config.MustLoad(&cfg, config.WithEnvironment(map[string]string{}))
	})
}
