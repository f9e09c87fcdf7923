package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fieldkit/pkg/config"
)

type sampleConfig struct {
	Name  string   `env:"FK_TEST_NAME" envDefault:"fallback"`
	Count int      `env:"FK_TEST_COUNT"`
	Tags  []string `env:"FK_TEST_TAGS" envSeparator:","`
}

type requiredConfig struct {
	Value string `env:"FK_TEST_REQUIRED,required"`
}

func TestLoad(t *testing.T) {
	t.Run("parses environment into struct", func(t *testing.T) {
		config.ResetCache()
		t.Setenv("FK_TEST_NAME", "engine")
		t.Setenv("FK_TEST_COUNT", "7")
		t.Setenv("FK_TEST_TAGS", "a,b")

		var cfg sampleConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "engine", cfg.Name)
		assert.Equal(t, 7, cfg.Count)
		assert.Equal(t, []string{"a", "b"}, cfg.Tags)
	})

	t.Run("serves cached value until reset", func(t *testing.T) {
		config.ResetCache()
		t.Setenv("FK_TEST_NAME", "first")

		var cfg sampleConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "first", cfg.Name)

		t.Setenv("FK_TEST_NAME", "second")
		var again sampleConfig
		require.NoError(t, config.Load(&again))
		assert.Equal(t, "first", again.Name)

		config.ResetCache()
		var fresh sampleConfig
		require.NoError(t, config.Load(&fresh))
		assert.Equal(t, "second", fresh.Name)
	})

	t.Run("uses defaults", func(t *testing.T) {
		config.ResetCache()
		os.Unsetenv("FK_TEST_NAME")

		var cfg sampleConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "fallback", cfg.Name)
	})

	t.Run("missing required value", func(t *testing.T) {
		config.ResetCache()
		os.Unsetenv("FK_TEST_REQUIRED")

		var cfg requiredConfig
		err := config.Load(&cfg)
		require.Error(t, err)
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("nil pointer", func(t *testing.T) {
		var cfg *sampleConfig
		assert.ErrorIs(t, config.Load(cfg), config.ErrNilPointer)
	})
}

func TestMustLoad(t *testing.T) {
	config.ResetCache()
	os.Unsetenv("FK_TEST_REQUIRED")

	var cfg requiredConfig
	assert.Panics(t, func() { config.MustLoad(&cfg) })
}

func TestLoadEnv(t *testing.T) {
	t.Run("later files override earlier ones", func(t *testing.T) {
		dir := t.TempDir()
		base := filepath.Join(dir, ".env.base")
		override := filepath.Join(dir, ".env.override")
		require.NoError(t, os.WriteFile(base, []byte("FK_TEST_NAME=base\nFK_TEST_COUNT=1\n"), 0o600))
		require.NoError(t, os.WriteFile(override, []byte("FK_TEST_NAME=override\n"), 0o600))

		t.Setenv("FK_TEST_NAME", "")
		t.Setenv("FK_TEST_COUNT", "")
		require.NoError(t, config.LoadEnv(base, override))
		config.ResetCache()

		var cfg sampleConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "override", cfg.Name)
		assert.Equal(t, 1, cfg.Count)
	})

	t.Run("missing file", func(t *testing.T) {
		err := config.LoadEnv(filepath.Join(t.TempDir(), "absent.env"))
		assert.ErrorIs(t, err, config.ErrLoadingEnvFile)
	})

	t.Run("no paths is a no-op", func(t *testing.T) {
		assert.NoError(t, config.LoadEnv())
	})
}
