package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/mailpreview/pkg/config"
)

type previewDefaults struct {
	Addr    string   `env:"CFGTEST_ADDR" envDefault:":8080"`
	Locales []string `env:"CFGTEST_LOCALES" envDefault:"en,fr" envSeparator:","`
	Watch   bool     `env:"CFGTEST_WATCH" envDefault:"true"`
}

type previewOverrides struct {
	Addr  string `env:"CFGTEST_OVERRIDE_ADDR" envDefault:":8080"`
	Limit int    `env:"CFGTEST_OVERRIDE_LIMIT" envDefault:"5"`
}

type cachedConfig struct {
	Value string `env:"CFGTEST_CACHED" envDefault:"initial"`
}

type requiredConfig struct {
	Token string `env:"CFGTEST_REQUIRED_TOKEN,required"`
}

type fileConfig struct {
	Sender string `env:"CFGTEST_FILE_SENDER"`
}

func TestLoad_Defaults(t *testing.T) {
	var cfg previewDefaults
	require.NoError(t, config.Load(&cfg))

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, []string{"en", "fr"}, cfg.Locales)
	assert.True(t, cfg.Watch)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("CFGTEST_OVERRIDE_ADDR", ":9090")
	t.Setenv("CFGTEST_OVERRIDE_LIMIT", "12")

	var cfg previewOverrides
	require.NoError(t, config.Load(&cfg))

	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, 12, cfg.Limit)
}

func TestLoad_CachesPerType(t *testing.T) {
	t.Setenv("CFGTEST_CACHED", "first")

	var first cachedConfig
	require.NoError(t, config.Load(&first))

	t.Setenv("CFGTEST_CACHED", "second")

	var second cachedConfig
	require.NoError(t, config.Load(&second))
	assert.Equal(t, "first", second.Value)

	var reloaded cachedConfig
	require.NoError(t, config.Reload(&reloaded))
	assert.Equal(t, "second", reloaded.Value)
}

func TestLoad_MissingRequired(t *testing.T) {
	os.Unsetenv("CFGTEST_REQUIRED_TOKEN")

	var cfg requiredConfig
	err := config.Load(&cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrParsingConfig)

	// A failed parse is not cached.
	t.Setenv("CFGTEST_REQUIRED_TOKEN", "secret")
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "secret", cfg.Token)
}

func TestLoad_NilPointer(t *testing.T) {
	var cfg *previewDefaults
	assert.ErrorIs(t, config.Load(cfg), config.ErrNilPointer)
}

func TestMustLoad_Panics(t *testing.T) {
	type mustConfig struct {
		Token string `env:"CFGTEST_MUST_TOKEN,required"`
	}
	os.Unsetenv("CFGTEST_MUST_TOKEN")

	assert.Panics(t, func() {
		var cfg mustConfig
		config.MustLoad(&cfg)
	})
}

func TestLoadEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env.test")
	require.NoError(t, os.WriteFile(path, []byte("CFGTEST_FILE_SENDER=noreply@example.com\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("CFGTEST_FILE_SENDER") })

	require.NoError(t, config.LoadEnv(path))

	var cfg fileConfig
	require.NoError(t, config.Reload(&cfg))
	assert.Equal(t, "noreply@example.com", cfg.Sender)
}

func TestLoadEnv_MissingFile(t *testing.T) {
	err := config.LoadEnv(filepath.Join(t.TempDir(), "absent.env"))
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrLoadingEnvFile)

	assert.Panics(t, func() {
		config.MustLoadEnv(filepath.Join(t.TempDir(), "absent.env"))
	})
}
