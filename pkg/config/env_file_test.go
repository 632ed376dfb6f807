package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/dmitrymomot/essentials/pkg/config"
)

type fileConfig struct {
	String     string       `env:"TEST_CUSTOM_STRING"`
	Int        int          `env:"TEST_CUSTOM_INT"`
	Bool       bool         `env:"TEST_CUSTOM_BOOL"`
	Array      []string     `env:"TEST_CUSTOM_ARRAY" envSeparator:","`
	WithQuotes string       `env:"TEST_CUSTOM_WITH_QUOTES"`
	Locale     language.Tag `env:"TEST_CUSTOM_LOCALE"`
}

var fileVars = []string{
	"TEST_CUSTOM_STRING",
	"TEST_CUSTOM_INT",
	"TEST_CUSTOM_BOOL",
	"TEST_CUSTOM_ARRAY",
	"TEST_CUSTOM_WITH_QUOTES",
	"TEST_CUSTOM_LOCALE",
}

func unsetFileVars(t *testing.T) {
	t.Helper()
	for _, name := range fileVars {
		os.Unsetenv(name)
	}
	t.Cleanup(func() {
		for _, name := range fileVars {
			os.Unsetenv(name)
		}
		config.ResetCache()
	})
}

func TestLoadEnv_CustomPath(t *testing.T) {
	unsetFileVars(t)
	config.ResetCache()

	require.NoError(t, config.LoadEnv("testdata/.env.custom"))

	var cfg fileConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "custom_value", cfg.String)
	assert.Equal(t, 1234, cfg.Int)
	assert.True(t, cfg.Bool)
	assert.Equal(t, []string{"item1", "item2", "item3"}, cfg.Array)
	assert.Equal(t, "quoted value", cfg.WithQuotes)
	assert.Equal(t, "da-DK", cfg.Locale.String())
}

func TestLoadEnv_ExistingVariablesWin(t *testing.T) {
	unsetFileVars(t)
	config.ResetCache()
	os.Setenv("TEST_CUSTOM_STRING", "from_process")

	require.NoError(t, config.LoadEnv("testdata/.env.custom"))

	var cfg fileConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "from_process", cfg.String)
	assert.Equal(t, 1234, cfg.Int)
}

func TestLoadEnv_MissingFile(t *testing.T) {
	err := config.LoadEnv("testdata/.env.missing")
	assert.ErrorIs(t, err, config.ErrLoadingEnvFile)

	assert.Panics(t, func() {
		config.MustLoadEnv("testdata/.env.missing")
	})
}
