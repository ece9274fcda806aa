package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formz/pkg/config"
	"github.com/dmitrymomot/formz/pkg/submission"
)

type defaultsConfig struct {
	Name    string `env:"FORMZ_TEST_NAME" envDefault:"signup"`
	MinLen  int    `env:"FORMZ_TEST_MIN_LEN" envDefault:"8"`
	Touched bool   `env:"FORMZ_TEST_TOUCHED" envDefault:"true"`
}

type overrideConfig struct {
	Name   string            `env:"FORMZ_TEST_OVERRIDE_NAME"`
	Status submission.Status `env:"FORMZ_TEST_OVERRIDE_STATUS" envDefault:"initial"`
}

type requiredConfig struct {
	Value string `env:"FORMZ_TEST_REQUIRED,required"`
}

type cachedConfig struct {
	Value string `env:"FORMZ_TEST_CACHED"`
}

type fileConfig struct {
	Value string `env:"FORMZ_TEST_FROM_FILE"`
}

// Tests in this file share the package level cache and the process
// environment, so they do not run in parallel.

func TestLoad_Defaults(t *testing.T) {
	config.Reset()

	var cfg defaultsConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "signup", cfg.Name)
	assert.Equal(t, 8, cfg.MinLen)
	assert.True(t, cfg.Touched)
}

func TestLoad_FromEnvironment(t *testing.T) {
	config.Reset()
	t.Setenv("FORMZ_TEST_OVERRIDE_NAME", "login")
	t.Setenv("FORMZ_TEST_OVERRIDE_STATUS", "in_progress")

	var cfg overrideConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "login", cfg.Name)
	assert.Equal(t, submission.InProgress, cfg.Status)
}

func TestLoad_InvalidValue(t *testing.T) {
	config.Reset()
	t.Setenv("FORMZ_TEST_OVERRIDE_STATUS", "pending")

	var cfg overrideConfig
	err := config.Load(&cfg)
	require.ErrorIs(t, err, config.ErrParsingConfig)
	assert.Contains(t, err.Error(), submission.ErrUnknownStatus.Error())
}

func TestLoad_RetriesAfterFailure(t *testing.T) {
	config.Reset()
	t.Setenv("FORMZ_TEST_OVERRIDE_STATUS", "pending")

	var cfg overrideConfig
	require.ErrorIs(t, config.Load(&cfg), config.ErrParsingConfig)

	t.Setenv("FORMZ_TEST_OVERRIDE_STATUS", "success")
	require.NoError(t, config.Load(&cfg), "a failed parse must not be cached")
	assert.Equal(t, submission.Success, cfg.Status)
}

func TestLoad_Required(t *testing.T) {
	config.Reset()
	require.NoError(t, os.Unsetenv("FORMZ_TEST_REQUIRED"))

	var cfg requiredConfig
	assert.ErrorIs(t, config.Load(&cfg), config.ErrParsingConfig)
	assert.Panics(t, func() { config.MustLoad(&cfg) })
}

func TestLoad_Cached(t *testing.T) {
	config.Reset()
	t.Setenv("FORMZ_TEST_CACHED", "first")

	var first cachedConfig
	require.NoError(t, config.Load(&first))

	t.Setenv("FORMZ_TEST_CACHED", "second")
	var second cachedConfig
	require.NoError(t, config.Load(&second))
	assert.Equal(t, "first", second.Value, "second load must come from cache")

	config.Reset()
	var third cachedConfig
	require.NoError(t, config.Load(&third))
	assert.Equal(t, "second", third.Value)
}

func TestLoad_NilPointer(t *testing.T) {
	assert.ErrorIs(t, config.Load[defaultsConfig](nil), config.ErrNilPointer)
}

func TestLoadFiles(t *testing.T) {
	config.Reset()
	require.NoError(t, os.Unsetenv("FORMZ_TEST_FROM_FILE"))
	t.Cleanup(func() { _ = os.Unsetenv("FORMZ_TEST_FROM_FILE") })

	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("FORMZ_TEST_FROM_FILE=from_file\n"), 0o600))

	require.NoError(t, config.LoadFiles(path))

	var cfg fileConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "from_file", cfg.Value)

	assert.ErrorIs(t, config.LoadFiles(filepath.Join(t.TempDir(), "missing.env")), config.ErrLoadingEnvFile)
	assert.NoError(t, config.LoadFiles())
}
