package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/interalchemy/rewilding/pkg/config"
)

type defaultsConfig struct {
	Name    string `env:"CONFIG_TEST_NAME" envDefault:"rewilding"`
	Port    int    `env:"CONFIG_TEST_PORT" envDefault:"8080"`
	Enabled bool   `env:"CONFIG_TEST_ENABLED" envDefault:"true"`
}

type valuesConfig struct {
	Name string `env:"CONFIG_TEST_VALUE_NAME"`
	Port int    `env:"CONFIG_TEST_VALUE_PORT"`
}

type cachedConfig struct {
	Value string `env:"CONFIG_TEST_CACHED"`
}

type requiredConfig struct {
	Value string `env:"CONFIG_TEST_REQUIRED,required"`
}

type fileConfig struct {
	FromFile string `env:"CONFIG_TEST_FROM_FILE"`
	Preset   string `env:"CONFIG_TEST_PRESET"`
}

func TestLoad_Defaults(t *testing.T) {
	os.Unsetenv("CONFIG_TEST_NAME")
	os.Unsetenv("CONFIG_TEST_PORT")
	os.Unsetenv("CONFIG_TEST_ENABLED")

	var cfg defaultsConfig
	require.NoError(t, config.Load(&cfg))

	assert.Equal(t, "rewilding", cfg.Name)
	assert.Equal(t, 8080, cfg.Port)
	assert.True(t, cfg.Enabled)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("CONFIG_TEST_VALUE_NAME", "retreat")
	t.Setenv("CONFIG_TEST_VALUE_PORT", "9090")

	var cfg valuesConfig
	require.NoError(t, config.Load(&cfg))

	assert.Equal(t, "retreat", cfg.Name)
	assert.Equal(t, 9090, cfg.Port)
}

func TestLoad_CachedPerType(t *testing.T) {
	t.Setenv("CONFIG_TEST_CACHED", "first")

	var first cachedConfig
	require.NoError(t, config.Load(&first))

	t.Setenv("CONFIG_TEST_CACHED", "second")

	var second cachedConfig
	require.NoError(t, config.Load(&second))
	assert.Equal(t, "first", second.Value, "second load must be served from cache")

	config.ResetCache()

	var third cachedConfig
	require.NoError(t, config.Load(&third))
	assert.Equal(t, "second", third.Value, "reset must force a fresh parse")
}

func TestLoad_MissingRequired(t *testing.T) {
	os.Unsetenv("CONFIG_TEST_REQUIRED")

	var cfg requiredConfig
	err := config.Load(&cfg)

	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrParsingConfig)
}

func TestLoad_NilPointer(t *testing.T) {
	var cfg *valuesConfig
	err := config.Load(cfg)

	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrNilPointer)
}

func TestMustLoad(t *testing.T) {
	os.Unsetenv("CONFIG_TEST_REQUIRED")
	config.ResetCache()

	assert.Panics(t, func() {
		var cfg requiredConfig
		config.MustLoad(&cfg)
	})
}

func TestLoadEnv(t *testing.T) {
	os.Unsetenv("CONFIG_TEST_FROM_FILE")
	t.Setenv("CONFIG_TEST_PRESET", "process_value")
	t.Cleanup(func() { os.Unsetenv("CONFIG_TEST_FROM_FILE") })

	require.NoError(t, config.LoadEnv("testdata/.env.test"))

	var cfg fileConfig
	require.NoError(t, config.Load(&cfg))

	assert.Equal(t, "from_file", cfg.FromFile)
	assert.Equal(t, "process_value", cfg.Preset, "existing variables win over the file")

	err := config.LoadEnv("testdata/missing.env")
	assert.ErrorIs(t, err, config.ErrLoadingEnvFile)
}
