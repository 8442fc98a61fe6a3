package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validConfigYAML = `
server:
  port: 9090
  read_timeout: 5s
log:
  level: debug
  format: console
scoring:
  adapter: mock
  timeout: 10s
  default_threshold: 0.6
studio:
  title: "Internal Activity Studio"
  artifacts_folder: "out"
metrics:
  enabled: true
`

func createTempConfigFile(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadValidFile(t *testing.T) {
	path := createTempConfigFile(t, validConfigYAML)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 0.6, cfg.Scoring.DefaultThreshold)
	assert.Equal(t, "Internal Activity Studio", cfg.Studio.Title)
	// unset sections fall back to defaults
	assert.Equal(t, DefaultMaxBodySize, cfg.Server.MaxBodySize)
	assert.Equal(t, DefaultTheme, cfg.Studio.Theme)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorContains(t, err, "failed to read config file")
}

func TestLoadInvalidConfigFails(t *testing.T) {
	path := createTempConfigFile(t, "scoring:\n  adapter: real\n")
	_, err := Load(path)
	assert.ErrorContains(t, err, "validation failed")
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("GPCR_SERVER_PORT", "7070")
	t.Setenv("GPCR_LOG_LEVEL", "warn")

	cfg, err := LoadFromEnv()
	require.NoError(t, err)
	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadExplicitZeroThreshold(t *testing.T) {
	// 0.0 is a valid threshold; it must not be mistaken for "unset" and
	// silently replaced with the default.
	path := createTempConfigFile(t, "scoring:\n  default_threshold: 0.0\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 0.0, cfg.Scoring.DefaultThreshold)
}

func TestLoadUnsetThresholdUsesDefault(t *testing.T) {
	path := createTempConfigFile(t, "server:\n  port: 9090\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultThreshold, cfg.Scoring.DefaultThreshold)
}

func TestLoadFromEnvZeroThreshold(t *testing.T) {
	t.Setenv("GPCR_SCORING_DEFAULT_THRESHOLD", "0")

	cfg, err := LoadFromEnv()
	require.NoError(t, err)
	assert.Equal(t, 0.0, cfg.Scoring.DefaultThreshold)
}

func TestMustLoadPanicsOnError(t *testing.T) {
	assert.Panics(t, func() {
		MustLoad(filepath.Join(t.TempDir(), "absent.yaml"))
	})
}
