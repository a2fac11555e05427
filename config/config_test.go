package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qroute/config"
)

// clearEnv blanks every QROUTE_* variable for the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		config.EnvDevice, config.EnvSnapshotDir, config.EnvToken,
		config.EnvLogLevel, config.EnvDirected, config.EnvWeightParam,
	} {
		t.Setenv(k, "")
	}
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "qroute.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.DefaultSnapshotDir, cfg.Provider.SnapshotDir)
	assert.Equal(t, config.DefaultLogLevel, cfg.Log.Level)
	assert.Equal(t, config.DefaultLogOutput, cfg.Log.Output)
	assert.False(t, cfg.Routing.Directed)
	assert.Empty(t, cfg.Routing.WeightParam)
	assert.Equal(t, []string{"defaults", "environment"}, cfg.LoadedFrom)
}

func TestLoad_FileThenEnvironment(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, `
device: ibm_line
provider:
  snapshot_dir: /var/lib/qroute
  token: from-file
routing:
  directed: true
  weight_param: gate_length
log:
  level: debug
  development: true
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "ibm_line", cfg.Device)
	assert.Equal(t, "/var/lib/qroute", cfg.Provider.SnapshotDir)
	assert.Equal(t, "from-file", cfg.Provider.Token)
	assert.True(t, cfg.Routing.Directed)
	assert.Equal(t, "gate_length", cfg.Routing.WeightParam)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Log.Development)
	assert.Equal(t, config.DefaultLogOutput, cfg.Log.Output, "unset keys keep defaults")

	t.Setenv(config.EnvDevice, "ibm_ring")
	t.Setenv(config.EnvSnapshotDir, "/tmp/devices")
	t.Setenv(config.EnvToken, "from-env")
	t.Setenv(config.EnvLogLevel, "WARN")
	t.Setenv(config.EnvDirected, "false")
	t.Setenv(config.EnvWeightParam, "gate_error")

	cfg, err = config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "ibm_ring", cfg.Device)
	assert.Equal(t, "/tmp/devices", cfg.Provider.SnapshotDir)
	assert.Equal(t, "from-env", cfg.Provider.Token)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.False(t, cfg.Routing.Directed)
	assert.Equal(t, "gate_error", cfg.Routing.WeightParam)
	assert.Equal(t, []string{"defaults", path, "environment"}, cfg.LoadedFrom)
}

func TestLoad_Errors(t *testing.T) {
	clearEnv(t)

	_, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = config.Load(writeFile(t, "log: [\n"))
	assert.ErrorContains(t, err, "config: parse")

	_, err = config.Load(writeFile(t, "colour: blue\n"))
	assert.ErrorContains(t, err, "config: parse", "unknown keys are rejected")

	_, err = config.Load(writeFile(t, "log:\n  level: verbose\n"))
	assert.ErrorIs(t, err, config.ErrInvalid)
	assert.ErrorContains(t, err, "Log.Level must be one of: debug info warn error")

	_, err = config.Load(writeFile(t, "provider:\n  snapshot_dir: \"\"\n"))
	assert.ErrorIs(t, err, config.ErrInvalid)
	assert.ErrorContains(t, err, "Provider.SnapshotDir is required")

	t.Setenv(config.EnvDirected, "sometimes")
	_, err = config.Load("")
	assert.ErrorContains(t, err, config.EnvDirected)
}
