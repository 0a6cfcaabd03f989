package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "glpk", cfg.Backend)
	assert.True(t, cfg.Presolve)
	assert.Zero(t, cfg.TimeLimitMS)
	assert.False(t, cfg.Parallel)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
backend: highs
presolve: false
time_limit_ms: 30000
parallel: true
max_solves_per_second: 12.5
threads: 4
term_output: true
log_level: debug
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "highs", cfg.Backend)
	assert.False(t, cfg.Presolve)
	assert.Equal(t, 30000, cfg.TimeLimitMS)
	assert.True(t, cfg.Parallel)
	assert.Equal(t, 12.5, cfg.MaxSolvesPerSecond)
	assert.Equal(t, 4, cfg.Threads)
	assert.True(t, cfg.TermOutput)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "backend: gurobi\n")
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "gurobi", cfg.Backend)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorContains(t, err, "failed to read config file")
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "backend: [unterminated\n")
	_, err := Load(path)
	assert.ErrorContains(t, err, "failed to parse config file")
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("LP_SOLVER_BACKEND", "hexaly")
	t.Setenv("LP_SOLVER_LICENSE_FILE", "/etc/hexaly/license.dat")
	t.Setenv("LP_SOLVER_LOG_LEVEL", "warn")

	path := writeConfig(t, "backend: glpk\nlog_level: debug\n")
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "hexaly", cfg.Backend)
	assert.Equal(t, "/etc/hexaly/license.dat", cfg.LicenseFile)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestFromEnv(t *testing.T) {
	t.Setenv("LP_SOLVER_BACKEND", "highs")
	cfg := FromEnv()
	assert.Equal(t, "highs", cfg.Backend)
	assert.True(t, cfg.Presolve)
}

func TestTimeLimit(t *testing.T) {
	assert.Equal(t, time.Duration(0), Config{}.TimeLimit())
	assert.Equal(t, 45*time.Second, Config{TimeLimitMS: 45000}.TimeLimit())
}
