// Package config provides process configuration for the LP solver kit. It
// handles parsing the standard config.yaml format and converting it to the
// types.SolverConfig consumed by the solver backends.
//
// The active backend is resolved from this configuration exactly once at
// startup and is immutable for the process lifetime.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the complete configuration structure
type Config struct {
	// Backend identifies the active solver backend (glpk, highs, gurobi,
	// hexaly). Case-insensitive.
	Backend string `yaml:"backend"`

	// Presolve is the default presolve setting; requests may override it.
	Presolve bool `yaml:"presolve"`

	// TimeLimitMS is the default per-solve time limit in milliseconds.
	// Zero means unlimited.
	TimeLimitMS int `yaml:"time_limit_ms"`

	// Parallel enables solving a request's objectives concurrently, each
	// against its own independently constructed native model.
	Parallel bool `yaml:"parallel"`

	// MaxSolvesPerSecond throttles request admission. Zero disables the
	// limiter.
	MaxSolvesPerSecond float64 `yaml:"max_solves_per_second"`

	// Threads limits engine-internal parallelism where supported.
	Threads int `yaml:"threads"`

	// LicenseFile points license-bound engines at their license file.
	LicenseFile string `yaml:"license_file"`

	// TermOutput enables the engine's native terminal output.
	TermOutput bool `yaml:"term_output"`

	// LogLevel sets the zerolog level (trace, debug, info, warn, error).
	LogLevel string `yaml:"log_level"`
}

// Default returns the configuration used when no file is provided.
func Default() Config {
	return Config{
		Backend:  "glpk",
		Presolve: true,
		LogLevel: "info",
	}
}

// Load reads and parses a yaml configuration file, applies defaults for
// unset fields and environment overrides.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	applyEnvOverrides(&cfg)
	return cfg, nil
}

// FromEnv builds a configuration from defaults plus environment overrides,
// for deployments without a config file.
func FromEnv() Config {
	cfg := Default()
	applyEnvOverrides(&cfg)
	return cfg
}

// applyEnvOverrides applies LP_SOLVER_* environment variables on top of the
// parsed configuration.
func applyEnvOverrides(cfg *Config) {
	if backend := os.Getenv("LP_SOLVER_BACKEND"); backend != "" {
		cfg.Backend = backend
	}
	if license := os.Getenv("LP_SOLVER_LICENSE_FILE"); license != "" {
		cfg.LicenseFile = license
	}
	if level := os.Getenv("LP_SOLVER_LOG_LEVEL"); level != "" {
		cfg.LogLevel = level
	}
}

// TimeLimit returns the configured default time limit as a duration.
func (c Config) TimeLimit() time.Duration {
	return time.Duration(c.TimeLimitMS) * time.Millisecond
}
