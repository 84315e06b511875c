// Package config provides experiment configuration loading for netsim.
// It supports loading from YAML files and environment variables.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every Validate and environment-parsing failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Topology names accepted by Network.Topology.
const (
	TopologyRandom   = "random"
	TopologyComplete = "complete"
	TopologyCycle    = "cycle"
	TopologyStar     = "star"
	TopologyEmpty    = "empty"
)

// Environment variables read by Load.
const (
	EnvNodes      = "NETSIM_NODES"
	EnvPConnect   = "NETSIM_P_CONNECT"
	EnvTimeSteps  = "NETSIM_TIME_STEPS"
	EnvSeed       = "NETSIM_SEED"
	EnvNoiseSigma = "NETSIM_NOISE_SIGMA"
	EnvLogLevel   = "NETSIM_LOG_LEVEL"
	EnvDBPath     = "NETSIM_DB"
)

// Config contains all settings of one experiment.
type Config struct {
	// Network describes the graph to generate.
	Network NetworkConfig `json:"network" yaml:"network"`

	// Dynamics describes the simulated process.
	Dynamics DynamicsConfig `json:"dynamics" yaml:"dynamics"`

	// Seed drives graph sampling, initial states and noise.
	Seed int64 `json:"seed" yaml:"seed"`

	// Seeds, when non-empty, requests a batch: one run per seed.
	Seeds []int64 `json:"seeds,omitempty" yaml:"seeds,omitempty"`

	// Logging contains settings for operational logging and step traces.
	Logging LoggingConfig `json:"logging" yaml:"logging"`

	// Store configures where finished runs are recorded.
	Store StoreConfig `json:"store" yaml:"store"`
}

// NetworkConfig configures graph generation.
type NetworkConfig struct {
	// Nodes is the vertex count N.
	Nodes int `json:"n_nodes" yaml:"n_nodes"`

	// PConnect is the Erdős–Rényi edge probability. Used by the random topology.
	PConnect float64 `json:"p_connect" yaml:"p_connect"`

	// WeightRange is the half-open uniform range [low, high) of edge weights.
	WeightRange [2]float64 `json:"weight_range" yaml:"weight_range,flow"`

	// Topology selects the generator: "random" (default), "complete",
	// "cycle", "star" or "empty".
	Topology string `json:"topology" yaml:"topology"`
}

// DynamicsConfig configures the state update loop.
type DynamicsConfig struct {
	// TimeSteps is the number of synchronous steps.
	TimeSteps int `json:"time_steps" yaml:"time_steps"`

	// NoiseSigma is the standard deviation of the per-step Gaussian noise.
	NoiseSigma float64 `json:"noise_sigma" yaml:"noise_sigma"`
}

// LoggingConfig configures netsim's logging behavior.
type LoggingConfig struct {
	// Level sets the log verbosity: "debug", "info" (default), "warn" or "error".
	Level string `json:"level" yaml:"level"`

	// Format selects the handler: "text" (default) or "json".
	Format string `json:"format,omitempty" yaml:"format,omitempty"`

	// TracePath, if set, receives one JSONL line per simulated step.
	TracePath string `json:"trace_path,omitempty" yaml:"trace_path,omitempty"`
}

// StoreConfig configures the run ledger.
type StoreConfig struct {
	// DBPath is the SQLite database file. Empty disables recording.
	DBPath string `json:"db_path,omitempty" yaml:"db_path,omitempty"`
}

// Default returns a Config with the reference experiment settings.
func Default() *Config {
	return &Config{
		Network: NetworkConfig{
			Nodes:       100,
			PConnect:    0.05,
			WeightRange: [2]float64{0.1, 1.0},
			Topology:    TopologyRandom,
		},
		Dynamics: DynamicsConfig{
			TimeSteps:  100,
			NoiseSigma: 0.01,
		},
		Seed: 42,
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load builds the configuration in layers.
// Order: defaults -> path (when non-empty) -> environment variables.
// The result is not validated; call Validate before use.
func Load(path string) (*Config, error) {
	config := Default()

	if path != "" {
		fileConfig, err := LoadFromFile(path)
		if err != nil {
			return nil, fmt.Errorf("loading config file: %w", err)
		}
		config = fileConfig
	}

	if err := applyEnvOverrides(config); err != nil {
		return nil, err
	}

	return config, nil
}

// LoadFromFile loads configuration from a specific YAML file. Fields absent
// from the file keep their defaults.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	config.Store.DBPath = expandEnvVars(config.Store.DBPath)
	config.Logging.TracePath = expandEnvVars(config.Logging.TracePath)

	return config, nil
}

// Validate checks that the configuration is valid. Every error wraps
// ErrInvalidConfig.
func (c *Config) Validate() error {
	if c.Network.Nodes < 1 {
		return fmt.Errorf("%w: n_nodes must be ≥ 1, got %d", ErrInvalidConfig, c.Network.Nodes)
	}
	if p := c.Network.PConnect; math.IsNaN(p) || p < 0 || p > 1 {
		return fmt.Errorf("%w: p_connect must be between 0 and 1, got %g", ErrInvalidConfig, p)
	}
	low, high := c.Network.WeightRange[0], c.Network.WeightRange[1]
	if math.IsNaN(low) || math.IsInf(high, 0) || math.IsNaN(high) || low <= 0 || low >= high {
		return fmt.Errorf("%w: weight_range must satisfy 0 < low < high, got [%g, %g]", ErrInvalidConfig, low, high)
	}

	validTopologies := map[string]bool{
		TopologyRandom: true, TopologyComplete: true, TopologyCycle: true, TopologyStar: true, TopologyEmpty: true,
	}
	if !validTopologies[c.Network.Topology] {
		return fmt.Errorf("%w: invalid topology: %s (valid: random, complete, cycle, star, empty)", ErrInvalidConfig, c.Network.Topology)
	}

	if c.Dynamics.TimeSteps < 0 {
		return fmt.Errorf("%w: time_steps must be non-negative, got %d", ErrInvalidConfig, c.Dynamics.TimeSteps)
	}
	if s := c.Dynamics.NoiseSigma; math.IsNaN(s) || math.IsInf(s, 0) || s < 0 {
		return fmt.Errorf("%w: noise_sigma must be finite and non-negative, got %g", ErrInvalidConfig, s)
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if c.Logging.Level != "" && !validLevels[strings.ToLower(c.Logging.Level)] {
		return fmt.Errorf("%w: invalid log level: %s (valid: debug, info, warn, error, or empty for default)", ErrInvalidConfig, c.Logging.Level)
	}
	validFormats := map[string]bool{"": true, "text": true, "json": true}
	if !validFormats[c.Logging.Format] {
		return fmt.Errorf("%w: invalid log format: %s (valid: text, json)", ErrInvalidConfig, c.Logging.Format)
	}

	return nil
}

// RunSeeds returns the seeds to run: Seeds when set, otherwise the single Seed.
func (c *Config) RunSeeds() []int64 {
	if len(c.Seeds) > 0 {
		out := make([]int64, len(c.Seeds))
		copy(out, c.Seeds)
		return out
	}

	return []int64{c.Seed}
}

// WithSeed returns a copy of c pinned to seed, with the batch list cleared.
func (c *Config) WithSeed(seed int64) *Config {
	cp := *c
	cp.Seed = seed
	cp.Seeds = nil

	return &cp
}

// applyEnvOverrides applies environment variable overrides to the config.
// Malformed numbers are reported rather than ignored.
func applyEnvOverrides(config *Config) error {
	if v := os.Getenv(EnvNodes); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return envError(EnvNodes, v, err)
		}
		config.Network.Nodes = n
	}

	if v := os.Getenv(EnvPConnect); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return envError(EnvPConnect, v, err)
		}
		config.Network.PConnect = f
	}

	if v := os.Getenv(EnvTimeSteps); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return envError(EnvTimeSteps, v, err)
		}
		config.Dynamics.TimeSteps = n
	}

	if v := os.Getenv(EnvSeed); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return envError(EnvSeed, v, err)
		}
		config.Seed = n
	}

	if v := os.Getenv(EnvNoiseSigma); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return envError(EnvNoiseSigma, v, err)
		}
		config.Dynamics.NoiseSigma = f
	}

	if v := os.Getenv(EnvLogLevel); v != "" {
		config.Logging.Level = v
	}

	if v := os.Getenv(EnvDBPath); v != "" {
		config.Store.DBPath = v
	}

	return nil
}

func envError(name, value string, err error) error {
	return fmt.Errorf("%w: %s=%q: %w", ErrInvalidConfig, name, value, err)
}

// expandEnvVars expands ${VAR} patterns in a string with environment variable values.
func expandEnvVars(s string) string {
	if !strings.Contains(s, "${") {
		return s
	}
	return os.Expand(s, os.Getenv)
}
