package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	config := Default()

	assert.Equal(t, 100, config.Network.Nodes)
	assert.Equal(t, 0.05, config.Network.PConnect)
	assert.Equal(t, [2]float64{0.1, 1.0}, config.Network.WeightRange)
	assert.Equal(t, TopologyRandom, config.Network.Topology)
	assert.Equal(t, 100, config.Dynamics.TimeSteps)
	assert.Equal(t, 0.01, config.Dynamics.NoiseSigma)
	assert.Equal(t, int64(42), config.Seed)
	assert.Empty(t, config.Seeds)
	assert.Equal(t, "info", config.Logging.Level)
	assert.Empty(t, config.Store.DBPath)

	require.NoError(t, config.Validate())
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configContent := `
network:
  n_nodes: 10
  p_connect: 0.2
  weight_range: [0.5, 2.0]
dynamics:
  time_steps: 10
seed: 7
seeds: [1, 2, 3]
logging:
  level: debug
store:
  db_path: ${NETSIM_TEST_DIR}/runs.db
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0600))
	t.Setenv("NETSIM_TEST_DIR", tmpDir)

	config, err := LoadFromFile(configPath)
	require.NoError(t, err)

	assert.Equal(t, 10, config.Network.Nodes)
	assert.Equal(t, 0.2, config.Network.PConnect)
	assert.Equal(t, [2]float64{0.5, 2.0}, config.Network.WeightRange)
	assert.Equal(t, 10, config.Dynamics.TimeSteps)
	assert.Equal(t, int64(7), config.Seed)
	assert.Equal(t, []int64{1, 2, 3}, config.Seeds)
	assert.Equal(t, "debug", config.Logging.Level)
	assert.Equal(t, filepath.Join(tmpDir, "runs.db"), config.Store.DBPath)

	// Unset keys keep their defaults.
	assert.Equal(t, 0.01, config.Dynamics.NoiseSigma)
	assert.Equal(t, TopologyRandom, config.Network.Topology)
}

func TestLoadFromFile_Errors(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("network: [unclosed"), 0600))
	_, err = LoadFromFile(bad)
	require.Error(t, err)

	short := filepath.Join(t.TempDir(), "short.yaml")
	require.NoError(t, os.WriteFile(short, []byte("network:\n  weight_range: [0.5]\n"), 0600))
	_, err = LoadFromFile(short)
	require.Error(t, err, "weight_range needs exactly two bounds")
}

func TestLoad_EnvOverrides(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("network:\n  n_nodes: 10\nseed: 1\n"), 0600))

	t.Setenv(EnvNodes, "25")
	t.Setenv(EnvPConnect, "0.3")
	t.Setenv(EnvTimeSteps, "5")
	t.Setenv(EnvSeed, "99")
	t.Setenv(EnvNoiseSigma, "0")
	t.Setenv(EnvLogLevel, "warn")
	t.Setenv(EnvDBPath, "/tmp/netsim.db")

	config, err := Load(configPath)
	require.NoError(t, err)
	assert.Equal(t, 25, config.Network.Nodes)
	assert.Equal(t, 0.3, config.Network.PConnect)
	assert.Equal(t, 5, config.Dynamics.TimeSteps)
	assert.Equal(t, int64(99), config.Seed)
	assert.Zero(t, config.Dynamics.NoiseSigma)
	assert.Equal(t, "warn", config.Logging.Level)
	assert.Equal(t, "/tmp/netsim.db", config.Store.DBPath)
}

func TestLoad_NoFile(t *testing.T) {
	config, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), config)
}

func TestLoad_BadEnv(t *testing.T) {
	for _, name := range []string{EnvNodes, EnvPConnect, EnvTimeSteps, EnvSeed, EnvNoiseSigma} {
		t.Run(name, func(t *testing.T) {
			t.Setenv(name, "not-a-number")
			_, err := Load("")
			require.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"zero nodes", func(c *Config) { c.Network.Nodes = 0 }},
		{"p above one", func(c *Config) { c.Network.PConnect = 1.5 }},
		{"p negative", func(c *Config) { c.Network.PConnect = -0.1 }},
		{"low zero", func(c *Config) { c.Network.WeightRange = [2]float64{0, 1} }},
		{"low above high", func(c *Config) { c.Network.WeightRange = [2]float64{1, 0.5} }},
		{"unknown topology", func(c *Config) { c.Network.Topology = "lattice" }},
		{"negative steps", func(c *Config) { c.Dynamics.TimeSteps = -1 }},
		{"negative sigma", func(c *Config) { c.Dynamics.NoiseSigma = -0.01 }},
		{"unknown level", func(c *Config) { c.Logging.Level = "verbose" }},
		{"unknown format", func(c *Config) { c.Logging.Format = "xml" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(c)
			require.ErrorIs(t, c.Validate(), ErrInvalidConfig)
		})
	}

	c := Default()
	c.Logging.Level = "DEBUG"
	c.Network.PConnect = 1
	c.Dynamics.TimeSteps = 0
	c.Dynamics.NoiseSigma = 0
	require.NoError(t, c.Validate())
}

func TestRunSeedsAndWithSeed(t *testing.T) {
	c := Default()
	assert.Equal(t, []int64{42}, c.RunSeeds())

	c.Seeds = []int64{3, 1, 2}
	seeds := c.RunSeeds()
	assert.Equal(t, []int64{3, 1, 2}, seeds)
	seeds[0] = 100
	assert.Equal(t, int64(3), c.Seeds[0], "RunSeeds must return a copy")

	pinned := c.WithSeed(1)
	assert.Equal(t, int64(1), pinned.Seed)
	assert.Nil(t, pinned.Seeds)
	assert.Equal(t, int64(42), c.Seed)
	assert.Len(t, c.Seeds, 3)
}
