package config_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sirnet/internal/config"
	"github.com/katalvlaran/sirnet/sim"
	"github.com/katalvlaran/sirnet/trajectory"
)

func TestDefaultsMatchDefaultParams(t *testing.T) {
	p, err := config.NewConfig().Params()
	require.NoError(t, err)
	want := sim.DefaultParams()
	want.Seeds = p.Seeds
	require.Equal(t, want, p)
	require.Empty(t, p.Seeds)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sirnet.yaml")
	yaml := `
network:
  nodes: 40
  edge_probability: 0.25
sim:
  steps: 7
  trajectories: 3
  seeds: [11, 12, 13]
output:
  mode: population
device:
  memory_bytes: 4096
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o600))

	c := config.NewConfig()
	require.NoError(t, c.LoadFromFile(path))

	p, err := c.Params()
	require.NoError(t, err)
	require.Equal(t, 40, p.Nodes)
	require.Equal(t, 0.25, p.EdgeProbability)
	require.Equal(t, 7, p.Steps)
	require.Equal(t, []uint64{11, 12, 13}, p.Seeds)

	m, err := c.OutputMode()
	require.NoError(t, err)
	require.Equal(t, trajectory.ModePopulation, m)
	require.EqualValues(t, 4096, c.MemoryBytes())
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("SIRNET_SIM_BATCH_SIZE", "2")
	p, err := config.NewConfig().Params()
	require.NoError(t, err)
	require.Equal(t, 2, p.BatchSize)
}

func TestEnvSeeds(t *testing.T) {
	t.Setenv("SIRNET_SIM_TRAJECTORIES", "3")
	t.Setenv("SIRNET_SIM_SEEDS", "1, 2,3")
	p, err := config.NewConfig().Params()
	require.NoError(t, err)
	require.Equal(t, []uint64{1, 2, 3}, p.Seeds)

	t.Setenv("SIRNET_SIM_SEEDS", "1,x,3")
	_, err = config.NewConfig().Params()
	require.ErrorIs(t, err, sim.ErrInvalidParameter)
}

func TestParamsInvalid(t *testing.T) {
	c := config.NewConfig()
	c.Set(config.KeyInfectionP, 3.0)
	_, err := c.Params()
	require.ErrorIs(t, err, sim.ErrInvalidParameter)
}

func TestBackend(t *testing.T) {
	c := config.NewConfig()
	c.Set(config.KeyWorkers, 0)
	_, err := c.Backend()
	require.ErrorIs(t, err, sim.ErrInvalidParameter)

	c.Set(config.KeyWorkers, 2)
	b, err := c.Backend()
	require.NoError(t, err)
	require.Equal(t, "cpu", b.Name())
}

func TestCreateLogger(t *testing.T) {
	var buf bytes.Buffer
	c := config.NewConfig()
	c.Set(config.KeyLogJSON, true)
	c.Set(config.KeyLogLevel, "warn")
	log := c.CreateLogger(&buf)
	require.Equal(t, zerolog.WarnLevel, log.GetLevel())

	log.Info().Msg("hidden")
	log.Warn().Msg("shown")
	require.NotContains(t, buf.String(), "hidden")
	require.Contains(t, buf.String(), `"service":"sirnet"`)
}
