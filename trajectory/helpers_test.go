package trajectory_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sirnet/network"
	"github.com/katalvlaran/sirnet/sir"
	"github.com/katalvlaran/sirnet/trajectory"
)

// Shared fixture sizes.
const (
	fixtureNodes = 12
	fixtureSteps = 6
	fixtureRuns  = 3
)

// simulatedBatch fills a batch with real trajectories, one seed per run.
func simulatedBatch(t *testing.T) *trajectory.Batch {
	t.Helper()
	nw, err := network.Generate(fixtureNodes, 0.4, network.WithSeed(8))
	require.NoError(t, err)
	x0, err := sir.InitialStates(fixtureNodes, 0.25, sir.WithSeed(8))
	require.NoError(t, err)
	p := sir.StepParams{InfectionP: 0.5, RecoveryP: 0.3, Steps: fixtureSteps}

	b, err := trajectory.NewBatch(fixtureRuns, fixtureNodes, fixtureSteps)
	require.NoError(t, err)
	for r := 0; r < fixtureRuns; r++ {
		out, err := b.Run(r)
		require.NoError(t, err)
		require.NoError(t, sir.Simulate(nw, x0, uint64(100+r), p, out))
	}
	return b
}
