package trajectory_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sirnet/sir"
	"github.com/katalvlaran/sirnet/trajectory"
)

func TestNewBatch_Shape(t *testing.T) {
	b, err := trajectory.NewBatch(2, 5, 10)
	require.NoError(t, err)
	require.Equal(t, 2, b.Runs())
	require.Equal(t, 5, b.Nodes())
	require.Equal(t, 10, b.Steps())
	require.Equal(t, 11, b.Snapshots())
	require.Len(t, b.Data(), 2*5*11*3)
	require.EqualValues(t, len(b.Data())*trajectory.BytesPerValue, trajectory.SizeBytes(2, 5, 10))

	for _, dims := range [][3]int{{0, 1, 1}, {1, 0, 1}, {1, 1, 0}} {
		_, err := trajectory.NewBatch(dims[0], dims[1], dims[2])
		require.ErrorIs(t, err, trajectory.ErrBadShape, "%v", dims)
	}
}

func TestSizeBytes_Saturates(t *testing.T) {
	require.Zero(t, trajectory.SizeBytes(1, 4, 0))
	require.EqualValues(t, 1*4*2*3*trajectory.BytesPerValue, trajectory.SizeBytes(1, 4, 1))
	require.Equal(t, int64(math.MaxInt64), trajectory.SizeBytes(1, 4, 1<<61))
	require.Equal(t, int64(math.MaxInt64), trajectory.SizeBytes(math.MaxInt, math.MaxInt, 1))

	_, err := trajectory.NewBatch(1, 4, 1<<61)
	require.ErrorIs(t, err, trajectory.ErrBadShape)
}

func TestBatch_RunLayout(t *testing.T) {
	b, err := trajectory.NewBatch(2, 3, 1)
	require.NoError(t, err)
	run1, err := b.Run(1)
	require.NoError(t, err)
	require.Len(t, run1, 3*2*3)

	// node 2, t 1 of run 1 is the last triple of the block
	copy(run1[len(run1)-3:], []float32{0, 0, 1})
	s, err := b.At(1, 2, 1)
	require.NoError(t, err)
	require.Equal(t, sir.OneHot(sir.Recovered), s)

	_, err = b.Run(2)
	require.ErrorIs(t, err, trajectory.ErrOutOfRange)
	_, err = b.At(0, 3, 0)
	require.ErrorIs(t, err, trajectory.ErrOutOfRange)
	_, err = b.At(0, 0, 2)
	require.ErrorIs(t, err, trajectory.ErrOutOfRange)
}

func TestBatch_HeadSharesStorage(t *testing.T) {
	b := simulatedBatch(t)
	h, err := b.Head(2)
	require.NoError(t, err)
	require.Equal(t, 2, h.Runs())

	want, err := b.At(1, 4, 3)
	require.NoError(t, err)
	got, err := h.At(1, 4, 3)
	require.NoError(t, err)
	require.Equal(t, want, got)

	_, err = b.Head(fixtureRuns + 1)
	require.ErrorIs(t, err, trajectory.ErrOutOfRange)
}

func TestTimeVector(t *testing.T) {
	require.Equal(t, []float64{0, 5, 10, 15}, trajectory.TimeVector(3, 5))
	require.Len(t, trajectory.TimeVector(10, 0.5), 11)
	require.Nil(t, trajectory.TimeVector(-1, 1))
}

func TestPopulationAndSummary(t *testing.T) {
	b := simulatedBatch(t)
	pop := trajectory.Population(b)
	require.Len(t, pop, fixtureRuns)
	for r := range pop {
		require.Len(t, pop[r], fixtureSteps+1)
		for _, f := range pop[r] {
			require.InDelta(t, 1.0, f[0]+f[1]+f[2], 1e-12)
		}
	}

	s := trajectory.Summarize(b)
	require.Equal(t, fixtureRuns, s.Runs)
	require.GreaterOrEqual(t, s.AttackRateMean, 0.0)
	require.LessOrEqual(t, s.AttackRateMean, 1.0)
	require.GreaterOrEqual(t, s.PeakInfectedMean, 0.0)
	require.LessOrEqual(t, s.PeakStepMean, float64(fixtureSteps))
}
