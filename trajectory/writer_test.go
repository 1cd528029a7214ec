package trajectory_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/sirnet/trajectory"
)

// SerializerSuite checks write → read round trips for every artifact.
type SerializerSuite struct {
	suite.Suite
	batch *trajectory.Batch
}

func (s *SerializerSuite) SetupTest() {
	s.batch = simulatedBatch(s.T())
}

func (s *SerializerSuite) TestNodeStatesRoundTrip() {
	var buf bytes.Buffer
	require.NoError(s.T(), trajectory.WriteNodeStates(&buf, s.batch))

	lines := strings.Count(buf.String(), "\n")
	require.Equal(s.T(), fixtureRuns*fixtureNodes*(fixtureSteps+1), lines, "every (run,node,t) exactly once")

	back, err := trajectory.ReadNodeStates(&buf, fixtureNodes, fixtureSteps)
	require.NoError(s.T(), err)
	require.Equal(s.T(), s.batch.Data(), back.Data())
}

func (s *SerializerSuite) TestPopulationRoundTrip() {
	var buf bytes.Buffer
	require.NoError(s.T(), trajectory.Write(&buf, s.batch, trajectory.ModePopulation))

	back, err := trajectory.ReadPopulation(&buf, fixtureSteps)
	require.NoError(s.T(), err)
	require.Equal(s.T(), trajectory.Population(s.batch), back)
}

func (s *SerializerSuite) TestParamsRoundTrip() {
	var buf bytes.Buffer
	want := trajectory.ParamsSummary{Nodes: 100, Trajectories: 8, Steps: 10}
	require.NoError(s.T(), trajectory.WriteParams(&buf, want))
	require.Equal(s.T(), "N_nodes,N_trajectories,Nt\n100,8,10\n", buf.String())

	got, err := trajectory.ReadParams(&buf)
	require.NoError(s.T(), err)
	require.Equal(s.T(), want, got)
}

func (s *SerializerSuite) TestTimeVectorRoundTrip() {
	var buf bytes.Buffer
	want := trajectory.TimeVector(10, 0.1)
	require.NoError(s.T(), trajectory.WriteTimeVector(&buf, want))
	got, err := trajectory.ReadTimeVector(&buf)
	require.NoError(s.T(), err)
	require.Equal(s.T(), want, got)
}

func (s *SerializerSuite) TestFilesLifecycle() {
	dir := filepath.Join(s.T().TempDir(), "out")
	out, err := trajectory.Create(dir, trajectory.ModeNodes)
	require.NoError(s.T(), err)
	require.NoError(s.T(), out.WriteBatch(s.batch))
	require.NoError(s.T(), out.WriteBatch(s.batch))
	require.Equal(s.T(), 2*fixtureRuns, out.Runs())

	p := trajectory.ParamsSummary{Nodes: fixtureNodes, Trajectories: out.Runs(), Steps: fixtureSteps}
	require.NoError(s.T(), out.Close(p, trajectory.TimeVector(fixtureSteps, 5)))

	f, err := os.Open(filepath.Join(dir, trajectory.TrajectoriesFile))
	require.NoError(s.T(), err)
	defer f.Close()
	back, err := trajectory.ReadNodeStates(f, fixtureNodes, fixtureSteps)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 2*fixtureRuns, back.Runs())

	pf, err := os.Open(filepath.Join(dir, trajectory.ParamsFile))
	require.NoError(s.T(), err)
	defer pf.Close()
	gotP, err := trajectory.ReadParams(pf)
	require.NoError(s.T(), err)
	require.Equal(s.T(), p, gotP)

	raw, err := os.ReadFile(filepath.Join(dir, trajectory.TimeVectorFile))
	require.NoError(s.T(), err)
	require.Equal(s.T(), "0\n5\n10\n15\n20\n25\n30\n", string(raw))
}

func (s *SerializerSuite) TestFilesAbortSkipsMetadata() {
	dir := s.T().TempDir()
	out, err := trajectory.Create(dir, trajectory.ModeNodes)
	require.NoError(s.T(), err)
	require.NoError(s.T(), out.WriteBatch(s.batch))
	require.NoError(s.T(), out.Abort())

	require.ErrorIs(s.T(), out.WriteBatch(s.batch), trajectory.ErrAborted)
	p := trajectory.ParamsSummary{Nodes: fixtureNodes, Trajectories: fixtureRuns, Steps: fixtureSteps}
	require.ErrorIs(s.T(), out.Close(p, trajectory.TimeVector(fixtureSteps, 1)), trajectory.ErrAborted)

	for _, name := range []string{trajectory.ParamsFile, trajectory.TimeVectorFile} {
		_, err = os.Stat(filepath.Join(dir, name))
		require.True(s.T(), os.IsNotExist(err), "%s must not exist", name)
	}
}

func TestSerializerSuite(t *testing.T) {
	suite.Run(t, new(SerializerSuite))
}

func TestReadNodeStates_SpaceSeparated(t *testing.T) {
	// one run, two nodes, one step, written with ", " separators
	in := "0, 1, 0, 0\n0, 0, 1, 0\n1, 0, 1, 0\n1, 0, 0, 1\n"
	b, err := trajectory.ReadNodeStates(strings.NewReader(in), 2, 1)
	require.NoError(t, err)
	st, err := b.At(0, 1, 1)
	require.NoError(t, err)
	require.Equal(t, float32(1), st[2])
}

func TestReaders_Errors(t *testing.T) {
	_, err := trajectory.ReadNodeStates(strings.NewReader("0,1,0,0\n"), 1, 1)
	require.ErrorIs(t, err, trajectory.ErrTruncated)

	_, err = trajectory.ReadNodeStates(strings.NewReader("1,1,0,0\n0,1,0,0\n"), 1, 1)
	require.ErrorIs(t, err, trajectory.ErrMalformedRow)

	_, err = trajectory.ReadNodeStates(strings.NewReader("0,x,0,0\n0,1,0,0\n"), 1, 1)
	require.ErrorIs(t, err, trajectory.ErrMalformedRow)

	_, err = trajectory.ReadNodeStates(strings.NewReader("0,1,0\n"), 1, 1)
	require.ErrorIs(t, err, trajectory.ErrMalformedRow)

	_, err = trajectory.ReadPopulation(strings.NewReader(""), 1)
	require.ErrorIs(t, err, trajectory.ErrTruncated)

	_, err = trajectory.ReadParams(strings.NewReader("a,b,c\n1,2,3\n"))
	require.ErrorIs(t, err, trajectory.ErrMalformedRow)

	_, err = trajectory.ParseMode("flat")
	require.ErrorIs(t, err, trajectory.ErrUnknownMode)

	m, err := trajectory.ParseMode(" Population ")
	require.NoError(t, err)
	require.Equal(t, trajectory.ModePopulation, m)
}
