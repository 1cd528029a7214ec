package network_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sirnet/network"
)

// path4 is the path 0-1-2-3 as a flat adjacency.
var path4 = []float32{
	0, 1, 0, 0,
	1, 0, 1, 0,
	0, 1, 0, 1,
	0, 0, 1, 0,
}

func TestFromAdjacency_Accessors(t *testing.T) {
	nw, err := network.FromAdjacency(4, path4)
	require.NoError(t, err)
	require.Equal(t, 3, nw.EdgeCount())

	nb, err := nw.Neighbors(1)
	require.NoError(t, err)
	require.Equal(t, []int{0, 2}, nb)

	ok, err := nw.HasEdge(2, 3)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = nw.HasEdge(0, 3)
	require.NoError(t, err)
	require.False(t, ok)

	_, err = nw.Degree(4)
	require.ErrorIs(t, err, network.ErrNodeOutOfRange)
}

func TestFromAdjacency_CopiesInput(t *testing.T) {
	in := append([]float32(nil), path4...)
	nw, err := network.FromAdjacency(4, in)
	require.NoError(t, err)
	in[1], in[4] = 0, 0
	ok, err := nw.HasEdge(0, 1)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestFromAdjacency_Errors(t *testing.T) {
	t.Parallel()
	for _, tc := range []struct {
		name string
		n    int
		adj  []float32
		want error
	}{
		{"zero nodes", 0, nil, network.ErrTooFewNodes},
		{"short", 2, []float32{0, 1, 1}, network.ErrDimensionMismatch},
		{"non binary", 2, []float32{0, 0.5, 0.5, 0}, network.ErrNonBinary},
		{"self loop", 2, []float32{1, 0, 0, 0}, network.ErrSelfLoop},
		{"asymmetric", 2, []float32{0, 1, 0, 0}, network.ErrAsymmetry},
	} {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := network.FromAdjacency(tc.n, tc.adj)
			require.True(t, errors.Is(err, tc.want), "got %v", err)
			require.ErrorIs(t, err, network.ErrInvalidParameter)
		})
	}
}

func TestAnalysis(t *testing.T) {
	// two components: path 0-1-2-3 plus isolated 4
	adj := make([]float32, 25)
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			adj[i*5+j] = path4[i*4+j]
		}
	}
	nw, err := network.FromAdjacency(5, adj)
	require.NoError(t, err)

	require.Equal(t, [][]int{{0, 1, 2, 3}, {4}}, nw.Components())

	g := nw.Graph()
	require.Equal(t, 5, g.Nodes().Len())
	require.Equal(t, 3, g.Edges().Len())

	mean, std := nw.DegreeStats()
	require.InDelta(t, 6.0/5.0, mean, 1e-12)
	require.Greater(t, std, 0.0)
}
