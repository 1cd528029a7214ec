// SPDX-License-Identifier: MIT
// Package: sirnet/network
//
// analysis.go — gonum views over a Network.
//
// These are diagnostics only: the simulation kernel never touches gonum
// types, it reads the flat adjacency and neighbour lists directly.

package network

import (
	"sort"

	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
	"gonum.org/v1/gonum/stat"
)

// Graph returns a gonum undirected graph with node IDs 0..n-1.
// Complexity: O(n + m).
func (nw *Network) Graph() *simple.UndirectedGraph {
	g := simple.NewUndirectedGraph()
	for i := 0; i < nw.n; i++ {
		g.AddNode(simple.Node(int64(i)))
	}
	for i, row := range nw.nbrs {
		for _, j := range row {
			if j > i {
				g.SetEdge(g.NewEdge(simple.Node(int64(i)), simple.Node(int64(j))))
			}
		}
	}
	return g
}

// Components returns the connected components, each sorted ascending, and
// the components ordered by their smallest node.
// Isolated nodes form singleton components; an infection can never reach them.
func (nw *Network) Components() [][]int {
	raw := topo.ConnectedComponents(nw.Graph())
	out := make([][]int, 0, len(raw))
	for _, cc := range raw {
		ids := make([]int, len(cc))
		for k, node := range cc {
			ids[k] = int(node.ID())
		}
		sort.Ints(ids)
		out = append(out, ids)
	}
	sort.Slice(out, func(a, b int) bool { return out[a][0] < out[b][0] })
	return out
}

// DegreeStats returns the mean and (sample) standard deviation of node degree.
// For n == 1 the deviation is NaN, as gonum defines it.
func (nw *Network) DegreeStats() (mean, std float64) {
	deg := make([]float64, nw.n)
	for i, row := range nw.nbrs {
		deg[i] = float64(len(row))
	}
	return stat.MeanStdDev(deg, nil)
}
