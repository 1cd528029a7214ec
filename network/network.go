// SPDX-License-Identifier: MIT
// Package: sirnet/network
//
// network.go — the immutable Network value and its read-only accessors.
//
// Layout:
//   - adj is row-major: adj[i*n+j] == 1 iff {i,j} is an edge.
//   - nbrs[i] lists the neighbours of i in ascending order.
//
// Concurrency:
//   - No method mutates a Network after construction; no locks are needed.

package network

import "fmt"

// Network is an undirected simple contact graph over nodes 0..n-1.
type Network struct {
	n     int
	adj   []float32
	nbrs  [][]int
	edges int
}

// newNetwork wraps a validated flat adjacency and indexes its neighbour lists.
// Complexity: O(n²) time, O(n + m) extra space.
func newNetwork(n int, adj []float32) *Network {
	nw := &Network{n: n, adj: adj, nbrs: make([][]int, n)}
	for i := 0; i < n; i++ {
		row := adj[i*n : (i+1)*n]
		for j, v := range row {
			if v != 0 {
				nw.nbrs[i] = append(nw.nbrs[i], j)
				if j > i {
					nw.edges++
				}
			}
		}
	}
	return nw
}

// Nodes returns the node count n.
func (nw *Network) Nodes() int { return nw.n }

// EdgeCount returns the number of undirected edges.
func (nw *Network) EdgeCount() int { return nw.edges }

// Adjacency returns a copy of the row-major n×n indicator matrix.
// Complexity: O(n²).
func (nw *Network) Adjacency() []float32 {
	out := make([]float32, len(nw.adj))
	copy(out, nw.adj)
	return out
}

// HasEdge reports whether {i,j} is an edge.
func (nw *Network) HasEdge(i, j int) (bool, error) {
	if err := nw.check(i); err != nil {
		return false, err
	}
	if err := nw.check(j); err != nil {
		return false, err
	}
	return nw.adj[i*nw.n+j] != 0, nil
}

// Neighbors returns the neighbours of i in ascending order.
// The returned slice is shared and MUST NOT be modified.
func (nw *Network) Neighbors(i int) ([]int, error) {
	if err := nw.check(i); err != nil {
		return nil, err
	}
	return nw.nbrs[i], nil
}

// Degree returns the number of neighbours of i.
func (nw *Network) Degree(i int) (int, error) {
	if err := nw.check(i); err != nil {
		return 0, err
	}
	return len(nw.nbrs[i]), nil
}

// NeighborLists exposes all neighbour lists without bounds checks, for
// simulation kernels on the hot path. Read-only.
func (nw *Network) NeighborLists() [][]int { return nw.nbrs }

func (nw *Network) check(i int) error {
	if i < 0 || i >= nw.n {
		return fmt.Errorf("node %d not in [0,%d): %w", i, nw.n, ErrNodeOutOfRange)
	}
	return nil
}
