// SPDX-License-Identifier: MIT
// Package: sirnet/network
//
// adjacency.go — validated import of an external flat adjacency.
//
// Validation order (first failure wins):
//   size → length → binary entries → zero diagonal → symmetry.

package network

import "fmt"

const methodFromAdjacency = "FromAdjacency"

// FromAdjacency builds a Network from a row-major n×n indicator matrix.
// The input is copied; later changes to flat do not affect the Network.
// Complexity: O(n²).
func FromAdjacency(n int, flat []float32) (*Network, error) {
	if n < minNodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodFromAdjacency, n, minNodes, ErrTooFewNodes)
	}
	if len(flat) != n*n {
		return nil, fmt.Errorf("%s: len=%d, want %d: %w", methodFromAdjacency, len(flat), n*n, ErrDimensionMismatch)
	}
	if err := validateAdjacency(n, flat); err != nil {
		return nil, fmt.Errorf("%s: %w", methodFromAdjacency, err)
	}

	adj := make([]float32, len(flat))
	copy(adj, flat)
	return newNetwork(n, adj), nil
}

// validateAdjacency checks entries, diagonal and symmetry. Allocates nothing.
func validateAdjacency(n int, adj []float32) error {
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			v := adj[i*n+j]
			if v != 0 && v != 1 {
				return fmt.Errorf("(%d,%d)=%g: %w", i, j, v, ErrNonBinary)
			}
		}
	}
	for i = 0; i < n; i++ {
		if adj[i*n+i] != 0 {
			return fmt.Errorf("(%d,%d): %w", i, i, ErrSelfLoop)
		}
		for j = i + 1; j < n; j++ {
			if adj[i*n+j] != adj[j*n+i] {
				return fmt.Errorf("(%d,%d) vs (%d,%d): %w", i, j, j, i, ErrAsymmetry)
			}
		}
	}
	return nil
}
