// SPDX-License-Identifier: MIT
// Package: sirnet/network
//
// generate.go — Erdős–Rényi G(n,p) generator.
//
// Canonical model:
//   - Each of the n(n-1)/2 unordered pairs {i,j}, i<j, is included
//     independently with probability p. No self-loops.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewNodes).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//
// Determinism:
//   - Stable trial order: i asc, then j asc with j>i; one draw per pair.
//
// Complexity:
//   - Time: O(n²) Bernoulli trials. Space: O(n²) for the flat adjacency.

package network

import (
	"fmt"
	"math"
)

const (
	methodGenerate = "Generate"
	minNodes       = 1
	probMin        = 0.0
	probMax        = 1.0
)

// Generate samples a G(n,p) network.
func Generate(n int, p float64, opts ...Option) (*Network, error) {
	cfg := newConfig(opts...)

	// 1) Validate parameters; no side effects on invalid input.
	if n < minNodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodGenerate, n, minNodes, ErrTooFewNodes)
	}
	if math.IsNaN(p) || p < probMin || p > probMax {
		return nil, fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
			methodGenerate, p, probMin, probMax, ErrInvalidProbability)
	}
	if cfg.rng == nil && p > probMin && p < probMax {
		return nil, fmt.Errorf("%s: %w", methodGenerate, ErrNeedRandSource)
	}

	// 2) Sample the upper triangle and mirror it.
	adj := make([]float32, n*n)
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if !include(cfg, p) {
				continue
			}
			adj[i*n+j] = 1
			adj[j*n+i] = 1
		}
	}

	return newNetwork(n, adj), nil
}

// include runs one Bernoulli(p) trial. For p∈{0,1} without an RNG the
// outcome is fixed; with an RNG a draw is always consumed so that the
// stream position does not depend on p.
func include(cfg config, p float64) bool {
	if cfg.rng == nil {
		return p == probMax
	}
	return cfg.rng.Float64() < p
}
