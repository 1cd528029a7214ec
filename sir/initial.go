// SPDX-License-Identifier: MIT
// Package: sirnet/sir
//
// initial.go — independent Bernoulli sampling of the shared t=0 state.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewNodes); 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - An RNG is required only for 0 < p < 1 (else ErrNeedRandSource).
//   - One draw per node, node order ascending: draw < p ⇒ Infected, else
//     Susceptible. Recovered is never set at t=0.

package sir

import (
	"fmt"
	"math"
)

const methodInitialStates = "InitialStates"

// InitialStates samples a one-hot state for each of n nodes.
// Complexity: O(n).
func InitialStates(n int, pInfected float64, opts ...Option) (States, error) {
	cfg := newConfig(opts...)

	if n < 1 {
		return nil, fmt.Errorf("%s: n=%d: %w", methodInitialStates, n, ErrTooFewNodes)
	}
	if err := validateProbability(methodInitialStates, "p", pInfected); err != nil {
		return nil, err
	}
	if cfg.rng == nil && pInfected > 0 && pInfected < 1 {
		return nil, fmt.Errorf("%s: %w", methodInitialStates, ErrNeedRandSource)
	}

	out := make(States, n)
	for i := range out {
		if bernoulli(cfg, pInfected) {
			out[i] = OneHot(Infected)
		} else {
			out[i] = OneHot(Susceptible)
		}
	}
	return out, nil
}

func bernoulli(cfg config, p float64) bool {
	if cfg.rng == nil {
		return p == 1
	}
	return cfg.rng.Float64() < p
}

// validateProbability enforces p ∈ [0,1] and rejects NaN.
func validateProbability(method, name string, p float64) error {
	if math.IsNaN(p) || p < 0 || p > 1 {
		return fmt.Errorf("%s: %s=%g not in [0,1]: %w", method, name, p, ErrInvalidProbability)
	}
	return nil
}
