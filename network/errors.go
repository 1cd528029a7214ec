// SPDX-License-Identifier: MIT
// Package: sirnet/network
//
// errors.go — sentinel errors for the network package.
//
// Error policy:
//   • Only package-level sentinels are exposed; branch with errors.Is.
//   • Every validation sentinel also matches ErrInvalidParameter, so callers
//     that only care about the error class need a single check.
//   • Implementations attach method context with %w; never compare strings.

package network

import (
	"errors"
	"fmt"
)

// ErrInvalidParameter is the umbrella class for every malformed input.
var ErrInvalidParameter = errors.New("network: invalid parameter")

// ErrTooFewNodes indicates n < 1.
var ErrTooFewNodes = fmt.Errorf("%w: node count too small", ErrInvalidParameter)

// ErrInvalidProbability indicates an edge probability outside [0,1] or NaN.
var ErrInvalidProbability = fmt.Errorf("%w: probability out of range", ErrInvalidParameter)

// ErrNeedRandSource indicates that a stochastic build (0 < p < 1) has no RNG.
var ErrNeedRandSource = fmt.Errorf("%w: rng is required", ErrInvalidParameter)

// ErrDimensionMismatch indicates that a flat adjacency is not n*n long.
var ErrDimensionMismatch = fmt.Errorf("%w: adjacency dimension mismatch", ErrInvalidParameter)

// ErrNonBinary indicates an adjacency entry other than 0 or 1.
var ErrNonBinary = fmt.Errorf("%w: adjacency entry is not 0 or 1", ErrInvalidParameter)

// ErrAsymmetry indicates adjacency[i][j] != adjacency[j][i].
var ErrAsymmetry = fmt.Errorf("%w: adjacency is not symmetric", ErrInvalidParameter)

// ErrSelfLoop indicates a non-zero diagonal entry.
var ErrSelfLoop = fmt.Errorf("%w: self-loop in adjacency", ErrInvalidParameter)

// ErrNodeOutOfRange indicates a node index outside 0..n-1.
var ErrNodeOutOfRange = errors.New("network: node index out of range")
