// SPDX-License-Identifier: MIT
// Package: sirnet/sir
//
// errors.go — sentinel errors for the sir package.
// Every validation sentinel also matches ErrInvalidParameter via errors.Is.

package sir

import (
	"errors"
	"fmt"
)

// ErrInvalidParameter is the umbrella class for malformed inputs.
var ErrInvalidParameter = errors.New("sir: invalid parameter")

// ErrTooFewNodes indicates a node count below 1.
var ErrTooFewNodes = fmt.Errorf("%w: node count too small", ErrInvalidParameter)

// ErrInvalidProbability indicates a probability outside [0,1] or NaN.
var ErrInvalidProbability = fmt.Errorf("%w: probability out of range", ErrInvalidParameter)

// ErrNeedRandSource indicates a stochastic draw was requested without an RNG.
var ErrNeedRandSource = fmt.Errorf("%w: rng is required", ErrInvalidParameter)

// ErrTooFewSteps indicates a step count below 1.
var ErrTooFewSteps = fmt.Errorf("%w: step count too small", ErrInvalidParameter)

// ErrDimensionMismatch indicates a state or output length that does not
// match the network size.
var ErrDimensionMismatch = fmt.Errorf("%w: dimension mismatch", ErrInvalidParameter)

// ErrNotOneHot indicates a node state that is not exactly one compartment.
var ErrNotOneHot = fmt.Errorf("%w: state is not one-hot", ErrInvalidParameter)

// ErrNilNetwork indicates a nil *network.Network.
var ErrNilNetwork = fmt.Errorf("%w: network is nil", ErrInvalidParameter)
