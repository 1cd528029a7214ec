// SPDX-License-Identifier: MIT
// Package: sirnet/sim

package sim

import (
	"fmt"

	"github.com/katalvlaran/sirnet/network"
	"github.com/katalvlaran/sirnet/sir"
)

// Prepare builds the session's shared read-only inputs: the G(n,p) contact
// network and the one-hot initial state, both seeded from p.Seed.
func Prepare(p Params) (*network.Network, sir.States, error) {
	if err := p.Validate(); err != nil {
		return nil, nil, fmt.Errorf("Prepare: %w", err)
	}
	nw, err := network.Generate(p.Nodes, p.EdgeProbability, network.WithSeed(p.NetworkSeed()))
	if err != nil {
		return nil, nil, fmt.Errorf("Prepare: %w: %w", ErrInvalidParameter, err)
	}
	x0, err := sir.InitialStates(p.Nodes, p.InitialInfected, sir.WithSeed(p.InitialSeed()))
	if err != nil {
		return nil, nil, fmt.Errorf("Prepare: %w: %w", ErrInvalidParameter, err)
	}
	return nw, x0, nil
}
