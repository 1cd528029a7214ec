// SPDX-License-Identifier: MIT
// Package: sirnet/sir
//
// compartment.go — compartment enum and the one-hot State encoding.

package sir

import "fmt"

// Compartment identifies one of the three SIR classes.
type Compartment uint8

const (
	Susceptible Compartment = iota
	Infected
	Recovered
)

// NumCompartments is the width of a State vector.
const NumCompartments = 3

// String implements fmt.Stringer.
func (c Compartment) String() string {
	switch c {
	case Susceptible:
		return "S"
	case Infected:
		return "I"
	case Recovered:
		return "R"
	default:
		return fmt.Sprintf("Compartment(%d)", uint8(c))
	}
}

// State holds the S, I, R values of one node, indexed by Compartment.
// float32 matches what a compute backend reads and writes.
type State [NumCompartments]float32

// OneHot returns the State with c set to 1 and the others 0.
func OneHot(c Compartment) State {
	var s State
	s[c] = 1
	return s
}

// Compartment decodes a one-hot State.
func (s State) Compartment() (Compartment, error) {
	found := -1
	for k, v := range s {
		switch v {
		case 0:
		case 1:
			if found >= 0 {
				return 0, fmt.Errorf("%v: %w", s, ErrNotOneHot)
			}
			found = k
		default:
			return 0, fmt.Errorf("%v: %w", s, ErrNotOneHot)
		}
	}
	if found < 0 {
		return 0, fmt.Errorf("%v: %w", s, ErrNotOneHot)
	}
	return Compartment(found), nil
}

// Sum returns S+I+R.
func (s State) Sum() float32 { return s[Susceptible] + s[Infected] + s[Recovered] }

// States is one State per node.
type States []State

// Flatten returns the 3n-long row-major form [S0 I0 R0 S1 I1 R1 ...].
func (ss States) Flatten() []float32 {
	out := make([]float32, 0, len(ss)*NumCompartments)
	for _, s := range ss {
		out = append(out, s[:]...)
	}
	return out
}

// Compartments decodes every node; fails on the first non one-hot state.
func (ss States) Compartments() ([]Compartment, error) {
	out := make([]Compartment, len(ss))
	for i, s := range ss {
		c, err := s.Compartment()
		if err != nil {
			return nil, fmt.Errorf("node %d: %w", i, err)
		}
		out[i] = c
	}
	return out, nil
}

// Count returns how many nodes are in compartment c. Non one-hot states are
// ignored.
func (ss States) Count(c Compartment) int {
	n := 0
	for _, s := range ss {
		if got, err := s.Compartment(); err == nil && got == c {
			n++
		}
	}
	return n
}
