// SPDX-License-Identifier: MIT
// Package: sirnet/sir
//
// kernel.go — one stochastic trajectory over a fixed network.
//
// Output layout (one trajectory): out[(node*(Steps+1)+t)*3 + c].
//
// Determinism:
//   - One PRNG stream per seed (internal/rng.New).
//   - Per step, nodes are visited in ascending order and exactly one uniform
//     is drawn for each non-Recovered node, whatever its neighbourhood.
//
// Concurrency:
//   - Simulate only reads nw and x0, and writes only out. Any number of
//     calls may run in parallel on disjoint out slices.

package sir

import (
	"fmt"

	"github.com/katalvlaran/sirnet/internal/rng"
	"github.com/katalvlaran/sirnet/network"
)

const methodSimulate = "Simulate"

// TrajectoryLen returns the float count of one trajectory for n nodes.
func TrajectoryLen(n int, p StepParams) int {
	return n * p.Snapshots() * NumCompartments
}

// Simulate runs one trajectory seeded with seed and writes it into out.
// Complexity: O(Steps · (n + m)) time, O(n) extra space.
func Simulate(nw *network.Network, x0 States, seed uint64, p StepParams, out []float32) error {
	if nw == nil {
		return fmt.Errorf("%s: %w", methodSimulate, ErrNilNetwork)
	}
	if err := p.Validate(); err != nil {
		return fmt.Errorf("%s: %w", methodSimulate, err)
	}
	n := nw.Nodes()
	if len(x0) != n {
		return fmt.Errorf("%s: %d initial states for %d nodes: %w", methodSimulate, len(x0), n, ErrDimensionMismatch)
	}
	if want := TrajectoryLen(n, p); len(out) != want {
		return fmt.Errorf("%s: output len=%d, want %d: %w", methodSimulate, len(out), want, ErrDimensionMismatch)
	}
	cur, err := x0.Compartments()
	if err != nil {
		return fmt.Errorf("%s: %w", methodSimulate, err)
	}

	var (
		r     = rng.New(seed)
		nbrs  = nw.NeighborLists()
		next  = make([]Compartment, n)
		snaps = p.Snapshots()
		i, t  int
	)
	record(out, cur, snaps, 0)

	for t = 1; t < snaps; t++ {
		for i = 0; i < n; i++ {
			switch cur[i] {
			case Susceptible:
				k := 0
				for _, j := range nbrs[i] {
					if cur[j] == Infected {
						k++
					}
				}
				if r.Float64() < InfectionProbability(p.InfectionP, k) {
					next[i] = Infected
				} else {
					next[i] = Susceptible
				}
			case Infected:
				if r.Float64() < p.RecoveryP {
					next[i] = Recovered
				} else {
					next[i] = Infected
				}
			default:
				next[i] = Recovered
			}
		}
		cur, next = next, cur
		record(out, cur, snaps, t)
	}
	return nil
}

// record writes the one-hot snapshot of every node at timestep t.
func record(out []float32, cs []Compartment, snaps, t int) {
	for i, c := range cs {
		base := (i*snaps + t) * NumCompartments
		out[base+0], out[base+1], out[base+2] = 0, 0, 0
		out[base+int(c)] = 1
	}
}
