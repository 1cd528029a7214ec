// SPDX-License-Identifier: MIT
// Package: sirnet/trajectory
//
// population.go — whole-population S/I/R fractions per run and timestep.

package trajectory

import (
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/sirnet/sir"
)

// Fractions holds population-level S, I, R shares at one timestep.
type Fractions [sir.NumCompartments]float64

// Population returns out[run][t], the mean over nodes of each compartment.
// Complexity: O(runs·nodes·snaps).
func Population(b *Batch) [][]Fractions {
	out := make([][]Fractions, b.runs)
	col := make([][]float64, sir.NumCompartments)
	for c := range col {
		col[c] = make([]float64, b.nodes)
	}
	inv := 1 / float64(b.nodes)

	for r := 0; r < b.runs; r++ {
		out[r] = make([]Fractions, b.snaps)
		for t := 0; t < b.snaps; t++ {
			for node := 0; node < b.nodes; node++ {
				s := b.at(r, node, t)
				for c := range col {
					col[c][node] = float64(s[c])
				}
			}
			for c := range col {
				out[r][t][c] = floats.Sum(col[c]) * inv
			}
		}
	}
	return out
}
