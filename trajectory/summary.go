// SPDX-License-Identifier: MIT
// Package: sirnet/trajectory
//
// summary.go — per-batch epidemic statistics (gonum stat).

package trajectory

import (
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/sirnet/sir"
)

// Summary aggregates outcome measures over the runs of a batch.
// Std fields are NaN for a single run.
type Summary struct {
	Runs int

	// AttackRate is the fraction of nodes ever infected (I+R) at the final step.
	AttackRateMean, AttackRateStd float64

	// PeakInfected is the largest infected fraction over time.
	PeakInfectedMean, PeakInfectedStd float64

	// PeakStep is the first timestep at which the infected fraction peaks.
	PeakStepMean float64
}

// Summarize computes a Summary of b.
func Summarize(b *Batch) Summary {
	pop := Population(b)
	attack := make([]float64, len(pop))
	peak := make([]float64, len(pop))
	peakAt := make([]float64, len(pop))

	for r, run := range pop {
		last := run[len(run)-1]
		attack[r] = last[sir.Infected] + last[sir.Recovered]
		for t, f := range run {
			if f[sir.Infected] > peak[r] {
				peak[r], peakAt[r] = f[sir.Infected], float64(t)
			}
		}
	}

	s := Summary{Runs: len(pop)}
	s.AttackRateMean, s.AttackRateStd = stat.MeanStdDev(attack, nil)
	s.PeakInfectedMean, s.PeakInfectedStd = stat.MeanStdDev(peak, nil)
	s.PeakStepMean = stat.Mean(peakAt, nil)
	return s
}
