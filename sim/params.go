// SPDX-License-Identifier: MIT
// Package: sirnet/sim
//
// params.go — session parameters.

package sim

import (
	"math"

	"github.com/katalvlaran/sirnet/sir"
)

// Params configures one simulation session. Immutable once a session starts.
type Params struct {
	Nodes           int     // network size N
	EdgeProbability float64 // G(n,p) edge probability
	InitialInfected float64 // per-node probability of starting Infected
	DT              float64 // time step width; scales the time vector only
	Steps           int     // Nt; trajectories hold Nt+1 snapshots
	InfectionP      float64 // per-contact, per-step transmission probability
	RecoveryP       float64 // per-step recovery probability
	Trajectories    int     // total runs T
	BatchSize       int     // requested runs per dispatch K (capped by the device)

	// Seed is the master seed. It derives the network and initial-state
	// seeds and, when Seeds is empty, the per-run seed stream.
	Seed uint64
	// Seeds optionally fixes one seed per run; len must equal Trajectories.
	Seeds []uint64

	// DispatchRetries bounds re-submission of a failed batch. 0 = fail fast.
	DispatchRetries int
}

// DefaultParams returns the stock run: 100 nodes on G(100, 0.7),
// 10% initially infected, 10 steps of width 5, β=0.4, γ=0.01, 8 runs.
func DefaultParams() Params {
	return Params{
		Nodes:           100,
		EdgeProbability: 0.7,
		InitialInfected: 0.1,
		DT:              5,
		Steps:           10,
		InfectionP:      0.4,
		RecoveryP:       0.01,
		Trajectories:    8,
		BatchSize:       8,
		Seed:            5489,
	}
}

// Validate reports the first malformed field as ErrInvalidParameter.
func (p Params) Validate() error {
	switch {
	case p.Nodes < 1:
		return invalidf("nodes=%d < 1", p.Nodes)
	case !isProbability(p.EdgeProbability):
		return invalidf("edge_probability=%g not in [0,1]", p.EdgeProbability)
	case !isProbability(p.InitialInfected):
		return invalidf("initial_infected=%g not in [0,1]", p.InitialInfected)
	case !isProbability(p.InfectionP):
		return invalidf("infection_p=%g not in [0,1]", p.InfectionP)
	case !isProbability(p.RecoveryP):
		return invalidf("recovery_p=%g not in [0,1]", p.RecoveryP)
	case math.IsNaN(p.DT) || math.IsInf(p.DT, 0) || p.DT <= 0:
		return invalidf("dt=%g must be finite and > 0", p.DT)
	case p.Steps < 1:
		return invalidf("steps=%d < 1", p.Steps)
	case p.Trajectories < 1:
		return invalidf("trajectories=%d < 1", p.Trajectories)
	case p.BatchSize < 1:
		return invalidf("batch_size=%d < 1", p.BatchSize)
	case len(p.Seeds) != 0 && len(p.Seeds) != p.Trajectories:
		return invalidf("%d seeds for %d trajectories", len(p.Seeds), p.Trajectories)
	case p.DispatchRetries < 0:
		return invalidf("dispatch_retries=%d < 0", p.DispatchRetries)
	}
	return nil
}

// StepParams extracts the kernel inputs.
func (p Params) StepParams() sir.StepParams {
	return sir.StepParams{InfectionP: p.InfectionP, RecoveryP: p.RecoveryP, Steps: p.Steps}
}

func isProbability(v float64) bool { return !math.IsNaN(v) && v >= 0 && v <= 1 }
