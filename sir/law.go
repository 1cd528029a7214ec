// SPDX-License-Identifier: MIT
// Package: sirnet/sir
//
// law.go — the per-step transition law and its parameters.

package sir

import (
	"fmt"
	"math"
)

const methodStepParams = "StepParams"

// StepParams are the kernel inputs shared by every trajectory of a session.
type StepParams struct {
	// InfectionP is the per-contact, per-step transmission probability β.
	InfectionP float64
	// RecoveryP is the per-step recovery probability γ.
	RecoveryP float64
	// Steps is Nt; a trajectory holds Steps+1 snapshots.
	Steps int
}

// Validate checks probabilities and the step count.
func (p StepParams) Validate() error {
	if err := validateProbability(methodStepParams, "infection_p", p.InfectionP); err != nil {
		return err
	}
	if err := validateProbability(methodStepParams, "recovery_p", p.RecoveryP); err != nil {
		return err
	}
	if p.Steps < 1 {
		return fmt.Errorf("%s: steps=%d: %w", methodStepParams, p.Steps, ErrTooFewSteps)
	}
	return nil
}

// Snapshots returns Steps+1.
func (p StepParams) Snapshots() int { return p.Steps + 1 }

// InfectionProbability returns 1 − (1 − beta)^k, the chance that at least one
// of k infected neighbours transmits within one step.
func InfectionProbability(beta float64, k int) float64 {
	if k <= 0 || beta <= 0 {
		return 0
	}
	if beta >= 1 {
		return 1
	}
	return 1 - math.Pow(1-beta, float64(k))
}
