// SPDX-License-Identifier: MIT
// Package: sirnet/trajectory

package trajectory

// TimeVector returns steps+1 timestamps i*dt, i = 0..steps.
func TimeVector(steps int, dt float64) []float64 {
	if steps < 0 {
		return nil
	}
	out := make([]float64, steps+1)
	for i := range out {
		out[i] = float64(i) * dt
	}
	return out
}
