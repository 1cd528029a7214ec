// SPDX-License-Identifier: MIT
// Command sirnet simulates batched stochastic SIR epidemics on random contact
// networks and writes trajectories, parameters and the time vector as CSV.
//
//	sirnet run --nodes 100 --edge-p 0.7 --trajectories 64 --out data
//	sirnet devices
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
