// SPDX-License-Identifier: MIT
// Package: sirnet/sim
//
// seeds.go — deterministic seed assignment.
//
// Streams derived from the master seed:
//   - network seed   = Mix(master ^ streamNetwork)
//   - initial seed   = Mix(master ^ streamInitial)
//   - run seeds      = SplitMix64 sequence from Mix(master ^ streamRuns)
// Run seeds are assigned in order: run i always gets the i-th seed, whatever
// the batch size.

package sim

import "github.com/katalvlaran/sirnet/internal/rng"

const (
	streamNetwork uint64 = 1
	streamInitial uint64 = 2
	streamRuns    uint64 = 3
)

// NetworkSeed returns the seed Prepare uses for the contact network.
func (p Params) NetworkSeed() uint64 { return rng.Mix(p.Seed ^ streamNetwork) }

// InitialSeed returns the seed Prepare uses for the initial state.
func (p Params) InitialSeed() uint64 { return rng.Mix(p.Seed ^ streamInitial) }

// RunSeeds returns the T per-run seeds in assignment order.
func (p Params) RunSeeds() []uint64 {
	out := make([]uint64, p.Trajectories)
	if len(p.Seeds) == p.Trajectories && len(p.Seeds) > 0 {
		copy(out, p.Seeds)
		return out
	}
	rng.NewSeedStream(rng.Mix(p.Seed ^ streamRuns)).Fill(out)
	return out
}
