// SPDX-License-Identifier: MIT
// Package rng centralizes deterministic random streams for sirnet.
//
// Goals:
//   - Determinism: same seed ⇒ identical streams on every platform and Go release.
//   - Encapsulation: a single stream factory; no time-based sources hidden anywhere.
//   - Independence: child seeds are derived with a SplitMix64 finalizer.
//
// Concurrency:
//   - *rand.Rand is NOT goroutine-safe. Never share one stream across workers;
//     derive one stream per trajectory instead.
package rng

import "math/rand/v2"

// golden is the SplitMix64 increment (2^64 / φ).
const golden uint64 = 0x9e3779b97f4a7c15

// Mix applies the SplitMix64 finalizer to x.
// Small input changes produce large, well-distributed output changes.
//
// Complexity: O(1).
func Mix(x uint64) uint64 {
	x += golden
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	return x ^ (x >> 31)
}

// New returns a deterministic PCG-backed *rand.Rand for seed.
// The second PCG word is derived from seed so that neighbouring seeds
// (0,1,2,...) still yield decorrelated streams.
//
// Complexity: O(1).
func New(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, Mix(seed)))
}

// SeedStream yields an ordered sequence of 64-bit seeds from a master seed.
// It is the SplitMix64 generator itself: state advances by the golden increment
// and every output is the finalized state.
type SeedStream struct {
	state uint64
}

// NewSeedStream creates a stream positioned at the first seed derived from master.
func NewSeedStream(master uint64) *SeedStream {
	return &SeedStream{state: master}
}

// Next returns the next seed and advances the stream.
func (s *SeedStream) Next() uint64 {
	out := Mix(s.state)
	s.state += golden
	return out
}

// Fill writes len(dst) consecutive seeds into dst, preserving order.
func (s *SeedStream) Fill(dst []uint64) {
	for i := range dst {
		dst[i] = s.Next()
	}
}
