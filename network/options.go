// SPDX-License-Identifier: MIT
// Package: sirnet/network
//
// options.go — functional options for Generate.
//
// Contract:
//   • Option constructors validate and PANIC on meaningless inputs.
//   • Generation itself never panics; it returns sentinel errors.
//   • No hidden globals: the RNG is nil unless WithSeed/WithRand is given.

package network

import (
	"math/rand/v2"

	"github.com/katalvlaran/sirnet/internal/rng"
)

// Option customizes a generator by mutating its config before use.
type Option func(*config)

// config aggregates the knobs a generator reads. Passed by value.
type config struct {
	// rng drives Bernoulli edge trials; nil means "no randomness".
	rng *rand.Rand
}

// newConfig applies opts in order (last wins).
func newConfig(opts ...Option) config {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithSeed attaches a fresh deterministic stream seeded with seed.
func WithSeed(seed uint64) Option {
	return func(c *config) {
		c.rng = rng.New(seed)
	}
}

// WithRand attaches an explicit stream. Panics on nil; prefer WithSeed for
// reproducible runs.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("network: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}
