// SPDX-License-Identifier: MIT
// Package: sirnet/sir
//
// options.go — functional options for the initial-state sampler.
// Option constructors panic on meaningless inputs; samplers never panic.

package sir

import (
	"math/rand/v2"

	"github.com/katalvlaran/sirnet/internal/rng"
)

// Option customizes the sampler config.
type Option func(*config)

type config struct {
	rng *rand.Rand // nil means "no randomness"
}

func newConfig(opts ...Option) config {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithSeed attaches a fresh deterministic stream seeded with seed.
func WithSeed(seed uint64) Option {
	return func(c *config) { c.rng = rng.New(seed) }
}

// WithRand attaches an explicit stream. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("sir: WithRand(nil)")
	}
	return func(c *config) { c.rng = r }
}
