// Package sim drives batched stochastic SIR simulation over a fixed network.
//
// The package separates three concerns:
//
//   - Params:  immutable session configuration and its validation.
//   - Backend / Device: an execution substrate acquired explicitly for a
//     session and released afterwards. A Device runs one batch of K
//     independent trajectories per Dispatch, one logical worker per
//     trajectory. CPUBackend is the bundled implementation (goroutine pool).
//   - Session: the single dispatching loop. It checks the output size against
//     device memory before any dispatch, assigns seeds in order, dispatches
//     batches strictly one after another and hands each completed batch to a
//     Sink, which must drain it before the buffer is reused.
//
// Determinism: a batch is a pure function of (network, initial state, seeds,
// step parameters). Backends may schedule workers in any order because each
// worker owns its RNG stream and its output slice.
//
// No timeout is applied inside a batch: a hung Dispatch blocks the session.
// The context is observed between batches and before each worker starts.
package sim
