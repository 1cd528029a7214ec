// SPDX-License-Identifier: MIT
// Package: sirnet/sim
//
// session.go — the batch dispatch loop.
//
// Steps of Run:
//  1. Validate params and the shared inputs.
//  2. K = min(BatchSize, device MaxBatch, Trajectories); batches = ⌈T/K⌉.
//  3. Reject K·N·(Nt+1)·3·4 bytes > device memory (ErrResourceExhausted).
//  4. Allocate one K-run buffer; for each batch: take the next k seeds in
//     order, dispatch (with bounded retry), hand the batch to the sink.
//     The sink returns only after draining the buffer, so the next dispatch
//     can overwrite it.
//
// Concurrency:
//   - Run is not safe for concurrent use on one Session; it owns the buffer.

package sim

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/sirnet/network"
	"github.com/katalvlaran/sirnet/sir"
	"github.com/katalvlaran/sirnet/trajectory"
)

// Sink consumes completed batches. WriteBatch must not retain b.
type Sink interface {
	WriteBatch(b *trajectory.Batch) error
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(b *trajectory.Batch) error

// WriteBatch implements Sink.
func (f SinkFunc) WriteBatch(b *trajectory.Batch) error { return f(b) }

// Report describes a finished session.
type Report struct {
	Device       DeviceInfo
	BatchSize    int
	Batches      int
	Trajectories int
	Seeds        []uint64
	Elapsed      time.Duration
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithLogger attaches a zerolog logger; the default discards everything.
func WithLogger(l zerolog.Logger) SessionOption {
	return func(s *Session) { s.log = l }
}

// Session owns one acquired device for its lifetime.
type Session struct {
	dev Device
	log zerolog.Logger
}

// Open acquires a device from backend. Close must be called to release it.
func Open(ctx context.Context, backend Backend, opts ...SessionOption) (*Session, error) {
	if backend == nil {
		return nil, invalidf("Open: nil backend")
	}
	dev, err := backend.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("Open: acquire %s: %w", backend.Name(), err)
	}
	s := &Session{dev: dev, log: zerolog.Nop()}
	for _, opt := range opts {
		opt(s)
	}
	info := dev.Info()
	s.log.Info().
		Str("backend", backend.Name()).
		Str("device", info.Name).
		Int("workers", info.Workers).
		Int("max_batch", info.MaxBatch).
		Int64("memory_bytes", info.MemoryBytes).
		Msg("device acquired")
	return s, nil
}

// Device returns the acquired device.
func (s *Session) Device() Device { return s.dev }

// Close releases the device.
func (s *Session) Close() error {
	if err := s.dev.Release(); err != nil {
		return fmt.Errorf("Close: %w", err)
	}
	s.log.Debug().Msg("device released")
	return nil
}

// Run simulates p.Trajectories runs over (nw, x0) and streams them to sink.
func (s *Session) Run(ctx context.Context, nw *network.Network, x0 sir.States, p Params, sink Sink) (Report, error) {
	start := time.Now()
	if err := p.Validate(); err != nil {
		return Report{}, fmt.Errorf("Run: %w", err)
	}
	switch {
	case nw == nil:
		return Report{}, invalidf("Run: nil network")
	case nw.Nodes() != p.Nodes:
		return Report{}, invalidf("Run: network has %d nodes, params %d", nw.Nodes(), p.Nodes)
	case len(x0) != p.Nodes:
		return Report{}, invalidf("Run: %d initial states for %d nodes", len(x0), p.Nodes)
	case sink == nil:
		return Report{}, invalidf("Run: nil sink")
	}
	if _, err := x0.Compartments(); err != nil {
		return Report{}, fmt.Errorf("Run: %w: %w", ErrInvalidParameter, err)
	}

	info := s.dev.Info()
	k := min(p.BatchSize, info.MaxBatch, p.Trajectories)
	if k < 1 {
		return Report{}, invalidf("Run: device %q reports max batch %d", info.Name, info.MaxBatch)
	}
	if err := checkMemory(info, k, p.Nodes, p.Steps); err != nil {
		return Report{}, fmt.Errorf("Run: %w", err)
	}

	buf, err := trajectory.NewBatch(k, p.Nodes, p.Steps)
	if err != nil {
		return Report{}, fmt.Errorf("Run: %w: %w", ErrInvalidParameter, err)
	}

	var (
		seeds   = p.RunSeeds()
		batches = (p.Trajectories + k - 1) / k
		step    = p.StepParams()
		rep     = Report{Device: info, BatchSize: k, Seeds: seeds}
	)
	s.log.Info().
		Int("nodes", p.Nodes).
		Int("edges", nw.EdgeCount()).
		Int("trajectories", p.Trajectories).
		Int("batch_size", k).
		Int("batches", batches).
		Msg("session started")

	for i, done := 0, 0; done < p.Trajectories; i++ {
		if err = ctx.Err(); err != nil {
			return rep, fmt.Errorf("Run: before batch %d: %w", i, err)
		}
		n := min(k, p.Trajectories-done)
		out, err := buf.Head(n)
		if err != nil {
			return rep, fmt.Errorf("Run: %w", err)
		}
		job := Job{Network: nw, Initial: x0, Seeds: seeds[done : done+n], Params: step}

		t0 := time.Now()
		if err = s.dispatch(ctx, i, done, p.DispatchRetries, job, out); err != nil {
			return rep, fmt.Errorf("Run: %w", err)
		}
		if err = sink.WriteBatch(out); err != nil {
			return rep, fmt.Errorf("Run: sink batch %d: %w", i, err)
		}

		sum := trajectory.Summarize(out)
		s.log.Debug().
			Int("batch", i).
			Int("runs", n).
			Dur("took", time.Since(t0)).
			Float64("attack_rate", sum.AttackRateMean).
			Float64("peak_infected", sum.PeakInfectedMean).
			Msg("batch done")

		done += n
		rep.Batches++
		rep.Trajectories = done
	}

	rep.Elapsed = time.Since(start)
	s.log.Info().
		Int("trajectories", rep.Trajectories).
		Int("batches", rep.Batches).
		Dur("elapsed", rep.Elapsed).
		Msg("session finished")
	return rep, nil
}

// dispatch submits one batch, re-submitting up to retries times on failure.
// Invalid jobs are returned as is; cancelled contexts are not retried.
func (s *Session) dispatch(ctx context.Context, batch, first, retries int, job Job, out *trajectory.Batch) error {
	var err error
	attempt := 0
	for attempt < retries+1 {
		attempt++
		if err = s.dev.Dispatch(ctx, job, out); err == nil {
			return nil
		}
		if errors.Is(err, ErrInvalidParameter) {
			return err
		}
		if ctx.Err() != nil {
			break
		}
		s.log.Warn().Err(err).Int("batch", batch).Int("attempt", attempt).Msg("dispatch failed")
	}
	return &DispatchError{Batch: batch, FirstRun: first, Attempts: attempt, Err: err}
}
