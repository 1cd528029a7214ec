// SPDX-License-Identifier: MIT
// Package: sirnet/sim
//
// cpu.go — goroutine-pool backend.
//
// Scheduling:
//   - One goroutine per trajectory, at most Workers running at once
//     (errgroup.SetLimit).
//   - Workers share nothing mutable: each owns its seed's RNG stream and its
//     contiguous slice of the output batch.
//   - The first worker error cancels workers not yet started.

package sim

import (
	"context"
	"fmt"
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/sirnet/sir"
	"github.com/katalvlaran/sirnet/trajectory"
)

// CPU backend defaults.
const (
	DefaultMaxBatch    = 1024
	DefaultMemoryBytes = int64(1) << 30
	cpuBackendName     = "cpu"
)

// CPUOption configures a CPUBackend. Constructors panic on meaningless values.
type CPUOption func(*CPUBackend)

// WithWorkers sets the number of concurrently running trajectories.
func WithWorkers(n int) CPUOption {
	if n < 1 {
		panic("sim: WithWorkers(n<1)")
	}
	return func(b *CPUBackend) { b.workers = n }
}

// WithMaxBatch sets the per-dispatch trajectory cap.
func WithMaxBatch(n int) CPUOption {
	if n < 1 {
		panic("sim: WithMaxBatch(n<1)")
	}
	return func(b *CPUBackend) { b.maxBatch = n }
}

// WithMemoryBytes sets the output memory budget of one dispatch.
func WithMemoryBytes(n int64) CPUOption {
	if n < 1 {
		panic("sim: WithMemoryBytes(n<1)")
	}
	return func(b *CPUBackend) { b.memory = n }
}

// CPUBackend runs trajectories on local goroutines.
type CPUBackend struct {
	workers  int
	maxBatch int
	memory   int64
}

// NewCPUBackend returns a backend with GOMAXPROCS workers by default.
func NewCPUBackend(opts ...CPUOption) *CPUBackend {
	b := &CPUBackend{
		workers:  runtime.GOMAXPROCS(0),
		maxBatch: DefaultMaxBatch,
		memory:   DefaultMemoryBytes,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Name implements Backend.
func (b *CPUBackend) Name() string { return cpuBackendName }

// Acquire implements Backend.
func (b *CPUBackend) Acquire(ctx context.Context) (Device, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("cpu: acquire: %w", err)
	}
	return &CPUDevice{info: DeviceInfo{
		Name:        fmt.Sprintf("%s/%s (%d workers)", runtime.GOOS, runtime.GOARCH, b.workers),
		Workers:     b.workers,
		MaxBatch:    b.maxBatch,
		MemoryBytes: b.memory,
	}}, nil
}

// CPUDevice is an acquired CPU execution context.
type CPUDevice struct {
	info     DeviceInfo
	released atomic.Bool
}

// Info implements Device.
func (d *CPUDevice) Info() DeviceInfo { return d.info }

// Dispatch implements Device.
func (d *CPUDevice) Dispatch(ctx context.Context, job Job, out *trajectory.Batch) error {
	if d.released.Load() {
		return ErrDeviceReleased
	}
	if err := job.Validate(out); err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(d.info.Workers)
	for r, seed := range job.Seeds {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			dst, err := out.Run(r)
			if err != nil {
				return err
			}
			if err = sir.Simulate(job.Network, job.Initial, seed, job.Params, dst); err != nil {
				return fmt.Errorf("trajectory %d: %w", r, err)
			}
			return nil
		})
	}
	return g.Wait()
}

// Release implements Device. Releasing twice is an error.
func (d *CPUDevice) Release() error {
	if d.released.Swap(true) {
		return ErrDeviceReleased
	}
	return nil
}
