// SPDX-License-Identifier: MIT
// Package: sirnet/sim
//
// device.go — execution substrate abstraction.
//
// A Backend hands out Devices; a Device is the explicit execution context of
// one session (the counterpart of a compute context + command queue). Every
// session acquires its device, dispatches through it, and releases it.

package sim

import (
	"context"
	"fmt"

	"github.com/katalvlaran/sirnet/network"
	"github.com/katalvlaran/sirnet/sir"
	"github.com/katalvlaran/sirnet/trajectory"
)

// DeviceInfo describes the capabilities a session plans against.
type DeviceInfo struct {
	Name string
	// Workers is the number of trajectories executed concurrently.
	Workers int
	// MaxBatch caps trajectories per dispatch (work-group limit).
	MaxBatch int
	// MemoryBytes is the output memory available to one dispatch.
	MemoryBytes int64
}

// Job is the read-only input of one dispatch.
type Job struct {
	Network *network.Network
	Initial sir.States
	Seeds   []uint64 // one per trajectory; len == out.Runs()
	Params  sir.StepParams
}

// Validate checks the job against an output batch.
func (j Job) Validate(out *trajectory.Batch) error {
	switch {
	case j.Network == nil:
		return invalidf("job: nil network")
	case out == nil:
		return invalidf("job: nil output batch")
	case len(j.Initial) != j.Network.Nodes():
		return invalidf("job: %d initial states for %d nodes", len(j.Initial), j.Network.Nodes())
	case len(j.Seeds) != out.Runs():
		return invalidf("job: %d seeds for %d output runs", len(j.Seeds), out.Runs())
	case out.Nodes() != j.Network.Nodes() || out.Steps() != j.Params.Steps:
		return invalidf("job: output shape %dx%d, want %dx%d",
			out.Nodes(), out.Steps(), j.Network.Nodes(), j.Params.Steps)
	}
	if err := j.Params.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidParameter, err)
	}
	return nil
}

// Device executes batches. Dispatch blocks until every trajectory of the
// batch is written to out, or returns the first failure.
type Device interface {
	Info() DeviceInfo
	Dispatch(ctx context.Context, job Job, out *trajectory.Batch) error
	Release() error
}

// Backend acquires devices.
type Backend interface {
	Name() string
	Acquire(ctx context.Context) (Device, error)
}
