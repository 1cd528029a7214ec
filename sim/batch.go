// SPDX-License-Identifier: MIT
// Package: sirnet/sim

package sim

import (
	"context"
	"fmt"

	"github.com/katalvlaran/sirnet/network"
	"github.com/katalvlaran/sirnet/sir"
	"github.com/katalvlaran/sirnet/trajectory"
)

// SimulateBatch runs len(seeds) independent trajectories on dev and returns
// them in a freshly allocated batch. Identical inputs give identical bytes.
//
// Errors: ErrInvalidParameter for malformed inputs, ErrResourceExhausted when
// the batch exceeds the device's memory, ErrBackendDispatch when the device fails.
func SimulateBatch(ctx context.Context, dev Device, nw *network.Network, x0 sir.States, seeds []uint64, p sir.StepParams) (*trajectory.Batch, error) {
	if dev == nil {
		return nil, invalidf("SimulateBatch: nil device")
	}
	if nw == nil {
		return nil, invalidf("SimulateBatch: nil network")
	}
	if len(seeds) == 0 {
		return nil, invalidf("SimulateBatch: no seeds")
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("SimulateBatch: %w: %w", ErrInvalidParameter, err)
	}
	if _, err := x0.Compartments(); err != nil {
		return nil, fmt.Errorf("SimulateBatch: %w: %w", ErrInvalidParameter, err)
	}
	if err := checkMemory(dev.Info(), len(seeds), nw.Nodes(), p.Steps); err != nil {
		return nil, fmt.Errorf("SimulateBatch: %w", err)
	}

	out, err := trajectory.NewBatch(len(seeds), nw.Nodes(), p.Steps)
	if err != nil {
		return nil, fmt.Errorf("SimulateBatch: %w: %w", ErrInvalidParameter, err)
	}
	job := Job{Network: nw, Initial: x0, Seeds: seeds, Params: p}
	if err = job.Validate(out); err != nil {
		return nil, fmt.Errorf("SimulateBatch: %w", err)
	}
	if err = dev.Dispatch(ctx, job, out); err != nil {
		return nil, &DispatchError{Attempts: 1, Err: err}
	}
	return out, nil
}

// checkMemory rejects a batch whose output does not fit the device.
func checkMemory(info DeviceInfo, runs, nodes, steps int) error {
	need := trajectory.SizeBytes(runs, nodes, steps)
	if need > info.MemoryBytes {
		return fmt.Errorf("%w: batch of %d needs %d bytes, device %q has %d",
			ErrResourceExhausted, runs, need, info.Name, info.MemoryBytes)
	}
	return nil
}
