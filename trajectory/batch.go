// SPDX-License-Identifier: MIT
// Package: sirnet/trajectory
//
// batch.go — flat 4-D trajectory buffer.
//
// Layout: data[((run*nodes+node)*snaps+t)*3 + c], snaps = steps+1.
// Each run occupies one contiguous block, the exact shape sir.Simulate
// writes, so a backend hands Run(r) to one worker without copying.

package trajectory

import (
	"fmt"
	"math"
	"math/bits"

	"github.com/katalvlaran/sirnet/sir"
)

// BytesPerValue is the size of one stored compartment value (float32).
const BytesPerValue = 4

// Batch stores the trajectories of one dispatch.
type Batch struct {
	runs, nodes, snaps int
	data               []float32
}

// NewBatch allocates a zeroed batch for runs × nodes × (steps+1) snapshots.
// Complexity: O(runs·nodes·steps) memory.
func NewBatch(runs, nodes, steps int) (*Batch, error) {
	if runs < 1 || nodes < 1 || steps < 1 {
		return nil, fmt.Errorf("NewBatch(%d,%d,%d): %w", runs, nodes, steps, ErrBadShape)
	}
	size := SizeBytes(runs, nodes, steps)
	if size == math.MaxInt64 || size/BytesPerValue > int64(math.MaxInt) {
		return nil, fmt.Errorf("NewBatch(%d,%d,%d): size overflows: %w", runs, nodes, steps, ErrBadShape)
	}
	snaps := steps + 1
	return &Batch{
		runs:  runs,
		nodes: nodes,
		snaps: snaps,
		data:  make([]float32, runs*nodes*snaps*sir.NumCompartments),
	}, nil
}

// SizeBytes returns the storage a batch of the given shape needs.
// A size that does not fit in int64 saturates to math.MaxInt64, so it never
// passes a memory check. Non-positive dimensions give 0.
func SizeBytes(runs, nodes, steps int) int64 {
	if runs < 1 || nodes < 1 || steps < 1 {
		return 0
	}
	size := uint64(sir.NumCompartments * BytesPerValue)
	for _, d := range [...]uint64{uint64(runs), uint64(nodes), uint64(steps) + 1} {
		hi, lo := bits.Mul64(size, d)
		if hi != 0 || lo > math.MaxInt64 {
			return math.MaxInt64
		}
		size = lo
	}
	return int64(size)
}

// Runs returns the number of trajectories held.
func (b *Batch) Runs() int { return b.runs }

// Nodes returns the node count.
func (b *Batch) Nodes() int { return b.nodes }

// Steps returns Nt.
func (b *Batch) Steps() int { return b.snaps - 1 }

// Snapshots returns Nt+1.
func (b *Batch) Snapshots() int { return b.snaps }

// Data exposes the backing store. Callers must not retain it past the
// batch's reuse by the next dispatch.
func (b *Batch) Data() []float32 { return b.data }

// Run returns the contiguous block of trajectory r.
func (b *Batch) Run(r int) ([]float32, error) {
	if r < 0 || r >= b.runs {
		return nil, fmt.Errorf("Batch.Run(%d): %w", r, ErrOutOfRange)
	}
	width := b.nodes * b.snaps * sir.NumCompartments
	return b.data[r*width : (r+1)*width], nil
}

// At returns the state of node at timestep t in run r.
func (b *Batch) At(r, node, t int) (sir.State, error) {
	if r < 0 || r >= b.runs || node < 0 || node >= b.nodes || t < 0 || t >= b.snaps {
		return sir.State{}, fmt.Errorf("Batch.At(%d,%d,%d): %w", r, node, t, ErrOutOfRange)
	}
	return b.at(r, node, t), nil
}

func (b *Batch) at(r, node, t int) sir.State {
	i := ((r*b.nodes+node)*b.snaps + t) * sir.NumCompartments
	return sir.State{b.data[i], b.data[i+1], b.data[i+2]}
}

func (b *Batch) set(r, node, t int, s sir.State) {
	i := ((r*b.nodes+node)*b.snaps + t) * sir.NumCompartments
	copy(b.data[i:i+sir.NumCompartments], s[:])
}

// Head returns a view of the first runs trajectories sharing storage with b.
// Used for the final, partial batch of a session.
func (b *Batch) Head(runs int) (*Batch, error) {
	if runs < 1 || runs > b.runs {
		return nil, fmt.Errorf("Batch.Head(%d) of %d: %w", runs, b.runs, ErrOutOfRange)
	}
	width := b.nodes * b.snaps * sir.NumCompartments
	return &Batch{runs: runs, nodes: b.nodes, snaps: b.snaps, data: b.data[:runs*width]}, nil
}
