// SPDX-License-Identifier: MIT
// Package: sirnet/sim
//
// errors.go — sentinel errors for the sim package.
//
// Error classes:
//   • ErrInvalidParameter  — malformed session parameters (construction time).
//   • ErrResourceExhausted — batch output exceeds device memory (pre-dispatch).
//   • ErrBackendDispatch   — the device failed a submit or readback.
// All three abort the whole session; nothing is deferred.

package sim

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidParameter marks malformed sizes, probabilities or seeds.
	ErrInvalidParameter = errors.New("sim: invalid parameter")

	// ErrResourceExhausted marks a batch that would not fit in device memory.
	ErrResourceExhausted = errors.New("sim: resource exhausted")

	// ErrBackendDispatch marks a failed dispatch on the execution backend.
	ErrBackendDispatch = errors.New("sim: backend dispatch failure")

	// ErrDeviceReleased marks use of a device after Release.
	ErrDeviceReleased = errors.New("sim: device released")
)

// DispatchError carries the batch position of a failed dispatch.
type DispatchError struct {
	Batch    int // zero-based batch index
	FirstRun int // global index of the batch's first trajectory
	Attempts int
	Err      error
}

func (e *DispatchError) Error() string {
	return fmt.Sprintf("sim: batch %d (runs from %d) failed after %d attempt(s): %v",
		e.Batch, e.FirstRun, e.Attempts, e.Err)
}

// Unwrap exposes both the class sentinel and the backend cause.
func (e *DispatchError) Unwrap() []error { return []error{ErrBackendDispatch, e.Err} }

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidParameter, fmt.Sprintf(format, args...))
}
