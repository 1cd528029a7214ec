// SPDX-License-Identifier: MIT
// Package: sirnet/trajectory
//
// errors.go — sentinel errors for the trajectory package.

package trajectory

import "errors"

var (
	// ErrBadShape indicates non-positive batch dimensions.
	ErrBadShape = errors.New("trajectory: invalid shape")

	// ErrOutOfRange indicates a run, node or timestep index outside the batch.
	ErrOutOfRange = errors.New("trajectory: index out of range")

	// ErrMalformedRow indicates a CSV record with the wrong arity, an
	// unparsable number or an unexpected node index.
	ErrMalformedRow = errors.New("trajectory: malformed row")

	// ErrTruncated indicates a stream whose record count is not a whole
	// number of trajectories.
	ErrTruncated = errors.New("trajectory: truncated stream")

	// ErrUnknownMode indicates an output mode name that is not recognised.
	ErrUnknownMode = errors.New("trajectory: unknown output mode")

	// ErrAborted indicates use of an Output after Abort.
	ErrAborted = errors.New("trajectory: output aborted")
)
