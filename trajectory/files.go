// SPDX-License-Identifier: MIT
// Package: sirnet/trajectory
//
// files.go — the three per-session artifacts under one output directory.
//
// Lifecycle:
//   - Create opens x_traj.csv; WriteBatch appends one drained batch at a time.
//   - Close writes param.csv and tvec.csv, then closes x_traj.csv.
//   - Abort closes without writing metadata (session failed); Close and
//     WriteBatch fail with ErrAborted afterwards.

package trajectory

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Artifact file names inside the output directory.
const (
	TrajectoriesFile = "x_traj.csv"
	ParamsFile       = "param.csv"
	TimeVectorFile   = "tvec.csv"
)

const dirPerm = 0o755

// Output streams trajectory batches to disk.
type Output struct {
	dir  string
	mode Mode
	f    *os.File
	w    *bufio.Writer
	runs int

	aborted bool
}

// Create makes dir if needed and truncates x_traj.csv.
func Create(dir string, mode Mode) (*Output, error) {
	if _, err := ParseMode(string(mode)); err != nil {
		return nil, fmt.Errorf("Create: %w", err)
	}
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return nil, fmt.Errorf("Create: %w", err)
	}
	f, err := os.Create(filepath.Join(dir, TrajectoriesFile))
	if err != nil {
		return nil, fmt.Errorf("Create: %w", err)
	}
	return &Output{dir: dir, mode: mode, f: f, w: bufio.NewWriter(f)}, nil
}

// Dir returns the output directory.
func (o *Output) Dir() string { return o.dir }

// Runs returns how many trajectories have been written so far.
func (o *Output) Runs() int { return o.runs }

// WriteBatch serializes b in the configured mode. b may be reused by the
// caller as soon as WriteBatch returns.
func (o *Output) WriteBatch(b *Batch) error {
	if o.aborted {
		return fmt.Errorf("WriteBatch: %w", ErrAborted)
	}
	if err := Write(o.w, b, o.mode); err != nil {
		return err
	}
	o.runs += b.Runs()
	return nil
}

// Close writes param.csv and tvec.csv and closes the trajectory file.
// It fails with ErrAborted after Abort.
func (o *Output) Close(p ParamsSummary, tvec []float64) error {
	if o.aborted {
		return fmt.Errorf("Close: %w", ErrAborted)
	}
	err := o.closeTrajectories()
	if err == nil {
		err = writeFile(filepath.Join(o.dir, ParamsFile), func(w *bufio.Writer) error { return WriteParams(w, p) })
	}
	if err == nil {
		err = writeFile(filepath.Join(o.dir, TimeVectorFile), func(w *bufio.Writer) error { return WriteTimeVector(w, tvec) })
	}
	return err
}

// Abort closes the trajectory file without writing metadata.
func (o *Output) Abort() error {
	o.aborted = true
	return o.closeTrajectories()
}

func (o *Output) closeTrajectories() error {
	if o.f == nil {
		return nil
	}
	ferr := o.w.Flush()
	cerr := o.f.Close()
	o.f = nil
	return errors.Join(ferr, cerr)
}

func writeFile(path string, fn func(w *bufio.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	w := bufio.NewWriter(f)
	if err = fn(w); err != nil {
		return err
	}
	return w.Flush()
}
