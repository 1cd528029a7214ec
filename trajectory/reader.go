// SPDX-License-Identifier: MIT
// Package: sirnet/trajectory
//
// reader.go — parsers for the artifacts written by writer.go.
// Leading spaces are trimmed, so "a, b, c" rows parse as well as "a,b,c".

package trajectory

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/sirnet/sir"
)

func newReader(r io.Reader, fields int) *csv.Reader {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = fields
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true
	return cr
}

// readAll calls fn for every record; line numbers are 1-based.
func readAll(method string, cr *csv.Reader, fn func(line int, rec []string) error) error {
	for line := 1; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("%s: line %d: %v: %w", method, line, err, ErrMalformedRow)
		}
		if err = fn(line, rec); err != nil {
			return err
		}
	}
}

func parseFloat(method string, line int, s string, bits int) (float64, error) {
	v, err := strconv.ParseFloat(s, bits)
	if err != nil {
		return 0, fmt.Errorf("%s: line %d: %q: %w", method, line, s, ErrMalformedRow)
	}
	return v, nil
}

// ReadNodeStates parses node-mode rows back into a Batch of the given node
// count and step count. The run count is inferred from the row count.
func ReadNodeStates(r io.Reader, nodes, steps int) (*Batch, error) {
	const method = "ReadNodeStates"
	if nodes < 1 || steps < 1 {
		return nil, fmt.Errorf("%s(%d,%d): %w", method, nodes, steps, ErrBadShape)
	}
	snaps := steps + 1
	var states []sir.State

	err := readAll(method, newReader(r, 4), func(line int, rec []string) error {
		k := len(states)
		wantNode := (k / snaps) % nodes
		node, err := strconv.Atoi(rec[0])
		if err != nil || node != wantNode {
			return fmt.Errorf("%s: line %d: node %q, want %d: %w", method, line, rec[0], wantNode, ErrMalformedRow)
		}
		var s sir.State
		for c := range s {
			v, err := parseFloat(method, line, rec[1+c], 32)
			if err != nil {
				return err
			}
			s[c] = float32(v)
		}
		states = append(states, s)
		return nil
	})
	if err != nil {
		return nil, err
	}

	per := nodes * snaps
	if len(states) == 0 || len(states)%per != 0 {
		return nil, fmt.Errorf("%s: %d rows, want a positive multiple of %d: %w", method, len(states), per, ErrTruncated)
	}
	b, err := NewBatch(len(states)/per, nodes, steps)
	if err != nil {
		return nil, err
	}
	for k, s := range states {
		run, rem := k/per, k%per
		b.set(run, rem/snaps, rem%snaps, s)
	}
	return b, nil
}

// ReadPopulation parses population-mode rows into out[run][t].
func ReadPopulation(r io.Reader, steps int) ([][]Fractions, error) {
	const method = "ReadPopulation"
	if steps < 1 {
		return nil, fmt.Errorf("%s(%d): %w", method, steps, ErrBadShape)
	}
	snaps := steps + 1
	var rows []Fractions

	err := readAll(method, newReader(r, 3), func(line int, rec []string) error {
		var f Fractions
		for c := range f {
			v, err := parseFloat(method, line, rec[c], 64)
			if err != nil {
				return err
			}
			f[c] = v
		}
		rows = append(rows, f)
		return nil
	})
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 || len(rows)%snaps != 0 {
		return nil, fmt.Errorf("%s: %d rows, want a positive multiple of %d: %w", method, len(rows), snaps, ErrTruncated)
	}

	out := make([][]Fractions, 0, len(rows)/snaps)
	for i := 0; i < len(rows); i += snaps {
		out = append(out, rows[i:i+snaps])
	}
	return out, nil
}

// ReadParams parses param.csv.
func ReadParams(r io.Reader) (ParamsSummary, error) {
	const method = "ReadParams"
	var (
		p    ParamsSummary
		rows int
	)
	err := readAll(method, newReader(r, 3), func(line int, rec []string) error {
		rows++
		if line == 1 {
			for i, h := range paramsHeader {
				if rec[i] != h {
					return fmt.Errorf("%s: header %q, want %q: %w", method, rec[i], h, ErrMalformedRow)
				}
			}
			return nil
		}
		if line > 2 {
			return fmt.Errorf("%s: line %d: extra row: %w", method, line, ErrMalformedRow)
		}
		dst := []*int{&p.Nodes, &p.Trajectories, &p.Steps}
		for i, s := range rec {
			v, err := strconv.Atoi(s)
			if err != nil {
				return fmt.Errorf("%s: line %d: %q: %w", method, line, s, ErrMalformedRow)
			}
			*dst[i] = v
		}
		return nil
	})
	if err != nil {
		return ParamsSummary{}, err
	}
	if rows != 2 {
		return ParamsSummary{}, fmt.Errorf("%s: %d rows: %w", method, rows, ErrTruncated)
	}
	return p, nil
}

// ReadTimeVector parses tvec.csv.
func ReadTimeVector(r io.Reader) ([]float64, error) {
	const method = "ReadTimeVector"
	var out []float64
	err := readAll(method, newReader(r, 1), func(line int, rec []string) error {
		v, err := parseFloat(method, line, rec[0], 64)
		if err != nil {
			return err
		}
		out = append(out, v)
		return nil
	})
	return out, err
}
