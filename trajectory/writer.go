// SPDX-License-Identifier: MIT
// Package: sirnet/trajectory
//
// writer.go — CSV writers for trajectories, parameters and the time vector.
//
// Contract:
//   - Node mode visits every (run, node, timestep) exactly once, runs outer,
//     nodes middle, timesteps inner; all Nt+1 snapshots are written.
//   - Population mode writes Nt+1 rows per run.
//   - Writers flush before returning and report the first write error.

package trajectory

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Mode selects the trajectory row shape.
type Mode string

const (
	// ModeNodes writes node,S,I,R per run × node × timestep.
	ModeNodes Mode = "nodes"
	// ModePopulation writes S,I,R population fractions per run × timestep.
	ModePopulation Mode = "population"
)

// ParseMode maps a case-insensitive name to a Mode.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case ModeNodes, ModePopulation:
		return m, nil
	default:
		return "", fmt.Errorf("ParseMode(%q): %w", s, ErrUnknownMode)
	}
}

// Write dispatches to the writer for mode m.
func Write(w io.Writer, b *Batch, m Mode) error {
	switch m {
	case ModeNodes:
		return WriteNodeStates(w, b)
	case ModePopulation:
		return WritePopulation(w, b)
	default:
		return fmt.Errorf("Write(%q): %w", m, ErrUnknownMode)
	}
}

// ParamsSummary is the single data row of param.csv.
type ParamsSummary struct {
	Nodes        int
	Trajectories int
	Steps        int
}

var paramsHeader = []string{"N_nodes", "N_trajectories", "Nt"}

// WriteNodeStates writes node,S,I,R rows for every run in b.
func WriteNodeStates(w io.Writer, b *Batch) error {
	cw := csv.NewWriter(w)
	rec := make([]string, 1+3)
	for r := 0; r < b.runs; r++ {
		for node := 0; node < b.nodes; node++ {
			rec[0] = strconv.Itoa(node)
			for t := 0; t < b.snaps; t++ {
				s := b.at(r, node, t)
				for c, v := range s {
					rec[1+c] = formatFloat32(v)
				}
				if err := cw.Write(rec); err != nil {
					return fmt.Errorf("WriteNodeStates: run %d node %d t %d: %w", r, node, t, err)
				}
			}
		}
	}
	return flush("WriteNodeStates", cw)
}

// WritePopulation writes S,I,R population fractions for every run in b.
func WritePopulation(w io.Writer, b *Batch) error {
	cw := csv.NewWriter(w)
	rec := make([]string, 3)
	for r, run := range Population(b) {
		for t, f := range run {
			for c, v := range f {
				rec[c] = strconv.FormatFloat(v, 'g', -1, 64)
			}
			if err := cw.Write(rec); err != nil {
				return fmt.Errorf("WritePopulation: run %d t %d: %w", r, t, err)
			}
		}
	}
	return flush("WritePopulation", cw)
}

// WriteParams writes the header and one data row.
func WriteParams(w io.Writer, p ParamsSummary) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(paramsHeader); err != nil {
		return fmt.Errorf("WriteParams: %w", err)
	}
	row := []string{strconv.Itoa(p.Nodes), strconv.Itoa(p.Trajectories), strconv.Itoa(p.Steps)}
	if err := cw.Write(row); err != nil {
		return fmt.Errorf("WriteParams: %w", err)
	}
	return flush("WriteParams", cw)
}

// WriteTimeVector writes one value per line.
func WriteTimeVector(w io.Writer, tvec []float64) error {
	cw := csv.NewWriter(w)
	rec := make([]string, 1)
	for i, v := range tvec {
		rec[0] = strconv.FormatFloat(v, 'g', -1, 64)
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("WriteTimeVector: line %d: %w", i, err)
		}
	}
	return flush("WriteTimeVector", cw)
}

func formatFloat32(v float32) string {
	return strconv.FormatFloat(float64(v), 'g', -1, 32)
}

func flush(method string, cw *csv.Writer) error {
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("%s: flush: %w", method, err)
	}
	return nil
}
