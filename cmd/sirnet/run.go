// SPDX-License-Identifier: MIT
// Package: sirnet/cmd/sirnet
//
// run.go — the run command: network, session, artifacts.

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/sirnet/internal/config"
	"github.com/katalvlaran/sirnet/sim"
	"github.com/katalvlaran/sirnet/trajectory"
)

func newRunCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Generate a network, simulate all trajectories and write CSV artifacts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.run(cmd)
		},
	}

	d := sim.DefaultParams()
	f := cmd.Flags()
	f.Int("nodes", d.Nodes, "number of network nodes")
	f.Float64("edge-p", d.EdgeProbability, "Erdős–Rényi edge probability")
	f.Float64("init-infected", d.InitialInfected, "per-node probability of starting infected")
	f.Float64("dt", d.DT, "time step width")
	f.Int("steps", d.Steps, "number of time steps (Nt)")
	f.Float64("infection-p", d.InfectionP, "per-contact, per-step infection probability")
	f.Float64("recovery-p", d.RecoveryP, "per-step recovery probability")
	f.Int("trajectories", d.Trajectories, "total number of trajectories")
	f.Int("batch", d.BatchSize, "trajectories per dispatch")
	f.Uint64("seed", d.Seed, "master seed")
	f.Int("retries", d.DispatchRetries, "bounded re-submissions of a failed batch")
	f.String("out", "data", "output directory")
	f.String("mode", string(trajectory.ModeNodes), "trajectory rows: nodes | population")
	mustBind(a.cfg, f, map[string]string{
		config.KeyNodes:           "nodes",
		config.KeyEdgeProbability: "edge-p",
		config.KeyInitialInfected: "init-infected",
		config.KeyDT:              "dt",
		config.KeySteps:           "steps",
		config.KeyInfectionP:      "infection-p",
		config.KeyRecoveryP:       "recovery-p",
		config.KeyTrajectories:    "trajectories",
		config.KeyBatchSize:       "batch",
		config.KeySeed:            "seed",
		config.KeyDispatchRetries: "retries",
		config.KeyOutputDir:       "out",
		config.KeyOutputMode:      "mode",
	})
	return cmd
}

func (a *app) run(cmd *cobra.Command) (err error) {
	ctx := cmd.Context()
	p, err := a.cfg.Params()
	if err != nil {
		return err
	}
	mode, err := a.cfg.OutputMode()
	if err != nil {
		return err
	}
	backend, err := a.cfg.Backend()
	if err != nil {
		return err
	}

	nw, x0, err := sim.Prepare(p)
	if err != nil {
		return err
	}
	mean, std := nw.DegreeStats()
	a.log.Info().
		Int("nodes", nw.Nodes()).
		Int("edges", nw.EdgeCount()).
		Int("components", len(nw.Components())).
		Float64("degree_mean", mean).
		Float64("degree_std", std).
		Msg("network generated")

	sess, err := sim.Open(ctx, backend, sim.WithLogger(a.log))
	if err != nil {
		return err
	}
	defer func() { err = errors.Join(err, sess.Close()) }()

	out, err := trajectory.Create(a.cfg.OutputDir(), mode)
	if err != nil {
		return err
	}

	rep, err := sess.Run(ctx, nw, x0, p, out)
	if err != nil {
		return errors.Join(err, out.Abort())
	}

	summary := trajectory.ParamsSummary{Nodes: p.Nodes, Trajectories: rep.Trajectories, Steps: p.Steps}
	if err = out.Close(summary, trajectory.TimeVector(p.Steps, p.DT)); err != nil {
		return fmt.Errorf("write artifacts: %w", err)
	}
	a.log.Info().Str("dir", out.Dir()).Str("mode", string(mode)).Msg("artifacts written")
	return nil
}
