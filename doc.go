// SPDX-License-Identifier: MIT

// Package sirnet simulates stochastic SIR epidemics on random contact
// networks, many trajectories at a time.
//
// A session goes through four stages:
//
//	network/    — Erdős–Rényi G(n,p) contact network, flat float32 adjacency
//	sir/        — compartments, one-hot initial states, single-trajectory kernel
//	sim/        — parameters, seed stream, device backends, batched session loop
//	trajectory/ — 4-D batch buffer, CSV writers/readers, population summaries
//
// The sirnet command (cmd/sirnet) wires these together behind a viper
// configuration and writes x_traj.csv, param.csv and tvec.csv.
//
// Quick start:
//
//	nw, x0, err := sim.Prepare(p)
//	sess, err := sim.Open(ctx, sim.NewCPUBackend())
//	defer sess.Close()
//	out, err := trajectory.Create("data", trajectory.ModeNodes)
//	rep, err := sess.Run(ctx, nw, x0, p, out)
//	err = out.Close(trajectory.ParamsSummary{Nodes: p.Nodes, Trajectories: rep.Trajectories, Steps: p.Steps},
//		trajectory.TimeVector(p.Steps, p.DT))
package sirnet
