// Package trajectory holds the [run][node][timestep][compartment] buffer that
// a simulation backend fills, and turns it into persisted artifacts.
//
// Artifacts (CSV, one record per line):
//
//	x_traj.csv  node mode:        node,S,I,R        per run × node × timestep
//	            population mode:  S,I,R             per run × timestep
//	param.csv   N_nodes,N_trajectories,Nt header + one row
//	tvec.csv    one time value per line, Nt+1 lines, i*dt
//
// Readers accept the writers' output and the ", " separated form, so every
// written value parses back exactly: float32 node states and float64
// population fractions use the shortest round-trip formatting.
package trajectory
