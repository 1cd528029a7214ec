// Package sir models per-node Susceptible/Infected/Recovered compartments on a
// contact network: the one-hot state encoding, the initial-state sampler, the
// per-step stochastic transition law and the single-trajectory kernel that a
// parallel backend runs once per seed.
//
// Transition law (synchronous, per step, per node):
//
//	S → I  with probability 1 − (1 − β)^k, k = infected neighbours at step t
//	I → R  with probability γ
//	R      absorbing
//
// Each infected neighbour transmits independently with probability β. Every
// snapshot is one-hot, so S+I+R == 1 holds exactly at every timestep.
package sir
