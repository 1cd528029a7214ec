// Package network builds and exposes the static contact graph that every
// SIR trajectory runs on.
//
// The package offers:
//
//   - Generation:
//     – Generate(n, p, opts...): Erdős–Rényi G(n,p) over nodes 0..n-1.
//     – FromAdjacency(n, flat): validated import of an external 0/1 matrix.
//   - Representation:
//     – a row-major flat n×n adjacency of float32 indicators, the layout a
//     compute backend consumes directly;
//     – per-node neighbour lists for O(deg) kernel access.
//   - Analysis (gonum):
//     – Graph():        gonum simple.UndirectedGraph view.
//     – Components():   connected components via gonum topo.
//     – DegreeStats():  mean and standard deviation of node degree.
//
// Guarantees:
//
//   - Symmetric adjacency, zero diagonal, every entry exactly 0 or 1.
//   - Immutable after construction; safe for any number of concurrent readers.
//   - Determinism: same (n, p, seed) ⇒ identical adjacency.
//   - Structured sentinel errors; option constructors panic on nil inputs,
//     algorithms never panic.
package network
