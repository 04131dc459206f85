// Package basisshape implements the multi-index algebra underneath truncated
// Hagedorn basis expansions: finite sets of D-dimensional non-negative
// integer tuples ("nodes"), each mapped to a dense linear position.
//
// 🚀 What is a basis shape?
//
//	A wavepacket component is a finite linear combination Σ c_k φ_k with the
//	multi-indices k drawn from a basis shape K. The shape decides which basis
//	functions participate and how their coefficients are addressed in a flat
//	array. Shapes come in families:
//	  • HyperCubic     — full product {0..K_0-1}×…×{0..K_{D-1}-1}
//	  • Simplex        — total-degree cut |k|₁ ≤ K
//	  • HyperbolicCut  — sparse cut ∏(1+k_d) ≤ K
//	  • NodeSet        — explicit node list (extension results)
//
// ✨ Key capabilities:
//   - One contract (Shape): membership, dense position lookup, canonical
//     iteration, reconstruction description, structural hash
//   - Extend: the one-step closure K ∪ {k+e_d}, the superset a stencil
//     writes into
//   - BackwardNeighbours / ForwardNeighbours: lattice adjacency queries
//     with silent boundary skipping
//   - Content-derived hashing: equal node sets hash equal, across runs,
//     processes and families
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/hagwave/basisshape"
//
//	K, _ := basisshape.NewHyperCubic(4, 4)   // 2-D, 16 nodes
//	Ke, _ := basisshape.Extend(K)            // 24 nodes
//	pos, _ := Ke.PositionOf(basisshape.Node{3, 2})
//
// Determinism:
//
//   - Every family enumerates its nodes in a fixed canonical order, so
//     iteration, positions and hashes are reproducible across runs.
//   - Shapes are immutable; structural change always builds a new shape.
//
// The stencil engine in package gradient consumes only the Shape contract,
// never family internals.
package basisshape
