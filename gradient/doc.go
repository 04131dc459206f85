// Package gradient applies ladder-operator stencils to coefficient vectors
// indexed by a basis shape, producing coefficients over the shape's
// one-step extension.
//
// 🚀 What does it compute?
//
//	The gradient of a Hagedorn wavepacket component is again a combination
//	of the same basis functions, with coefficients given by a three-term
//	recurrence: a central term weighted by the classical momentum p, a
//	lowering term weighted by √(ε²/2)·√(k_d)·conj(P)[:,d], and a raising
//	term weighted by √(ε²/2)·√(k_d+1)·P[:,d]. Raising steps out of the
//	original shape, which is why the result lives on the extension.
//
// ✨ Key properties:
//   - Scatter-add semantics: a target node accumulates contributions from
//     several source nodes; the output starts zero-filled
//   - Every write resolves its row through the extension's own position
//     map, never through the original shape
//   - Purely functional: inputs are read-only, each call allocates its own
//     |Ke|×D output, no retries, no partial results
//
// ⚙️ Usage:
//
//	import (
//		"github.com/katalvlaran/hagwave/basisshape"
//		"github.com/katalvlaran/hagwave/gradient"
//	)
//
//	op, err := gradient.New(p, P, gradient.Conjugate(P), eps)
//	...
//	ext, cnew, err := op.Apply(shape, coeffs)
//
// Complexity: O(n·D²) per application over n basis nodes.
//
// The engine depends on the basisshape.Shape contract only; any shape
// family works unchanged.
package gradient
