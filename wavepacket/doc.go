// Package wavepacket provides the container objects around the basis-shape
// core: the Hagedorn parameter tuple Π = (q, p, Q, P, S) and the
// homogeneous wavepacket holding one shape and one coefficient vector per
// component.
//
// A wavepacket never mutates itself during operator evaluation. Applying
// the gradient yields a fresh (extended shape, coefficient matrix) pair;
// the caller either adopts it via AdoptExtension — the basis-growing step
// of a propagation loop — or keeps it aside as an observable, leaving the
// packet state intact.
//
// ⚙️ Usage:
//
//	import (
//		"github.com/katalvlaran/hagwave/basisshape"
//		"github.com/katalvlaran/hagwave/wavepacket"
//	)
//
//	pi, _ := wavepacket.HarmonicParameterSet(2)
//	shape, _ := basisshape.NewHyperbolicCut(2, 8)
//	w, _ := wavepacket.New(0.1, pi, shape)
//
//	c := make([]complex128, shape.Size())
//	c[0] = 1 // ground state
//	_ = w.SetCoefficients(0, c)
//
//	ext, grad, _ := w.GradientComponent(0)
//
// Parameter sets and shapes are immutable and freely shareable; coefficient
// storage is owned by the wavepacket and copied on every access.
package wavepacket
