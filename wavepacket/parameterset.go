package wavepacket

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/hagwave/gradient"
)

// ParameterSet is the Hagedorn parameter tuple Π = (q, p, Q, P, S): the
// classical position q and momentum p (length-D complex vectors), the D×D
// complex shape matrices Q and P, and the global phase S.
//
// A ParameterSet is immutable after construction; accessors return copies,
// so a set can be shared freely between components and goroutines.
type ParameterSet struct {
	q, p []complex128
	qm   *mat.CDense // Q
	pm   *mat.CDense // P
	s    complex128
}

// NewParameterSet validates and deep-copies the parameter tuple.
// Returns ErrNilMatrix or ErrDimensionMismatch on invalid input.
func NewParameterSet(q, p []complex128, Q, P *mat.CDense, S complex128) (*ParameterSet, error) {
	if Q == nil || P == nil {
		return nil, ErrNilMatrix
	}
	dim := len(q)
	if dim == 0 {
		return nil, fmt.Errorf("empty position vector: %w", ErrDimensionMismatch)
	}
	if len(p) != dim {
		return nil, fmt.Errorf("q has %d entries, p has %d: %w", dim, len(p), ErrDimensionMismatch)
	}
	if r, c := Q.Dims(); r != dim || c != dim {
		return nil, fmt.Errorf("Q is %d×%d, want %d×%d: %w", r, c, dim, dim, ErrDimensionMismatch)
	}
	if r, c := P.Dims(); r != dim || c != dim {
		return nil, fmt.Errorf("P is %d×%d, want %d×%d: %w", r, c, dim, dim, ErrDimensionMismatch)
	}

	ps := &ParameterSet{
		q:  append([]complex128(nil), q...),
		p:  append([]complex128(nil), p...),
		qm: mat.NewCDense(dim, dim, nil),
		pm: mat.NewCDense(dim, dim, nil),
		s:  S,
	}
	ps.qm.Copy(Q)
	ps.pm.Copy(P)
	return ps, nil
}

// HarmonicParameterSet returns the standard harmonic ground configuration
// of dimension dim: q = p = 0, Q = I, P = iI, S = 0.
func HarmonicParameterSet(dim int) (*ParameterSet, error) {
	if dim < 1 {
		return nil, fmt.Errorf("dimension %d: %w", dim, ErrDimensionMismatch)
	}
	Q := mat.NewCDense(dim, dim, nil)
	P := mat.NewCDense(dim, dim, nil)
	for d := 0; d < dim; d++ {
		Q.Set(d, d, 1)
		P.Set(d, d, 1i)
	}
	return NewParameterSet(make([]complex128, dim), make([]complex128, dim), Q, P, 0)
}

// Dimension returns D.
func (ps *ParameterSet) Dimension() int { return len(ps.q) }

// Position returns a copy of q.
func (ps *ParameterSet) Position() []complex128 {
	return append([]complex128(nil), ps.q...)
}

// Momentum returns a copy of p.
func (ps *ParameterSet) Momentum() []complex128 {
	return append([]complex128(nil), ps.p...)
}

// Q returns a copy of the Q matrix.
func (ps *ParameterSet) Q() *mat.CDense {
	out := mat.NewCDense(ps.Dimension(), ps.Dimension(), nil)
	out.Copy(ps.qm)
	return out
}

// P returns a copy of the P matrix.
func (ps *ParameterSet) P() *mat.CDense {
	out := mat.NewCDense(ps.Dimension(), ps.Dimension(), nil)
	out.Copy(ps.pm)
	return out
}

// ConjugateP returns the elementwise conjugate of P, the lowering weight of
// the gradient stencil.
func (ps *ParameterSet) ConjugateP() *mat.CDense {
	return gradient.Conjugate(ps.pm)
}

// Phase returns the global phase S.
func (ps *ParameterSet) Phase() complex128 { return ps.s }
