package wavepacket

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/hagwave/basisshape"
	"github.com/katalvlaran/hagwave/gradient"
)

// Wavepacket is a homogeneous Hagedorn wavepacket: N components sharing one
// parameter set Π, each component carrying its own basis shape and
// coefficient vector. It owns its coefficient storage; all accessors return
// copies and all operators return fresh results, so a Wavepacket is never
// mutated behind the caller's back.
type Wavepacket struct {
	eps    float64
	pi     *ParameterSet
	shapes []basisshape.Shape
	coeffs [][]complex128
}

// New constructs a wavepacket with the semiclassical scale eps, the shared
// parameter set pi, and one basis shape per component. Coefficients start
// at zero; populate them with SetCoefficients.
//
// Returns ErrNonPositiveEps, ErrNilParameters, ErrNoComponents, ErrNilShape
// or ErrDimensionMismatch on invalid input.
func New(eps float64, pi *ParameterSet, shapes ...basisshape.Shape) (*Wavepacket, error) {
	if eps <= 0 || math.IsNaN(eps) {
		return nil, fmt.Errorf("eps %v: %w", eps, ErrNonPositiveEps)
	}
	if pi == nil {
		return nil, ErrNilParameters
	}
	if len(shapes) == 0 {
		return nil, ErrNoComponents
	}
	for i, s := range shapes {
		if s == nil {
			return nil, fmt.Errorf("component %d: %w", i, ErrNilShape)
		}
		if s.Dimension() != pi.Dimension() {
			return nil, fmt.Errorf("component %d shape dimension %d, parameters dimension %d: %w",
				i, s.Dimension(), pi.Dimension(), ErrDimensionMismatch)
		}
	}

	w := &Wavepacket{
		eps:    eps,
		pi:     pi,
		shapes: append([]basisshape.Shape(nil), shapes...),
		coeffs: make([][]complex128, len(shapes)),
	}
	for i, s := range shapes {
		w.coeffs[i] = make([]complex128, s.Size())
	}
	return w, nil
}

// Dimension returns D.
func (w *Wavepacket) Dimension() int { return w.pi.Dimension() }

// NComponents returns the number of components N.
func (w *Wavepacket) NComponents() int { return len(w.shapes) }

// Eps returns the semiclassical scale ε.
func (w *Wavepacket) Eps() float64 { return w.eps }

// Parameters returns the shared parameter set Π. The set is immutable, so
// sharing the pointer is safe.
func (w *Wavepacket) Parameters() *ParameterSet { return w.pi }

// Shape returns the basis shape of component i. Shapes are immutable, so
// sharing is safe. Returns ErrComponentRange for i outside [0, N).
func (w *Wavepacket) Shape(i int) (basisshape.Shape, error) {
	if i < 0 || i >= len(w.shapes) {
		return nil, fmt.Errorf("component %d of %d: %w", i, len(w.shapes), ErrComponentRange)
	}
	return w.shapes[i], nil
}

// Coefficients returns a copy of component i's coefficient vector, indexed
// by the component shape's positions.
func (w *Wavepacket) Coefficients(i int) ([]complex128, error) {
	if i < 0 || i >= len(w.coeffs) {
		return nil, fmt.Errorf("component %d of %d: %w", i, len(w.coeffs), ErrComponentRange)
	}
	return append([]complex128(nil), w.coeffs[i]...), nil
}

// SetCoefficients replaces component i's coefficients with a copy of c.
// Returns ErrCoefficientCount when len(c) differs from the shape size.
func (w *Wavepacket) SetCoefficients(i int, c []complex128) error {
	if i < 0 || i >= len(w.coeffs) {
		return fmt.Errorf("component %d of %d: %w", i, len(w.coeffs), ErrComponentRange)
	}
	if len(c) != w.shapes[i].Size() {
		return fmt.Errorf("%d coefficients for %d nodes: %w",
			len(c), w.shapes[i].Size(), ErrCoefficientCount)
	}
	copy(w.coeffs[i], c)
	return nil
}

// GradientComponent applies the gradient stencil to component i: the raising
// weight is P, the lowering weight conj(P), the central vector the momentum
// p. It returns the extended shape and the |Ke|×D coefficient matrix, one
// column per dimension, leaving the wavepacket itself untouched. The caller
// decides whether to adopt the extension or keep it as a separate
// observable.
func (w *Wavepacket) GradientComponent(i int) (*basisshape.NodeSet, *mat.CDense, error) {
	if i < 0 || i >= len(w.shapes) {
		return nil, nil, fmt.Errorf("component %d of %d: %w", i, len(w.shapes), ErrComponentRange)
	}
	op, err := gradient.New(w.pi.Momentum(), w.pi.P(), w.pi.ConjugateP(), w.eps)
	if err != nil {
		return nil, nil, err
	}
	return op.Apply(w.shapes[i], w.coeffs[i])
}

// Gradient applies the gradient stencil to every component in order.
func (w *Wavepacket) Gradient() ([]*basisshape.NodeSet, []*mat.CDense, error) {
	exts := make([]*basisshape.NodeSet, len(w.shapes))
	grads := make([]*mat.CDense, len(w.shapes))
	for i := range w.shapes {
		ext, g, err := w.GradientComponent(i)
		if err != nil {
			return nil, nil, fmt.Errorf("component %d: %w", i, err)
		}
		exts[i] = ext
		grads[i] = g
	}
	return exts, grads, nil
}

// AdoptExtension replaces component i's shape and coefficients with an
// extended shape and a coefficient vector over it, the step a propagation
// loop performs after a basis-growing operation. The inputs are copied.
func (w *Wavepacket) AdoptExtension(i int, ext basisshape.Shape, c []complex128) error {
	if i < 0 || i >= len(w.shapes) {
		return fmt.Errorf("component %d of %d: %w", i, len(w.shapes), ErrComponentRange)
	}
	if ext == nil {
		return fmt.Errorf("component %d: %w", i, ErrNilShape)
	}
	if ext.Dimension() != w.Dimension() {
		return fmt.Errorf("extension dimension %d, wavepacket dimension %d: %w",
			ext.Dimension(), w.Dimension(), ErrDimensionMismatch)
	}
	if len(c) != ext.Size() {
		return fmt.Errorf("%d coefficients for %d nodes: %w", len(c), ext.Size(), ErrCoefficientCount)
	}
	w.shapes[i] = ext
	w.coeffs[i] = append([]complex128(nil), c...)
	return nil
}

// Description summarizes the wavepacket for a persistence layer: dimension,
// component count, eps, and per-component shape hash and description.
func (w *Wavepacket) Description() map[string]any {
	shapes := make([]basisshape.Description, len(w.shapes))
	hashes := make([]uint64, len(w.shapes))
	for i, s := range w.shapes {
		shapes[i] = s.Description()
		hashes[i] = s.Hash()
	}
	return map[string]any{
		"dimension":   w.Dimension(),
		"ncomponents": w.NComponents(),
		"eps":         w.eps,
		"shapes":      shapes,
		"shape_hash":  hashes,
	}
}
