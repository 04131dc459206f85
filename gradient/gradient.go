package gradient

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/hagwave/basisshape"
)

// Sentinel errors for operator construction and application.
var (
	// ErrNilShape indicates a nil basis shape.
	ErrNilShape = errors.New("gradient: shape is nil")
	// ErrNilMatrix indicates a nil ladder weight matrix.
	ErrNilMatrix = errors.New("gradient: weight matrix is nil")
	// ErrDimensionMismatch indicates momentum/matrix/shape dimensions disagree.
	ErrDimensionMismatch = errors.New("gradient: dimension mismatch")
	// ErrNonPositiveEps indicates eps ≤ 0.
	ErrNonPositiveEps = errors.New("gradient: eps must be positive")
	// ErrCoefficientCount indicates the coefficient vector length differs
	// from the shape size.
	ErrCoefficientCount = errors.New("gradient: coefficient count does not match shape size")
)

// Operator is a ladder stencil: the action of a gradient-type operator on a
// coefficient vector, expressed through the three-term recurrence
//
//	c′[k]      += c[k] · p                          (central)
//	c′[k−e_d]  += √(ε²/2) · √(k_d)   · c[k] · Lower[:,d]
//	c′[k+e_d]  += √(ε²/2) · √(k_d+1) · c[k] · Raise[:,d]
//
// with the forward writes landing in the one-step extension of the shape.
// The weight matrices are supplied by the caller (for the Hagedorn gradient:
// Raise = P, Lower = conj(P), p the classical momentum) and used uniformly
// for every node.
//
// An Operator is immutable after New and safe to share across goroutines;
// each Apply call allocates its own output.
type Operator struct {
	dim      int
	momentum []complex128
	raise    *mat.CDense
	lower    *mat.CDense
	scale    complex128 // √(ε²/2)
}

// New validates and captures the operator data: the central vector p of
// length D, the D×D raising and lowering weight matrices, and the positive
// semiclassical scale eps. The inputs are copied; later mutation by the
// caller does not affect the operator.
//
// Returns ErrNilMatrix, ErrDimensionMismatch or ErrNonPositiveEps on
// invalid input.
func New(p []complex128, raise, lower *mat.CDense, eps float64) (*Operator, error) {
	if raise == nil || lower == nil {
		return nil, ErrNilMatrix
	}
	dim := len(p)
	if dim == 0 {
		return nil, fmt.Errorf("empty momentum vector: %w", ErrDimensionMismatch)
	}
	if r, c := raise.Dims(); r != dim || c != dim {
		return nil, fmt.Errorf("raise matrix is %d×%d, want %d×%d: %w", r, c, dim, dim, ErrDimensionMismatch)
	}
	if r, c := lower.Dims(); r != dim || c != dim {
		return nil, fmt.Errorf("lower matrix is %d×%d, want %d×%d: %w", r, c, dim, dim, ErrDimensionMismatch)
	}
	if eps <= 0 || math.IsNaN(eps) {
		return nil, fmt.Errorf("eps %v: %w", eps, ErrNonPositiveEps)
	}

	op := &Operator{
		dim:      dim,
		momentum: make([]complex128, dim),
		raise:    mat.NewCDense(dim, dim, nil),
		lower:    mat.NewCDense(dim, dim, nil),
		scale:    complex(math.Sqrt(eps*eps/2), 0),
	}
	copy(op.momentum, p)
	op.raise.Copy(raise)
	op.lower.Copy(lower)
	return op, nil
}

// Dimension returns D.
func (op *Operator) Dimension() int { return op.dim }

// Apply scatters the stencil over every node of shape, producing the
// one-step extension and a fresh |Ke|×D coefficient matrix with one column
// per dimension. The source coefficients are read only; nothing visible to
// the caller is mutated, and on error no partial result is returned.
//
// Per node k with source coefficient c_k, three contributions accumulate:
// the central term c_k·p into row Ke[k], the backward terms into rows
// Ke[k−e_d] for the in-shape backward neighbours of k, and the forward
// terms into rows Ke[k+e_d] with the neighbours resolved against the
// extension, where boundary increments always exist by construction.
//
// Returns ErrNilShape, ErrDimensionMismatch or ErrCoefficientCount on
// misuse.
//
// Complexity: O(n·D²) time, O(|Ke|·D) memory for the result.
func (op *Operator) Apply(shape basisshape.Shape, coeffs []complex128) (*basisshape.NodeSet, *mat.CDense, error) {
	if shape == nil {
		return nil, nil, ErrNilShape
	}
	if shape.Dimension() != op.dim {
		return nil, nil, fmt.Errorf("shape dimension %d, operator dimension %d: %w",
			shape.Dimension(), op.dim, ErrDimensionMismatch)
	}
	if len(coeffs) != shape.Size() {
		return nil, nil, fmt.Errorf("%d coefficients for %d nodes: %w",
			len(coeffs), shape.Size(), ErrCoefficientCount)
	}

	ext, err := basisshape.Extend(shape)
	if err != nil {
		return nil, nil, err
	}
	cnew := mat.NewCDense(ext.Size(), op.dim, nil)

	for k := range shape.Nodes() {
		src, err := shape.PositionOf(k)
		if err != nil {
			return nil, nil, err
		}
		ck := coeffs[src]
		if ck == 0 {
			continue // nothing to scatter
		}

		// Central term.
		row, err := ext.PositionOf(k)
		if err != nil {
			return nil, nil, err
		}
		for j := 0; j < op.dim; j++ {
			cnew.Set(row, j, cnew.At(row, j)+ck*op.momentum[j])
		}

		// Backward terms: neighbours within the original shape.
		nbw, err := basisshape.BackwardNeighbours(shape, k)
		if err != nil {
			return nil, nil, err
		}
		for _, nb := range nbw {
			row, err := ext.PositionOf(nb.Node)
			if err != nil {
				return nil, nil, err
			}
			w := op.scale * complex(math.Sqrt(float64(k[nb.Dim])), 0) * ck
			for j := 0; j < op.dim; j++ {
				cnew.Set(row, j, cnew.At(row, j)+w*op.lower.At(j, nb.Dim))
			}
		}

		// Forward terms: neighbours resolved against the extension, since
		// increments of boundary nodes lie outside the original shape.
		nfw, err := basisshape.ForwardNeighbours(ext, k)
		if err != nil {
			return nil, nil, err
		}
		for _, nb := range nfw {
			row, err := ext.PositionOf(nb.Node)
			if err != nil {
				return nil, nil, err
			}
			w := op.scale * complex(math.Sqrt(float64(k[nb.Dim]+1)), 0) * ck
			for j := 0; j < op.dim; j++ {
				cnew.Set(row, j, cnew.At(row, j)+w*op.raise.At(j, nb.Dim))
			}
		}
	}

	return ext, cnew, nil
}

// Conjugate returns a D×D elementwise complex conjugate of m. Convenience
// for the common Lower = conj(Raise) pairing of the Hagedorn gradient.
func Conjugate(m *mat.CDense) *mat.CDense {
	r, c := m.Dims()
	out := mat.NewCDense(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out.Set(i, j, cmplx.Conj(m.At(i, j)))
		}
	}
	return out
}
