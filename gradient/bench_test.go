package gradient_test

import (
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/hagwave/basisshape"
	"github.com/katalvlaran/hagwave/gradient"
)

// benchmarkApply measures one stencil application over a prebuilt shape.
func benchmarkApply(b *testing.B, s basisshape.Shape) {
	dim := s.Dimension()
	p := make([]complex128, dim)
	data := make([]complex128, dim*dim)
	for i := range p {
		p[i] = complex(1, 0.5)
		data[i*dim+i] = 1i
	}
	raise := mat.NewCDense(dim, dim, data)
	op, err := gradient.New(p, raise, gradient.Conjugate(raise), 0.1)
	if err != nil {
		b.Fatalf("New failed: %v", err)
	}
	coeffs := make([]complex128, s.Size())
	for i := range coeffs {
		coeffs[i] = complex(float64(i%7)+1, -1)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := op.Apply(s, coeffs); err != nil {
			b.Fatalf("Apply failed: %v", err)
		}
	}
}

// BenchmarkApply_HyperCubic2D benchmarks the dense 2-D case (1024 nodes).
func BenchmarkApply_HyperCubic2D(b *testing.B) {
	s, err := basisshape.NewHyperCubic(32, 32)
	if err != nil {
		b.Fatalf("NewHyperCubic failed: %v", err)
	}
	benchmarkApply(b, s)
}

// BenchmarkApply_HyperbolicCut4D benchmarks the sparse 4-D case.
func BenchmarkApply_HyperbolicCut4D(b *testing.B) {
	s, err := basisshape.NewHyperbolicCut(4, 16)
	if err != nil {
		b.Fatalf("NewHyperbolicCut failed: %v", err)
	}
	benchmarkApply(b, s)
}
