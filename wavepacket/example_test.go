package wavepacket_test

import (
	"fmt"

	"github.com/katalvlaran/hagwave/basisshape"
	"github.com/katalvlaran/hagwave/wavepacket"
)

// ExampleWavepacket demonstrates the gradient-and-adopt cycle a propagation
// loop performs: evaluate the gradient of a ground-state packet, then grow
// the basis to the extended shape.
func ExampleWavepacket() {
	pi, _ := wavepacket.HarmonicParameterSet(1)
	shape, _ := basisshape.NewHyperCubic(3)

	w, _ := wavepacket.New(1.0, pi, shape)
	_ = w.SetCoefficients(0, []complex128{1, 0, 0})

	ext, grad, _ := w.GradientComponent(0)
	fmt.Println("basis before:", shape.Size())
	fmt.Println("basis after extension:", ext.Size())

	// Adopt the first gradient column as the new component state.
	c := make([]complex128, ext.Size())
	for i := range c {
		c[i] = grad.At(i, 0)
	}
	_ = w.AdoptExtension(0, ext, c)

	adopted, _ := w.Shape(0)
	fmt.Println("component shape now:", adopted.Size(), "nodes")

	// Output:
	// basis before: 3
	// basis after extension: 4
	// component shape now: 4 nodes
}
