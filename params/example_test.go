package params_test

import (
	"fmt"

	"github.com/katalvlaran/hagwave/params"
)

// ExampleFromYAML layers a simulation config over explicit defaults and
// resolves values through both layers.
func ExampleFromYAML() {
	doc := []byte(`
eps: 0.05
dimension: 2
family: hyperboliccut
sparsity: 8
`)
	defaults := map[string]any{
		"eps":         0.1,
		"ncomponents": 1,
	}

	p, _ := params.FromYAML(doc, defaults)

	eps, _ := p.Float("eps")
	n, _ := p.Int("ncomponents")
	family, _ := p.String("family")

	fmt.Println("eps:", eps)
	fmt.Println("ncomponents:", n)
	fmt.Println("family:", family)

	// Output:
	// eps: 0.05
	// ncomponents: 1
	// family: hyperboliccut
}
