package basisshape

import "fmt"

// Simplex is the total-degree shape: every node k with |k|₁ = Σ k_d ≤ K.
// Canonical order is lexicographic.
//
// Immutable once built.
type Simplex struct {
	*nodeIndex
	degree int
}

// NewSimplex constructs the simplex shape of dimension dim and maximal total
// degree K. Returns ErrBadDimension for dim < 1 and ErrBadLimit for K < 1.
//
// Complexity: O(D·C(K+D, D)) time and memory (binomial node count).
func NewSimplex(dim, degree int) (*Simplex, error) {
	if dim < 1 {
		return nil, fmt.Errorf("dimension %d: %w", dim, ErrBadDimension)
	}
	if degree < 1 {
		return nil, fmt.Errorf("degree %d: %w", degree, ErrBadLimit)
	}

	var nodes []Node
	cur := make(Node, dim)
	// Depth-first enumeration by axis yields lexicographic order directly.
	var walk func(d, budget int)
	walk = func(d, budget int) {
		if d == dim {
			nodes = append(nodes, cur.Clone())
			return
		}
		for v := 0; v <= budget; v++ {
			cur[d] = v
			walk(d+1, budget-v)
		}
		cur[d] = 0
	}
	walk(0, degree)

	return &Simplex{
		nodeIndex: newNodeIndex(dim, nodes),
		degree:    degree,
	}, nil
}

// Degree returns the maximal total degree K.
func (s *Simplex) Degree() int { return s.degree }

// Contains reports membership via the degree bound, without a table lookup.
// Complexity: O(D).
func (s *Simplex) Contains(k Node) bool {
	if len(k) != s.dim {
		return false
	}
	sum := 0
	for _, v := range k {
		if v < 0 {
			return false
		}
		sum += v
	}
	return sum <= s.degree
}

// Description captures the family tag, dimension and degree.
func (s *Simplex) Description() Description {
	return Description{
		keyFamily:    FamilySimplex,
		keyDimension: s.dim,
		keyDegree:    s.degree,
	}
}
