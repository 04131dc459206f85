package basisshape

import "fmt"

// HyperbolicCut is the hyperbolically reduced shape: every node k with
// ∏(1+k_d) ≤ K. It keeps high single-axis excitations while cutting mixed
// ones, which makes it the sparse workhorse for higher dimensions.
// Canonical order is lexicographic.
//
// Immutable once built.
type HyperbolicCut struct {
	*nodeIndex
	cut int
}

// NewHyperbolicCut constructs the hyperbolic-cut shape of dimension dim and
// sparsity parameter K. Returns ErrBadDimension for dim < 1 and ErrBadLimit
// for K < 1.
//
// Complexity: O(D·n) time and memory for the n ∈ O(K·log^(D-1) K) nodes.
func NewHyperbolicCut(dim, cut int) (*HyperbolicCut, error) {
	if dim < 1 {
		return nil, fmt.Errorf("dimension %d: %w", dim, ErrBadDimension)
	}
	if cut < 1 {
		return nil, fmt.Errorf("cut %d: %w", cut, ErrBadLimit)
	}

	var nodes []Node
	cur := make(Node, dim)
	// Depth-first by axis: the remaining budget for axes d.. is K divided by
	// the product accumulated so far (integer floor).
	var walk func(d, budget int)
	walk = func(d, budget int) {
		if d == dim {
			nodes = append(nodes, cur.Clone())
			return
		}
		for v := 0; v+1 <= budget; v++ {
			cur[d] = v
			walk(d+1, budget/(v+1))
		}
		cur[d] = 0
	}
	walk(0, cut)

	return &HyperbolicCut{
		nodeIndex: newNodeIndex(dim, nodes),
		cut:       cut,
	}, nil
}

// Cut returns the sparsity parameter K.
func (h *HyperbolicCut) Cut() int { return h.cut }

// Contains reports membership via the product bound, without a table lookup.
// Complexity: O(D).
func (h *HyperbolicCut) Contains(k Node) bool {
	if len(k) != h.dim {
		return false
	}
	prod := 1
	for _, v := range k {
		if v < 0 {
			return false
		}
		prod *= 1 + v
		if prod > h.cut {
			return false
		}
	}
	return true
}

// Description captures the family tag, dimension and cut.
func (h *HyperbolicCut) Description() Description {
	return Description{
		keyFamily:    FamilyHyperbolicCut,
		keyDimension: h.dim,
		keyCut:       h.cut,
	}
}
