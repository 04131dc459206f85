package basisshape

import "fmt"

// BackwardNeighbours enumerates the lattice neighbours k − e_d of k that lie
// inside s, in increasing dimension order. Dimensions with k_d = 0, and
// dimensions whose decremented node is absent from s, are silently skipped:
// that is the boundary of the index lattice, not an error.
//
// Read-only and side-effect free.
// Returns ErrNilShape or ErrDimensionMismatch on misuse.
//
// Complexity: O(D²) time (one O(D) membership probe per dimension).
func BackwardNeighbours(s Shape, k Node) ([]Neighbour, error) {
	if s == nil {
		return nil, ErrNilShape
	}
	if len(k) != s.Dimension() {
		return nil, fmt.Errorf("node %v has %d entries, shape has dimension %d: %w",
			k, len(k), s.Dimension(), ErrDimensionMismatch)
	}
	nbs := make([]Neighbour, 0, len(k))
	for d := range k {
		if k[d] == 0 {
			continue
		}
		down := k.Clone()
		down[d]--
		if !s.Contains(down) {
			continue
		}
		nbs = append(nbs, Neighbour{Dim: d, Node: down})
	}
	return nbs, nil
}

// ForwardNeighbours enumerates the lattice neighbours k + e_d of k that lie
// inside s, in increasing dimension order. Dimensions whose incremented node
// is absent from s are silently skipped.
//
// Read-only and side-effect free.
// Returns ErrNilShape or ErrDimensionMismatch on misuse.
//
// Complexity: O(D²) time.
func ForwardNeighbours(s Shape, k Node) ([]Neighbour, error) {
	if s == nil {
		return nil, ErrNilShape
	}
	if len(k) != s.Dimension() {
		return nil, fmt.Errorf("node %v has %d entries, shape has dimension %d: %w",
			k, len(k), s.Dimension(), ErrDimensionMismatch)
	}
	nbs := make([]Neighbour, 0, len(k))
	for d := range k {
		up := k.Clone()
		up[d]++
		if !s.Contains(up) {
			continue
		}
		nbs = append(nbs, Neighbour{Dim: d, Node: up})
	}
	return nbs, nil
}
