package basisshape

import (
	"fmt"
	"slices"
)

// Extend computes the one-step closure of s: the smallest superset shape
// containing, for every node k of s and every dimension d, the node k + e_d.
// No node is ever removed. The result is a NodeSet whose canonical order
// lists the base nodes first (in the base shape's canonical order) and then
// the frontier nodes in sorted lexicographic order; positions of shared
// nodes may therefore differ from their positions in s, and callers must
// re-resolve every position through the returned shape.
//
// Extend is a pure structural operation: it inspects the index set only,
// never coefficient data, and leaves s untouched.
//
// Returns ErrNilShape for a nil shape.
//
// Complexity: O(n·D) membership work plus O(f·log f) frontier sorting for
// the f ≤ n·D new nodes; O(n·D) memory.
func Extend(s Shape) (*NodeSet, error) {
	if s == nil {
		return nil, ErrNilShape
	}
	dim := s.Dimension()

	base := make([]Node, 0, s.Size())
	for k := range s.Nodes() {
		base = append(base, k)
	}

	// Collect the frontier: unit increments not already present.
	seen := make(map[string]struct{})
	var frontier []Node
	for _, k := range base {
		for d := 0; d < dim; d++ {
			up := k.Clone()
			up[d]++
			if s.Contains(up) {
				continue
			}
			id := up.key()
			if _, dup := seen[id]; dup {
				continue
			}
			seen[id] = struct{}{}
			frontier = append(frontier, up)
		}
	}
	slices.SortFunc(frontier, CompareNodes)

	ext, err := NewNodeSet(dim, append(base, frontier...))
	if err != nil {
		// Base nodes come from a valid shape; this would be an internal
		// inconsistency, not caller misuse.
		return nil, fmt.Errorf("extend: %w", err)
	}
	return ext, nil
}
