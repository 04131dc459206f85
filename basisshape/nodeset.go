package basisshape

import "fmt"

// NodeSet is a shape backed by an explicit node list. It is the result type
// of Extend and the reconstruction target for persisted extensions. Unlike
// the parametric families a NodeSet may be empty; an empty set is useful as
// the seed of a frontier computation.
//
// The canonical order is the (deduplicated) insertion order of the nodes
// given at construction.
//
// Immutable once built.
type NodeSet struct {
	*nodeIndex
}

// NewNodeSet constructs a shape from an explicit node list. Duplicate nodes
// are dropped, keeping the first occurrence; the input is deep-copied.
// Returns ErrBadDimension for dim < 1, ErrDimensionMismatch or
// ErrNegativeEntry for malformed nodes.
//
// Complexity: O(n·D) time and memory.
func NewNodeSet(dim int, nodes []Node) (*NodeSet, error) {
	if dim < 1 {
		return nil, fmt.Errorf("dimension %d: %w", dim, ErrBadDimension)
	}
	if err := validateNodes(dim, nodes); err != nil {
		return nil, err
	}
	seen := make(map[string]struct{}, len(nodes))
	owned := make([]Node, 0, len(nodes))
	for _, k := range nodes {
		id := k.key()
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		owned = append(owned, k.Clone())
	}
	return &NodeSet{nodeIndex: newNodeIndex(dim, owned)}, nil
}

// Description captures the dimension and the flattened node list in
// canonical order (row-major: node i occupies entries [i·D, (i+1)·D)).
func (ns *NodeSet) Description() Description {
	flat := make([]int, 0, len(ns.nodes)*ns.dim)
	for _, k := range ns.nodes {
		flat = append(flat, k...)
	}
	return Description{
		keyFamily:    FamilyNodeSet,
		keyDimension: ns.dim,
		keyNodes:     flat,
	}
}
