package basisshape

import (
	"fmt"
	"iter"
)

// nodeIndex is the shared backbone of every shape family: the canonical node
// list, the node→position table, and the precomputed structural hash.
// It is built once at construction and never mutated afterwards, which is
// what makes shapes safe to share read-only across goroutines.
type nodeIndex struct {
	dim   int
	nodes []Node
	pos   map[string]int
	hash  uint64
}

// newNodeIndex builds the dense bijection over nodes in the given canonical
// order. Callers own the order; newNodeIndex does not sort. The node slice
// is retained, so callers must hand over ownership.
func newNodeIndex(dim int, nodes []Node) *nodeIndex {
	pos := make(map[string]int, len(nodes))
	for i, k := range nodes {
		pos[k.key()] = i
	}
	return &nodeIndex{
		dim:   dim,
		nodes: nodes,
		pos:   pos,
		hash:  hashNodes(dim, nodes),
	}
}

// Dimension returns D.
// Complexity: O(1).
func (ix *nodeIndex) Dimension() int { return ix.dim }

// Size returns the number of nodes.
// Complexity: O(1).
func (ix *nodeIndex) Size() int { return len(ix.nodes) }

// Contains reports membership of k.
// Complexity: O(D) for the key encoding, O(1) expected lookup.
func (ix *nodeIndex) Contains(k Node) bool {
	if len(k) != ix.dim {
		return false
	}
	_, ok := ix.pos[k.key()]
	return ok
}

// PositionOf returns the dense linear position of k.
// Returns ErrDimensionMismatch or ErrNodeNotFound on misuse.
// Complexity: O(D) expected.
func (ix *nodeIndex) PositionOf(k Node) (int, error) {
	if len(k) != ix.dim {
		return 0, fmt.Errorf("node %v has %d entries, shape has dimension %d: %w",
			k, len(k), ix.dim, ErrDimensionMismatch)
	}
	p, ok := ix.pos[k.key()]
	if !ok {
		return 0, fmt.Errorf("node %v: %w", k, ErrNodeNotFound)
	}
	return p, nil
}

// Nodes yields the nodes in canonical order. Restartable: every range
// replays the same order.
func (ix *nodeIndex) Nodes() iter.Seq[Node] {
	return func(yield func(Node) bool) {
		for _, k := range ix.nodes {
			if !yield(k) {
				return
			}
		}
	}
}

// Hash returns the precomputed structural hash.
// Complexity: O(1).
func (ix *nodeIndex) Hash() uint64 { return ix.hash }

// validateNodes checks that every node has dimension dim and non-negative
// entries. Shared by NodeSet construction and description decoding.
func validateNodes(dim int, nodes []Node) error {
	for _, k := range nodes {
		if len(k) != dim {
			return fmt.Errorf("node %v has %d entries, want %d: %w",
				k, len(k), dim, ErrDimensionMismatch)
		}
		for _, v := range k {
			if v < 0 {
				return fmt.Errorf("node %v: %w", k, ErrNegativeEntry)
			}
		}
	}
	return nil
}
