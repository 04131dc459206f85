// Package basisshape: central types of the multi-index shape algebra.
// This file declares Node, Neighbour, the Shape capability contract, and
// the family tags used by descriptions.
package basisshape

import (
	"iter"
	"strconv"
	"strings"
)

// Family tags identifying the concrete shape families in descriptions.
// The set of families is closed: FromDescription rejects unknown tags.
const (
	// FamilyHyperCubic tags the full product shape {0..K_0-1}×…×{0..K_{D-1}-1}.
	FamilyHyperCubic = "hypercubic"
	// FamilySimplex tags the total-degree cut |k|₁ ≤ K.
	FamilySimplex = "simplex"
	// FamilyHyperbolicCut tags the hyperbolic cut ∏(1+k_d) ≤ K.
	FamilyHyperbolicCut = "hyperboliccut"
	// FamilyNodeSet tags an explicit node-set shape (extension results).
	FamilyNodeSet = "nodeset"
)

// Node is a D-dimensional multi-index: an ordered tuple of non-negative
// integers identifying one basis function.
type Node []int

// Clone returns an independent copy of the node.
func (n Node) Clone() Node {
	c := make(Node, len(n))
	copy(c, n)
	return c
}

// Equal reports whether two nodes have equal length and entries.
func (n Node) Equal(other Node) bool {
	if len(n) != len(other) {
		return false
	}
	for i := range n {
		if n[i] != other[i] {
			return false
		}
	}
	return true
}

// String renders the node as "(k_0,k_1,…)". Used in error messages.
func (n Node) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, v := range n {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(v))
	}
	sb.WriteByte(')')
	return sb.String()
}

// key encodes the node as a compact map key, e.g. "1,0,2".
func (n Node) key() string {
	var sb strings.Builder
	for i, v := range n {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(v))
	}
	return sb.String()
}

// CompareNodes orders nodes lexicographically entry by entry; shorter nodes
// sort first on a shared prefix. It is the canonical total order used for
// frontier sorting and structural hashing.
func CompareNodes(a, b Node) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	default:
		return 0
	}
}

// Neighbour is one lattice neighbour of a node, tagged by the dimension
// along which the unit step was taken.
type Neighbour struct {
	// Dim is the dimension index d of the unit step e_d.
	Dim int
	// Node is the neighbouring multi-index (k ± e_d).
	Node Node
}

// Shape is the capability contract every shape family satisfies. A Shape is
// an immutable finite set of D-dimensional multi-indices with a dense
// node→position bijection over [0, Size()).
//
// The extension and stencil machinery works against this contract alone,
// never against family internals.
type Shape interface {
	// Dimension returns D, the number of entries of every node.
	Dimension() int

	// Size returns the number of nodes.
	Size() int

	// Contains reports membership of k. Nodes of the wrong dimension are
	// simply not members.
	Contains(k Node) bool

	// PositionOf returns the dense linear position of k in [0, Size()).
	// Returns ErrNodeNotFound if k is not a member, ErrDimensionMismatch
	// if k has the wrong number of entries.
	PositionOf(k Node) (int, error)

	// Nodes yields every node exactly once in the shape's canonical order.
	// The sequence is finite and restartable: ranging again replays the
	// identical order. Yielded nodes are views into the shape and must not
	// be modified by the caller.
	Nodes() iter.Seq[Node]

	// Description returns the parameters needed to reconstruct an equal
	// shape via FromDescription. The returned map is a fresh copy.
	Description() Description

	// Hash returns the structural hash: a deterministic 64-bit digest of
	// the node set, stable across runs and processes. Shapes with equal
	// node sets hash equal regardless of family.
	Hash() uint64
}
