package basisshape

import (
	"fmt"
	"slices"
)

// HyperCubic is the full product shape: every node k with 0 ≤ k_d < K_d for
// per-axis limits K_d ≥ 1. Its canonical order is lexicographic, which for a
// product shape coincides with row-major order over the limits.
//
// Immutable once built.
type HyperCubic struct {
	*nodeIndex
	limits []int
}

// NewHyperCubic constructs the product shape for the given per-axis limits.
// Returns ErrBadDimension when no limits are given and ErrBadLimit when any
// limit is below 1.
//
// Complexity: O(D·∏K_d) time and memory.
func NewHyperCubic(limits ...int) (*HyperCubic, error) {
	if len(limits) == 0 {
		return nil, fmt.Errorf("no axis limits given: %w", ErrBadDimension)
	}
	total := 1
	for d, l := range limits {
		if l < 1 {
			return nil, fmt.Errorf("axis %d limit %d: %w", d, l, ErrBadLimit)
		}
		total *= l
	}
	dim := len(limits)

	// Odometer enumeration: last axis fastest, i.e. lexicographic order.
	nodes := make([]Node, 0, total)
	cur := make(Node, dim)
	for {
		nodes = append(nodes, cur.Clone())
		d := dim - 1
		for d >= 0 {
			cur[d]++
			if cur[d] < limits[d] {
				break
			}
			cur[d] = 0
			d--
		}
		if d < 0 {
			break
		}
	}

	return &HyperCubic{
		nodeIndex: newNodeIndex(dim, nodes),
		limits:    slices.Clone(limits),
	}, nil
}

// Limits returns a copy of the per-axis limits K_d.
func (h *HyperCubic) Limits() []int { return slices.Clone(h.limits) }

// Contains reports membership via the axis bounds, without a table lookup.
// Complexity: O(D).
func (h *HyperCubic) Contains(k Node) bool {
	if len(k) != h.dim {
		return false
	}
	for d, v := range k {
		if v < 0 || v >= h.limits[d] {
			return false
		}
	}
	return true
}

// PositionOf computes the row-major position directly from the limits,
// matching the canonical enumeration order.
// Complexity: O(D).
func (h *HyperCubic) PositionOf(k Node) (int, error) {
	if len(k) != h.dim {
		return 0, fmt.Errorf("node %v has %d entries, shape has dimension %d: %w",
			k, len(k), h.dim, ErrDimensionMismatch)
	}
	if !h.Contains(k) {
		return 0, fmt.Errorf("node %v: %w", k, ErrNodeNotFound)
	}
	p := 0
	for d, v := range k {
		p = p*h.limits[d] + v
	}
	return p, nil
}

// Description captures the family tag and the per-axis limits.
func (h *HyperCubic) Description() Description {
	return Description{
		keyFamily:    FamilyHyperCubic,
		keyDimension: h.dim,
		keyLimits:    slices.Clone(h.limits),
	}
}
