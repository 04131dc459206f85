package basisshape_test

import (
	"testing"

	"github.com/katalvlaran/hagwave/basisshape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSimplex_Enumeration verifies node set, order and size of a small
// 2-D simplex shape.
func TestSimplex_Enumeration(t *testing.T) {
	s, err := basisshape.NewSimplex(2, 2)
	require.NoError(t, err)

	want := []basisshape.Node{
		{0, 0}, {0, 1}, {0, 2},
		{1, 0}, {1, 1},
		{2, 0},
	}
	assert.Equal(t, want, collect(s), "simplex nodes in lexicographic order")
	assert.Equal(t, 6, s.Size(), "C(2+2, 2) = 6 nodes")
	assert.Equal(t, 2, s.Degree())
}

// TestSimplex_Contains covers the degree bound.
func TestSimplex_Contains(t *testing.T) {
	s, err := basisshape.NewSimplex(3, 4)
	require.NoError(t, err)

	assert.True(t, s.Contains(basisshape.Node{1, 2, 1}), "|k|=4 is inside")
	assert.False(t, s.Contains(basisshape.Node{2, 2, 1}), "|k|=5 is outside")
	assert.False(t, s.Contains(basisshape.Node{1, 2}), "wrong dimension")
}

// TestSimplex_BadParameters verifies constructor sentinels.
func TestSimplex_BadParameters(t *testing.T) {
	_, err := basisshape.NewSimplex(0, 3)
	assert.ErrorIs(t, err, basisshape.ErrBadDimension)

	_, err = basisshape.NewSimplex(2, 0)
	assert.ErrorIs(t, err, basisshape.ErrBadLimit)
}

// TestHyperbolicCut_Enumeration verifies node set and order of a small
// 2-D hyperbolic-cut shape: (1+k_0)(1+k_1) ≤ 3.
func TestHyperbolicCut_Enumeration(t *testing.T) {
	s, err := basisshape.NewHyperbolicCut(2, 3)
	require.NoError(t, err)

	want := []basisshape.Node{
		{0, 0}, {0, 1}, {0, 2},
		{1, 0},
		{2, 0},
	}
	assert.Equal(t, want, collect(s), "hyperbolic-cut nodes in lexicographic order")
	assert.Equal(t, 5, s.Size())
	assert.Equal(t, 3, s.Cut())
}

// TestHyperbolicCut_Contains covers the product bound, including the mixed
// excitation the cut removes.
func TestHyperbolicCut_Contains(t *testing.T) {
	s, err := basisshape.NewHyperbolicCut(2, 4)
	require.NoError(t, err)

	assert.True(t, s.Contains(basisshape.Node{3, 0}), "high single-axis excitation stays")
	assert.True(t, s.Contains(basisshape.Node{1, 1}), "(1+1)(1+1)=4 is inside")
	assert.False(t, s.Contains(basisshape.Node{2, 1}), "(1+2)(1+1)=6 is outside")
}

// TestHyperbolicCut_BadParameters verifies constructor sentinels.
func TestHyperbolicCut_BadParameters(t *testing.T) {
	_, err := basisshape.NewHyperbolicCut(0, 3)
	assert.ErrorIs(t, err, basisshape.ErrBadDimension)

	_, err = basisshape.NewHyperbolicCut(1, 0)
	assert.ErrorIs(t, err, basisshape.ErrBadLimit)
}

// TestFamilies_HashAgreesOnEqualNodeSets verifies the cross-family hash
// guarantee: in one dimension, the hyperbolic cut with parameter K and the
// hyper-cubic shape with limit K describe the same node set {0,…,K-1}, so
// their structural hashes must coincide.
func TestFamilies_HashAgreesOnEqualNodeSets(t *testing.T) {
	const K = 7
	cubic, err := basisshape.NewHyperCubic(K)
	require.NoError(t, err)
	hyper, err := basisshape.NewHyperbolicCut(1, K)
	require.NoError(t, err)

	assert.Equal(t, collect(cubic), collect(hyper), "identical 1-D node sets")
	assert.Equal(t, cubic.Hash(), hyper.Hash(), "equal node sets must hash equal")
}

// TestHash_Idempotent verifies repeated Hash calls on one instance agree.
func TestHash_Idempotent(t *testing.T) {
	s, err := basisshape.NewSimplex(3, 3)
	require.NoError(t, err)
	assert.Equal(t, s.Hash(), s.Hash())
}
