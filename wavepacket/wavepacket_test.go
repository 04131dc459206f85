package wavepacket_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hagwave/basisshape"
	"github.com/katalvlaran/hagwave/wavepacket"
)

// newGroundPacket builds a 1-D packet over {0,1,2} with only the ground
// state populated, shared by several tests.
func newGroundPacket(t *testing.T) *wavepacket.Wavepacket {
	t.Helper()
	pi, err := wavepacket.HarmonicParameterSet(1)
	require.NoError(t, err)
	shape, err := basisshape.NewHyperCubic(3)
	require.NoError(t, err)
	w, err := wavepacket.New(1.0, pi, shape)
	require.NoError(t, err)
	require.NoError(t, w.SetCoefficients(0, []complex128{1, 0, 0}))
	return w
}

// TestNew_Validation verifies construction sentinels.
func TestNew_Validation(t *testing.T) {
	pi, err := wavepacket.HarmonicParameterSet(2)
	require.NoError(t, err)
	shape2, err := basisshape.NewHyperCubic(2, 2)
	require.NoError(t, err)
	shape1, err := basisshape.NewHyperCubic(4)
	require.NoError(t, err)

	_, err = wavepacket.New(0, pi, shape2)
	assert.ErrorIs(t, err, wavepacket.ErrNonPositiveEps)

	_, err = wavepacket.New(0.1, nil, shape2)
	assert.ErrorIs(t, err, wavepacket.ErrNilParameters)

	_, err = wavepacket.New(0.1, pi)
	assert.ErrorIs(t, err, wavepacket.ErrNoComponents)

	_, err = wavepacket.New(0.1, pi, nil)
	assert.ErrorIs(t, err, wavepacket.ErrNilShape)

	_, err = wavepacket.New(0.1, pi, shape1)
	assert.ErrorIs(t, err, wavepacket.ErrDimensionMismatch, "1-D shape on 2-D parameters")
}

// TestCoefficients_Lifecycle covers zero initialization, SetCoefficients
// validation and copy-on-access.
func TestCoefficients_Lifecycle(t *testing.T) {
	pi, err := wavepacket.HarmonicParameterSet(1)
	require.NoError(t, err)
	shape, err := basisshape.NewHyperCubic(3)
	require.NoError(t, err)
	w, err := wavepacket.New(0.5, pi, shape)
	require.NoError(t, err)

	c, err := w.Coefficients(0)
	require.NoError(t, err)
	assert.Equal(t, []complex128{0, 0, 0}, c, "coefficients start at zero")

	err = w.SetCoefficients(0, []complex128{1, 2})
	assert.ErrorIs(t, err, wavepacket.ErrCoefficientCount)

	err = w.SetCoefficients(1, []complex128{1, 0, 0})
	assert.ErrorIs(t, err, wavepacket.ErrComponentRange)

	require.NoError(t, w.SetCoefficients(0, []complex128{1i, 0, 2}))
	got, err := w.Coefficients(0)
	require.NoError(t, err)
	got[0] = 99
	again, err := w.Coefficients(0)
	require.NoError(t, err)
	assert.Equal(t, complex128(1i), again[0], "accessor returns a copy")
}

// TestGradientComponent_GroundState checks the ground-state gradient against
// the hand-computed stencil: with p = 0, P = iI and eps = 1 the only nonzero
// entry is the raising term √(1/2)·i on node 1.
func TestGradientComponent_GroundState(t *testing.T) {
	w := newGroundPacket(t)

	ext, grad, err := w.GradientComponent(0)
	require.NoError(t, err)

	assert.Equal(t, 4, ext.Size())
	rows, cols := grad.Dims()
	assert.Equal(t, 4, rows)
	assert.Equal(t, 1, cols)

	// Central term vanishes (p = 0); forward term is √(1/2)·√1·1·P[0,0] = i·√(1/2).
	assert.Zero(t, grad.At(0, 0))
	assert.InDelta(t, 0, real(grad.At(1, 0)), 1e-12)
	assert.InDelta(t, math.Sqrt(0.5), imag(grad.At(1, 0)), 1e-12)
	assert.Zero(t, grad.At(2, 0))
	assert.Zero(t, grad.At(3, 0))
}

// TestGradientComponent_DoesNotMutate verifies the wavepacket keeps its
// shape and coefficients through a gradient evaluation.
func TestGradientComponent_DoesNotMutate(t *testing.T) {
	w := newGroundPacket(t)
	shapeBefore, err := w.Shape(0)
	require.NoError(t, err)
	sizeBefore := shapeBefore.Size()

	_, _, err = w.GradientComponent(0)
	require.NoError(t, err)

	shapeAfter, err := w.Shape(0)
	require.NoError(t, err)
	assert.Equal(t, sizeBefore, shapeAfter.Size())
	c, err := w.Coefficients(0)
	require.NoError(t, err)
	assert.Equal(t, []complex128{1, 0, 0}, c)
}

// TestGradient_AllComponents verifies the multi-component path on distinct
// shapes per component.
func TestGradient_AllComponents(t *testing.T) {
	pi, err := wavepacket.HarmonicParameterSet(2)
	require.NoError(t, err)
	sA, err := basisshape.NewHyperCubic(2, 2)
	require.NoError(t, err)
	sB, err := basisshape.NewSimplex(2, 2)
	require.NoError(t, err)

	w, err := wavepacket.New(0.2, pi, sA, sB)
	require.NoError(t, err)
	require.Equal(t, 2, w.NComponents())

	cA := make([]complex128, sA.Size())
	cA[0] = 1
	require.NoError(t, w.SetCoefficients(0, cA))

	exts, grads, err := w.Gradient()
	require.NoError(t, err)
	require.Len(t, exts, 2)
	require.Len(t, grads, 2)

	for i := range exts {
		rows, cols := grads[i].Dims()
		assert.Equal(t, exts[i].Size(), rows)
		assert.Equal(t, 2, cols)
	}
}

// TestAdoptExtension verifies the basis-growing step and its validation.
func TestAdoptExtension(t *testing.T) {
	w := newGroundPacket(t)

	ext, grad, err := w.GradientComponent(0)
	require.NoError(t, err)

	// Collapse the |Ke|×D gradient to a single column for adoption.
	c := make([]complex128, ext.Size())
	for i := range c {
		c[i] = grad.At(i, 0)
	}

	err = w.AdoptExtension(0, ext, c[:2])
	assert.ErrorIs(t, err, wavepacket.ErrCoefficientCount)

	require.NoError(t, w.AdoptExtension(0, ext, c))
	shape, err := w.Shape(0)
	require.NoError(t, err)
	assert.Equal(t, 4, shape.Size())
	got, err := w.Coefficients(0)
	require.NoError(t, err)
	assert.Equal(t, c, got)
}

// TestDescription verifies the persistence summary carries per-component
// shape hashes matching the live shapes.
func TestDescription(t *testing.T) {
	pi, err := wavepacket.HarmonicParameterSet(2)
	require.NoError(t, err)
	shape, err := basisshape.NewHyperbolicCut(2, 4)
	require.NoError(t, err)
	w, err := wavepacket.New(0.01, pi, shape)
	require.NoError(t, err)

	d := w.Description()
	assert.Equal(t, 2, d["dimension"])
	assert.Equal(t, 1, d["ncomponents"])
	assert.Equal(t, 0.01, d["eps"])
	assert.Equal(t, []uint64{shape.Hash()}, d["shape_hash"])

	descs := d["shapes"].([]basisshape.Description)
	rebuilt, err := basisshape.FromDescription(descs[0])
	require.NoError(t, err)
	assert.Equal(t, shape.Hash(), rebuilt.Hash())
}
