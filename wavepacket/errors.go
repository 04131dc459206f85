package wavepacket

import "errors"

// Sentinel errors for wavepacket construction and access.
var (
	// ErrNilParameters indicates a nil parameter set.
	ErrNilParameters = errors.New("wavepacket: parameter set is nil")
	// ErrNilMatrix indicates a nil Q or P matrix.
	ErrNilMatrix = errors.New("wavepacket: parameter matrix is nil")
	// ErrDimensionMismatch indicates parameter/shape dimensions disagree.
	ErrDimensionMismatch = errors.New("wavepacket: dimension mismatch")
	// ErrNoComponents indicates construction without any component shape.
	ErrNoComponents = errors.New("wavepacket: at least one component is required")
	// ErrNilShape indicates a nil component shape.
	ErrNilShape = errors.New("wavepacket: component shape is nil")
	// ErrComponentRange indicates a component index outside [0, N).
	ErrComponentRange = errors.New("wavepacket: component index out of range")
	// ErrCoefficientCount indicates a coefficient vector whose length differs
	// from the component's shape size.
	ErrCoefficientCount = errors.New("wavepacket: coefficient count does not match shape size")
	// ErrNonPositiveEps indicates eps ≤ 0.
	ErrNonPositiveEps = errors.New("wavepacket: eps must be positive")
)
