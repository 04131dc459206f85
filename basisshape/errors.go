package basisshape

import "errors"

// Sentinel errors for shape construction, lookup and reconstruction.
// All are matched with errors.Is; call sites may wrap them with context
// via fmt.Errorf("...: %w", Err...).
var (
	// ErrNilShape indicates a nil Shape was passed where a shape is required.
	ErrNilShape = errors.New("basisshape: shape is nil")
	// ErrBadDimension indicates a non-positive dimension D.
	ErrBadDimension = errors.New("basisshape: dimension must be positive")
	// ErrBadLimit indicates a family parameter (axis limit, degree, cut) below 1.
	ErrBadLimit = errors.New("basisshape: limit must be at least 1")
	// ErrDimensionMismatch indicates a node or parameter whose length disagrees with D.
	ErrDimensionMismatch = errors.New("basisshape: dimension mismatch")
	// ErrNegativeEntry indicates a node with a negative component.
	ErrNegativeEntry = errors.New("basisshape: node entries must be non-negative")
	// ErrNodeNotFound indicates a position lookup for a node outside the shape.
	ErrNodeNotFound = errors.New("basisshape: node not in shape")
	// ErrUnknownFamily indicates a description whose family tag is not recognized.
	ErrUnknownFamily = errors.New("basisshape: unknown shape family")
	// ErrMissingParameter indicates a description lacking a required parameter.
	ErrMissingParameter = errors.New("basisshape: missing description parameter")
	// ErrBadParameter indicates a description parameter of the wrong type or value.
	ErrBadParameter = errors.New("basisshape: malformed description parameter")
)
