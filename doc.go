// Package hagwave is a toolkit for semiclassical wavepacket dynamics built
// around Hagedorn basis expansions — multi-index basis shapes, ladder-operator
// stencils, and the surrounding parameter and persistence plumbing.
//
// 🚀 What is hagwave?
//
//	A small, deterministic library that brings together:
//		• Basis shapes: finite multi-index sets (hyper-cubic, simplex,
//		  hyperbolic cut) behind one capability contract
//		• Shape extension: the one-step closure used to hold stencil outputs
//		• Neighbour queries: backward/forward lattice adjacency with
//		  boundary handling
//		• Gradient stencil: the three-term ladder recurrence realizing the
//		  gradient operator on a coefficient vector
//		• Wavepacket container: Hagedorn parameter sets Π = (q, p, Q, P, S)
//		  plus per-component shapes and coefficients
//		• Shape store: content-addressed, deduplicated persistence of shape
//		  descriptions on BadgerDB
//		• Parameter provider: layered simulation configuration with explicit
//		  defaults, loadable from YAML
//
// ✨ Why choose hagwave?
//
//   - Deterministic by construction – canonical node orders, content-derived
//     structural hashes, no ambient global state
//   - Value semantics – shapes are immutable; extension returns new shapes
//     and new coefficient arrays instead of mutating in place
//   - Pure computation core – basisshape and gradient perform no I/O and are
//     safe to share read-only across goroutines
//
// Under the hood, everything is organized in focused subpackages:
//
//	basisshape/ — multi-index shape families, extension, neighbour queries
//	gradient/   — the ladder-operator stencil engine
//	wavepacket/ — Hagedorn parameter sets and the component container
//	shapestore/ — hash-keyed shape persistence on BadgerDB
//	params/     — layered simulation parameters with explicit defaults
//
// Quick ASCII sketch of the data flow:
//
//	shape K ───extend───▶ shape K̇ (one-step closure)
//	    │                     │
//	coefficients c ──stencil──▶ coefficients c′ over K̇
//
// Dive into the per-package doc.go and example_test.go files for runnable
// introductions.
//
//	go get github.com/katalvlaran/hagwave
package hagwave
