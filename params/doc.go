// Package params provides a layered container for simulation parameters:
// a local table over an explicit defaults table, with copy-on-read
// resolution of defaults.
//
// The layering replaces ambient global configuration: defaults are just a
// map the caller passes in, and a default value only becomes part of a
// provider's state once a lookup actually resolved it. Deep copies at every
// boundary keep providers independent of the caller's maps and of each
// other.
//
// ⚙️ Usage:
//
//	defaults := map[string]any{"eps": 0.1, "basis_size": 16}
//
//	p, err := params.FromYAML(configBytes, defaults)
//	...
//	eps, err := p.Float("eps")          // local value or default 0.1
//	size, err := p.Int("basis_size")
//
// Typed getters accept the numeric forms YAML and JSON decoders produce
// (int, int64, float64) and fail with ErrWrongType otherwise.
package params
