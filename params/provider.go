package params

import (
	"errors"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

// Sentinel errors for parameter resolution.
var (
	// ErrParameterNotFound indicates a key absent from both layers.
	ErrParameterNotFound = errors.New("params: parameter not found")
	// ErrWrongType indicates a typed getter applied to an incompatible value.
	ErrWrongType = errors.New("params: parameter has wrong type")
	// ErrBadYAML indicates malformed YAML input.
	ErrBadYAML = errors.New("params: malformed YAML")
)

// Provider resolves simulation parameters through two explicit layers: a
// local table and a defaults table. Lookups consult the local table first;
// on a miss the default value is deep-copied into the local table and
// returned (copy-on-read), so later mutation of a default never reaches a
// provider that already resolved the key. There is no ambient global state:
// the defaults layer is an ordinary table passed at construction.
//
// A Provider is not safe for concurrent mutation; confine it to the
// configuration phase or guard it externally.
type Provider struct {
	local    map[string]any
	defaults map[string]any
}

// New constructs a provider over the given defaults table (may be nil).
// The table is deep-copied, so the caller keeps ownership of its map.
func New(defaults map[string]any) *Provider {
	return &Provider{
		local:    make(map[string]any),
		defaults: deepCopyMap(defaults),
	}
}

// FromYAML constructs a provider whose local table is decoded from the
// YAML document in data, layered over defaults.
// Returns ErrBadYAML when decoding fails.
func FromYAML(data []byte, defaults map[string]any) (*Provider, error) {
	local := make(map[string]any)
	if err := yaml.Unmarshal(data, &local); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadYAML, err)
	}
	p := New(defaults)
	for k, v := range local {
		p.local[k] = v
	}
	return p, nil
}

// Get resolves key through the two layers.
// Returns ErrParameterNotFound when neither layer holds it.
func (p *Provider) Get(key string) (any, error) {
	if v, ok := p.local[key]; ok {
		return v, nil
	}
	if v, ok := p.defaults[key]; ok {
		// Copy-on-read: materialize the default locally.
		cp := deepCopyValue(v)
		p.local[key] = cp
		return cp, nil
	}
	return nil, fmt.Errorf("key %q: %w", key, ErrParameterNotFound)
}

// Set stores a deep copy of value under key in the local layer.
func (p *Provider) Set(key string, value any) {
	p.local[key] = deepCopyValue(value)
}

// Has reports whether key is set in the local layer. Defaults do not count
// until they have been resolved through Get.
func (p *Provider) Has(key string) bool {
	_, ok := p.local[key]
	return ok
}

// Keys returns the sorted keys of the local layer.
func (p *Provider) Keys() []string {
	keys := make([]string, 0, len(p.local))
	for k := range p.local {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Int resolves key as an integer, accepting the numeric forms YAML and JSON
// decoders produce. Returns ErrWrongType for non-integral values.
func (p *Provider) Int(key string) (int, error) {
	v, err := p.Get(key)
	if err != nil {
		return 0, err
	}
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case float64:
		i := int(n)
		if float64(i) != n {
			return 0, fmt.Errorf("key %q value %v: %w", key, v, ErrWrongType)
		}
		return i, nil
	default:
		return 0, fmt.Errorf("key %q has type %T: %w", key, v, ErrWrongType)
	}
}

// Float resolves key as a float64, accepting integer forms as well.
func (p *Provider) Float(key string) (float64, error) {
	v, err := p.Get(key)
	if err != nil {
		return 0, err
	}
	switch n := v.(type) {
	case float64:
		return n, nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	default:
		return 0, fmt.Errorf("key %q has type %T: %w", key, v, ErrWrongType)
	}
}

// String resolves key as a string.
func (p *Provider) String(key string) (string, error) {
	v, err := p.Get(key)
	if err != nil {
		return "", err
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("key %q has type %T: %w", key, v, ErrWrongType)
	}
	return s, nil
}

// Bool resolves key as a bool.
func (p *Provider) Bool(key string) (bool, error) {
	v, err := p.Get(key)
	if err != nil {
		return false, err
	}
	b, ok := v.(bool)
	if !ok {
		return false, fmt.Errorf("key %q has type %T: %w", key, v, ErrWrongType)
	}
	return b, nil
}

// deepCopyMap deep-copies a string-keyed table.
func deepCopyMap(in map[string]any) map[string]any {
	out := make(map[string]any, len(in))
	for k, v := range in {
		out[k] = deepCopyValue(v)
	}
	return out
}

// deepCopyValue copies the container shapes produced by YAML/JSON decoding
// (maps and slices); scalars are returned as-is.
func deepCopyValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		return deepCopyMap(val)
	case []any:
		out := make([]any, len(val))
		for i, e := range val {
			out[i] = deepCopyValue(e)
		}
		return out
	case []int:
		out := make([]int, len(val))
		copy(out, val)
		return out
	case []float64:
		out := make([]float64, len(val))
		copy(out, val)
		return out
	case []string:
		out := make([]string, len(val))
		copy(out, val)
		return out
	default:
		return val
	}
}
