package basisshape

import "fmt"

// Description keys. Every value is a primitive or a flat []int so that a
// description survives JSON/YAML round-trips unchanged in meaning.
const (
	keyFamily    = "family"
	keyDimension = "dimension"
	keyLimits    = "limits"
	keyDegree    = "degree"
	keyCut       = "cut"
	keyNodes     = "nodes"
)

// Description is the serializable reconstruction recipe of a shape: the
// family tag plus the family-specific numeric parameters. Two shapes built
// from equal descriptions have equal node sets and equal structural hashes.
type Description map[string]any

// Family returns the family tag, or "" when absent.
func (d Description) Family() string {
	tag, _ := d[keyFamily].(string)
	return tag
}

// FromDescription reconstructs a shape from its description. It accepts the
// numeric representations produced by JSON and YAML decoding (float64,
// int64, int) so that persisted descriptions round-trip without a custom
// decoder.
//
// Returns ErrUnknownFamily for an unrecognized tag, ErrMissingParameter or
// ErrBadParameter for incomplete or malformed descriptions, and the family
// constructor's own sentinels for out-of-range values.
func FromDescription(d Description) (Shape, error) {
	switch d.Family() {
	case FamilyHyperCubic:
		limits, err := intsParam(d, keyLimits)
		if err != nil {
			return nil, err
		}
		return NewHyperCubic(limits...)

	case FamilySimplex:
		dim, err := intParam(d, keyDimension)
		if err != nil {
			return nil, err
		}
		degree, err := intParam(d, keyDegree)
		if err != nil {
			return nil, err
		}
		return NewSimplex(dim, degree)

	case FamilyHyperbolicCut:
		dim, err := intParam(d, keyDimension)
		if err != nil {
			return nil, err
		}
		cut, err := intParam(d, keyCut)
		if err != nil {
			return nil, err
		}
		return NewHyperbolicCut(dim, cut)

	case FamilyNodeSet:
		dim, err := intParam(d, keyDimension)
		if err != nil {
			return nil, err
		}
		flat, err := intsParam(d, keyNodes)
		if err != nil {
			return nil, err
		}
		if dim < 1 {
			return nil, fmt.Errorf("dimension %d: %w", dim, ErrBadDimension)
		}
		if len(flat)%dim != 0 {
			return nil, fmt.Errorf("%d node entries not divisible by dimension %d: %w",
				len(flat), dim, ErrBadParameter)
		}
		nodes := make([]Node, 0, len(flat)/dim)
		for i := 0; i < len(flat); i += dim {
			nodes = append(nodes, Node(flat[i:i+dim]))
		}
		return NewNodeSet(dim, nodes)

	case "":
		return nil, fmt.Errorf("parameter %q: %w", keyFamily, ErrMissingParameter)

	default:
		return nil, fmt.Errorf("family %q: %w", d.Family(), ErrUnknownFamily)
	}
}

// intParam extracts a required integer parameter, tolerating the numeric
// types produced by JSON (float64) and YAML (int, int64) decoders.
func intParam(d Description, key string) (int, error) {
	raw, ok := d[key]
	if !ok {
		return 0, fmt.Errorf("parameter %q: %w", key, ErrMissingParameter)
	}
	v, ok := asInt(raw)
	if !ok {
		return 0, fmt.Errorf("parameter %q has type %T: %w", key, raw, ErrBadParameter)
	}
	return v, nil
}

// intsParam extracts a required integer-slice parameter, tolerating []int,
// []int64, []float64 and []any element forms.
func intsParam(d Description, key string) ([]int, error) {
	raw, ok := d[key]
	if !ok {
		return nil, fmt.Errorf("parameter %q: %w", key, ErrMissingParameter)
	}
	switch vs := raw.(type) {
	case []int:
		out := make([]int, len(vs))
		copy(out, vs)
		return out, nil
	case []int64:
		out := make([]int, len(vs))
		for i, v := range vs {
			out[i] = int(v)
		}
		return out, nil
	case []float64:
		out := make([]int, len(vs))
		for i, v := range vs {
			n, ok := asInt(v)
			if !ok {
				return nil, fmt.Errorf("parameter %q entry %d is not integral: %w", key, i, ErrBadParameter)
			}
			out[i] = n
		}
		return out, nil
	case []any:
		out := make([]int, len(vs))
		for i, v := range vs {
			n, ok := asInt(v)
			if !ok {
				return nil, fmt.Errorf("parameter %q entry %d has type %T: %w", key, i, v, ErrBadParameter)
			}
			out[i] = n
		}
		return out, nil
	default:
		return nil, fmt.Errorf("parameter %q has type %T: %w", key, raw, ErrBadParameter)
	}
}

// asInt converts the numeric types seen after generic decoding to int.
// Non-integral floats are rejected.
func asInt(raw any) (int, bool) {
	switch v := raw.(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case uint64:
		return int(v), true
	case float64:
		n := int(v)
		if float64(n) != v {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}
