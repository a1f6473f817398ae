package loader

import (
	"fmt"
	"maps"
	"math"
	"slices"

	"github.com/born-ml/topology/internal/arch"
)

// FromGeneric converts an untyped, decoded document (nested maps, slices and
// scalars) into a Description, checking the shape of every record.
func FromGeneric(raw any) (arch.Description, error) {
	top, ok := asMap(raw)
	if !ok {
		return nil, schemaError("", "description must be a mapping from layer name to record, got %T", raw)
	}

	d := make(arch.Description, len(top))
	for _, name := range slices.Sorted(maps.Keys(top)) {
		v := top[name]
		rec, ok := asMap(v)
		if !ok {
			return nil, schemaError(name, "record must be a mapping, got %T", v)
		}
		l, err := layerFromRecord(name, rec)
		if err != nil {
			return nil, err
		}
		d[name] = l
	}
	return d, nil
}

func layerFromRecord(name string, rec map[string]any) (*arch.Layer, error) {
	typ, ok := rec[arch.KeyType].(string)
	if !ok || typ == "" {
		return nil, schemaError(name, "%s must be a non-empty string", arch.KeyType)
	}

	rawSinks, ok := rec[arch.KeySinks]
	if !ok {
		return nil, schemaError(name, "missing %s", arch.KeySinks)
	}
	sinks, err := toNameSet(rawSinks)
	if err != nil {
		return nil, schemaError(name, "%s: %v", arch.KeySinks, err)
	}

	var size *int
	if v, ok := rec[arch.KeySize]; ok && v != nil {
		n, ok := toInt(v)
		if !ok {
			return nil, schemaError(name, "%s must be an integer within the int range, got %v", arch.KeySize, v)
		}
		size = arch.Int(n)
	}

	config := make(map[string]any)
	for k, v := range rec {
		if arch.IsReservedKey(k) {
			continue
		}
		config[k] = normalize(v)
	}

	return &arch.Layer{Type: typ, Size: size, Sinks: sinks, Config: config}, nil
}

func toNameSet(v any) (arch.NameSet, error) {
	switch s := v.(type) {
	case []string:
		return arch.Names(s...), nil
	case []any:
		set := arch.Names()
		for _, item := range s {
			name, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("expected layer names, got %v (%T)", item, item)
			}
			set.Add(name)
		}
		return set, nil
	default:
		return nil, fmt.Errorf("expected a list of layer names, got %T", v)
	}
}

func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		if n >= math.MinInt && n <= math.MaxInt {
			return int(n), true
		}
	case uint64:
		if n <= math.MaxInt {
			return int(n), true
		}
	case float64:
		// -math.MinInt is 2^63, the first float past the int range.
		if n == math.Trunc(n) && n >= math.MinInt && n < -math.MinInt {
			return int(n), true
		}
	}
	return 0, false
}

// asMap accepts both string-keyed maps and the interface-keyed maps some
// YAML documents decode into, as long as every key is a string.
func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, inner := range m {
			ks, ok := k.(string)
			if !ok {
				return nil, false
			}
			out[ks] = inner
		}
		return out, true
	}
	return nil, false
}

// normalize gives every format the same scalar and container types:
// int for integers, map[string]any and []any for containers.
func normalize(v any) any {
	switch val := v.(type) {
	case int64:
		return int(val)
	case uint64:
		if val <= math.MaxInt64 {
			return int(val)
		}
		return val
	case []any:
		out := make([]any, len(val))
		for i, inner := range val {
			out[i] = normalize(inner)
		}
		return out
	case map[string]any, map[any]any:
		m, ok := asMap(val)
		if !ok {
			return v
		}
		out := make(map[string]any, len(m))
		for k, inner := range m {
			out[k] = normalize(inner)
		}
		return out
	default:
		return v
	}
}

func schemaError(layer, format string, args ...any) *arch.InvalidArchitectureError {
	return &arch.InvalidArchitectureError{
		Check:   arch.CheckSchema,
		Layer:   layer,
		Details: fmt.Sprintf(format, args...),
	}
}
