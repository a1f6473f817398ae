// Package inspect exposes extended descriptions to JSONPath queries.
package inspect

import (
	"fmt"
	"maps"
	"slices"

	"github.com/born-ml/topology/internal/arch"
	"github.com/ohler55/ojg/jp"
)

// Record is an ordered mapping. JSONPath wildcards and descents walk its
// keys in insertion order, so query results are reproducible.
type Record struct {
	keys   []string
	values map[string]any
}

var _ jp.Keyed = (*Record)(nil)

func newRecord(capacity int) *Record {
	return &Record{
		keys:   make([]string, 0, capacity),
		values: make(map[string]any, capacity),
	}
}

// ValueForKey returns the value stored under key.
func (r *Record) ValueForKey(key string) (any, bool) {
	v, ok := r.values[key]
	return v, ok
}

// SetValueForKey stores value under key, appending new keys at the end.
func (r *Record) SetValueForKey(key string, value any) {
	if _, ok := r.values[key]; !ok {
		r.keys = append(r.keys, key)
	}
	r.values[key] = value
}

// RemoveValueForKey deletes key and returns its previous value.
func (r *Record) RemoveValueForKey(key string) (any, bool) {
	v, ok := r.values[key]
	if !ok {
		return nil, false
	}
	delete(r.values, key)
	r.keys = slices.DeleteFunc(r.keys, func(k string) bool { return k == key })
	return v, true
}

// Keys returns the keys in order.
func (r *Record) Keys() []string {
	return slices.Clone(r.keys)
}

// Len returns the number of keys.
func (r *Record) Len() int {
	return len(r.keys)
}

// Tree returns x as an ordered record keyed by layer name, in canonical
// order. Each layer record holds, in this order, "index" (position in
// canonical order), "@type", "size" (nil when undeclared), "sink_layers"
// (sorted), "source_layers" (canonical order) and "kwargs" (sorted keys).
func Tree(x *arch.Extended) *Record {
	out := newRecord(x.Len())
	i := 0
	for name, l := range x.All() {
		var size any
		if l.Size != nil {
			size = *l.Size
		}
		rec := newRecord(6)
		rec.SetValueForKey("index", i)
		rec.SetValueForKey(arch.KeyType, l.Type)
		rec.SetValueForKey(arch.KeySize, size)
		rec.SetValueForKey(arch.KeySinks, anyList(l.Sinks.Sorted()))
		rec.SetValueForKey(arch.KeySources, anyList(l.Sources))
		rec.SetValueForKey(arch.KeyKwargs, ordered(l.Kwargs))
		out.SetValueForKey(name, rec)
		i++
	}
	return out
}

// Query evaluates a JSONPath selector against Tree(x). Results come back in
// a fixed order and as plain values (maps and slices), ready for encoding.
//
// Example:
//
//	sources, err := inspect.Query(x, "$.Out.source_layers[*]")
func Query(x *arch.Extended, selector string) ([]any, error) {
	path, err := jp.ParseString(selector)
	if err != nil {
		return nil, fmt.Errorf("invalid jsonpath %q: %w", selector, err)
	}
	matches := path.Get(Tree(x))
	for i, m := range matches {
		matches[i] = Plain(m)
	}
	return matches, nil
}

// Plain converts records back into map[string]any, recursively.
func Plain(v any) any {
	switch val := v.(type) {
	case *Record:
		out := make(map[string]any, len(val.keys))
		for _, k := range val.keys {
			out[k] = Plain(val.values[k])
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, inner := range val {
			out[i] = Plain(inner)
		}
		return out
	default:
		return v
	}
}

// ordered turns nested maps into records with sorted keys.
func ordered(v any) any {
	switch val := v.(type) {
	case map[string]any:
		rec := newRecord(len(val))
		for _, k := range slices.Sorted(maps.Keys(val)) {
			rec.SetValueForKey(k, ordered(val[k]))
		}
		return rec
	case []any:
		out := make([]any, len(val))
		for i, inner := range val {
			out[i] = ordered(inner)
		}
		return out
	default:
		return v
	}
}

func anyList(names []string) []any {
	out := make([]any, len(names))
	for i, n := range names {
		out[i] = n
	}
	return out
}
