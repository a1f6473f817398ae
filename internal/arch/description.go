package arch

import (
	"maps"
	"slices"
)

// Well-known names and type tags.
const (
	// InputLayerName is the required name of the single input layer.
	InputLayerName = "InputLayer"
	// InputLayerType is the required type tag of the single input layer.
	InputLayerType = "InputLayer"
	// ReservedName may not be used as a layer name.
	ReservedName = "default"
)

// Reserved record keys. They never end up in a layer's kwargs.
const (
	KeyType    = "@type"
	KeySize    = "size"
	KeySinks   = "sink_layers"
	KeySources = "source_layers"
	KeyKwargs  = "kwargs"
)

// ReservedKeys lists the record keys that are not free-form configuration.
var ReservedKeys = []string{KeyType, KeySize, KeySinks, KeySources, KeyKwargs}

// IsReservedKey reports whether key is one of ReservedKeys.
func IsReservedKey(key string) bool {
	return slices.Contains(ReservedKeys, key)
}

// NameSet is an unordered set of layer names.
//
// A nil NameSet stands for a missing sink_layers entry and is rejected by
// Validate. An empty, non-nil NameSet marks the terminal (output) layer.
type NameSet map[string]struct{}

// Names creates a non-nil NameSet from the given names.
func Names(names ...string) NameSet {
	s := make(NameSet, len(names))
	for _, n := range names {
		s[n] = struct{}{}
	}
	return s
}

// Add inserts name into the set.
func (s NameSet) Add(name string) {
	s[name] = struct{}{}
}

// Contains reports whether name is in the set.
func (s NameSet) Contains(name string) bool {
	_, ok := s[name]
	return ok
}

// Len returns the number of names in the set.
func (s NameSet) Len() int {
	return len(s)
}

// Sorted returns the names in ascending lexicographic order.
func (s NameSet) Sorted() []string {
	return slices.Sorted(maps.Keys(s))
}

// SubsetOf reports whether every name of s is also in other.
func (s NameSet) SubsetOf(other NameSet) bool {
	for n := range s {
		if !other.Contains(n) {
			return false
		}
	}
	return true
}

// Clone returns an independent copy. Cloning nil yields nil.
func (s NameSet) Clone() NameSet {
	if s == nil {
		return nil
	}
	return maps.Clone(s)
}

// Layer is a single record of an architecture description.
type Layer struct {
	// Type is the @type tag that selects the layer implementation.
	Type string

	// Size is the layer's own output width. Nil when the layer infers it.
	Size *int

	// Sinks are the layers this layer feeds into.
	Sinks NameSet

	// Config holds free-form configuration passed to the layer constructor.
	// Reserved keys found here are dropped during extension.
	Config map[string]any
}

// Description maps layer names to layer records.
type Description map[string]*Layer

// Names returns all layer names in ascending order.
func (d Description) Names() []string {
	return slices.Sorted(maps.Keys(d))
}

// Clone returns a deep copy of the description.
func (d Description) Clone() Description {
	if d == nil {
		return nil
	}
	c := make(Description, len(d))
	for name, l := range d {
		if l == nil {
			c[name] = nil
			continue
		}
		c[name] = &Layer{
			Type:   l.Type,
			Size:   cloneSize(l.Size),
			Sinks:  l.Sinks.Clone(),
			Config: CloneConfig(l.Config),
		}
	}
	return c
}

// sinksOf returns the sinks of name, tolerating missing or nil records.
func (d Description) sinksOf(name string) NameSet {
	if l := d[name]; l != nil {
		return l.Sinks
	}
	return nil
}

// Int returns a pointer to n, for use as Layer.Size.
func Int(n int) *int {
	return &n
}

func cloneSize(size *int) *int {
	if size == nil {
		return nil
	}
	return Int(*size)
}

// CloneConfig deep-copies a configuration map. Nested maps and slices are
// copied; nil stays nil.
func CloneConfig(cfg map[string]any) map[string]any {
	if cfg == nil {
		return nil
	}
	out := make(map[string]any, len(cfg))
	for k, v := range cfg {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		m := make(map[string]any, len(val))
		for k, inner := range val {
			m[k] = cloneValue(inner)
		}
		return m
	case []any:
		s := make([]any, len(val))
		for i, inner := range val {
			s[i] = cloneValue(inner)
		}
		return s
	case []string:
		return slices.Clone(val)
	case []int:
		return slices.Clone(val)
	case []float64:
		return slices.Clone(val)
	default:
		return v
	}
}
