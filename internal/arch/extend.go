package arch

import "iter"

// ExtendedLayer is the read-only, instantiation-ready view of one layer.
type ExtendedLayer struct {
	Name    string
	Type    string
	Size    *int
	Sinks   NameSet
	Sources []string       // Predecessors, in canonical order
	Kwargs  map[string]any // Free-form configuration without reserved keys
}

// IsInput reports whether this is the input layer.
func (l *ExtendedLayer) IsInput() bool {
	return l.Name == InputLayerName
}

// IsOutput reports whether this is the terminal layer.
func (l *ExtendedLayer) IsOutput() bool {
	return l.Sinks.Len() == 0
}

// Extended is a description with reverse edges materialized, iterated in
// canonical order.
type Extended struct {
	order  []string
	layers map[string]*ExtendedLayer
}

// Names returns the layer names in canonical order.
func (x *Extended) Names() []string {
	out := make([]string, len(x.order))
	copy(out, x.order)
	return out
}

// Layer returns the extended record for name, or nil.
func (x *Extended) Layer(name string) *ExtendedLayer {
	return x.layers[name]
}

// Len returns the number of layers.
func (x *Extended) Len() int {
	return len(x.order)
}

// All iterates layers in canonical order.
func (x *Extended) All() iter.Seq2[string, *ExtendedLayer] {
	return func(yield func(string, *ExtendedLayer) bool) {
		for _, name := range x.order {
			if !yield(name, x.layers[name]) {
				return
			}
		}
	}
}

// ExtendOptions configures Extend.
type ExtendOptions struct {
	// Strict runs CheckConnectivity after validation, so cycles and stranded
	// layers are diagnosed explicitly instead of as unreachable layers.
	Strict bool
}

// DefaultExtendOptions returns the default extension options.
func DefaultExtendOptions() ExtendOptions {
	return ExtendOptions{Strict: false}
}

// Extend validates d and returns its extended form.
func Extend(d Description) (*Extended, error) {
	return ExtendWithOptions(d, DefaultExtendOptions())
}

// ExtendWithOptions validates d and returns its extended form.
//
// Every layer gets copies of its type, size and sinks, its kwargs (Config
// minus reserved keys, deep-copied) and the list of its source layers. Since
// edges are reversed while walking the canonical order, each Sources list is
// itself in canonical order. Nothing in the result aliases d.
func ExtendWithOptions(d Description, opts ExtendOptions) (*Extended, error) {
	if err := Validate(d); err != nil {
		return nil, err
	}
	if opts.Strict {
		if err := CheckConnectivity(d); err != nil {
			return nil, err
		}
	}

	order, err := CanonicalOrder(d)
	if err != nil {
		return nil, err
	}

	x := &Extended{
		order:  order,
		layers: make(map[string]*ExtendedLayer, len(order)),
	}
	for _, name := range order {
		l := d[name]
		x.layers[name] = &ExtendedLayer{
			Name:    name,
			Type:    l.Type,
			Size:    cloneSize(l.Size),
			Sinks:   l.Sinks.Clone(),
			Sources: []string{},
			Kwargs:  kwargsOf(l.Config),
		}
	}

	for _, name := range order {
		for sink := range x.layers[name].Sinks {
			target := x.layers[sink]
			target.Sources = append(target.Sources, name)
		}
	}

	return x, nil
}

// kwargsOf deep-copies free-form configuration, dropping reserved keys.
func kwargsOf(cfg map[string]any) map[string]any {
	out := make(map[string]any, len(cfg))
	for k, v := range cfg {
		if IsReservedKey(k) {
			continue
		}
		out[k] = cloneValue(v)
	}
	return out
}
