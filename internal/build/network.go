package build

import (
	"iter"

	"github.com/born-ml/topology/internal/arch"
	"github.com/born-ml/topology/internal/layers"
)

// Network is the result of instantiation: every layer keyed by name, kept in
// canonical order.
type Network struct {
	order    []string
	layers   map[string]layers.Layer
	extended *arch.Extended
}

// Names returns layer names in canonical order.
func (n *Network) Names() []string {
	out := make([]string, len(n.order))
	copy(out, n.order)
	return out
}

// Layer returns the layer called name, or nil.
func (n *Network) Layer(name string) layers.Layer {
	return n.layers[name]
}

// Len returns the number of layers.
func (n *Network) Len() int {
	return len(n.order)
}

// All iterates layers in canonical order.
func (n *Network) All() iter.Seq2[string, layers.Layer] {
	return func(yield func(string, layers.Layer) bool) {
		for _, name := range n.order {
			if !yield(name, n.layers[name]) {
				return
			}
		}
	}
}

// Input returns the input layer.
func (n *Network) Input() layers.Layer {
	return n.find((*arch.ExtendedLayer).IsInput)
}

// Output returns the terminal layer.
func (n *Network) Output() layers.Layer {
	return n.find((*arch.ExtendedLayer).IsOutput)
}

func (n *Network) find(match func(*arch.ExtendedLayer) bool) layers.Layer {
	if n.extended == nil {
		return nil
	}
	for name, l := range n.extended.All() {
		if match(l) {
			return n.layers[name]
		}
	}
	return nil
}

// Extended returns the extended description the network was built from.
func (n *Network) Extended() *arch.Extended {
	return n.extended
}
