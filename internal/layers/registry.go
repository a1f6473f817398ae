package layers

import (
	"maps"
	"slices"
	"sync"
)

// Registry maps layer type tags to factories. It is safe for concurrent use.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry creates a registry with all built-in layer types.
func NewRegistry() *Registry {
	r := NewEmptyRegistry()
	r.registerBuiltins()
	return r
}

// NewEmptyRegistry creates a registry without any layer types.
func NewEmptyRegistry() *Registry {
	return &Registry{
		factories: make(map[string]Factory),
	}
}

// Register adds or replaces the factory for a type tag.
func (r *Registry) Register(typeName string, f Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[typeName] = f
}

// Get returns the factory for a type tag.
func (r *Registry) Get(typeName string) (Factory, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.factories[typeName]
	return f, ok
}

// Resolve implements Resolver.
func (r *Registry) Resolve(typeName string) (Factory, error) {
	f, ok := r.Get(typeName)
	if !ok {
		return nil, &UnknownLayerTypeError{Type: typeName}
	}
	return f, nil
}

// SupportedTypes returns all registered type tags in sorted order.
func (r *Registry) SupportedTypes() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Sorted(maps.Keys(r.factories))
}

func (r *Registry) registerBuiltins() {
	r.factories[TypeInput] = FactoryFunc(newInput)
	r.factories[TypeNoOp] = FactoryFunc(newNoOp)
	r.factories[TypeFullyConnected] = FactoryFunc(newFullyConnected)
	r.factories[TypeDropout] = FactoryFunc(newDropout)
}
