package layers

import (
	"errors"
	"fmt"
)

// Layer is an instantiated layer. The orchestrator only relies on OutSize;
// the rest is for inspection.
type Layer interface {
	Name() string
	Type() string
	InSize() int
	OutSize() int
}

// Config carries everything a factory needs to construct one layer.
type Config struct {
	Name   string
	Size   *int // Declared size, nil when absent
	InSize int  // Sum of the out sizes of all source layers
	Kwargs map[string]any
}

// Factory constructs layers of a single type.
type Factory interface {
	New(cfg Config) (Layer, error)
}

// FactoryFunc adapts a function to the Factory interface.
type FactoryFunc func(cfg Config) (Layer, error)

// New implements Factory.
func (f FactoryFunc) New(cfg Config) (Layer, error) {
	return f(cfg)
}

// Resolver maps a layer type tag to its factory.
type Resolver interface {
	Resolve(typeName string) (Factory, error)
}

// Common errors.
var (
	ErrUnknownLayerType = errors.New("unknown layer type")
	ErrInvalidConfig    = errors.New("invalid layer configuration")
)

// UnknownLayerTypeError is returned when a Resolver has no factory for a tag.
type UnknownLayerTypeError struct {
	Type string
}

// Error implements the error interface.
func (e *UnknownLayerTypeError) Error() string {
	return fmt.Sprintf("unknown layer type: %q", e.Type)
}

// Is makes errors.Is(err, ErrUnknownLayerType) succeed.
func (e *UnknownLayerTypeError) Is(target error) bool {
	return target == ErrUnknownLayerType
}

// configError wraps ErrInvalidConfig with the layer name and a reason.
func configError(cfg Config, format string, args ...any) error {
	return fmt.Errorf("%w: layer %q: %s", ErrInvalidConfig, cfg.Name, fmt.Sprintf(format, args...))
}
