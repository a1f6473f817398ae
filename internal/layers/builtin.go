package layers

import (
	"slices"
	"strings"
)

// Built-in layer type tags.
const (
	TypeInput          = "InputLayer"
	TypeNoOp           = "NoOpLayer"
	TypeFullyConnected = "FullyConnectedLayer"
	TypeDropout        = "DropoutLayer"
)

// Activations accepted by FullyConnectedLayer.
var Activations = []string{"linear", "rel", "relu", "sigmoid", "softmax", "tanh"}

// DefaultActivation is used when activation_function is not given.
const DefaultActivation = "tanh"

// DefaultDropProb is used when drop_prob is not given.
const DefaultDropProb = 0.5

// base holds what every built-in layer shares.
type base struct {
	name    string
	typ     string
	inSize  int
	outSize int
	kwargs  map[string]any
}

func (b *base) Name() string           { return b.name }
func (b *base) Type() string           { return b.typ }
func (b *base) InSize() int            { return b.inSize }
func (b *base) OutSize() int           { return b.outSize }
func (b *base) Kwargs() map[string]any { return b.kwargs }

// Input is the entry point of a network. It has no inputs.
type Input struct {
	base
}

func newInput(cfg Config) (Layer, error) {
	if cfg.Size == nil {
		return nil, configError(cfg, "InputLayer requires a size")
	}
	if *cfg.Size <= 0 {
		return nil, configError(cfg, "size must be positive, got %d", *cfg.Size)
	}
	if cfg.InSize != 0 {
		return nil, configError(cfg, "InputLayer cannot have inputs (in size %d)", cfg.InSize)
	}
	return &Input{base{name: cfg.Name, typ: TypeInput, outSize: *cfg.Size, kwargs: cfg.Kwargs}}, nil
}

// NoOp passes its inputs through unchanged. It is handy for merging
// branches: its out size is the sum of its sources.
type NoOp struct {
	base
}

func newNoOp(cfg Config) (Layer, error) {
	if err := checkPassThroughSize(cfg); err != nil {
		return nil, err
	}
	return &NoOp{base{name: cfg.Name, typ: TypeNoOp, inSize: cfg.InSize, outSize: cfg.InSize, kwargs: cfg.Kwargs}}, nil
}

// FullyConnected is a dense layer with an elementwise activation.
type FullyConnected struct {
	base
	activation string
}

func newFullyConnected(cfg Config) (Layer, error) {
	if cfg.Size == nil {
		return nil, configError(cfg, "FullyConnectedLayer requires a size")
	}
	if *cfg.Size <= 0 {
		return nil, configError(cfg, "size must be positive, got %d", *cfg.Size)
	}
	if cfg.InSize <= 0 {
		return nil, configError(cfg, "FullyConnectedLayer needs at least one input")
	}

	act, ok := KwargString(cfg.Kwargs, "activation_function", DefaultActivation)
	if !ok {
		return nil, configError(cfg, "activation_function must be a string")
	}
	if !slices.Contains(Activations, act) {
		return nil, configError(cfg, "unknown activation_function %q (want one of %s)", act, strings.Join(Activations, ", "))
	}

	return &FullyConnected{
		base:       base{name: cfg.Name, typ: TypeFullyConnected, inSize: cfg.InSize, outSize: *cfg.Size, kwargs: cfg.Kwargs},
		activation: act,
	}, nil
}

// Activation returns the activation function name.
func (l *FullyConnected) Activation() string {
	return l.activation
}

// ParameterShapes returns the shapes of the weight matrix and bias vector.
func (l *FullyConnected) ParameterShapes() map[string][]int {
	return map[string][]int{
		"W": {l.inSize, l.outSize},
		"b": {l.outSize},
	}
}

// Dropout randomly zeroes inputs during training. Sizes pass through.
type Dropout struct {
	base
	dropProb float64
}

func newDropout(cfg Config) (Layer, error) {
	if err := checkPassThroughSize(cfg); err != nil {
		return nil, err
	}
	p, ok := KwargFloat(cfg.Kwargs, "drop_prob", DefaultDropProb)
	if !ok {
		return nil, configError(cfg, "drop_prob must be a number")
	}
	if p < 0 || p >= 1 {
		return nil, configError(cfg, "drop_prob must be in [0, 1), got %g", p)
	}
	return &Dropout{
		base:     base{name: cfg.Name, typ: TypeDropout, inSize: cfg.InSize, outSize: cfg.InSize, kwargs: cfg.Kwargs},
		dropProb: p,
	}, nil
}

// DropProb returns the drop probability.
func (l *Dropout) DropProb() float64 {
	return l.dropProb
}

// checkPassThroughSize rejects a declared size that disagrees with the
// inferred one, and layers without inputs.
func checkPassThroughSize(cfg Config) error {
	if cfg.InSize <= 0 {
		return configError(cfg, "layer needs at least one input")
	}
	if cfg.Size != nil && *cfg.Size != cfg.InSize {
		return configError(cfg, "declared size %d does not match in size %d", *cfg.Size, cfg.InSize)
	}
	return nil
}
