// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package arch validates, orders, extends and instantiates layer graphs.
//
// A Description maps layer names to records holding a type tag, an optional
// size, the set of sink layers and free-form configuration. Exactly one layer
// is called "InputLayer" and exactly one layer has no sinks.
//
// Example:
//
//	d := arch.Description{
//	    "InputLayer": {Type: "InputLayer", Size: arch.Int(784), Sinks: arch.Names("H")},
//	    "H":          {Type: "FullyConnectedLayer", Size: arch.Int(128), Sinks: arch.Names("Out"),
//	                   Config: map[string]any{"activation_function": "relu"}},
//	    "Out":        {Type: "DropoutLayer", Sinks: arch.Names()},
//	}
//
//	net, err := arch.Instantiate(d, layers.NewRegistry())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(net.Output().OutSize()) // 128
package arch

import (
	"github.com/born-ml/topology/internal/arch"
	"github.com/born-ml/topology/internal/build"
	"github.com/born-ml/topology/internal/inspect"
	"github.com/born-ml/topology/internal/layers"
)

// Description types.
type (
	NameSet       = arch.NameSet
	Layer         = arch.Layer
	Description   = arch.Description
	ExtendedLayer = arch.ExtendedLayer
	Extended      = arch.Extended
	ExtendOptions = arch.ExtendOptions
)

// Generation from connected nodes.
type (
	Node = arch.Node
	Spec = arch.Spec
)

// Error types.
type (
	InvalidArchitectureError = arch.InvalidArchitectureError
	UnreachableLayersError   = arch.UnreachableLayersError
	CycleError               = arch.CycleError
	DisconnectedError        = arch.DisconnectedError
	LayerError               = build.LayerError
)

// Instantiation types.
type (
	Network = build.Network
	Options = build.Options
)

// Well-known names.
const (
	InputLayerName = arch.InputLayerName
	InputLayerType = arch.InputLayerType
	ReservedName   = arch.ReservedName
)

// Common errors.
var (
	ErrInvalidArchitecture = arch.ErrInvalidArchitecture
	ErrUnreachableLayers   = arch.ErrUnreachableLayers
	ErrCycle               = arch.ErrCycle
	ErrDisconnected        = arch.ErrDisconnected
)

// Names creates a NameSet.
func Names(names ...string) NameSet {
	return arch.Names(names...)
}

// Int returns a pointer to n, for optional sizes.
func Int(n int) *int {
	return arch.Int(n)
}

// Validate runs the structural checks and returns the first violation.
func Validate(d Description) error {
	return arch.Validate(d)
}

// CanonicalOrder returns the deterministic topological order of d.
func CanonicalOrder(d Description) ([]string, error) {
	return arch.CanonicalOrder(d)
}

// CheckConnectivity reports cycles and disconnected layers explicitly.
func CheckConnectivity(d Description) error {
	return arch.CheckConnectivity(d)
}

// Extend validates d and materializes sources, kwargs and canonical order.
func Extend(d Description) (*Extended, error) {
	return arch.Extend(d)
}

// ExtendWithOptions is Extend with options.
func ExtendWithOptions(d Description, opts ExtendOptions) (*Extended, error) {
	return arch.ExtendWithOptions(d, opts)
}

// NewSpec creates a node for building descriptions in code.
func NewSpec(name, layerType string, size *int, kwargs map[string]any) *Spec {
	return arch.NewSpec(name, layerType, size, kwargs)
}

// Generate builds a description from any node of a connected graph.
func Generate(root Node) (Description, error) {
	return arch.Generate(root)
}

// DefaultOptions returns sequential instantiation options.
func DefaultOptions() Options {
	return build.DefaultOptions()
}

// Instantiate builds every layer of d in canonical order using r.
func Instantiate(d Description, r layers.Resolver, opts ...Options) (*Network, error) {
	return build.Instantiate(d, r, opts...)
}

// Query evaluates a JSONPath selector against the extended description.
func Query(x *Extended, selector string) ([]any, error) {
	return inspect.Query(x, selector)
}
