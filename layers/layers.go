// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package layers provides instantiated layers and the registry that maps
// type tags to constructors.
//
// Custom layer kinds are added by registering a Factory:
//
//	r := layers.NewRegistry()
//	r.Register("Scale", layers.FactoryFunc(func(cfg layers.Config) (layers.Layer, error) {
//	    return newScale(cfg)
//	}))
package layers

import "github.com/born-ml/topology/internal/layers"

// Core interfaces and types.
type (
	Layer       = layers.Layer
	Config      = layers.Config
	Factory     = layers.Factory
	FactoryFunc = layers.FactoryFunc
	Resolver    = layers.Resolver
	Registry    = layers.Registry

	UnknownLayerTypeError = layers.UnknownLayerTypeError
)

// Built-in layer kinds.
type (
	Input          = layers.Input
	NoOp           = layers.NoOp
	FullyConnected = layers.FullyConnected
	Dropout        = layers.Dropout
)

// Built-in type tags.
const (
	TypeInput          = layers.TypeInput
	TypeNoOp           = layers.TypeNoOp
	TypeFullyConnected = layers.TypeFullyConnected
	TypeDropout        = layers.TypeDropout
)

// Common errors.
var (
	ErrUnknownLayerType = layers.ErrUnknownLayerType
	ErrInvalidConfig    = layers.ErrInvalidConfig
)

// NewRegistry creates a registry with the built-in layer kinds.
func NewRegistry() *Registry {
	return layers.NewRegistry()
}

// NewEmptyRegistry creates a registry without any layer kinds.
func NewEmptyRegistry() *Registry {
	return layers.NewEmptyRegistry()
}

// KwargString returns a string kwarg or defaultVal. The bool is false when
// the value has the wrong type.
func KwargString(kwargs map[string]any, name, defaultVal string) (string, bool) {
	return layers.KwargString(kwargs, name, defaultVal)
}

// KwargInt returns an integer kwarg or defaultVal. Integral floats are
// accepted; values outside the int range are not.
func KwargInt(kwargs map[string]any, name string, defaultVal int) (int, bool) {
	return layers.KwargInt(kwargs, name, defaultVal)
}

// KwargFloat returns a float kwarg or defaultVal.
func KwargFloat(kwargs map[string]any, name string, defaultVal float64) (float64, bool) {
	return layers.KwargFloat(kwargs, name, defaultVal)
}
