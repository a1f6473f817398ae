// Package layers provides the layer registry consumed by the instantiation
// orchestrator, plus a small set of built-in layer kinds.
//
// A layer type tag (the @type of a description record) is resolved to a
// Factory through a Resolver. Registry is the standard Resolver: it maps tags
// to factories and comes pre-populated with the built-in kinds:
//   - InputLayer: out = size, takes no inputs
//   - NoOpLayer: out = in
//   - FullyConnectedLayer: out = size, parameters W [in, out] and b [out]
//   - DropoutLayer: out = in
//
// Layers built here only carry their sizes and configuration. Numeric
// computation happens elsewhere.
package layers
