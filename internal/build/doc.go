// Package build instantiates layers from an architecture description.
//
// Instantiate extends the description, resolves every layer type through a
// layers.Resolver and constructs the layers in canonical order, feeding each
// one the sum of its source layers' out sizes as its in size.
//
// With Options.Workers > 1 independent layers are constructed concurrently in
// waves: a layer's wave is one past the deepest wave among its sources, so a
// layer never starts before all of its sources exist. Factories must then be
// safe for concurrent use. The resulting Network and any reported error are
// the same as for sequential construction, provided factories are
// deterministic.
//
// Construction is all-or-nothing: on any error no Network is returned.
package build
