// Package arch implements the architecture description engine.
//
// An architecture description is a plain mapping from layer name to a layer
// record (type tag, optional size, outgoing edges, free-form configuration).
// This package validates such descriptions, derives a deterministic build
// order from them, and materializes the reverse edges needed to instantiate
// layers with correctly propagated input sizes.
//
// Key components:
//   - Description / Layer: the input data structure
//   - Validate: structural legality checks (single input, single output, no dangling edges)
//   - CanonicalOrder: deterministic topological order (reverse Kahn, descending-name tie-break)
//   - Extend: ordered view with source layers and kwargs separated from reserved keys
//   - CheckConnectivity: optional explicit cycle and disconnection diagnostic
//   - Generate: build a description from a connected graph of Node values
//
// CanonicalOrder is both the scheduler and the implicit cycle detector. Validate
// does not check for cycles or full connectivity; a description with a cycle or
// a stranded component fails ordering with an UnreachableLayersError instead.
// Callers that want a precise diagnosis use CheckConnectivity (or the Strict
// extend option).
//
// Example:
//
//	d := arch.Description{
//	    "InputLayer": {Type: "InputLayer", Size: arch.Int(10), Sinks: arch.Names("H")},
//	    "H":          {Type: "FullyConnectedLayer", Size: arch.Int(5), Sinks: arch.Names("Out")},
//	    "Out":        {Type: "FullyConnectedLayer", Size: arch.Int(1), Sinks: arch.Names()},
//	}
//
//	x, err := arch.Extend(d)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(x.Names())                  // [InputLayer H Out]
//	fmt.Println(x.Layer("H").Sources)       // [InputLayer]
package arch
