// Package loader reads and writes architecture descriptions.
//
// Supported formats:
//   - JSON (.json): a mapping from layer name to record
//   - YAML (.yaml, .yml): same shape as JSON
//   - HCL (.hcl): one `layer "<name>" { ... }` block per layer
//
// JSON and YAML records use the reserved keys "@type", "size" and
// "sink_layers"; every other key is free-form configuration. In HCL the type
// tag is written as the `type` attribute, since "@type" is not a valid
// attribute name:
//
//	layer "InputLayer" {
//	  type        = "InputLayer"
//	  size        = 784
//	  sink_layers = ["H"]
//	}
//
//	layer "H" {
//	  type                = "FullyConnectedLayer"
//	  size                = 128
//	  sink_layers         = ["Out"]
//	  activation_function = "relu"
//	}
//
// Malformed records are rejected with an *arch.InvalidArchitectureError
// (check "schema") before any structural validation happens.
//
// Example:
//
//	d, err := loader.Load("mnist.hcl")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	x, err := arch.Extend(d)
package loader
