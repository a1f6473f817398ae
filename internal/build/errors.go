package build

import "fmt"

// LayerError wraps a failure to resolve or construct a single layer.
type LayerError struct {
	Layer string
	Type  string
	Err   error
}

// Error implements the error interface.
func (e *LayerError) Error() string {
	return fmt.Sprintf("layer %q (%s): %v", e.Layer, e.Type, e.Err)
}

// Unwrap returns the underlying error.
func (e *LayerError) Unwrap() error {
	return e.Err
}
