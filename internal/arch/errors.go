package arch

import (
	"errors"
	"fmt"
	"strings"
)

// Common errors. Typed errors below match these with errors.Is.
var (
	ErrInvalidArchitecture = errors.New("invalid architecture")
	ErrUnreachableLayers   = errors.New("unreachable layers")
	ErrCycle               = errors.New("cycle in architecture")
	ErrDisconnected        = errors.New("disconnected architecture")
)

// Validation check identifiers, in the order Validate runs them.
const (
	CheckSchema         = "schema"
	CheckReservedName   = "reserved_name"
	CheckInvalidName    = "invalid_name"
	CheckMissingSink    = "missing_sink"
	CheckMissingInput   = "missing_input"
	CheckInputType      = "input_type"
	CheckMultipleInputs = "multiple_inputs"
	CheckInputHasSource = "input_has_source"
	CheckOutputCount    = "output_count"
	CheckDuplicateName  = "duplicate_name"
)

// InvalidArchitectureError describes the first structural violation found
// in a description.
type InvalidArchitectureError struct {
	Check   string // Which check failed (e.g., "missing_sink")
	Layer   string // Layer involved, if any
	Details string // Human readable explanation
}

// Error implements the error interface.
func (e *InvalidArchitectureError) Error() string {
	if e.Layer != "" {
		return fmt.Sprintf("invalid architecture (%s): layer %q: %s", e.Check, e.Layer, e.Details)
	}
	return fmt.Sprintf("invalid architecture (%s): %s", e.Check, e.Details)
}

// Is makes errors.Is(err, ErrInvalidArchitecture) succeed.
func (e *InvalidArchitectureError) Is(target error) bool {
	return target == ErrInvalidArchitecture
}

func invalid(check, layer, format string, args ...any) *InvalidArchitectureError {
	return &InvalidArchitectureError{Check: check, Layer: layer, Details: fmt.Sprintf(format, args...)}
}

// UnreachableLayersError reports every layer that CanonicalOrder could not
// place. This happens when the layers form a cycle or when their sinks never
// terminate in the output layer.
type UnreachableLayersError struct {
	Layers []string // Sorted names of the stuck layers
}

// Error implements the error interface.
func (e *UnreachableLayersError) Error() string {
	return fmt.Sprintf("couldn't reach layers: %s", strings.Join(e.Layers, ", "))
}

// Is makes errors.Is(err, ErrUnreachableLayers) succeed.
func (e *UnreachableLayersError) Is(target error) bool {
	return target == ErrUnreachableLayers
}

// CycleError lists the layers of every cycle found by CheckConnectivity.
type CycleError struct {
	Cycles [][]string // Each entry is one strongly connected component, sorted
}

// Error implements the error interface.
func (e *CycleError) Error() string {
	parts := make([]string, len(e.Cycles))
	for i, c := range e.Cycles {
		parts[i] = "[" + strings.Join(c, " ") + "]"
	}
	return fmt.Sprintf("%s: %s", ErrCycle, strings.Join(parts, ", "))
}

// Is makes errors.Is(err, ErrCycle) succeed.
func (e *CycleError) Is(target error) bool {
	return target == ErrCycle
}

// DisconnectedError lists layers that are not on any path from the input
// layer to the output layer.
type DisconnectedError struct {
	FromInput []string // Layers not reachable from InputLayer
	ToOutput  []string // Layers that cannot reach the output layer
}

// Error implements the error interface.
func (e *DisconnectedError) Error() string {
	var parts []string
	if len(e.FromInput) > 0 {
		parts = append(parts, "not reachable from input: "+strings.Join(e.FromInput, ", "))
	}
	if len(e.ToOutput) > 0 {
		parts = append(parts, "cannot reach output: "+strings.Join(e.ToOutput, ", "))
	}
	return fmt.Sprintf("%s: %s", ErrDisconnected, strings.Join(parts, "; "))
}

// Is makes errors.Is(err, ErrDisconnected) succeed.
func (e *DisconnectedError) Is(target error) bool {
	return target == ErrDisconnected
}
