package arch

import "regexp"

// identifierPattern is the legal shape of a layer name.
var identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// ValidName reports whether name may be used as a layer name.
func ValidName(name string) bool {
	return name != ReservedName && identifierPattern.MatchString(name)
}

// Validate checks the structural legality of a description.
//
// Checks run in a fixed order and the first failure is returned as an
// *InvalidArchitectureError:
//  1. schema: every record is present, has a type tag and a sink set
//  2. names: no layer is called "default", every name is an identifier
//  3. every sink refers to an existing layer
//  4. exactly one InputLayer-typed record, named InputLayer
//  5. no layer feeds into InputLayer
//  6. exactly one layer has no sinks
//
// Cycles and full input-to-output connectivity are not checked here. They
// surface as an ordering failure, or explicitly through CheckConnectivity.
func Validate(d Description) error {
	names := d.Names()

	for _, name := range names {
		l := d[name]
		switch {
		case l == nil:
			return invalid(CheckSchema, name, "record is missing")
		case l.Type == "":
			return invalid(CheckSchema, name, "missing %s type tag", KeyType)
		case l.Sinks == nil:
			return invalid(CheckSchema, name, "missing %s set", KeySinks)
		}
	}

	if _, ok := d[ReservedName]; ok {
		return invalid(CheckReservedName, "", "%q is an invalid layer name", ReservedName)
	}
	for _, name := range names {
		if !ValidName(name) {
			return invalid(CheckInvalidName, "", "invalid layer name: %q", name)
		}
	}

	for _, name := range names {
		for _, sink := range d[name].Sinks.Sorted() {
			if _, ok := d[sink]; !ok {
				return invalid(CheckMissingSink, name, "could not find sink layer %q", sink)
			}
		}
	}

	input, ok := d[InputLayerName]
	if !ok {
		return invalid(CheckMissingInput, "", "no layer named %q", InputLayerName)
	}
	if input.Type != InputLayerType {
		return invalid(CheckInputType, InputLayerName, "expected type %q, got %q", InputLayerType, input.Type)
	}
	for _, name := range names {
		if name != InputLayerName && d[name].Type == InputLayerType {
			return invalid(CheckMultipleInputs, name, "only %q may have type %q", InputLayerName, InputLayerType)
		}
	}

	for _, name := range names {
		if d[name].Sinks.Contains(InputLayerName) {
			return invalid(CheckInputHasSource, name, "%q cannot be a sink layer", InputLayerName)
		}
	}

	var outputs []string
	for _, name := range names {
		if d[name].Sinks.Len() == 0 {
			outputs = append(outputs, name)
		}
	}
	if len(outputs) != 1 {
		return invalid(CheckOutputCount, "", "expected exactly one layer without sinks, found %d %v", len(outputs), outputs)
	}

	return nil
}
