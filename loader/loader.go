// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package loader reads and writes architecture descriptions.
//
// This package wraps the internal loader and exports a clean public API
// for JSON, YAML and HCL descriptions.
//
// Example usage:
//
//	d, err := loader.Load("mnist.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	x, err := arch.Extend(d)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	out, err := loader.EncodeExtended(x, loader.FormatJSON)
package loader

import (
	"github.com/born-ml/topology/internal/arch"
	"github.com/born-ml/topology/internal/loader"
)

// Format represents a description file format.
type Format = loader.Format

// Supported formats.
const (
	FormatUnknown Format = loader.FormatUnknown
	FormatJSON    Format = loader.FormatJSON
	FormatYAML    Format = loader.FormatYAML
	FormatHCL     Format = loader.FormatHCL
)

// DetectFormat returns the format implied by a file extension.
func DetectFormat(path string) Format {
	return loader.DetectFormat(path)
}

// ParseFormat parses a format name.
func ParseFormat(name string) (Format, error) {
	return loader.ParseFormat(name)
}

// Load reads a description, detecting the format from the extension.
//
// Supported formats:
//   - .json
//   - .yaml, .yml
//   - .hcl (one `layer "<name>"` block per layer)
func Load(path string) (arch.Description, error) {
	return loader.Load(path)
}

// Decode parses a description from bytes.
func Decode(data []byte, f Format) (arch.Description, error) {
	return loader.Decode(data, f)
}

// FromGeneric converts already-decoded generic data into a description.
func FromGeneric(raw any) (arch.Description, error) {
	return loader.FromGeneric(raw)
}

// EncodeDescription writes d in the given format.
func EncodeDescription(d arch.Description, f Format) ([]byte, error) {
	return loader.EncodeDescription(d, f)
}

// EncodeExtended writes an extended description in the given format.
func EncodeExtended(x *arch.Extended, f Format) ([]byte, error) {
	return loader.EncodeExtended(x, f)
}
