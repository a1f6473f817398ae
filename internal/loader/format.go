package loader

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/born-ml/topology/internal/arch"
)

// Format represents a description file format.
type Format int

// Supported formats.
const (
	FormatUnknown Format = iota
	FormatJSON
	FormatYAML
	FormatHCL
)

// String returns the format name.
func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "JSON"
	case FormatYAML:
		return "YAML"
	case FormatHCL:
		return "HCL"
	default:
		return "Unknown"
	}
}

// DetectFormat returns the format implied by a file extension.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	case ".hcl":
		return FormatHCL
	default:
		return FormatUnknown
	}
}

// ParseFormat parses a format name such as "json", "yaml" or "hcl".
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "hcl":
		return FormatHCL, nil
	default:
		return FormatUnknown, fmt.Errorf("unsupported format %q (expected json, yaml or hcl)", name)
	}
}

// Load reads a description file, detecting the format from its extension.
func Load(path string) (arch.Description, error) {
	f := DetectFormat(path)
	if f == FormatUnknown {
		return nil, fmt.Errorf("unsupported file format: %s (expected .json, .yaml, .yml or .hcl)", filepath.Ext(path))
	}
	return LoadAs(path, f)
}

// LoadAs reads a description file in the given format.
func LoadAs(path string, f Format) (arch.Description, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read description: %w", err)
	}
	return decode(data, f, filepath.Base(path))
}

// Decode parses a description from bytes.
func Decode(data []byte, f Format) (arch.Description, error) {
	return decode(data, f, "<input>")
}

func decode(data []byte, f Format, filename string) (arch.Description, error) {
	switch f {
	case FormatJSON:
		return decodeJSON(data)
	case FormatYAML:
		return decodeYAML(data)
	case FormatHCL:
		return decodeHCL(data, filename)
	default:
		return nil, fmt.Errorf("unsupported format: %s", f)
	}
}
