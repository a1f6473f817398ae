package loader

import (
	"fmt"
	"slices"

	"github.com/born-ml/topology/internal/arch"
	"github.com/ohler55/ojg"
	"github.com/ohler55/ojg/oj"
	"gopkg.in/yaml.v3"
)

// DescriptionTree returns the generic form of d: a mapping from layer name
// to a record with "@type", "size" (when set), sorted "sink_layers" and the
// layer's configuration keys.
func DescriptionTree(d arch.Description) (map[string]any, error) {
	out := make(map[string]any, len(d))
	for _, name := range d.Names() {
		l := d[name]
		if l == nil {
			return nil, schemaError(name, "record is nil")
		}
		rec := make(map[string]any, len(l.Config)+3)
		for k, v := range l.Config {
			if arch.IsReservedKey(k) {
				continue
			}
			rec[k] = v
		}
		rec[arch.KeyType] = l.Type
		if l.Size != nil {
			rec[arch.KeySize] = *l.Size
		}
		rec[arch.KeySinks] = stringList(l.Sinks.Sorted())
		out[name] = rec
	}
	return out, nil
}

// ExtendedTree returns the generic form of x: a list of layer records in
// canonical order, each carrying name, "@type", "size", sorted
// "sink_layers", "source_layers" and "kwargs".
func ExtendedTree(x *arch.Extended) []any {
	out := make([]any, 0, x.Len())
	for name, l := range x.All() {
		var size any
		if l.Size != nil {
			size = *l.Size
		}
		kwargs := l.Kwargs
		if kwargs == nil {
			kwargs = map[string]any{}
		}
		out = append(out, map[string]any{
			"name":          name,
			arch.KeyType:    l.Type,
			arch.KeySize:    size,
			arch.KeySinks:   stringList(l.Sinks.Sorted()),
			arch.KeySources: stringList(l.Sources),
			arch.KeyKwargs:  kwargs,
		})
	}
	return out
}

// EncodeDescription writes d in the given format. Output is deterministic.
func EncodeDescription(d arch.Description, f Format) ([]byte, error) {
	if f == FormatHCL {
		return encodeDescriptionHCL(d)
	}
	tree, err := DescriptionTree(d)
	if err != nil {
		return nil, err
	}
	return encodeTree(tree, f)
}

// EncodeExtended writes x in the given format. Output is deterministic.
func EncodeExtended(x *arch.Extended, f Format) ([]byte, error) {
	if f == FormatHCL {
		return encodeExtendedHCL(x)
	}
	return encodeTree(ExtendedTree(x), f)
}

// EncodeValue writes an arbitrary generic value as JSON or YAML.
func EncodeValue(v any, f Format) ([]byte, error) {
	if f == FormatHCL {
		return nil, fmt.Errorf("HCL output is only available for descriptions")
	}
	return encodeTree(v, f)
}

func encodeTree(v any, f Format) ([]byte, error) {
	switch f {
	case FormatJSON:
		s := oj.JSON(v, &ojg.Options{Indent: 2, Sort: true})
		return []byte(s + "\n"), nil
	case FormatYAML:
		data, err := yaml.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("failed to encode YAML: %w", err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", f)
	}
}

func stringList(names []string) []any {
	out := make([]any, len(names))
	for i, n := range names {
		out[i] = n
	}
	return slices.Clip(out)
}
