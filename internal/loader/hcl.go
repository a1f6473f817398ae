package loader

import (
	"fmt"
	"math/big"
	"slices"

	"github.com/born-ml/topology/internal/arch"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"
)

const (
	hclLayerBlock = "layer"
	hclTypeAttr   = "type"
)

var hclFileSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{
		{Type: hclLayerBlock, LabelNames: []string{"name"}},
	},
}

func decodeHCL(data []byte, filename string) (arch.Description, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(data, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL description: %w", diags)
	}

	content, diags := file.Body.Content(hclFileSchema)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL description: %w", diags)
	}

	raw := make(map[string]any, len(content.Blocks))
	for _, block := range content.Blocks {
		name := block.Labels[0]
		if _, dup := raw[name]; dup {
			return nil, schemaError(name, "layer block declared more than once at %s", block.DefRange)
		}

		rec, err := decodeLayerBlock(block)
		if err != nil {
			return nil, fmt.Errorf("layer %q: %w", name, err)
		}
		raw[name] = rec
	}
	return FromGeneric(raw)
}

func decodeLayerBlock(block *hcl.Block) (map[string]any, error) {
	attrs, diags := block.Body.JustAttributes()
	if diags.HasErrors() {
		return nil, diags
	}

	rec := make(map[string]any, len(attrs))
	for name, attr := range attrs {
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return nil, diags
		}
		v, err := ctyToGo(val)
		if err != nil {
			return nil, fmt.Errorf("attribute %q: %w", name, err)
		}

		key := name
		if name == hclTypeAttr {
			key = arch.KeyType
		}
		rec[key] = v
	}
	return rec, nil
}

// ctyToGo converts an evaluated attribute into plain Go values. Whole
// numbers become int so HCL agrees with the JSON and YAML decoders.
func ctyToGo(v cty.Value) (any, error) {
	if v.IsNull() {
		return nil, nil
	}
	if !v.IsKnown() {
		return nil, fmt.Errorf("value is not known")
	}

	ty := v.Type()
	switch {
	case ty == cty.String:
		return v.AsString(), nil

	case ty == cty.Number:
		bf := v.AsBigFloat()
		if bf.IsInt() {
			if i, acc := bf.Int64(); acc == big.Exact {
				return int(i), nil
			}
		}
		f, _ := bf.Float64()
		return f, nil

	case ty == cty.Bool:
		return v.True(), nil

	case ty.IsListType() || ty.IsTupleType() || ty.IsSetType():
		out := make([]any, 0, v.LengthInt())
		for it := v.ElementIterator(); it.Next(); {
			_, elem := it.Element()
			gv, err := ctyToGo(elem)
			if err != nil {
				return nil, err
			}
			out = append(out, gv)
		}
		return out, nil

	case ty.IsObjectType() || ty.IsMapType():
		out := make(map[string]any)
		for it := v.ElementIterator(); it.Next(); {
			key, elem := it.Element()
			gv, err := ctyToGo(elem)
			if err != nil {
				return nil, fmt.Errorf("in key %q: %w", key.AsString(), err)
			}
			out[key.AsString()] = gv
		}
		return out, nil

	default:
		return nil, fmt.Errorf("unsupported value type %s", ty.FriendlyName())
	}
}

// goToCty is the inverse of ctyToGo for the values a description can hold.
func goToCty(v any) (cty.Value, error) {
	switch val := v.(type) {
	case nil:
		return cty.NullVal(cty.DynamicPseudoType), nil
	case string:
		return cty.StringVal(val), nil
	case bool:
		return cty.BoolVal(val), nil
	case int:
		return cty.NumberIntVal(int64(val)), nil
	case int64:
		return cty.NumberIntVal(val), nil
	case uint64:
		return cty.NumberUIntVal(val), nil
	case float64:
		return cty.NumberFloatVal(val), nil
	case []string:
		return stringTuple(val), nil
	case []any:
		if len(val) == 0 {
			return cty.EmptyTupleVal, nil
		}
		elems := make([]cty.Value, len(val))
		for i, inner := range val {
			cv, err := goToCty(inner)
			if err != nil {
				return cty.NilVal, err
			}
			elems[i] = cv
		}
		return cty.TupleVal(elems), nil
	case map[string]any:
		if len(val) == 0 {
			return cty.EmptyObjectVal, nil
		}
		attrs := make(map[string]cty.Value, len(val))
		for k, inner := range val {
			cv, err := goToCty(inner)
			if err != nil {
				return cty.NilVal, fmt.Errorf("in key %q: %w", k, err)
			}
			attrs[k] = cv
		}
		return cty.ObjectVal(attrs), nil
	default:
		return cty.NilVal, fmt.Errorf("unsupported value %v (%T)", v, v)
	}
}

func stringTuple(items []string) cty.Value {
	if len(items) == 0 {
		return cty.EmptyTupleVal
	}
	elems := make([]cty.Value, len(items))
	for i, s := range items {
		elems[i] = cty.StringVal(s)
	}
	return cty.TupleVal(elems)
}

func encodeDescriptionHCL(d arch.Description) ([]byte, error) {
	f := hclwrite.NewEmptyFile()
	body := f.Body()

	for i, name := range d.Names() {
		if i > 0 {
			body.AppendNewline()
		}
		l := d[name]
		if l == nil {
			return nil, schemaError(name, "record is nil")
		}
		block := body.AppendNewBlock(hclLayerBlock, []string{name}).Body()
		block.SetAttributeValue(hclTypeAttr, cty.StringVal(l.Type))
		if l.Size != nil {
			block.SetAttributeValue(arch.KeySize, cty.NumberIntVal(int64(*l.Size)))
		}
		block.SetAttributeValue(arch.KeySinks, stringTuple(l.Sinks.Sorted()))

		keys := make([]string, 0, len(l.Config))
		for k := range l.Config {
			if arch.IsReservedKey(k) {
				continue
			}
			keys = append(keys, k)
		}
		slices.Sort(keys)
		for _, k := range keys {
			if err := setHCLAttr(block, name, k, l.Config[k]); err != nil {
				return nil, err
			}
		}
	}
	return f.Bytes(), nil
}

func encodeExtendedHCL(x *arch.Extended) ([]byte, error) {
	f := hclwrite.NewEmptyFile()
	body := f.Body()

	first := true
	for _, l := range x.All() {
		if !first {
			body.AppendNewline()
		}
		first = false
		block := body.AppendNewBlock(hclLayerBlock, []string{l.Name}).Body()
		block.SetAttributeValue(hclTypeAttr, cty.StringVal(l.Type))
		if l.Size != nil {
			block.SetAttributeValue(arch.KeySize, cty.NumberIntVal(int64(*l.Size)))
		}
		block.SetAttributeValue(arch.KeySinks, stringTuple(l.Sinks.Sorted()))
		block.SetAttributeValue(arch.KeySources, stringTuple(l.Sources))

		kwargs, err := goToCty(l.Kwargs)
		if err != nil {
			return nil, fmt.Errorf("layer %q: kwargs: %w", l.Name, err)
		}
		if l.Kwargs == nil {
			kwargs = cty.EmptyObjectVal
		}
		block.SetAttributeValue(arch.KeyKwargs, kwargs)
	}
	return f.Bytes(), nil
}

func setHCLAttr(body *hclwrite.Body, layer, key string, v any) error {
	if key == hclTypeAttr || !hclsyntax.ValidIdentifier(key) {
		return fmt.Errorf("layer %q: config key %q cannot be written as an HCL attribute", layer, key)
	}
	cv, err := goToCty(v)
	if err != nil {
		return fmt.Errorf("layer %q: config key %q: %w", layer, key, err)
	}
	body.SetAttributeValue(key, cv)
	return nil
}
