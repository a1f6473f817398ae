package arch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_FromAnyNode(t *testing.T) {
	in := NewSpec("InputLayer", InputLayerType, Int(10), nil)
	h := NewSpec("H", "FooLayer", Int(5), map[string]any{"activation_function": "relu"})
	out := NewSpec("Out", "FooLayer", Int(1), nil)
	in.Connect(h).Connect(out)

	for _, root := range []*Spec{in, h, out} {
		d, err := Generate(root)
		require.NoError(t, err)

		assert.Equal(t, []string{"H", "InputLayer", "Out"}, d.Names())
		assert.Equal(t, Names("H"), d["InputLayer"].Sinks)
		assert.Equal(t, Names("Out"), d["H"].Sinks)
		assert.Equal(t, Names(), d["Out"].Sinks)
		assert.Equal(t, "relu", d["H"].Config["activation_function"])
		assert.Equal(t, 5, *d["H"].Size)
	}
}

func TestGenerate_MatchesHandWritten(t *testing.T) {
	in := NewSpec("InputLayer", InputLayerType, Int(10), nil)
	h := NewSpec("H", "FooLayer", Int(5), nil)
	out := NewSpec("Out", "FooLayer", Int(1), nil)
	in.Connect(h).Connect(out)

	d, err := Generate(in)
	require.NoError(t, err)

	x1, err := Extend(d)
	require.NoError(t, err)
	x2, err := Extend(chain())
	require.NoError(t, err)
	assert.Equal(t, x2.Names(), x1.Names())
}

func TestGenerate_ConnectIsIdempotent(t *testing.T) {
	a := NewSpec("InputLayer", InputLayerType, Int(1), nil)
	b := NewSpec("B", "FooLayer", nil, nil)
	a.Connect(b)
	a.Connect(b)

	assert.Len(t, a.SinkNodes(), 1)
	assert.Len(t, b.SourceNodes(), 1)
}

func TestGenerate_DuplicateName(t *testing.T) {
	in := NewSpec("InputLayer", InputLayerType, Int(1), nil)
	in.Connect(NewSpec("Out", "FooLayer", nil, nil), NewSpec("Out", "FooLayer", nil, nil))

	_, err := Generate(in)
	require.ErrorIs(t, err, ErrInvalidArchitecture)

	var invalidErr *InvalidArchitectureError
	require.ErrorAs(t, err, &invalidErr)
	assert.Equal(t, CheckDuplicateName, invalidErr.Check)
}

func TestGenerate_KwargsCopied(t *testing.T) {
	kwargs := map[string]any{"k": []any{1}}
	s := NewSpec("InputLayer", InputLayerType, Int(1), kwargs)
	kwargs["k"].([]any)[0] = 2

	d, err := Generate(s)
	require.NoError(t, err)
	assert.Equal(t, []any{1}, d["InputLayer"].Config["k"])
}

func TestCollect_Nil(t *testing.T) {
	assert.Nil(t, Collect(nil))
}

// bareNode is a Node without source links.
type bareNode struct {
	name  string
	sinks []Node
}

func (n *bareNode) Name() string           { return n.name }
func (n *bareNode) LayerType() string      { return "FooLayer" }
func (n *bareNode) Size() *int             { return nil }
func (n *bareNode) Kwargs() map[string]any { return nil }
func (n *bareNode) SinkNodes() []Node      { return n.sinks }

func TestGenerate_NilSink(t *testing.T) {
	root := &bareNode{name: "InputLayer", sinks: []Node{&bareNode{name: "Out"}, nil}}

	_, err := Generate(root)
	var invalidErr *InvalidArchitectureError
	require.ErrorAs(t, err, &invalidErr)
	assert.Equal(t, CheckSchema, invalidErr.Check)
	assert.Equal(t, "InputLayer", invalidErr.Layer)
}

func TestGenerateFrom_NilNode(t *testing.T) {
	_, err := GenerateFrom([]Node{&bareNode{name: "Out"}, nil})
	require.ErrorIs(t, err, ErrInvalidArchitecture)
}

func TestGenerate_ConnectIgnoresNil(t *testing.T) {
	in := NewSpec("InputLayer", InputLayerType, Int(1), nil)
	out := NewSpec("Out", "FooLayer", nil, nil)

	assert.Same(t, out, in.Connect(nil, out, nil))
	assert.Len(t, in.SinkNodes(), 1)

	d, err := Generate(in)
	require.NoError(t, err)
	assert.Equal(t, Names("Out"), d["InputLayer"].Sinks)
}
