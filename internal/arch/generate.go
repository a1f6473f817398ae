package arch

import "slices"

// Node is a layer object in a live, connected graph. Generate turns a graph
// of Nodes into a Description.
type Node interface {
	Name() string
	LayerType() string
	Size() *int
	Kwargs() map[string]any
	SinkNodes() []Node
}

// sourceLinked is implemented by nodes that also know their predecessors,
// which lets Collect find the whole graph from any member.
type sourceLinked interface {
	SourceNodes() []Node
}

// Collect returns every node reachable from root, breadth first. Sinks are
// always followed; sources are followed for nodes that expose them.
func Collect(root Node) []Node {
	if root == nil {
		return nil
	}
	seen := map[Node]bool{root: true}
	out := []Node{root}
	for i := 0; i < len(out); i++ {
		n := out[i]
		neighbours := n.SinkNodes()
		if s, ok := n.(sourceLinked); ok {
			neighbours = append(slices.Clone(neighbours), s.SourceNodes()...)
		}
		for _, m := range neighbours {
			if m == nil || seen[m] {
				continue
			}
			seen[m] = true
			out = append(out, m)
		}
	}
	return out
}

// Generate builds a description from the graph connected to root.
func Generate(root Node) (Description, error) {
	return GenerateFrom(Collect(root))
}

// GenerateFrom builds a description from an already collected set of nodes.
// Nil nodes, nil sinks and two distinct nodes sharing a name are rejected.
func GenerateFrom(nodes []Node) (Description, error) {
	d := make(Description, len(nodes))
	owner := make(map[string]Node, len(nodes))
	for _, n := range nodes {
		if n == nil {
			return nil, invalid(CheckSchema, "", "nil layer node")
		}
		name := n.Name()
		if prev, ok := owner[name]; ok && prev != n {
			return nil, invalid(CheckDuplicateName, name, "two distinct layers share this name")
		}
		owner[name] = n

		sinks := Names()
		for _, s := range n.SinkNodes() {
			if s == nil {
				return nil, invalid(CheckSchema, name, "nil sink node")
			}
			sinks.Add(s.Name())
		}
		d[name] = &Layer{
			Type:   n.LayerType(),
			Size:   cloneSize(n.Size()),
			Sinks:  sinks,
			Config: CloneConfig(n.Kwargs()),
		}
	}
	return d, nil
}

// Spec is an in-memory Node for wiring architectures in code.
//
//	in := arch.NewSpec("InputLayer", "InputLayer", arch.Int(784), nil)
//	hidden := arch.NewSpec("H", "FullyConnectedLayer", arch.Int(128), map[string]any{"activation_function": "relu"})
//	out := arch.NewSpec("Out", "FullyConnectedLayer", arch.Int(10), nil)
//	in.Connect(hidden).Connect(out)
//
//	d, err := arch.Generate(out)
type Spec struct {
	name    string
	typ     string
	size    *int
	kwargs  map[string]any
	sinks   []*Spec
	sources []*Spec
}

// NewSpec creates an unconnected Spec node.
func NewSpec(name, layerType string, size *int, kwargs map[string]any) *Spec {
	return &Spec{
		name:   name,
		typ:    layerType,
		size:   cloneSize(size),
		kwargs: CloneConfig(kwargs),
	}
}

// Connect adds edges from s to every sink and returns the last sink, so
// chains read left to right. Existing edges are not duplicated and nil sinks
// are ignored.
func (s *Spec) Connect(sinks ...*Spec) *Spec {
	last := s
	for _, sink := range sinks {
		if sink == nil {
			continue
		}
		if !slices.Contains(s.sinks, sink) {
			s.sinks = append(s.sinks, sink)
			sink.sources = append(sink.sources, s)
		}
		last = sink
	}
	return last
}

// Name implements Node.
func (s *Spec) Name() string { return s.name }

// LayerType implements Node.
func (s *Spec) LayerType() string { return s.typ }

// Size implements Node.
func (s *Spec) Size() *int { return s.size }

// Kwargs implements Node.
func (s *Spec) Kwargs() map[string]any { return s.kwargs }

// SinkNodes implements Node.
func (s *Spec) SinkNodes() []Node {
	return toNodes(s.sinks)
}

// SourceNodes returns the nodes feeding into s.
func (s *Spec) SourceNodes() []Node {
	return toNodes(s.sources)
}

func toNodes(specs []*Spec) []Node {
	out := make([]Node, len(specs))
	for i, sp := range specs {
		out[i] = sp
	}
	return out
}
