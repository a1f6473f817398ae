package arch

import (
	"slices"

	"github.com/RoaringBitmap/roaring"
)

// CheckConnectivity diagnoses cycles and disconnected layers explicitly.
//
// It expects a description that already passed Validate. A *CycleError is
// returned if any layer lies on a cycle (including self loops); otherwise a
// *DisconnectedError lists layers that are unreachable from InputLayer or
// that cannot reach the output layer. Sinks naming unknown layers are ignored.
func CheckConnectivity(d Description) error {
	g := newIndexedGraph(d)

	if cycles := g.cycles(); len(cycles) > 0 {
		return &CycleError{Cycles: cycles}
	}

	all := roaring.New()
	all.AddRange(0, uint64(len(g.names)))

	fromInput := roaring.New()
	if idx, ok := g.index[InputLayerName]; ok {
		fromInput = g.reach(idx, g.succ)
	}

	toOutput := roaring.New()
	for i, name := range g.names {
		if d.sinksOf(name).Len() == 0 {
			toOutput.Or(g.reach(uint32(i), g.pred))
		}
	}

	notFromInput := roaring.AndNot(all, fromInput)
	notToOutput := roaring.AndNot(all, toOutput)
	if notFromInput.IsEmpty() && notToOutput.IsEmpty() {
		return nil
	}
	return &DisconnectedError{
		FromInput: g.namesOf(notFromInput),
		ToOutput:  g.namesOf(notToOutput),
	}
}

// indexedGraph is an adjacency-list copy of a description, with layers
// numbered in ascending name order.
type indexedGraph struct {
	names []string
	index map[string]uint32
	succ  [][]uint32
	pred  [][]uint32
}

func newIndexedGraph(d Description) *indexedGraph {
	g := &indexedGraph{
		names: d.Names(),
		index: make(map[string]uint32, len(d)),
	}
	for i, name := range g.names {
		g.index[name] = uint32(i)
	}
	g.succ = make([][]uint32, len(g.names))
	g.pred = make([][]uint32, len(g.names))
	for i, name := range g.names {
		for _, sink := range d.sinksOf(name).Sorted() {
			j, ok := g.index[sink]
			if !ok {
				continue
			}
			g.succ[i] = append(g.succ[i], j)
			g.pred[j] = append(g.pred[j], uint32(i))
		}
	}
	return g
}

// reach returns every node reachable from start along adj, start included.
func (g *indexedGraph) reach(start uint32, adj [][]uint32) *roaring.Bitmap {
	seen := roaring.New()
	seen.Add(start)
	queue := []uint32{start}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		for _, m := range adj[n] {
			if seen.CheckedAdd(m) {
				queue = append(queue, m)
			}
		}
	}
	return seen
}

func (g *indexedGraph) namesOf(b *roaring.Bitmap) []string {
	if b.IsEmpty() {
		return nil
	}
	out := make([]string, 0, b.GetCardinality())
	it := b.Iterator()
	for it.HasNext() {
		out = append(out, g.names[it.Next()])
	}
	return out
}

// cycles returns the strongly connected components that contain a cycle,
// each sorted by name, ordered by their first member (Tarjan's algorithm).
func (g *indexedGraph) cycles() [][]string {
	n := len(g.names)
	index := make([]int, n)
	low := make([]int, n)
	onStack := make([]bool, n)
	for i := range index {
		index[i] = -1
	}
	var stack []uint32
	next := 0
	var out [][]string

	var visit func(v uint32)
	visit = func(v uint32) {
		index[v] = next
		low[v] = next
		next++
		stack = append(stack, v)
		onStack[v] = true

		for _, w := range g.succ[v] {
			if index[w] < 0 {
				visit(w)
				low[v] = min(low[v], low[w])
			} else if onStack[w] {
				low[v] = min(low[v], index[w])
			}
		}

		if low[v] != index[v] {
			return
		}
		var component []string
		for {
			w := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			onStack[w] = false
			component = append(component, g.names[w])
			if w == v {
				break
			}
		}
		if len(component) > 1 || slices.Contains(g.succ[v], v) {
			slices.Sort(component)
			out = append(out, component)
		}
	}

	for v := range n {
		if index[v] < 0 {
			visit(uint32(v))
		}
	}

	slices.SortFunc(out, func(a, b []string) int {
		return slices.Compare(a, b)
	})
	return out
}
