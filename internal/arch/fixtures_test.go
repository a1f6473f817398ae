package arch

import (
	"fmt"
	"math/rand/v2"
)

// chain is the InputLayer -> H -> Out example used throughout the tests.
func chain() Description {
	return Description{
		"InputLayer": {Type: InputLayerType, Size: Int(10), Sinks: Names("H")},
		"H":          {Type: "FooLayer", Size: Int(5), Sinks: Names("Out")},
		"Out":        {Type: "FooLayer", Size: Int(1), Sinks: Names()},
	}
}

// diamond has two branches that both feed the output.
func diamond() Description {
	return Description{
		"InputLayer": {Type: InputLayerType, Size: Int(4), Sinks: Names("A", "B")},
		"A":          {Type: "FooLayer", Size: Int(3), Sinks: Names("Out")},
		"B":          {Type: "FooLayer", Size: Int(2), Sinks: Names("Out")},
		"Out":        {Type: "FooLayer", Size: Int(1), Sinks: Names()},
	}
}

// randomDAG builds a valid, connected description with n hidden layers. Edges only go
// from lower to higher hidden index (or to Out), so the graph is acyclic.
func randomDAG(rng *rand.Rand, n int) Description {
	hidden := make([]string, n)
	for i := range hidden {
		hidden[i] = fmt.Sprintf("L%03d", i)
	}

	d := Description{
		"Out": {Type: "FooLayer", Size: Int(1), Sinks: Names()},
	}
	for i, name := range hidden {
		sinks := Names()
		for j := i + 1; j < n; j++ {
			if rng.IntN(4) == 0 {
				sinks.Add(hidden[j])
			}
		}
		if sinks.Len() == 0 || rng.IntN(3) == 0 {
			sinks.Add("Out")
		}
		d[name] = &Layer{Type: "FooLayer", Size: Int(1 + rng.IntN(16)), Sinks: sinks}
	}

	// Every hidden layer without a predecessor hangs off the input, so the
	// input reaches the whole graph and ends up first in canonical order.
	fed := Names()
	for _, name := range hidden {
		for sink := range d[name].Sinks {
			fed.Add(sink)
		}
	}
	inputSinks := Names()
	for _, name := range hidden {
		if !fed.Contains(name) || rng.IntN(3) == 0 {
			inputSinks.Add(name)
		}
	}
	if inputSinks.Len() == 0 {
		inputSinks.Add("Out")
	}
	d[InputLayerName] = &Layer{Type: InputLayerType, Size: Int(8), Sinks: inputSinks}
	return d
}
