package arch

import (
	"slices"
	"strings"
)

// CanonicalOrder returns every layer name in a deterministic topological
// order, input side first and output last.
//
// The order is computed from the output backwards: each round selects all
// remaining layers whose sinks are already ordered, appends them by
// descending name, and finally the accumulated list is reversed. The
// descending tie-break makes the result reproducible across runs and hosts;
// outputs serialized by earlier builds depend on this exact rule.
//
// If a round selects nothing while layers remain, those layers sit on a
// cycle or feed into something that never reaches the output. They are
// reported together in an *UnreachableLayersError.
func CanonicalOrder(d Description) ([]string, error) {
	order := make([]string, 0, len(d))
	ordered := make(NameSet, len(d))
	remaining := d.Names()

	for len(remaining) > 0 {
		var ready, rest []string
		for _, name := range remaining {
			if d.sinksOf(name).SubsetOf(ordered) {
				ready = append(ready, name)
			} else {
				rest = append(rest, name)
			}
		}
		if len(ready) == 0 {
			return nil, &UnreachableLayersError{Layers: rest}
		}

		slices.SortFunc(ready, func(a, b string) int {
			return strings.Compare(b, a)
		})
		order = append(order, ready...)
		for _, name := range ready {
			ordered.Add(name)
		}
		remaining = rest
	}

	slices.Reverse(order)
	return order, nil
}
