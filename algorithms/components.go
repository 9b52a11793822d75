package algorithms

import (
	"sort"

	"github.com/katalvlaran/dynaconn/core"
)

// ConnectedComponents partitions g's vertices into connected components.
// Each component is a sorted slice of vertex IDs; components are returned
// sorted by their smallest member, so the result is fully deterministic.
//
// Complexity: O(V + E).
func ConnectedComponents(g *core.Graph) [][]string {
	seen := make(map[string]struct{})
	var comps [][]string

	for _, id := range g.Vertices() {
		if _, ok := seen[id]; ok {
			continue
		}

		reached, err := ReachableSet(g, id)
		if err != nil {
			// Vertices() only ever returns ids HasVertex agrees with.
			panic("algorithms: ConnectedComponents: inconsistent vertex catalog")
		}

		comp := make([]string, 0, len(reached))
		for v := range reached {
			comp = append(comp, v)
			seen[v] = struct{}{}
		}
		sort.Strings(comp)
		comps = append(comps, comp)
	}

	sort.Slice(comps, func(i, j int) bool { return comps[i][0] < comps[j][0] })

	return comps
}
