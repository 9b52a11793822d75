package algorithms

import "github.com/katalvlaran/dynaconn/core"

// ReachableSet performs a breadth-first search from startID and returns the
// set of vertex IDs reachable from it, including startID itself.
//
// Complexity: O(V + E).
func ReachableSet(g *core.Graph, startID string) (map[string]struct{}, error) {
	if !g.HasVertex(startID) {
		return nil, ErrVertexNotFound
	}

	visited := map[string]struct{}{startID: {}}
	queue := []string{startID}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]

		nbrs, err := g.NeighborIDs(id)
		if err != nil {
			return nil, err
		}
		for _, nbr := range nbrs {
			if _, seen := visited[nbr]; seen {
				continue
			}
			visited[nbr] = struct{}{}
			queue = append(queue, nbr)
		}
	}

	return visited, nil
}
