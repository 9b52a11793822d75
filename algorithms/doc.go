// Package algorithms implements the plain BFS/DFS reachability oracle used
// as ground truth by the hdt package's property tests.
//
// What:
//
//   - ReachableSet: all vertices reachable from a start vertex.
//   - ConnectedComponents: a partition of the graph into connected components.
//
// Why:
//
//   - hdt's dynamic connectivity structure is checked against an independent,
//     deliberately simple BFS implementation over core.Graph: hasPath(u,v)
//     must always agree with ground-truth reachability.
//
// Complexity:
//
//   - ReachableSet:        O(V + E).
//   - ConnectedComponents: O(V + E).
//
// Errors:
//
//	ErrVertexNotFound - the requested start vertex does not exist in the graph.
package algorithms

import "errors"

// ErrVertexNotFound is returned when a traversal is asked to start from a
// vertex absent from the graph.
var ErrVertexNotFound = errors.New("algorithms: start vertex not found")
