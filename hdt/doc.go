// Package hdt implements fully-dynamic graph connectivity: a structure that
// answers "are u and v connected" after an arbitrary interleaving of edge
// insertions and deletions, in time polylogarithmic in the number of nodes
// per operation, amortized. It is an implementation of the algorithm of
// Holm, de Lichtenberg and Thorup (HDT).
//
// What:
//
//   - A caller's node and edge types embed NodeBase and EdgeBase to become
//     usable with a Graph; see Node and Edge.
//   - Graph.CreateEdge/Graph.DeleteEdge mutate the graph.
//   - Graph.HasPath answers connectivity queries.
//   - Graph.Cluster/Graph.ClusterSize/Graph.FindClusterRep/Graph.IsClusterRep
//     expose the connected component ("cluster") a node belongs to.
//
// Why:
//
//   - A recomputed-from-scratch BFS/DFS after every edge deletion is O(V+E)
//     per query in the worst case. HDT instead maintains, for every edge, a
//     level in [0, floor(log2 n)], and one spanning forest per level, such
//     that the level-0 forest is the graph's actual spanning forest and
//     higher levels are nested subforests of it. A deletion only needs to
//     search for a replacement edge within the (exponentially shrinking)
//     subtree the level structure identifies, which bounds the total work
//     across all deletions of a given edge to O(log^2 n) amortized.
//
// Algorithm sketch:
//
//   - createEdge(u, v): if u and v are already connected at level 0, the new
//     edge is a non-tree edge at level 0. Otherwise it is a level-0 tree
//     edge, linking the two components.
//   - deleteEdge(e): non-tree edges are simply removed from adjacency
//     bookkeeping. A tree edge at level L is cut from the forests at every
//     level 0..L, splitting each into two components. Starting at level L
//     and working down to 0, the smaller of the two resulting components
//     (by node count) is walked: its tree edges at that level are promoted
//     to level+1 (they remain tree edges but stop being searched at this
//     level), and its non-tree edges at that level are inspected one at a
//     time - if an edge reconnects the two components, it becomes the
//     replacement tree edge at this level and the search stops; otherwise it
//     is promoted to level+1 too. Charging this walk to the smaller side is
//     what keeps the total work logarithmic: every promoted edge at least
//     doubles the size of the component it is charged to, and a component
//     can double at most O(log n) times.
//
// Complexity (n = number of nodes currently in the graph):
//
//	CreateEdge                        O(log n) amortized
//	DeleteEdge                        O(log^2 n) amortized
//	HasPath                           O(log n) amortized
//	Cluster (full iteration)          O(k log n), k = cluster size
//	ClusterSize/FindClusterRep/IsClusterRep  O(log n) amortized
//
// Errors:
//
//   - There are no recoverable error conditions in this package's public
//     API; every precondition (distinct endpoints, an edge belonging to the
//     graph it is being deleted from, not iterating a Cluster past a
//     mutation) is either a panic or, where checking would cost more than
//     the operation itself, documented undefined behavior.
package hdt
