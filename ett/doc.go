// Package ett implements Euler-tour trees: a representation of a forest,
// one tree per connected component, that supports link, cut, connectivity,
// subtree size, and component enumeration in O(log n) amortized per
// operation by reducing every one of them to seq split/join.
//
// What:
//
//   - Forest.AddNode attaches a new, initially isolated node.
//   - Forest.Link joins two trees via a new tree edge; Forest.Cut removes
//     one, splitting its tree in two. Cut orders the edge's two arc
//     occurrences by their current tour position (a Link elsewhere in the
//     tree may since have rotated the tour so the "return" arc sits before
//     the "forward" one) rather than assuming which was built first.
//   - Forest.Connected, Forest.Size, Forest.First answer component
//     membership, size, and canonical-representative queries.
//   - Forest.Enumerate walks a component's nodes in Euler-tour order.
//   - Forest.SetMark/Forest.NextMarked expose the two per-node boolean
//     channels (seq.MarkTreeEdge, seq.MarkNonTreeEdge) a caller uses to
//     track which nodes currently have a promotable or probeable edge.
//
// Why:
//
//   - hdt needs, per level, a spanning forest that survives edge deletion:
//     when a tree edge is cut, the two resulting components must be
//     queryable (size, membership) and re-linkable without rebuilding
//     anything from scratch. An Euler tour turns "is u still connected to
//     v" and "how big is u's tree" into seq.Root/seq.Size comparisons.
//
// Representation:
//
//	Each node gets exactly one permanent occurrence, for its entire
//	lifetime at this level. Each tree edge, while linked, contributes two
//	occurrences (one per traversal direction). A component of k nodes
//	therefore holds a sequence of 3k-2 occurrences (k node occurrences plus
//	2(k-1) edge occurrences for its k-1 tree edges); Forest.Size divides
//	this figure back out to report the node count callers actually want.
//	This trades a slightly larger constant for never having to reassign a
//	node's occurrence identity across links and cuts.
//
// Complexity (n = size of the component involved):
//
//	AddNode               O(1)
//	Link/Cut              O(log n) expected
//	Connected/Size/First  O(log n) expected
//	NextMarked            O(log n) expected
//	Enumerate             O(n)
//
// Errors:
//
//   - Enumerate's iterator panics if the forest is mutated (via Link or Cut)
//     while the iteration is in progress. This is a best-effort check keyed
//     to a generation counter, not a guarantee that every possible
//     concurrent mutation is caught.
package ett
