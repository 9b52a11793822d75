// Package seq implements an order-statistics sequence: a balanced binary
// search tree whose in-order traversal is the sequence itself, addressed
// entirely through node handles rather than keys.
//
// What:
//
//   - NewSingleton builds a one-element sequence around an opaque payload.
//   - SplitBefore/SplitAfter partition a sequence around a given element.
//   - Join concatenates two sequences, the first entirely preceding the
//     second.
//   - Order/Size/First/Last/Root answer order-statistics questions about the
//     sequence containing a given element.
//   - SetMark/FindMarked maintain and query boolean aggregates (the OR of an
//     element's own flag and its subtree's flags) for a fixed set of mark
//     channels.
//   - All enumerates a sequence's elements in order.
//
// Why:
//
//   - ett builds the Euler-tour representation of a forest on top of this
//     package: tree and edge occurrences are just opaque payloads threaded
//     through a seq.Node, and link/cut reduce to split/join.
//   - The structure is a treap (randomized heap-ordered BST): priorities are
//     assigned once at creation and never compared against a caller-visible
//     key, which keeps split-by-handle (rather than split-by-key) simple -
//     see node.go for why this also keeps rotations mechanical. Expected
//     depth is O(log n); every operation below is expressed in terms of that
//     expected depth, matching the amortized guarantees ett and hdt already
//     rely on.
//
// Complexity (n = size of the sequence involved):
//
//	NewSingleton          O(1)
//	SplitBefore/SplitAfter O(log n) expected
//	Join                   O(log n) expected
//	Order/Size/First/Last  O(log n) expected
//	SetMark                O(log n) expected
//	FindMarked             O(log n) expected
//	All                    O(n)
//
// Errors:
//
//   - There are no recoverable error conditions. Calling Order on handles
//     that belong to different sequences is a precondition violation and
//     panics.
package seq
