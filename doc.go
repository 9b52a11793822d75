// Package dynaconn is a fully-dynamic graph connectivity library: answer
// "are u and v connected" after any interleaving of edge insertions and
// deletions, without ever recomputing the whole graph from scratch.
//
// 🚀 What is dynaconn?
//
//	A pure-Go implementation of the Holm-de Lichtenberg-Thorup algorithm,
//	built from three layered pieces:
//
//	  • seq/ — an order-statistics sequence (a treap addressed by handle)
//	  • ett/ — Euler-tour trees, link/cut/connectivity for a forest
//	  • hdt/ — the level structure tying it together into dynamic connectivity
//
// ✨ Why dynaconn?
//
//   - Amortized logarithmic updates — no O(V+E) rescan on every deletion
//   - Caller-owned graphs          — embed NodeBase/EdgeBase in your own
//     types, no intermediate vertex/edge objects to keep in sync
//   - Pure Go                      — no cgo, no hidden dependencies
//
// core/, builder/, and algorithms/ round out the module: a general-purpose
// graph type, deterministic topology generators, and a plain BFS oracle,
// all used by hdt's own test suite to check its answers against ground
// truth.
//
// Quick example:
//
//	type myNode struct{ hdt.NodeBase }
//	type myEdge struct{ hdt.EdgeBase }
//
//	g := hdt.NewGraph()
//	a, b, c := &myNode{}, &myNode{}, &myNode{}
//	g.CreateEdge(a, b, &myEdge{})
//	g.CreateEdge(b, c, &myEdge{})
//	g.HasPath(a, c) // true
//
//	go get github.com/katalvlaran/dynaconn
package dynaconn
