package hdt

import (
	"iter"

	"github.com/katalvlaran/dynaconn/ett"
	"github.com/katalvlaran/dynaconn/seq"
)

// Graph is a fully-dynamic connectivity structure over caller-owned nodes
// and edges. The zero Graph is ready to use.
type Graph struct {
	forests []*ett.Forest
}

// NewGraph returns a new, empty Graph.
func NewGraph() *Graph { return &Graph{} }

// forest returns the level-l forest, lazily creating every forest up to and
// including level l.
func (g *Graph) forest(level int) *ett.Forest {
	for level >= len(g.forests) {
		g.forests = append(g.forests, ett.NewForest())
	}
	return g.forests[level]
}

// attach lazily initializes n's bookkeeping the first time it is used with
// this graph, placing it as a singleton tree in the level-0 forest.
func (g *Graph) attach(n Node) *NodeBase {
	nb := n.hdtNode()
	if !nb.attached() {
		nb.occ = []*ett.NodeOcc{g.forest(0).AddNode(n)}
		nb.treeAdj = []adjSet{{}}
		nb.nonTreeAdj = []adjSet{{}}
	}
	return nb
}

// ensureLevel grows nb's per-level bookkeeping, attaching it as a singleton
// tree in every newly reached level's forest, so that it is valid up to and
// including level.
func (g *Graph) ensureLevel(nb *NodeBase, owner Node, level int) {
	for nb.maxLevel() < level {
		l := len(nb.occ)
		nb.occ = append(nb.occ, g.forest(l).AddNode(owner))
		nb.treeAdj = append(nb.treeAdj, adjSet{})
		nb.nonTreeAdj = append(nb.nonTreeAdj, adjSet{})
	}
}

// CreateEdge adds e between u and v. It reports whether e became a tree
// edge (true) or a non-tree edge (false). u, v, and e must not already
// belong to this graph's bookkeeping; violating that is undefined behavior.
func (g *Graph) CreateEdge(u, v Node, e Edge) bool {
	nu := g.attach(u)
	nv := g.attach(v)
	eb := e.hdtEdge()
	eb.u, eb.v = u, v
	eb.level = 0

	f0 := g.forest(0)
	if f0.Connected(nu.occ[0], nv.occ[0]) {
		eb.isTree = false
		addAdj(nu.nonTreeAdj[0], eb)
		addAdj(nv.nonTreeAdj[0], eb)
		markIfFirst(f0, nu.occ[0], nu.nonTreeAdj[0], seq.MarkNonTreeEdge)
		markIfFirst(f0, nv.occ[0], nv.nonTreeAdj[0], seq.MarkNonTreeEdge)
		return false
	}

	eb.isTree = true
	eb.treeOcc = []*ett.EdgeOcc{f0.Link(nu.occ[0], nv.occ[0], eb)}
	addAdj(nu.treeAdj[0], eb)
	addAdj(nv.treeAdj[0], eb)
	markIfFirst(f0, nu.occ[0], nu.treeAdj[0], seq.MarkTreeEdge)
	markIfFirst(f0, nv.occ[0], nv.treeAdj[0], seq.MarkTreeEdge)
	return true
}

// HasPath reports whether u and v are currently connected.
func (g *Graph) HasPath(u, v Node) bool {
	nu := g.attach(u)
	nv := g.attach(v)
	return g.forest(0).Connected(nu.occ[0], nv.occ[0])
}

// Cluster returns an iterator over every node in u's connected component,
// in an unspecified order. Each range over it enumerates u's component as
// it is when that range begins. A CreateEdge or DeleteEdge that links or
// cuts a level-0 tree while the range is in progress makes the next element
// panic.
func (g *Graph) Cluster(u Node) iter.Seq[Node] {
	nu := g.attach(u)
	f0 := g.forest(0)
	return func(yield func(Node) bool) {
		for occ := range f0.Enumerate(nu.occ[0]) {
			if !yield(occ.Data.(Node)) {
				return
			}
		}
	}
}

// ClusterSize returns the number of nodes in u's connected component.
func (g *Graph) ClusterSize(u Node) int {
	nu := g.attach(u)
	return g.forest(0).Size(nu.occ[0])
}

// FindClusterRep returns the canonical representative of u's connected
// component: the same node for every member of the component, stable across
// queries as long as the component itself does not change.
func (g *Graph) FindClusterRep(u Node) Node {
	nu := g.attach(u)
	return g.forest(0).First(nu.occ[0]).Data.(Node)
}

// IsClusterRep reports whether u is its component's canonical
// representative.
func (g *Graph) IsClusterRep(u Node) bool {
	return g.FindClusterRep(u) == u
}

func addAdj(set adjSet, eb *EdgeBase) { set[eb] = struct{}{} }

// markIfFirst sets ch on occ when set just became non-empty (i.e. this was
// the first edge added to it), keeping the mark's meaning - "this node has
// at least one such incident edge" - true without rescanning the set.
func markIfFirst(f *ett.Forest, occ *ett.NodeOcc, set adjSet, ch seq.Mark) {
	if len(set) == 1 {
		f.SetMark(occ, ch, true)
	}
}

// clearIfEmpty clears ch on occ once set has become empty.
func clearIfEmpty(f *ett.Forest, occ *ett.NodeOcc, set adjSet, ch seq.Mark) {
	if len(set) == 0 {
		f.SetMark(occ, ch, false)
	}
}
