package hdt

import (
	"github.com/katalvlaran/dynaconn/ett"
	"github.com/katalvlaran/dynaconn/seq"
)

// DeleteEdge removes e from the graph. It reports whether the deletion
// disconnected e's two endpoints (true) or a replacement tree edge was
// found, leaving the graph's connectivity unchanged (false). e must belong
// to this graph; deleting an edge twice, or one never created, is
// undefined behavior.
func (g *Graph) DeleteEdge(e Edge) bool {
	eb := e.hdtEdge()
	if !eb.isTree {
		g.deleteNonTreeEdge(eb)
		return false
	}
	return g.deleteTreeEdge(eb)
}

func (g *Graph) deleteNonTreeEdge(eb *EdgeBase) {
	l := eb.level
	nu, nv := eb.u.hdtNode(), eb.v.hdtNode()
	f := g.forest(l)

	delete(nu.nonTreeAdj[l], eb)
	delete(nv.nonTreeAdj[l], eb)
	clearIfEmpty(f, nu.occ[l], nu.nonTreeAdj[l], seq.MarkNonTreeEdge)
	clearIfEmpty(f, nv.occ[l], nv.nonTreeAdj[l], seq.MarkNonTreeEdge)
}

func (g *Graph) deleteTreeEdge(eb *EdgeBase) bool {
	level := eb.level
	nu, nv := eb.u.hdtNode(), eb.v.hdtNode()

	fLevel := g.forest(level)
	delete(nu.treeAdj[level], eb)
	delete(nv.treeAdj[level], eb)
	clearIfEmpty(fLevel, nu.occ[level], nu.treeAdj[level], seq.MarkTreeEdge)
	clearIfEmpty(fLevel, nv.occ[level], nv.treeAdj[level], seq.MarkTreeEdge)

	for l := level; l >= 0; l-- {
		g.forest(l).Cut(eb.treeOcc[l])
	}

	for l := level; l >= 0; l-- {
		if g.searchReplacement(nu, nv, l) {
			return false
		}
	}
	return true
}

// searchReplacement looks, at level l, for an edge that reconnects the two
// components nu and nv were split into by the cut at that level. It walks
// the smaller component, promoting every tree edge it still owns at this
// level to level+1, and inspecting its non-tree edges one at a time: the
// first that reconnects the two sides becomes the replacement and stops the
// search; every other is promoted instead.
func (g *Graph) searchReplacement(nu, nv *NodeBase, l int) bool {
	f := g.forest(l)

	small := nu
	if f.Size(nv.occ[l]) < f.Size(nu.occ[l]) {
		small = nv
	}

	for {
		w, ok := f.NextMarked(small.occ[l], seq.MarkTreeEdge)
		if !ok {
			break
		}
		wnb := w.Data.(Node).hdtNode()
		for _, eb := range snapshot(wnb.treeAdj[l]) {
			g.promoteTreeEdge(eb, l)
		}
	}

	for {
		w, ok := f.NextMarked(small.occ[l], seq.MarkNonTreeEdge)
		if !ok {
			return false
		}
		wnb := w.Data.(Node).hdtNode()
		for _, eb := range snapshot(wnb.nonTreeAdj[l]) {
			other := otherEndpoint(eb, wnb)
			if f.Connected(small.occ[l], other.occ[l]) {
				g.promoteNonTreeEdge(eb, l)
				continue
			}
			g.convertToReplacement(eb, l)
			return true
		}
	}
}

func snapshot(set adjSet) []*EdgeBase {
	out := make([]*EdgeBase, 0, len(set))
	for eb := range set {
		out = append(out, eb)
	}
	return out
}

// promoteTreeEdge raises eb, currently an exact-level-l tree edge, to
// level+1. It remains linked in every forest it was already linked in; only
// its per-level "current owner" tracking set moves.
func (g *Graph) promoteTreeEdge(eb *EdgeBase, l int) {
	nu, nv := eb.u.hdtNode(), eb.v.hdtNode()
	fl := g.forest(l)
	delete(nu.treeAdj[l], eb)
	delete(nv.treeAdj[l], eb)
	clearIfEmpty(fl, nu.occ[l], nu.treeAdj[l], seq.MarkTreeEdge)
	clearIfEmpty(fl, nv.occ[l], nv.treeAdj[l], seq.MarkTreeEdge)

	eb.level = l + 1
	g.ensureLevel(nu, eb.u, l+1)
	g.ensureLevel(nv, eb.v, l+1)
	fl1 := g.forest(l + 1)
	eb.treeOcc = append(eb.treeOcc, fl1.Link(nu.occ[l+1], nv.occ[l+1], eb))

	addAdj(nu.treeAdj[l+1], eb)
	addAdj(nv.treeAdj[l+1], eb)
	markIfFirst(fl1, nu.occ[l+1], nu.treeAdj[l+1], seq.MarkTreeEdge)
	markIfFirst(fl1, nv.occ[l+1], nv.treeAdj[l+1], seq.MarkTreeEdge)
}

// promoteNonTreeEdge raises eb, currently an exact-level-l non-tree edge, to
// level+1. It was never linked anywhere, so only adjacency bookkeeping
// moves.
func (g *Graph) promoteNonTreeEdge(eb *EdgeBase, l int) {
	nu, nv := eb.u.hdtNode(), eb.v.hdtNode()
	fl := g.forest(l)
	delete(nu.nonTreeAdj[l], eb)
	delete(nv.nonTreeAdj[l], eb)
	clearIfEmpty(fl, nu.occ[l], nu.nonTreeAdj[l], seq.MarkNonTreeEdge)
	clearIfEmpty(fl, nv.occ[l], nv.nonTreeAdj[l], seq.MarkNonTreeEdge)

	eb.level = l + 1
	g.ensureLevel(nu, eb.u, l+1)
	g.ensureLevel(nv, eb.v, l+1)
	fl1 := g.forest(l + 1)

	addAdj(nu.nonTreeAdj[l+1], eb)
	addAdj(nv.nonTreeAdj[l+1], eb)
	markIfFirst(fl1, nu.occ[l+1], nu.nonTreeAdj[l+1], seq.MarkNonTreeEdge)
	markIfFirst(fl1, nv.occ[l+1], nv.nonTreeAdj[l+1], seq.MarkNonTreeEdge)
}

// convertToReplacement turns eb, currently a non-tree edge at level l, into
// the tree edge reconnecting the two components a cut split apart. It is
// linked at every level 0..l, since a tree edge at level l must be a tree
// edge in every forest from 0 up to l.
func (g *Graph) convertToReplacement(eb *EdgeBase, l int) {
	nu, nv := eb.u.hdtNode(), eb.v.hdtNode()
	fl := g.forest(l)
	delete(nu.nonTreeAdj[l], eb)
	delete(nv.nonTreeAdj[l], eb)
	clearIfEmpty(fl, nu.occ[l], nu.nonTreeAdj[l], seq.MarkNonTreeEdge)
	clearIfEmpty(fl, nv.occ[l], nv.nonTreeAdj[l], seq.MarkNonTreeEdge)

	eb.isTree = true
	eb.treeOcc = make([]*ett.EdgeOcc, l+1)
	for lvl := 0; lvl <= l; lvl++ {
		g.ensureLevel(nu, eb.u, lvl)
		g.ensureLevel(nv, eb.v, lvl)
		eb.treeOcc[lvl] = g.forest(lvl).Link(nu.occ[lvl], nv.occ[lvl], eb)
	}

	addAdj(nu.treeAdj[l], eb)
	addAdj(nv.treeAdj[l], eb)
	markIfFirst(fl, nu.occ[l], nu.treeAdj[l], seq.MarkTreeEdge)
	markIfFirst(fl, nv.occ[l], nv.treeAdj[l], seq.MarkTreeEdge)
}
