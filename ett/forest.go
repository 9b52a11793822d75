package ett

import (
	"iter"

	"github.com/katalvlaran/dynaconn/seq"
)

// NodeOcc is a node's permanent occurrence in one level's forest.
type NodeOcc struct {
	occ *seq.Node

	// Data is opaque to ett; callers stash whatever they need to map an
	// occurrence back to their own node representation.
	Data any
}

// EdgeOcc is a tree edge's pair of directed-traversal occurrences in one
// level's forest.
type EdgeOcc struct {
	fwd, back *seq.Node

	// Data is opaque to ett; callers stash whatever they need to map an
	// occurrence back to their own edge representation.
	Data any
}

// Forest is one level's spanning forest, represented as a collection of
// Euler tours. The zero Forest is ready to use.
type Forest struct {
	gen uint64
}

// NewForest returns a new, empty forest.
func NewForest() *Forest { return &Forest{} }

// AddNode attaches a new isolated node (a singleton tree) and returns its
// occurrence handle.
func (f *Forest) AddNode(data any) *NodeOcc {
	n := &NodeOcc{Data: data}
	n.occ = seq.NewSingleton(n)
	return n
}

// Connected reports whether u and v currently belong to the same tree.
func (f *Forest) Connected(u, v *NodeOcc) bool {
	return seq.Root(u.occ) == seq.Root(v.occ)
}

// Size returns the number of nodes in u's current tree.
func (f *Forest) Size(u *NodeOcc) int {
	total := seq.Size(u.occ)
	// 3k - 2 = total  =>  k = (total + 2) / 3.
	return (total + 2) / 3
}

// First returns the canonical representative of u's current tree: the
// node occurrence that sorts first in Euler-tour order. After a Cut the
// tour can begin with an edge occurrence; the scan below skips over edge
// occurrences to the first node occurrence.
func (f *Forest) First(u *NodeOcc) *NodeOcc {
	n := seq.First(u.occ)
	if occ, ok := seq.Payload(n).(*NodeOcc); ok {
		return occ
	}
	for cand := range seq.All(n) {
		if occ, ok := seq.Payload(cand).(*NodeOcc); ok {
			return occ
		}
	}
	panic("ett: tree has no node occurrence")
}

// Link joins the trees containing u and v with a new tree edge, whose
// caller-defined identity is owner. u and v must belong to different trees.
func (f *Forest) Link(u, v *NodeOcc, owner any) *EdgeOcc {
	uBefore, uAfter := seq.SplitBefore(u.occ)
	tourU := seq.Join(uAfter, uBefore)

	vBefore, vAfter := seq.SplitBefore(v.occ)
	tourV := seq.Join(vAfter, vBefore)

	e := &EdgeOcc{Data: owner}
	e.fwd = seq.NewSingleton(nil)
	e.back = seq.NewSingleton(nil)

	seq.Join(seq.Join(seq.Join(tourU, e.fwd), tourV), e.back)

	f.gen++
	return e
}

// Cut removes e's tree edge, splitting its tree into the two components on
// either side of e.
//
// The tour currently reads L, first, M, second, R, where first and second
// are e's two arc occurrences in whichever position order they now hold -
// not necessarily fwd then back: a Link elsewhere in the tree reroots by
// rotating the tour, which can leave the "return" arc before the "forward"
// one. M is the subtree reached through e; L and R are the rest of the
// tour on either side of it. Dropping both arc occurrences and rejoining L
// with R keeps that outside a single tree; M is left standing alone as the
// other.
func (f *Forest) Cut(e *EdgeOcc) {
	first, second := e.fwd, e.back
	if seq.Order(first, second) > 0 {
		first, second = second, first
	}

	left, _ := seq.SplitBefore(first)
	seq.SplitAfter(first)

	seq.SplitBefore(second)
	_, right := seq.SplitAfter(second)

	seq.Join(left, right)
	f.gen++
}

// SetMark sets or clears mark ch on u.
func (f *Forest) SetMark(u *NodeOcc, ch seq.Mark, v bool) {
	seq.SetMark(u.occ, ch, v)
}

// NextMarked returns some node in u's current tree carrying mark ch, or
// (nil, false) if none does.
func (f *Forest) NextMarked(u *NodeOcc, ch seq.Mark) (*NodeOcc, bool) {
	n, ok := seq.FindMarked(u.occ, ch)
	if !ok {
		return nil, false
	}
	return seq.Payload(n).(*NodeOcc), true
}

// Enumerate returns an iterator over every node in u's current tree, in
// Euler-tour order. The iterator panics if the forest is linked or cut while
// ranging is in progress.
func (f *Forest) Enumerate(u *NodeOcc) iter.Seq[*NodeOcc] {
	gen := f.gen
	start := u.occ
	return func(yield func(*NodeOcc) bool) {
		for n := range seq.All(start) {
			if f.gen != gen {
				panic("ett: forest mutated during Enumerate")
			}
			occ, ok := seq.Payload(n).(*NodeOcc)
			if !ok || occ == nil {
				continue
			}
			if !yield(occ) {
				return
			}
		}
	}
}
