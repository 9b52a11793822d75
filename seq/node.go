package seq

import "math/rand"

// Mark identifies one of a fixed set of boolean aggregate channels a Node
// can carry. A mark's aggregate value at any Node is the OR of that Node's
// own flag and the aggregates of both children, kept current incrementally
// by SetMark.
type Mark uint8

const (
	// MarkTreeEdge flags an element as having (or, in its subtree,
	// containing an element with) an incident tree edge eligible to be
	// raised a level.
	MarkTreeEdge Mark = 1 << iota

	// MarkNonTreeEdge flags an element as having (or, in its subtree,
	// containing an element with) an incident non-tree edge at the level
	// this sequence represents.
	MarkNonTreeEdge
)

// Node is one element of a sequence. The zero Node is not usable; obtain one
// with NewSingleton.
type Node struct {
	left, right, parent *Node
	priority             uint64
	size                 int
	own, agg             Mark
	payload              any
}

// NewSingleton returns a new one-element sequence wrapping payload.
func NewSingleton(payload any) *Node {
	return &Node{priority: rand.Uint64(), size: 1, payload: payload}
}

// Payload returns x's payload.
func Payload(x *Node) any { return x.payload }

// SetPayload replaces x's payload.
func SetPayload(x *Node, v any) { x.payload = v }

func sizeOf(n *Node) int {
	if n == nil {
		return 0
	}
	return n.size
}

func aggOf(n *Node) Mark {
	if n == nil {
		return 0
	}
	return n.agg
}

// recompute refreshes n's size and mark aggregate from its children, which
// must already be current. Callers work bottom-up so that invariant holds.
func (n *Node) recompute() {
	n.size = 1 + sizeOf(n.left) + sizeOf(n.right)
	n.agg = n.own | aggOf(n.left) | aggOf(n.right)
}

// rotateLeft performs a single left rotation around p, promoting p.right.
// It updates parent pointers and subtree metadata for both nodes touched.
func rotateLeft(p *Node) *Node {
	r := p.right
	p.right = r.left
	if r.left != nil {
		r.left.parent = p
	}
	r.left = p
	r.parent = p.parent
	if p.parent != nil {
		if p.parent.left == p {
			p.parent.left = r
		} else {
			p.parent.right = r
		}
	}
	p.parent = r
	p.recompute()
	r.recompute()
	return r
}

// rotateRight performs a single right rotation around p, promoting p.left.
func rotateRight(p *Node) *Node {
	l := p.left
	p.left = l.right
	if l.right != nil {
		l.right.parent = p
	}
	l.right = p
	l.parent = p.parent
	if p.parent != nil {
		if p.parent.left == p {
			p.parent.left = l
		} else {
			p.parent.right = l
		}
	}
	p.parent = l
	l.recompute()
	p.recompute()
	return l
}

// rotateUp walks x to the root of its sequence via single rotations, one per
// ancestor. This is exactly the bubble-up performed when inserting a node of
// maximum priority: every rotation here promotes x over its immediate parent
// regardless of the two priorities involved, so the edge between x and that
// former parent is the only heap-order relation left unspecified afterward.
// Every other edge in the tree - including every edge inside the subtrees
// that end up as x.left and x.right - is untouched by that rotation's
// validity, so x.left and x.right are each a valid treap in their own right
// once x reaches the root. That is what lets SplitBefore/SplitAfter hand
// back two independent, internally-balanced sequences in O(depth(x)).
func rotateUp(x *Node) {
	for x.parent != nil {
		p := x.parent
		if p.left == x {
			rotateRight(p)
		} else {
			rotateLeft(p)
		}
	}
}
