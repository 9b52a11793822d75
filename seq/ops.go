package seq

import "iter"

// Root returns the root handle of the sequence containing x.
func Root(x *Node) *Node {
	n := x
	for n.parent != nil {
		n = n.parent
	}
	return n
}

// Size returns the number of elements in the sequence containing x.
func Size(x *Node) int { return Root(x).size }

// First returns the first element (in sequence order) of the sequence
// containing x.
func First(x *Node) *Node {
	n := Root(x)
	for n.left != nil {
		n = n.left
	}
	return n
}

// Last returns the last element (in sequence order) of the sequence
// containing x.
func Last(x *Node) *Node {
	n := Root(x)
	for n.right != nil {
		n = n.right
	}
	return n
}

// rank returns the root of x's sequence together with x's zero-based
// position within it.
func rank(x *Node) (root *Node, index int) {
	index = sizeOf(x.left)
	cur := x
	for cur.parent != nil {
		p := cur.parent
		if p.right == cur {
			index += sizeOf(p.left) + 1
		}
		cur = p
	}
	return cur, index
}

// Order reports whether x comes before (-1), after (+1), or is identical to
// (0) y within their shared sequence. x and y must belong to the same
// sequence; Order panics otherwise.
func Order(x, y *Node) int {
	rx, ix := rank(x)
	ry, iy := rank(y)
	if rx != ry {
		panic("seq: Order: x and y do not belong to the same sequence")
	}
	switch {
	case ix < iy:
		return -1
	case ix > iy:
		return 1
	default:
		return 0
	}
}

// SplitBefore partitions the sequence containing x into prefix (the elements
// strictly before x) and suffix (x and everything after it). x becomes the
// first element of suffix. Either half may be nil if empty.
func SplitBefore(x *Node) (prefix, suffix *Node) {
	rotateUp(x)
	prefix = x.left
	if prefix != nil {
		prefix.parent = nil
	}
	x.left = nil
	x.recompute()
	return prefix, x
}

// SplitAfter partitions the sequence containing x into prefix (x and
// everything before it) and suffix (the elements strictly after x). x
// becomes the last element of prefix. Either half may be nil if empty.
func SplitAfter(x *Node) (prefix, suffix *Node) {
	rotateUp(x)
	suffix = x.right
	if suffix != nil {
		suffix.parent = nil
	}
	x.right = nil
	x.recompute()
	return x, suffix
}

// Join concatenates a and b, with every element of a preceding every element
// of b, and returns the resulting sequence's root. a and b must each be a
// sequence root (or nil); passing a non-root handle produces a sequence with
// a's or b's former siblings silently left behind.
func Join(a, b *Node) *Node {
	if a == nil {
		if b != nil {
			b.parent = nil
		}
		return b
	}
	if b == nil {
		a.parent = nil
		return a
	}
	if a.priority > b.priority {
		a.right = Join(a.right, b)
		a.right.parent = a
		a.parent = nil
		a.recompute()
		return a
	}
	b.left = Join(a, b.left)
	b.left.parent = b
	b.parent = nil
	b.recompute()
	return b
}

// SetMark sets or clears mark ch on x and refreshes the aggregate on every
// ancestor up to the root.
func SetMark(x *Node, ch Mark, v bool) {
	if v {
		x.own |= ch
	} else {
		x.own &^= ch
	}
	for n := x; n != nil; n = n.parent {
		n.recompute()
	}
}

// FindMarked returns some element of x's sequence carrying mark ch, or
// (nil, false) if none does. Which element is returned when several qualify
// is unspecified.
func FindMarked(x *Node, ch Mark) (*Node, bool) {
	return findMarkedIn(Root(x), ch)
}

func findMarkedIn(n *Node, ch Mark) (*Node, bool) {
	if n == nil || n.agg&ch == 0 {
		return nil, false
	}
	if n.own&ch != 0 {
		return n, true
	}
	if n.left != nil && n.left.agg&ch != 0 {
		return findMarkedIn(n.left, ch)
	}
	return findMarkedIn(n.right, ch)
}

// All returns an iterator over the elements of the sequence containing x, in
// order. Only the root is fixed when All is called; the walk reads child
// pointers as it goes, so mutating the sequence while ranging over it is undefined
// behavior (see ett.Forest for the generation-counter detection built on
// top of this for cluster traversal).
func All(x *Node) iter.Seq[*Node] {
	root := Root(x)
	return func(yield func(*Node) bool) {
		var walk func(n *Node) bool
		walk = func(n *Node) bool {
			if n == nil {
				return true
			}
			if !walk(n.left) {
				return false
			}
			if !yield(n) {
				return false
			}
			return walk(n.right)
		}
		walk(root)
	}
}
