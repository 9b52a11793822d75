package hdt

import "github.com/katalvlaran/dynaconn/ett"

// NodeBase is the bookkeeping a caller's node type must embed by value to
// participate in a Graph. It has no exported fields or methods; embedding it
// is what lets a type satisfy Node.
type NodeBase struct {
	occ        []*ett.NodeOcc
	treeAdj    []adjSet
	nonTreeAdj []adjSet
}

// hdtNode is unexported and declared only in this package, so the only way
// a type from another package can satisfy Node is to embed NodeBase - Go
// promotes hdtNode along with it, but nobody outside hdt can declare a
// method with this name on this package's interface. This is the same
// sealed-interface trick used for protobuf-go's isOneof wrappers.
func (n *NodeBase) hdtNode() *NodeBase { return n }

func (n *NodeBase) attached() bool { return len(n.occ) > 0 }

func (n *NodeBase) maxLevel() int { return len(n.occ) - 1 }

// EdgeBase is the bookkeeping a caller's edge type must embed by value to
// participate in a Graph. It has no exported fields or methods.
type EdgeBase struct {
	u, v    Node
	level   int
	isTree  bool
	treeOcc []*ett.EdgeOcc // treeOcc[l] is this edge's link in level l's forest, for l in 0..level.
}

func (e *EdgeBase) hdtEdge() *EdgeBase { return e }

// Node is the interface a caller's node type satisfies by embedding
// NodeBase. It is sealed: no type outside this package can implement it.
type Node interface {
	hdtNode() *NodeBase
}

// Edge is the interface a caller's edge type satisfies by embedding
// EdgeBase. It is sealed: no type outside this package can implement it.
type Edge interface {
	hdtEdge() *EdgeBase
}

// adjSet is the set of edges incident to a node, keyed by edge identity.
type adjSet map[*EdgeBase]struct{}

func otherEndpoint(eb *EdgeBase, nb *NodeBase) *NodeBase {
	if eb.u.hdtNode() == nb {
		return eb.v.hdtNode()
	}
	return eb.u.hdtNode()
}
