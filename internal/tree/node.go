package tree

// node is the tagged variant at the heart of the tree: a node is either a
// leafNode or an innerNode. Rather than the teacher's cordNode-plus-self
// downcast (see cords.go in the reference package), we follow the newer
// idiom used by the teacher's own generic btree sub-package
// (btree/nodes.go): a small interface with a type switch at the handful of
// call sites that need to distinguish the two cases.
type node interface {
	isLeaf() bool
}

// Node is the external name for the package's tree node type: callers
// outside the package (the root rope façade) hold and pass around Node
// values but cannot implement the interface themselves, which is exactly
// the closed, constructor-only discipline the spec calls for ("make()
// functions" producing shared handles — see cords.go in the reference
// package for the analogous make…() convention).
type Node = node

// EmptyNode is the exported handle to the unique empty sentinel (§3).
var EmptyNode Node = emptySentinel

// IsEmpty reports whether n is the empty sentinel or an empty subtree.
func IsEmpty(n Node) bool { return isEmpty(n) }

// Length returns the total number of bytes reachable from n.
func Length(n Node) int { return length(n) }

// Height returns n's height (0 for a leaf).
func Height(n Node) int { return height(n) }

// leafNode carries a bounded text fragment. lineCount is reserved metadata,
// per the spec's design notes: it is carried through splits and merges
// without ever being interpreted.
type leafNode struct {
	value     string
	lineCount int
}

func (l *leafNode) isLeaf() bool { return true }

func (l *leafNode) length() int { return len(l.value) }

// Value returns the leaf's text fragment.
func (l *leafNode) Value() string { return l.value }

// Len returns the number of bytes in the leaf.
func (l *leafNode) Len() int { return l.length() }

func newLeaf(s string) *leafNode {
	return &leafNode{value: s}
}

// innerNode is a B-tree internal node with 1..MaxChildren children.
//
// weight is the sum of leaf lengths reachable from children[0] — exactly
// the quantity invariant 2 (§8 of the spec) checks. subtreeLen additionally
// caches the total length of leaves under this node across *all* children,
// so that descent can route to an arbitrary child in O(children) instead of
// re-walking subtrees; it does not appear in the spec's data model directly,
// but is required to make lookups genuinely logarithmic for fan-out > 2. See
// DESIGN.md, "Weight vs. subtree length".
type innerNode struct {
	weight     int
	height     int
	subtreeLen int
	children   []node
}

func (n *innerNode) isLeaf() bool { return false }

// emptySentinel is the unique distinguished empty rope value (§3). It is
// deliberately not legal and never appears as a non-root child.
var emptySentinel node = &innerNode{}

func isEmpty(n node) bool {
	if n == nil {
		return true
	}
	if n == emptySentinel {
		return true
	}
	if in, ok := n.(*innerNode); ok {
		return len(in.children) == 0
	}
	return false
}

// length returns the total number of bytes reachable from n.
func length(n node) int {
	if n == nil {
		return 0
	}
	switch t := n.(type) {
	case *leafNode:
		return t.length()
	case *innerNode:
		return t.subtreeLen
	}
	panic("tree: unreachable node type")
}

// height returns the node's height: 0 for a leaf, else 1+max(children).
func height(n node) int {
	if n == nil {
		return 0
	}
	switch t := n.(type) {
	case *leafNode:
		return 0
	case *innerNode:
		return t.height
	}
	panic("tree: unreachable node type")
}

// isLegal reports whether n satisfies the structural bounds of §3: bounded
// fan-out, non-empty (the empty sentinel is never legal), and every child
// strictly shallower than n.
func isLegal(n node) bool {
	switch t := n.(type) {
	case *leafNode:
		return t.length() <= MaxLeaf
	case *innerNode:
		if n == emptySentinel {
			return false
		}
		if len(t.children) == 0 || len(t.children) > MaxChildren {
			return false
		}
		for _, c := range t.children {
			if height(c) >= t.height {
				return false
			}
		}
		return true
	}
	return false
}
