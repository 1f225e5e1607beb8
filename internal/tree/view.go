package tree

// childView is a thin, stack-local wrapper over an *innerNode that adds a
// monotone cursor used during descent (§4.3/§9, component C4). It is never
// installed into the persistent tree: views are allocated fresh per
// operation and carry mutable, single-owner cursor state, exactly as the
// teacher's design notes prescribe ("model the children-iterator as a
// distinct stack-local type wrapping an immutable node by reference").
type childView struct {
	n      *innerNode
	cursor int // index of the next child nextChild() will hand out
}

func newChildView(n *innerNode) *childView {
	return &childView{n: n}
}

// weight mirrors the wrapped node's weight (the leftmost child's subtree
// length); the view "otherwise behaves as the same node" (§4 C4).
func (v *childView) weight() int { return v.n.weight }

// hasNext reports whether the cursor still has a child to hand out.
func (v *childView) hasNext() bool { return v.cursor < len(v.n.children) }

// nextChild returns the child at the cursor and advances it.
func (v *childView) nextChild() (node, bool) {
	if !v.hasNext() {
		return nil, false
	}
	c := v.n.children[v.cursor]
	v.cursor++
	return c, true
}

// seekTo advances the cursor across however many children are entirely to
// the left of byte offset idx (accumulating their lengths), and returns the
// child that actually contains idx along with the total length skipped to
// reach it. This is the "skip entire left subtrees by arithmetic on
// accumulated subtree weights" step from §4.3, generalized from a
// leftmost-child-only check to the full multi-way fan-out so that descent
// remains logarithmic for MaxChildren > 2 (see DESIGN.md, "Weight vs.
// subtree length").
func (v *childView) seekTo(idx int) (child node, skipped int, ok bool) {
	for v.hasNext() {
		c := v.n.children[v.cursor]
		l := length(c)
		if idx < l {
			v.cursor++
			return c, skipped, true
		}
		idx -= l
		skipped += l
		v.cursor++
	}
	return nil, skipped, false
}
