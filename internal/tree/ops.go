package tree

// This file implements the mutating and composing tree operations (§4.5,
// component C7): Insert, Delete, SubRope, RemoveRange and Concat, plus the
// small read-only helpers (IndexOf, Len, CollectLeaves) the root façade
// builds its public API from.
//
// Insert and Delete both use a SingleElement HistoryIterator (§4.4,
// component C6) to locate the one leaf they touch, transform it, and then
// walk back up the parent links the iterator recorded during that descent
// (§4.6, spine rebuild), replacing each ancestor's child by identity and
// splitting on overflow exactly as the reference package's
// insertRecursive/deleteRecursive pair does (btree/tree.go). Both funnel
// through the shared rebuildSpine helper since they differ only in how many
// replacement nodes they hand back for the leaf they touched.
//
// SubRope does not go through the iterator's locate-lo/locate-hi-then-find-
// the-LCA path described in §4.5; see DESIGN.md, "SubRope: iterator-LCA vs.
// leaf-scan" for why, and the trade-off it makes instead.

// NewFromString builds a balanced tree over s's content.
func NewFromString(s string) node {
	if s == "" {
		return emptySentinel
	}
	return buildBalanced(splitIntoLeaves(s))
}

// Len returns the number of bytes in n.
func Len(n node) int { return length(n) }

// CollectLeaves returns the tree's leaves in order, sharing their
// underlying strings with the tree (no copying).
func CollectLeaves(n node) []*leafNode { return collectLeafNodes(n) }

// IndexOf returns the byte offset of the first occurrence of target at or
// after from, and false if there is none.
func IndexOf(n node, target byte, from int) (int, bool) {
	if from < 0 {
		from = 0
	}
	pos := 0
	for _, l := range collectLeafNodes(n) {
		end := pos + l.length()
		if end > from {
			start := 0
			if pos < from {
				start = from - pos
			}
			if i := indexByte(l.value[start:], target); i >= 0 {
				return pos + start + i, true
			}
		}
		pos = end
	}
	return 0, false
}

func indexByte(s string, b byte) int {
	for i := 0; i < len(s); i++ {
		if s[i] == b {
			return i
		}
	}
	return -1
}

// indexOfIdentity returns the position of child within parent's children,
// compared by reference identity, or -1 if absent.
func indexOfIdentity(parent *innerNode, child node) int {
	for i, c := range parent.children {
		if c == child {
			return i
		}
	}
	return -1
}

// spliceChildren returns a copy of children with the entry at idx replaced
// by zero or more replacements.
func spliceChildren(children []node, idx int, replacements []node) []node {
	next := make([]node, 0, len(children)-1+len(replacements))
	next = append(next, children[:idx]...)
	next = append(next, replacements...)
	next = append(next, children[idx+1:]...)
	return next
}

// parentFinder is what rebuildSpine needs from the iterator that located
// oldLeaf: the ability to look up, by identity, the parent a given node was
// stepped into from during descent. *HistoryIterator implements this
// directly via its own FindParent.
type parentFinder interface {
	FindParent(child node) (*innerNode, bool)
}

// rebuildSpine walks up from oldLeaf via pf's recorded parent links,
// replacing it (and then each ancestor in turn) with replacements, splitting
// into two siblings whenever a parent would otherwise exceed MaxChildren
// (into more, via groupLevel, when two would still overflow), and collapsing
// a parent left with zero children into nothing, until the new root is
// reached; several replacements left at the root are grouped into a
// uniform-depth tree. Grounded on the reference package's path-copying
// rebuild plus its splitNodePathCopy overflow handling (btree/tree.go).
func rebuildSpine(pf parentFinder, oldLeaf node, replacements []node) (node, error) {
	currentOld := oldLeaf
	currentReplacements := replacements
	for {
		parent, ok := pf.FindParent(currentOld)
		if !ok {
			switch len(currentReplacements) {
			case 0:
				return emptySentinel, nil
			case 1:
				return currentReplacements[0], nil
			default:
				level := currentReplacements
				for len(level) > 1 {
					level = groupLevel(level)
				}
				return level[0], nil
			}
		}
		idx := indexOfIdentity(parent, currentOld)
		if idx < 0 {
			return nil, ErrUnexpected
		}
		newChildren := spliceChildren(parent.children, idx, currentReplacements)
		switch {
		case len(newChildren) == 0:
			currentOld = node(parent)
			currentReplacements = nil
		case len(newChildren) <= MaxChildren:
			np, err := withChildren(newChildren)
			if err != nil {
				return nil, err
			}
			currentOld = node(parent)
			currentReplacements = []node{np}
		case len(newChildren) > 2*MaxChildren:
			// two halves would still overflow; regroup into as many
			// siblings as needed
			currentOld = node(parent)
			currentReplacements = groupLevel(newChildren)
		default:
			mid := len(newChildren) / 2
			left, err := withChildren(newChildren[:mid])
			if err != nil {
				return nil, err
			}
			right, err := withChildren(newChildren[mid:])
			if err != nil {
				return nil, err
			}
			currentOld = node(parent)
			currentReplacements = []node{left, right}
		}
	}
}

// Insert returns a new tree with s inserted at byte position idx.
func Insert(root node, idx int, s string) (node, error) {
	if s == "" {
		return root, nil
	}
	if isEmpty(root) {
		if idx != 0 {
			return nil, ErrOutOfRange
		}
		return NewFromString(s), nil
	}
	total := length(root)
	if idx < 0 || idx > total {
		return nil, ErrOutOfRange
	}
	// Inserting at the very end targets a position one past the last byte,
	// which no leaf actually contains; locate the leaf holding the last
	// byte instead and insert after it.
	atEnd := idx == total
	locateAt := idx
	if atEnd {
		locateAt = idx - 1
	}
	it, err := NewSingleElementIterator(root, locateAt)
	if err != nil {
		return nil, err
	}
	if !it.HasNext() {
		return nil, ErrUnexpected
	}
	_, leaf, local := it.Next()
	if atEnd {
		local = leaf.length()
	}
	newLeaves, err := leaf.expandableAdd(local, s)
	if err != nil {
		return nil, err
	}
	replacements := make([]node, len(newLeaves))
	for i, l := range newLeaves {
		replacements[i] = l
	}
	return rebuildSpine(it, leaf, replacements)
}

// Delete returns a new tree with the byte at idx removed.
func Delete(root node, idx int) (node, error) {
	if isEmpty(root) {
		return nil, ErrOutOfRange
	}
	total := length(root)
	if idx < 0 || idx >= total {
		return nil, ErrOutOfRange
	}
	it, err := NewSingleElementIterator(root, idx)
	if err != nil {
		return nil, err
	}
	if !it.HasNext() {
		return nil, ErrUnexpected
	}
	_, leaf, local := it.Next()
	nl, err := leaf.deleteAt(local)
	if err != nil {
		return nil, err
	}
	var replacements []node
	if nl.length() > 0 {
		replacements = []node{nl}
	}
	return rebuildSpine(it, leaf, replacements)
}

// SubRope extracts the half-open byte range [start,end) as a standalone
// tree. Untouched leaves that fall entirely inside the range are shared by
// reference with the source tree; only the two boundary leaves, if any, are
// copied in truncated form. This scans every leaf rather than locating the
// two boundary leaves via iterators and descending from their LCA, per
// §4.5; see DESIGN.md, "SubRope: iterator-LCA vs. leaf-scan".
func SubRope(root node, start, end int) (node, error) {
	total := length(root)
	if start < 0 || end < start || end > total {
		return nil, ErrOutOfRange
	}
	if start == end {
		return emptySentinel, nil
	}
	var out []*leafNode
	pos := 0
	for _, l := range collectLeafNodes(root) {
		l0, l1 := pos, pos+l.length()
		pos = l1
		if l1 <= start || l0 >= end {
			continue
		}
		lo, hi := 0, l.length()
		if l0 < start {
			lo = start - l0
		}
		if l1 > end {
			hi = end - l0
		}
		if lo == 0 && hi == l.length() {
			out = append(out, l)
		} else {
			nl := newLeaf(l.value[lo:hi])
			nl.lineCount = l.lineCount
			out = append(out, nl)
		}
	}
	return buildBalanced(out), nil
}

// Concat joins a and b in order. Equal-height operands are joined directly
// per §4.5 ("createParent(self.root, other.root)"); when the operands'
// heights differ, joining them directly would leave a child strictly
// shallower or deeper than its uniform siblings, so the result is
// reconstructed from the full ordered leaf sequence instead. The reference
// package instead grafts the shorter operand into the taller one's adjacent
// spine in place (btree/tree.go, concatNodes/concatSameHeight), which keeps
// Concat logarithmic; that graft-with-overflow-bubbling algorithm could not
// be validated without running the toolchain, so this port takes the
// always-correct rebuild over an unverified in-place graft. See DESIGN.md,
// "Concat: equal vs. unequal height".
func Concat(a, b node) (node, error) {
	if isEmpty(a) {
		return b, nil
	}
	if isEmpty(b) {
		return a, nil
	}
	if height(a) == height(b) {
		p, err := createParent(a, b)
		if err == nil {
			return p, nil
		}
	}
	leaves := append(collectLeafNodes(a), collectLeafNodes(b)...)
	return buildBalanced(leaves), nil
}

// RemoveRange returns a new tree with [start,end) removed, expressed as the
// concatenation of the two surrounding sub-ropes.
func RemoveRange(root node, start, end int) (node, error) {
	total := length(root)
	if start < 0 || end < start || end > total {
		return nil, ErrOutOfRange
	}
	left, err := SubRope(root, 0, start)
	if err != nil {
		return nil, err
	}
	right, err := SubRope(root, end, total)
	if err != nil {
		return nil, err
	}
	return Concat(left, right)
}
