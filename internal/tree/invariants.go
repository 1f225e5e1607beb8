package tree

// isBalanced reports whether n is legal, non-empty, and every child is
// balanced at a uniform depth (§3, §8 invariant 1). Grounded on the
// teacher's own Tree.Check/checkNode pair (btree/invariants.go), adapted
// from a flat item-count check to the weight/height shape this spec uses.
func isBalanced(n node) bool {
	if isEmpty(n) {
		return false
	}
	_, ok := checkBalance(n, true)
	return ok
}

func checkBalance(n node, isRoot bool) (h int, ok bool) {
	switch t := n.(type) {
	case *leafNode:
		if t.length() > MaxLeaf {
			return 0, false
		}
		return 0, true
	case *innerNode:
		if !isLegal(t) {
			return 0, false
		}
		childHeight := -1
		for _, c := range t.children {
			ch, ok := checkBalance(c, false)
			if !ok {
				return 0, false
			}
			if childHeight == -1 {
				childHeight = ch
			} else if ch != childHeight {
				return 0, false // invariant 4: uniform leaf depth
			}
		}
		if childHeight+1 != t.height {
			return 0, false
		}
		return t.height, true
	}
	return 0, false
}

// Check validates the full set of testable invariants from §8: balance,
// the weight formula, and the MaxLeaf bound (uniform depth is subsumed by
// isBalanced). Exposed to callers via Rope.Check, grounded on the teacher's
// Tree.Check (btree/invariants.go).
func Check(n node) error {
	if isEmpty(n) {
		return nil
	}
	if !isBalanced(n) {
		return ErrUnexpected
	}
	return checkWeights(n)
}

func checkWeights(n node) error {
	in, ok := n.(*innerNode)
	if !ok {
		return nil
	}
	if in.weight != length(in.children[0]) {
		return ErrUnexpected
	}
	for _, c := range in.children {
		if err := checkWeights(c); err != nil {
			return err
		}
	}
	return nil
}
