package tree

// Size bounds for the B-tree of string leaves.
//
// These mirror the fixed capacities the teacher's generic B+ tree derives
// from a TREE_BASE constant (see btree/nodes.go in the reference package),
// specialized to the concrete values this rope needs.
const (
	// MaxLeaf is the maximum number of bytes a single leaf may carry.
	MaxLeaf = 2048
	// MinChildren is the occupancy target builders aim for when grouping
	// more than MaxChildren nodes; a level of at most MaxChildren nodes, a
	// Concat root, or a node shrunk by a delete may have fewer children.
	MinChildren = 4
	// MaxChildren is the hard cap on an internal node's fan-out.
	MaxChildren = 8
)
