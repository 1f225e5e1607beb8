package rope

import (
	"strings"

	"github.com/gorope/rope/internal/tree"
)

// Rope is an immutable, persistent string. The zero value is the empty
// rope and is ready to use, mirroring the teacher package's "void cord"
// convention.
type Rope struct {
	root tree.Node
}

// New builds a Rope over the content of s.
func New(s string) Rope {
	if s == "" {
		return Rope{}
	}
	return Rope{root: tree.NewFromString(s)}
}

// Empty returns the empty rope. Equivalent to the zero value.
func Empty() Rope { return Rope{} }

// IsEmpty reports whether r holds no text.
func (r Rope) IsEmpty() bool { return tree.IsEmpty(r.root) }

// Len returns the number of bytes in r.
func (r Rope) Len() int { return tree.Length(r.root) }

// Get returns the byte at byte offset i.
func (r Rope) Get(i int) (byte, error) {
	b, ok := tree.Get(r.root, i)
	if !ok {
		return 0, ErrOutOfRange
	}
	return b, nil
}

// IndexOf returns the offset of the first occurrence of c, or -1 if c does
// not occur in r.
func (r Rope) IndexOf(c byte) int {
	idx, ok := tree.IndexOf(r.root, c, 0)
	if !ok {
		return -1
	}
	return idx
}

// CollectLeaves returns the rope's leaf fragments, in order, as strings.
// The returned slice shares no mutable state with r.
func (r Rope) CollectLeaves() []string {
	leaves := tree.CollectLeaves(r.root)
	out := make([]string, len(leaves))
	for i, l := range leaves {
		out[i] = l.Value()
	}
	return out
}

// String renders the full content of r. For very large ropes, prefer
// Reader or an Iterator to avoid materializing the whole string at once.
func (r Rope) String() string {
	if r.IsEmpty() {
		return ""
	}
	var b strings.Builder
	b.Grow(r.Len())
	for _, l := range tree.CollectLeaves(r.root) {
		b.WriteString(l.Value())
	}
	return b.String()
}

// Check validates the rope's internal B-tree invariants (balance and the
// weight formula). It is exposed for tests and diagnostics; a Rope built
// solely through this package's API will always pass it.
func (r Rope) Check() error {
	if err := tree.Check(r.root); err != nil {
		tracer().Errorf("rope: consistency check failed: %v", err)
		return ErrInconsistent
	}
	return nil
}

