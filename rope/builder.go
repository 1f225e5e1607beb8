package rope

import (
	"strings"

	"github.com/gorope/rope/internal/tree"
)

// Builder accumulates text fragments and produces a single balanced Rope,
// avoiding the O(n log n) cost of repeated Insert calls when the full
// content is known up front. The zero value is a valid, empty builder; see
// NewBuilder for an explicit constructor that mirrors the rest of this
// package's API.
type Builder struct {
	leaves []string
	done   bool
}

// NewBuilder creates a new, empty Builder.
func NewBuilder() *Builder { return &Builder{} }

// Append adds a fragment to the end of the rope under construction. It is
// illegal to call Append after Rope has been called.
func (b *Builder) Append(s string) error {
	if b.done {
		return ErrInvalidArgument
	}
	if s == "" {
		return nil
	}
	b.leaves = append(b.leaves, s)
	return nil
}

// Prepend adds a fragment to the start of the rope under construction. It
// is illegal to call Prepend after Rope has been called.
func (b *Builder) Prepend(s string) error {
	if b.done {
		return ErrInvalidArgument
	}
	if s == "" {
		return nil
	}
	b.leaves = append([]string{s}, b.leaves...)
	return nil
}

// Reset drops the in-progress build and prepares the builder for reuse.
func (b *Builder) Reset() {
	b.leaves = nil
	b.done = false
}

// Rope finalizes the builder and returns the rope it accumulated. It may be
// called more than once; subsequent calls return the same value.
func (b *Builder) Rope() Rope {
	b.done = true
	if len(b.leaves) == 0 {
		return Rope{}
	}
	var total strings.Builder
	for _, s := range b.leaves {
		total.WriteString(s)
	}
	return Rope{root: tree.NewFromString(total.String())}
}
