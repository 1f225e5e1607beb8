package rope

import (
	"github.com/gorope/rope/internal/tree"
)

// Insert returns a new rope with s inserted at byte offset i.
func (r Rope) Insert(i int, s string) (Rope, error) {
	if s == "" {
		return r, nil
	}
	root, err := tree.Insert(r.root, i, s)
	if err != nil {
		return Rope{}, translate(err)
	}
	return Rope{root: root}, nil
}

// Delete returns a new rope with the byte at offset i removed.
func (r Rope) Delete(i int) (Rope, error) {
	root, err := tree.Delete(r.root, i)
	if err != nil {
		return Rope{}, translate(err)
	}
	return Rope{root: root}, nil
}

// SubRope returns the half-open byte range [start,end) as a standalone
// rope, sharing unmodified leaves with r.
func (r Rope) SubRope(start, end int) (Rope, error) {
	root, err := tree.SubRope(r.root, start, end)
	if err != nil {
		return Rope{}, translate(err)
	}
	return Rope{root: root}, nil
}

// RemoveRange returns a new rope with the half-open byte range [start,end)
// removed.
func (r Rope) RemoveRange(start, end int) (Rope, error) {
	root, err := tree.RemoveRange(r.root, start, end)
	if err != nil {
		return Rope{}, translate(err)
	}
	return Rope{root: root}, nil
}

// Concat returns the rope formed by appending other after r.
func Concat(r, other Rope) (Rope, error) {
	root, err := tree.Concat(r.root, other.root)
	if err != nil {
		return Rope{}, translate(err)
	}
	return Rope{root: root}, nil
}

// translate maps the internal engine's sentinel errors onto this package's
// public error values, so callers never see into internal/tree.
func translate(err error) error {
	switch err {
	case tree.ErrOutOfRange:
		return ErrOutOfRange
	case tree.ErrInvalidArgument:
		return ErrInvalidArgument
	default:
		tracer().Errorf("rope: unexpected engine error: %v", err)
		return ErrInconsistent
	}
}
