package rope

import (
	"unicode/utf8"

	"github.com/gorope/rope/internal/tree"
)

// Iterator navigates a rope by rune, forward and backward, resuming
// traversal from wherever it last stopped rather than re-locating from the
// root on every step. Internal addressing is by byte offset; callers only
// ever see runes.
type Iterator struct {
	r       Rope
	byteOff int
	hist    *tree.HistoryIterator
}

// Iterator creates an iterator positioned at byte offset from, failing with
// ErrOutOfRange if from is negative or past the end of r.
func (r Rope) Iterator(from int) (*Iterator, error) {
	if from < 0 || from > r.Len() {
		return nil, ErrOutOfRange
	}
	return &Iterator{r: r, byteOff: from}, nil
}

// Chars is a convenience for Iterator(0), the common case of reading a rope
// from its start.
func (r Rope) Chars() (*Iterator, error) {
	return r.Iterator(0)
}

// ByteOffset returns the iterator's current byte position.
func (it *Iterator) ByteOffset() int { return it.byteOff }

// Next returns the rune at the current position and advances by one rune.
// ok is false once the iterator has passed the end of the rope.
func (it *Iterator) Next() (c rune, ok bool) {
	if it.byteOff >= it.r.Len() {
		return 0, false
	}
	if it.hist == nil {
		h, err := tree.NewHistoryIterator(it.r.root, it.byteOff)
		if err != nil {
			return 0, false
		}
		it.hist = h
	}
	if !it.hist.HasNext() {
		return 0, false
	}
	_, leaf, local := it.hist.Next()
	buf := leaf.Value()[local:]
	if !utf8.FullRuneInString(buf) {
		// the rune continues into the following leaf
		bs := []byte(buf)
		for len(bs) < utf8.UTFMax && !utf8.FullRune(bs) {
			nb, found := tree.Get(it.r.root, it.byteOff+len(bs))
			if !found {
				break
			}
			bs = append(bs, nb)
		}
		buf = string(bs)
	}
	c, n := utf8.DecodeRuneInString(buf)
	if c == utf8.RuneError && n == 1 {
		return 0, false
	}
	it.byteOff += n
	// consume the remaining continuation bytes of a multi-byte rune so the
	// next Next() call starts at the following rune, not mid-sequence.
	for k := 1; k < n; k++ {
		if !it.hist.HasNext() {
			break
		}
		it.hist.Next()
	}
	return c, true
}

// Prev returns the rune before the current position and moves back by one
// rune. ok is false once the iterator has reached the start of the rope.
// Unlike Next, Prev re-locates from the root each call; it is intended for
// occasional backward steps, not sustained reverse iteration.
func (it *Iterator) Prev() (c rune, ok bool) {
	if it.byteOff <= 0 {
		return 0, false
	}
	probe := it.byteOff - 1
	for probe > 0 {
		b, found := tree.Get(it.r.root, probe)
		if !found {
			return 0, false
		}
		if utf8.RuneStart(b) {
			break
		}
		probe--
	}
	b, found := tree.Get(it.r.root, probe)
	if !found {
		return 0, false
	}
	bs := make([]byte, 0, utf8.UTFMax)
	bs = append(bs, b)
	for len(bs) < utf8.UTFMax {
		nb, found := tree.Get(it.r.root, probe+len(bs))
		if !found || utf8.RuneStart(nb) {
			break
		}
		bs = append(bs, nb)
	}
	c, n := utf8.DecodeRune(bs)
	if c == utf8.RuneError && n == 1 {
		return 0, false
	}
	it.byteOff = probe
	it.hist = nil // re-locate on the next Next() call
	return c, true
}
