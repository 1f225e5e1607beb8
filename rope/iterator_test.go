package rope

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestIteratorForward(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rope")
	defer teardown()

	r := New("héllo")
	it, err := r.Chars()
	if err != nil {
		t.Fatalf("Chars: %v", err)
	}
	var got []rune
	for {
		c, ok := it.Next()
		if !ok {
			break
		}
		got = append(got, c)
	}
	want := []rune("héllo")
	if len(got) != len(want) {
		t.Fatalf("got %d runes, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("rune %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestIteratorForwardThenBack(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rope")
	defer teardown()

	r := New("abcde")
	it, err := r.Iterator(0)
	if err != nil {
		t.Fatalf("Iterator(0): %v", err)
	}
	for i := 0; i < 3; i++ {
		if _, ok := it.Next(); !ok {
			t.Fatalf("Next() failed at step %d", i)
		}
	}
	c, ok := it.Prev()
	if !ok || c != 'c' {
		t.Fatalf("Prev() = (%q,%v), want ('c',true)", c, ok)
	}
	c, ok = it.Next()
	if !ok || c != 'c' {
		t.Fatalf("Next() after Prev() = (%q,%v), want ('c',true)", c, ok)
	}
}

func TestIteratorPrevAtStart(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rope")
	defer teardown()

	r := New("abc")
	it, err := r.Iterator(0)
	if err != nil {
		t.Fatalf("Iterator(0): %v", err)
	}
	if _, ok := it.Prev(); ok {
		t.Fatal("Prev() at start should fail")
	}
}

func TestIteratorNextAtEnd(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rope")
	defer teardown()

	r := New("a")
	it, err := r.Chars()
	if err != nil {
		t.Fatalf("Chars: %v", err)
	}
	if _, ok := it.Next(); !ok {
		t.Fatal("expected first Next() to succeed")
	}
	if _, ok := it.Next(); ok {
		t.Fatal("Next() past the end should fail")
	}
}

func TestIteratorFromOffset(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rope")
	defer teardown()

	r := New("abcde")
	it, err := r.Iterator(2)
	if err != nil {
		t.Fatalf("Iterator(2): %v", err)
	}
	c, ok := it.Next()
	if !ok || c != 'c' {
		t.Fatalf("Next() = (%q,%v), want ('c',true)", c, ok)
	}
}

func TestIteratorOutOfRange(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rope")
	defer teardown()

	r := New("abcde")
	if _, err := r.Iterator(-1); err != ErrOutOfRange {
		t.Fatalf("Iterator(-1) err = %v, want ErrOutOfRange", err)
	}
	if _, err := r.Iterator(r.Len() + 1); err != ErrOutOfRange {
		t.Fatalf("Iterator(len+1) err = %v, want ErrOutOfRange", err)
	}
}
