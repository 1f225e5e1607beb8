package rope

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestNewAndString(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rope")
	defer teardown()

	r := New("Hello World")
	if r.String() != "Hello World" {
		t.Fatalf("String() = %q, want %q", r.String(), "Hello World")
	}
	if r.Len() != 11 {
		t.Fatalf("Len() = %d, want 11", r.Len())
	}
}

func TestEmptyRope(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rope")
	defer teardown()

	r := Empty()
	if !r.IsEmpty() {
		t.Fatal("Empty() is not reported empty")
	}
	if r.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", r.Len())
	}
	if r.String() != "" {
		t.Fatalf("String() = %q, want empty", r.String())
	}
	var zero Rope
	if !zero.IsEmpty() {
		t.Fatal("zero value Rope is not reported empty")
	}
}

func TestGet(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rope")
	defer teardown()

	r := New("Hello World")
	b, err := r.Get(6)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if b != 'W' {
		t.Fatalf("Get(6) = %q, want 'W'", b)
	}
	if _, err := r.Get(100); err != ErrOutOfRange {
		t.Fatalf("err = %v, want ErrOutOfRange", err)
	}
}

func TestIndexOf(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rope")
	defer teardown()

	r := New("Hello World")
	if idx := r.IndexOf('W'); idx != 6 {
		t.Fatalf("IndexOf('W') = %d, want 6", idx)
	}
	if idx := r.IndexOf('z'); idx != -1 {
		t.Fatalf("IndexOf('z') = %d, want -1", idx)
	}
}

func TestCollectLeavesReconstructsContent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rope")
	defer teardown()

	r := New("Hello World")
	var got string
	for _, l := range r.CollectLeaves() {
		got += l
	}
	if got != "Hello World" {
		t.Fatalf("got %q", got)
	}
}

func TestCheckPassesForConstructedRopes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rope")
	defer teardown()

	r := New("a freshly constructed rope should always be internally consistent")
	if err := r.Check(); err != nil {
		t.Fatalf("Check: %v", err)
	}
	if err := Empty().Check(); err != nil {
		t.Fatalf("Check(empty): %v", err)
	}
}
