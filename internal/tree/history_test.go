package tree

import "testing"

func TestHistoryIteratorWalksForward(t *testing.T) {
	s := "the quick brown fox jumps over the lazy dog"
	tr := buildTestTree(t, s)
	it, err := NewHistoryIterator(tr, 0)
	if err != nil {
		t.Fatalf("NewHistoryIterator: %v", err)
	}
	var got []byte
	for it.HasNext() {
		b, _, _ := it.Next()
		got = append(got, b)
	}
	if string(got) != s {
		t.Fatalf("got %q, want %q", got, s)
	}
}

func TestHistoryIteratorFromMiddle(t *testing.T) {
	s := "0123456789"
	tr := buildTestTree(t, s)
	it, err := NewHistoryIterator(tr, 5)
	if err != nil {
		t.Fatalf("NewHistoryIterator: %v", err)
	}
	var got []byte
	for it.HasNext() {
		b, _, _ := it.Next()
		got = append(got, b)
	}
	if string(got) != "56789" {
		t.Fatalf("got %q, want %q", got, "56789")
	}
}

func TestHistoryIteratorOutOfRange(t *testing.T) {
	tr := buildTestTree(t, "abc")
	it, err := NewHistoryIterator(tr, 3)
	if err != nil {
		t.Fatalf("NewHistoryIterator: %v", err)
	}
	if it.HasNext() {
		t.Fatal("HasNext should fail when starting past the end")
	}
	if it.HasNext() {
		t.Fatal("a closed iterator must stay closed")
	}
}

func TestSingleElementIteratorFiresOnce(t *testing.T) {
	tr := buildTestTree(t, "abcdef")
	it, err := NewSingleElementIterator(tr, 2)
	if err != nil {
		t.Fatalf("NewSingleElementIterator: %v", err)
	}
	if !it.HasNext() {
		t.Fatal("expected first HasNext to succeed")
	}
	b, _, _ := it.Next()
	if b != 'c' {
		t.Fatalf("got %q, want 'c'", b)
	}
	if it.HasNext() {
		t.Fatal("SingleElement iterator must not succeed a second time")
	}
}

func TestHistoryIteratorFindParent(t *testing.T) {
	tr := buildSingleByteLeafTree(t, "abcdefghijklmnopqrstuvwxyz")
	it, err := NewHistoryIterator(tr, 0)
	if err != nil {
		t.Fatalf("NewHistoryIterator: %v", err)
	}
	if !it.HasNext() {
		t.Fatal("expected HasNext to succeed")
	}
	leaf, _ := it.CurrentLeaf()
	parent, ok := it.FindParent(leaf)
	if !ok {
		t.Fatal("expected a parent link for the first leaf of a multi-node tree")
	}
	if parent == nil {
		t.Fatal("FindParent returned a nil parent with ok=true")
	}
}
