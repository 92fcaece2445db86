package stone

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// sample builds
//
//	0 !meta
//	1 !color(bg)
//	2 box (map)
//	  3 x
//	  4 !style
//	5 tail
func sample() *Tree {
	t := New()
	t.Add(-1, &Stone{Tag: "!meta"})
	t.Add(-1, &Stone{Tag: "!color(bg)", Value: "#000"})
	box := t.Add(-1, &Stone{Kind: MapKind, Name: "box"})
	t.Add(box, &Stone{Name: "x", Value: "1"})
	t.Add(box, &Stone{Name: "s", Tag: "!style"})
	t.Add(-1, &Stone{Value: "tail"})
	return t
}

func payloads(t *Tree) []string {
	var res []string
	t.Walk(func(_ int, s *Stone) bool {
		res = append(res, s.Name+"|"+s.Tag+"|"+s.Value)
		return true
	})
	return res
}

func TestRemoveIdempotent(t *testing.T) {
	once, twice := sample(), sample()
	once.Remove(1)
	twice.Remove(1)
	twice.Remove(1)
	twice.Remove(42)
	twice.Remove(-1)
	once.Clean()
	twice.Clean()
	if diff := cmp.Diff(payloads(once), payloads(twice)); diff != "" {
		t.Errorf("double removal differs (-once +twice):\n%s", diff)
	}
	if once.Len() != 5 {
		t.Errorf("expected 5 stones, got %d", once.Len())
	}
}

func TestCleanPreservesContent(t *testing.T) {
	tr := sample()
	before := map[int]Stone{}
	for i := 0; i < tr.Len(); i++ {
		before[i] = *tr.Get(i)
	}
	rm := NewSet(0, 3)
	for _, i := range rm.Sorted() {
		tr.Remove(i)
	}
	tr.Clean()
	if tr.Len() != len(before)-len(rm) {
		t.Fatalf("expected %d stones, got %d", len(before)-len(rm), tr.Len())
	}
	seen := map[string]bool{}
	for i := 0; i < tr.Len(); i++ {
		s := tr.Get(i)
		if s == nil {
			t.Fatalf("slot %d absent after clean", i)
		}
		key := s.Name + "|" + s.Tag + "|" + s.Value
		if seen[key] {
			t.Errorf("payload %q appears twice", key)
		}
		seen[key] = true
	}
	for old, s := range before {
		key := s.Name + "|" + s.Tag + "|" + s.Value
		if seen[key] == rm.Has(old) {
			t.Errorf("stone %d (%q): survived=%v removed=%v", old, key, seen[key], rm.Has(old))
		}
	}
	want := []string{"|!color(bg)|#000", "box||", "s|!style|", "||tail"}
	if diff := cmp.Diff(want, payloads(tr)); diff != "" {
		t.Errorf("walk mismatch (-want +got):\n%s", diff)
	}
	_, st := tr.Child(tr.Roots()[1], "s")
	if st == nil || st.Parent != tr.Roots()[1] {
		t.Errorf("style stone not re-linked under box: %+v", st)
	}
}

func TestCleanSplicesOrphans(t *testing.T) {
	tr := sample()
	tr.Remove(2)
	tr.Clean()
	want := []string{"|!meta|", "|!color(bg)|#000", "x||1", "s|!style|", "||tail"}
	if diff := cmp.Diff(want, payloads(tr)); diff != "" {
		t.Errorf("walk mismatch (-want +got):\n%s", diff)
	}
	if len(tr.Roots()) != 5 {
		t.Errorf("expected 5 roots, got %v", tr.Roots())
	}
	for _, r := range tr.Roots() {
		if p := tr.Get(r).Parent; p != -1 {
			t.Errorf("root %d has parent %d", r, p)
		}
	}
}

func TestCleanEverything(t *testing.T) {
	tr := sample()
	for i := 0; i < tr.Len(); i++ {
		tr.Remove(i)
	}
	tr.Clean()
	if tr.Len() != 0 || len(tr.Roots()) != 0 {
		t.Errorf("expected empty tree, got %d stones %v roots", tr.Len(), tr.Roots())
	}
}

func TestRefInvalidatedByClean(t *testing.T) {
	tr := sample()
	r := tr.Ref(5)
	if s, err := tr.Resolve(r); err != nil || s.Value != "tail" {
		t.Fatalf("resolve before clean: %v %v", s, err)
	}
	tr.Remove(0)
	tr.Clean()
	if _, err := tr.Resolve(r); !errors.Is(err, ErrStaleRef) {
		t.Errorf("expected stale ref, got %v", err)
	}
	r = tr.Ref(0)
	tr.Remove(0)
	if _, err := tr.Resolve(r); !errors.Is(err, ErrStaleRef) {
		t.Errorf("expected stale ref for absent stone, got %v", err)
	}
}

func TestSubtree(t *testing.T) {
	tr := sample()
	if diff := cmp.Diff([]int{2, 3, 4}, tr.Subtree(2)); diff != "" {
		t.Errorf("subtree mismatch (-want +got):\n%s", diff)
	}
	tr.Remove(2)
	if diff := cmp.Diff([]int{3, 4}, tr.Subtree(2)); diff != "" {
		t.Errorf("subtree of removed mismatch (-want +got):\n%s", diff)
	}
	if tr.Subtree(99) != nil {
		t.Errorf("expected nil subtree for out of range index")
	}
}

func TestGraft(t *testing.T) {
	tr := sample()
	sub := New()
	a := sub.Add(-1, &Stone{Kind: MapKind, Name: "a"})
	sub.Add(a, &Stone{Name: "y", Value: "2"})
	gone := sub.Add(-1, &Stone{Tag: "!meta"})
	sub.Add(-1, &Stone{Value: "b"})
	sub.Remove(gone)

	got := tr.Graft(3, sub)
	if len(got) != 2 {
		t.Fatalf("expected 2 grafted roots, got %v", got)
	}
	want := []string{
		"|!meta|", "|!color(bg)|#000", "box||",
		"x||1", "a||", "y||2", "||b", "s|!style|",
		"||tail",
	}
	if diff := cmp.Diff(want, payloads(tr)); diff != "" {
		t.Errorf("walk mismatch (-want +got):\n%s", diff)
	}
	for _, g := range got {
		if p := tr.Get(g).Parent; p != 2 {
			t.Errorf("grafted stone %d has parent %d, want 2", g, p)
		}
	}
}

func TestValue(t *testing.T) {
	tr := New()
	m := tr.Add(-1, &Stone{Kind: MapKind})
	tr.Add(m, &Stone{Name: "fill", Value: "bg"})
	seq := tr.Add(m, &Stone{Kind: SeqKind, Name: "l"})
	tr.Add(seq, &Stone{Value: "a"})
	tr.Add(seq, &Stone{Value: "b"})
	want := map[string]any{"fill": "bg", "l": []any{"a", "b"}}
	if diff := cmp.Diff(want, tr.Value(m)); diff != "" {
		t.Errorf("value mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"a", "b"}, tr.Strings(seq)); diff != "" {
		t.Errorf("strings mismatch (-want +got):\n%s", diff)
	}
}
