package load

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/construct/stone"
)

type row struct {
	Kind  stone.Kind
	Name  string
	Tag   string
	Value string
	Depth int
}

func rows(t *stone.Tree) []row {
	var res []row
	var depth func(i int) int
	depth = func(i int) int {
		p := t.Get(i).Parent
		if p < 0 {
			return 0
		}
		return 1 + depth(p)
	}
	t.Walk(func(i int, s *stone.Stone) bool {
		res = append(res, row{s.Kind, s.Name, s.Tag, s.Value, depth(i)})
		return true
	})
	return res
}

func TestLoadMapping(t *testing.T) {
	tree, tags, err := Load([]byte(`
bg: !color "#000"
box: !rect
  x: 1
  kids: [a, !fill red]
note:
`))
	if err != nil {
		t.Fatal(err)
	}
	want := []row{
		{stone.ScalarKind, "bg", "!color", "#000", 0},
		{stone.MapKind, "box", "!rect", "", 0},
		{stone.ScalarKind, "x", "", "1", 1},
		{stone.SeqKind, "kids", "", "", 1},
		{stone.ScalarKind, "", "", "a", 2},
		{stone.ScalarKind, "", "!fill", "red", 2},
		{stone.ScalarKind, "note", "", "", 0},
	}
	if diff := cmp.Diff(want, rows(tree)); diff != "" {
		t.Errorf("tree mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"color", "fill", "rect"}, tags.Tags()); diff != "" {
		t.Errorf("tags mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{5}, tags.Get("fill")); diff != "" {
		t.Errorf("fill index mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadSequenceRoots(t *testing.T) {
	tree, tags, err := Load([]byte("- !meta {title: t}\n- plain\n"))
	if err != nil {
		t.Fatal(err)
	}
	if n := len(tree.Roots()); n != 2 {
		t.Fatalf("expected 2 roots, got %d", n)
	}
	if got := tags.Get("meta"); len(got) != 1 || got[0] != 0 {
		t.Errorf("meta at %v", got)
	}
	if v, ok := tree.Attr(0, "title"); !ok || v != "t" {
		t.Errorf("title %q %v", v, ok)
	}
}

func TestLoadMergeKey(t *testing.T) {
	tree, _, err := Load([]byte(`
base: &base {fill: red, stroke: blue}
box:
  <<: *base
  stroke: green
`))
	if err != nil {
		t.Fatal(err)
	}
	box := tree.Roots()[1]
	want := map[string]any{"fill": "red", "stroke": "green"}
	if diff := cmp.Diff(want, tree.Value(box)); diff != "" {
		t.Errorf("merged value mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadErrors(t *testing.T) {
	for name, doc := range map[string]string{
		"syntax":  "a: [1, 2\n",
		"alias":   "a: *nowhere\n",
		"bad tag": "a: !col(or 1\n",
	} {
		_, _, err := Load([]byte(doc), Name(name))
		if !errors.Is(err, ErrLoad) {
			t.Errorf("%s: expected ErrLoad, got %v", name, err)
			continue
		}
		if !strings.Contains(err.Error(), name) {
			t.Errorf("%s: error does not name the input: %v", name, err)
		}
	}
}

func TestLoadMaxDepth(t *testing.T) {
	doc := "a: {b: {c: {d: 1}}}\n"
	if _, _, err := Load([]byte(doc), MaxDepth(2)); !errors.Is(err, ErrLoad) {
		t.Errorf("expected ErrLoad, got %v", err)
	}
	if _, _, err := Load([]byte(doc), MaxDepth(8)); err != nil {
		t.Errorf("unexpected error %v", err)
	}
}

func TestLoadMaxStones(t *testing.T) {
	doc := `
a: &a [x, x, x, x, x, x, x, x]
b: &b [*a, *a, *a, *a, *a, *a, *a, *a]
c: &c [*b, *b, *b, *b, *b, *b, *b, *b]
d: [*c, *c, *c, *c, *c, *c, *c, *c]
`
	if _, _, err := Load([]byte(doc), MaxStones(1000)); !errors.Is(err, ErrLoad) {
		t.Errorf("expected ErrLoad, got %v", err)
	}
	tree, _, err := Load([]byte(doc), MaxStones(10000))
	if err != nil {
		t.Fatal(err)
	}
	// 9 + 73 + 585 + 4681
	if n := tree.Len(); n != 5348 {
		t.Errorf("loaded %d stones", n)
	}
}
