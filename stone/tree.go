package stone

import (
	"fmt"
	"slices"
)

// Tree is an arena of stones.
type Tree struct {
	slots []*Stone
	roots []int
	// removed keeps stones marked absent since the last Clean so that
	// their surviving children can be spliced into place.
	removed map[int]*Stone
	gen     uint64
}

func New() *Tree {
	return &Tree{}
}

// Len returns the number of slots, present or absent.
func (t *Tree) Len() int {
	return len(t.slots)
}

// Count returns the number of present stones.
func (t *Tree) Count() int {
	n := 0
	for _, s := range t.slots {
		if s != nil {
			n++
		}
	}
	return n
}

// Gen returns the generation of the tree, incremented by each Clean.
func (t *Tree) Gen() uint64 {
	return t.gen
}

// Get returns the stone at i, or nil if i is absent or out of range.
func (t *Tree) Get(i int) *Stone {
	if i < 0 || i >= len(t.slots) {
		return nil
	}
	return t.slots[i]
}

func (t *Tree) Present(i int) bool {
	return t.Get(i) != nil
}

// Roots returns the indices of the top level stones. The result must not
// be modified.
func (t *Tree) Roots() []int {
	return t.roots
}

// Add appends s as the last child of parent, or as a new root when parent
// is negative, and returns its index.
func (t *Tree) Add(parent int, s *Stone) int {
	i := len(t.slots)
	s.Parent = parent
	s.Children = nil
	if parent < 0 {
		s.Parent = -1
		t.roots = append(t.roots, i)
	} else {
		p := t.Get(parent)
		if p == nil {
			panic(fmt.Sprintf("stone: add under absent parent %d", parent))
		}
		p.Children = append(p.Children, i)
	}
	t.slots = append(t.slots, s)
	return i
}

// Remove marks the stone at i absent. It does nothing if i is already
// absent or out of range, and does not touch any links.
func (t *Tree) Remove(i int) {
	s := t.Get(i)
	if s == nil {
		return
	}
	if t.removed == nil {
		t.removed = map[int]*Stone{}
	}
	t.removed[i] = s
	t.slots[i] = nil
}

// Clean drops absent slots and renumbers the remaining stones into a dense
// range, preserving their relative order. Children of removed stones that
// are still present take their removed parent's place. All indices held
// before the call are invalid afterwards.
func (t *Tree) Clean() {
	remap := make([]int, len(t.slots))
	n := 0
	for i, s := range t.slots {
		if s == nil {
			remap[i] = -1
			continue
		}
		remap[i] = n
		n++
	}
	var lift func(old []int) []int
	lift = func(old []int) []int {
		var res []int
		for _, o := range old {
			if o < 0 || o >= len(t.slots) {
				continue
			}
			if t.slots[o] != nil {
				res = append(res, remap[o])
				continue
			}
			if r, ok := t.removed[o]; ok {
				res = append(res, lift(r.Children)...)
			}
		}
		return res
	}
	children := make([][]int, n)
	slots := make([]*Stone, 0, n)
	for _, s := range t.slots {
		if s == nil {
			continue
		}
		children[len(slots)] = lift(s.Children)
		slots = append(slots, s)
	}
	roots := lift(t.roots)
	for i, s := range slots {
		s.Children = children[i]
		s.Parent = -1
	}
	for i, s := range slots {
		for _, c := range s.Children {
			slots[c].Parent = i
		}
	}
	t.slots = slots
	t.roots = roots
	t.removed = nil
	t.gen++
}

// lookup returns the stone at i whether present or removed since the
// last Clean.
func (t *Tree) lookup(i int) (*Stone, bool) {
	if s := t.Get(i); s != nil {
		return s, true
	}
	s, ok := t.removed[i]
	return s, ok && s != nil
}

// Walk visits present stones in document order. Returning false from f
// skips the stone's children.
func (t *Tree) Walk(f func(i int, s *Stone) bool) {
	t.walk(t.roots, f)
}

func (t *Tree) walk(is []int, f func(int, *Stone) bool) {
	for _, i := range is {
		s, ok := t.lookup(i)
		if !ok {
			continue
		}
		if t.slots[i] != nil && !f(i, s) {
			continue
		}
		t.walk(s.Children, f)
	}
}

// Subtree returns i and all its present descendants in document order.
func (t *Tree) Subtree(i int) []int {
	s, ok := t.lookup(i)
	if !ok {
		return nil
	}
	var res []int
	if t.Present(i) {
		res = append(res, i)
	}
	t.walk(s.Children, func(j int, _ *Stone) bool {
		res = append(res, j)
		return true
	})
	return res
}

// Child returns the first present child of i with the given name.
func (t *Tree) Child(i int, name string) (int, *Stone) {
	s := t.Get(i)
	if s == nil {
		return -1, nil
	}
	for _, c := range s.Children {
		cs := t.Get(c)
		if cs != nil && cs.Name == name {
			return c, cs
		}
	}
	return -1, nil
}

// Attr returns the value of the scalar child of i with the given name.
func (t *Tree) Attr(i int, name string) (string, bool) {
	_, c := t.Child(i, name)
	if c == nil || c.Kind != ScalarKind {
		return "", false
	}
	return c.Value, true
}

// Graft copies the present stones of sub into t, placing the roots of sub
// directly after the stone at in at's sibling list. It returns the new
// indices of sub's roots. sub is cleaned first if it has absent slots.
func (t *Tree) Graft(at int, sub *Tree) []int {
	if sub.Count() != sub.Len() {
		sub.Clean()
	}
	parent := -1
	if s, ok := t.lookup(at); ok {
		parent = s.Parent
	}
	off := len(t.slots)
	for _, s := range sub.slots {
		c := s.clone()
		if c.Parent < 0 {
			c.Parent = parent
		} else {
			c.Parent += off
		}
		for j := range c.Children {
			c.Children[j] += off
		}
		t.slots = append(t.slots, c)
	}
	grafted := make([]int, len(sub.roots))
	for j, r := range sub.roots {
		grafted[j] = r + off
	}
	siblings := &t.roots
	if parent >= 0 {
		if p, ok := t.lookup(parent); ok {
			siblings = &p.Children
		}
	}
	pos := slices.Index(*siblings, at)
	if pos < 0 {
		*siblings = append(*siblings, grafted...)
	} else {
		*siblings = slices.Insert(*siblings, pos+1, grafted...)
	}
	return grafted
}

// Ref is a generation checked handle on a stone.
type Ref struct {
	Index int
	Gen   uint64
}

func (t *Tree) Ref(i int) Ref {
	return Ref{Index: i, Gen: t.gen}
}

// Resolve returns the stone r refers to, or an error wrapping ErrStaleRef
// if the tree has been cleaned since r was taken or the stone is absent.
func (t *Tree) Resolve(r Ref) (*Stone, error) {
	if r.Gen != t.gen {
		return nil, fmt.Errorf("%w: ref generation %d, tree generation %d", ErrStaleRef, r.Gen, t.gen)
	}
	s := t.Get(r.Index)
	if s == nil {
		return nil, fmt.Errorf("%w: stone %d is absent", ErrStaleRef, r.Index)
	}
	return s, nil
}

// Apply removes every member of rm and cleans the tree.
func (t *Tree) Apply(rm Set) {
	for i := range rm {
		t.Remove(i)
	}
	t.Clean()
}
