package stone

import (
	"maps"
	"slices"
)

// Set is a set of stone indices.
type Set map[int]struct{}

func NewSet(is ...int) Set {
	s := make(Set, len(is))
	s.Add(is...)
	return s
}

func (s Set) Add(is ...int) {
	for _, i := range is {
		s[i] = struct{}{}
	}
}

func (s Set) Has(i int) bool {
	_, ok := s[i]
	return ok
}

// Merge adds every member of o to s.
func (s Set) Merge(o Set) {
	for i := range o {
		s[i] = struct{}{}
	}
}

// Sorted returns the members of s in increasing order.
func (s Set) Sorted() []int {
	return slices.Sorted(maps.Keys(s))
}

// Union returns a new set holding the members of all sets.
func Union(sets ...Set) Set {
	res := Set{}
	for _, s := range sets {
		res.Merge(s)
	}
	return res
}
