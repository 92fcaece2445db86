package stone

import (
	"maps"
	"slices"
)

// TagIndex maps a tag head name to the indices of the stones carrying it,
// in document order.
type TagIndex map[string][]int

// Index builds the tag index of the present stones of t.
func Index(t *Tree) TagIndex {
	x := TagIndex{}
	t.Walk(func(i int, s *Stone) bool {
		if s.Tag == "" {
			return true
		}
		name := s.TagName()
		x[name] = append(x[name], i)
		return true
	})
	return x
}

// Get returns the indices tagged with tag. A missing tag yields nil.
func (x TagIndex) Get(tag string) []int {
	return x[tag]
}

func (x TagIndex) Tags() []string {
	return slices.Sorted(maps.Keys(x))
}
