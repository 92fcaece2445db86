package stone

import "fmt"

type Kind int

const (
	ScalarKind Kind = iota
	MapKind
	SeqKind
)

func (k Kind) String() string {
	switch k {
	case ScalarKind:
		return "scalar"
	case MapKind:
		return "map"
	case SeqKind:
		return "seq"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Stone is a single node of a Tree.
//
// Parent and Children are indices into the owning Tree and are only
// meaningful until the next call to Tree.Clean.
type Stone struct {
	Kind Kind
	// Tag is the tag as written, including the leading '!'.
	Tag string
	// Name is the mapping key the stone appeared under, empty for sequence
	// items and top level scalars.
	Name  string
	Value string
	Line  int

	Parent   int
	Children []int
}

// TagName returns the head of the stone's tag without '!' or arguments.
func (s *Stone) TagName() string {
	return TagName(s.Tag)
}

// TagArgs returns the arguments of the head of the stone's tag.
func (s *Stone) TagArgs() []string {
	if s.Tag == "" {
		return nil
	}
	_, args, _ := TagArgs(s.Tag)
	return args
}

func (s *Stone) clone() *Stone {
	c := *s
	c.Children = append([]int(nil), s.Children...)
	return &c
}
