package mason

import (
	"github.com/signadot/construct/debug"
	"github.com/signadot/construct/stone"
)

// Mason is a pass over a tagged tree. Process returns the indices of the
// stones it consumed; it must not remove them.
type Mason interface {
	Process(t *stone.Tree, tags stone.TagIndex) (stone.Set, error)
}

// Func adapts a function to a Mason.
type Func func(t *stone.Tree, tags stone.TagIndex) (stone.Set, error)

func (f Func) Process(t *stone.Tree, tags stone.TagIndex) (stone.Set, error) {
	return f(t, tags)
}

// Run processes t with m and applies the result: the consumed stones are
// removed and the tree cleaned.
func Run(m Mason, t *stone.Tree, tags stone.TagIndex) error {
	rm, err := m.Process(t, tags)
	if err != nil {
		return err
	}
	t.Apply(rm)
	return nil
}

// consume adds i and everything under it to res.
func consume(t *stone.Tree, res stone.Set, i int) {
	res.Add(t.Subtree(i)...)
}

// name is the name a definition stone gives: its first tag argument, or
// else its key in the enclosing map.
func name(s *stone.Stone) string {
	if args := s.TagArgs(); len(args) > 0 {
		return args[0]
	}
	return s.Name
}

func skip(tag string, s *stone.Stone, format string, args ...any) {
	if !debug.Mason() {
		return
	}
	debug.Logf("%s: line %d: skipping %q: "+format+"\n", append([]any{tag, s.Line, s.Name}, args...)...)
}
