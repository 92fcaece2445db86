package mason

import (
	"github.com/signadot/construct/paint"
	"github.com/signadot/construct/stone"
)

// Color collects !color definitions into a palette. A definition is
//
//	bg: !color "#202020"      # named by its key
//	- !color(bg) "#202020"    # named by its tag argument
//	colors: !color            # one entry per scalar child
//	  bg: "#202020"
//	  fg: bg
//
// A value may name an earlier entry. Later definitions replace earlier
// ones.
type Color struct {
	Palette paint.Palette
}

func NewColor() *Color {
	return &Color{Palette: paint.Palette{}}
}

func (m *Color) Process(t *stone.Tree, tags stone.TagIndex) (stone.Set, error) {
	res := stone.Set{}
	for _, i := range tags.Get("color") {
		s := t.Get(i)
		if s == nil {
			continue
		}
		switch s.Kind {
		case stone.ScalarKind:
			m.define(s, name(s), s.Value)
		case stone.MapKind:
			for _, c := range s.Children {
				cs := t.Get(c)
				if cs == nil {
					continue
				}
				if cs.Kind != stone.ScalarKind {
					skip("color", cs, "not a scalar")
					continue
				}
				m.define(cs, cs.Name, cs.Value)
			}
		default:
			skip("color", s, "sequence")
		}
		consume(t, res, i)
	}
	return res, nil
}

func (m *Color) define(s *stone.Stone, n, v string) {
	if n == "" {
		skip("color", s, "no name")
		return
	}
	c, err := m.Palette.Resolve(v)
	if err != nil {
		skip("color", s, "%v", err)
		return
	}
	m.Palette[n] = c
}
