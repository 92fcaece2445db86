package mason

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
	"github.com/signadot/construct/paint"
	"github.com/signadot/construct/stone"
)

// Style collects !style definitions. A definition is a map decoded into
// a [paint.Style], named like a color:
//
//	box: !style
//	  fill: fg
//	  stroke: "#fff"
//	  stroke_width: 2
//	  inherit: base
//
// Inheritance is resolved when the definition is read, so the base must
// be defined first.
type Style struct {
	Styles map[string]paint.Style
}

func NewStyle() *Style {
	return &Style{Styles: map[string]paint.Style{}}
}

func (m *Style) Process(t *stone.Tree, tags stone.TagIndex) (stone.Set, error) {
	res := stone.Set{}
	for _, i := range tags.Get("style") {
		s := t.Get(i)
		if s == nil {
			continue
		}
		consume(t, res, i)
		n := name(s)
		if n == "" {
			skip("style", s, "no name")
			continue
		}
		if s.Kind != stone.MapKind {
			skip("style", s, "not a map")
			continue
		}
		st, err := decodeStyle(t.Value(i))
		if err != nil {
			skip("style", s, "%v", err)
			continue
		}
		if st.Inherit != "" {
			base, ok := m.Styles[st.Inherit]
			if !ok {
				skip("style", s, "unknown base %q", st.Inherit)
				continue
			}
			st = st.Over(base)
		}
		m.Styles[n] = st
	}
	return res, nil
}

func decodeStyle(v any) (paint.Style, error) {
	var st paint.Style
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &st,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return st, err
	}
	if err := dec.Decode(v); err != nil {
		return st, fmt.Errorf("bad style: %w", err)
	}
	return st, nil
}
