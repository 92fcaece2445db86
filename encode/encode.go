package encode

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/signadot/construct/stone"

	"github.com/goccy/go-yaml"
)

type EncState struct {
	format  Format
	indent  int
	indices bool
	colors  *Colors
}

// Encode writes the present stones of t to w.
func Encode(t *stone.Tree, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{indent: 2}
	for _, opt := range opts {
		opt(es)
	}
	switch es.format {
	case YAMLFormat:
		d, err := yaml.Marshal(Ordered(t))
		if err != nil {
			return err
		}
		_, err = w.Write(d)
		return err
	case JSONFormat:
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", strings.Repeat(" ", es.indent))
		return enc.Encode(plain(t))
	}
	return encodeXML(t, w, es)
}

// MustString encodes t in the XML form and panics on error.
func MustString(t *stone.Tree, opts ...EncodeOption) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(t, buf, opts...); err != nil {
		panic(err)
	}
	return buf.String()
}

func encodeXML(t *stone.Tree, w io.Writer, es *EncState) error {
	b := &strings.Builder{}
	c := es.colors
	b.WriteString(c.Color(SepColor, "<") + c.Color(ElemColor, "stones") + c.Color(SepColor, ">") + "\n")
	for _, r := range t.Roots() {
		writeStone(b, t, r, 1, es)
	}
	b.WriteString(c.Color(SepColor, "</") + c.Color(ElemColor, "stones") + c.Color(SepColor, ">") + "\n")
	_, err := io.WriteString(w, b.String())
	return err
}

func writeStone(b *strings.Builder, t *stone.Tree, i, depth int, es *EncState) {
	s := t.Get(i)
	if s == nil {
		return
	}
	c := es.colors
	pad := strings.Repeat(" ", depth*es.indent)
	elem, elemAttr := s.Kind.String(), ElemColor
	if s.Tag != "" {
		elem, elemAttr = s.TagName(), TagElemColor
	}
	b.WriteString(pad + c.Color(SepColor, "<") + c.Color(elemAttr, elem))
	attr := func(k, v string) {
		b.WriteString(" " + c.Color(AttrColor, k) + c.Color(SepColor, "=") + c.Color(AttrValueColor, strconv.Quote(v)))
	}
	if es.indices {
		attr("i", strconv.Itoa(i))
	}
	if s.Name != "" {
		attr("name", s.Name)
	}
	if s.Tag != "" && s.Tag != "!"+elem {
		attr("tag", s.Tag)
	}
	if s.Tag != "" && s.Kind != stone.ScalarKind {
		attr("kind", s.Kind.String())
	}
	present := 0
	for _, ch := range s.Children {
		if t.Present(ch) {
			present++
		}
	}
	switch {
	case s.Kind == stone.ScalarKind && s.Value != "":
		b.WriteString(c.Color(SepColor, ">") + c.Color(TextColor, escape(s.Value)) +
			c.Color(SepColor, "</") + c.Color(elemAttr, elem) + c.Color(SepColor, ">") + "\n")
	case present == 0:
		b.WriteString(c.Color(SepColor, "/>") + "\n")
	default:
		b.WriteString(c.Color(SepColor, ">") + "\n")
		for _, ch := range s.Children {
			writeStone(b, t, ch, depth+1, es)
		}
		b.WriteString(pad + c.Color(SepColor, "</") + c.Color(elemAttr, elem) + c.Color(SepColor, ">") + "\n")
	}
}

func escape(v string) string {
	buf := bytes.NewBuffer(nil)
	if err := xml.EscapeText(buf, []byte(v)); err != nil {
		return fmt.Sprintf("%q", v)
	}
	return buf.String()
}

func plain(t *stone.Tree) []any {
	res := make([]any, 0, len(t.Roots()))
	for _, r := range t.Roots() {
		if s := t.Get(r); s != nil {
			v := t.Value(r)
			if s.Name != "" {
				v = map[string]any{s.Name: v}
			}
			res = append(res, v)
		}
	}
	return res
}

// Ordered returns the present roots of t as YAML values that keep mapping
// order.
func Ordered(t *stone.Tree) []any {
	res := make([]any, 0, len(t.Roots()))
	for _, r := range t.Roots() {
		s := t.Get(r)
		if s == nil {
			continue
		}
		v := ordered(t, r)
		if s.Name != "" {
			v = yaml.MapSlice{{Key: s.Name, Value: v}}
		}
		res = append(res, v)
	}
	return res
}

func ordered(t *stone.Tree, i int) any {
	s := t.Get(i)
	switch s.Kind {
	case stone.MapKind:
		m := yaml.MapSlice{}
		for j, c := range s.Children {
			cs := t.Get(c)
			if cs == nil {
				continue
			}
			name := cs.Name
			if name == "" {
				name = strconv.Itoa(j)
			}
			m = append(m, yaml.MapItem{Key: name, Value: ordered(t, c)})
		}
		return m
	case stone.SeqKind:
		l := []any{}
		for _, c := range s.Children {
			if t.Present(c) {
				l = append(l, ordered(t, c))
			}
		}
		return l
	}
	return s.Value
}
