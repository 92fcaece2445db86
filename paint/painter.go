package paint

import (
	"fmt"
	"image"
	"math"
	"strconv"
	"strings"

	"github.com/signadot/construct/debug"
	"github.com/signadot/construct/stone"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Painter renders stone trees into buffers.
type Painter struct {
	Styles map[string]Style

	progs map[string]*vm.Program
}

func NewPainter(styles map[string]Style) *Painter {
	return &Painter{Styles: styles, progs: map[string]*vm.Program{}}
}

func (p *Painter) SetStyles(styles map[string]Style) {
	p.Styles = styles
}

// Render fills buf from the present stones of t. The buffer is first
// cleared to bg, or to Black when bg is nil, so rendering is
// repeatable. Stones that cannot be painted are skipped.
func (p *Painter) Render(buf *Buffer, colors Palette, t *stone.Tree, bg *Color) {
	if p.progs == nil {
		p.progs = map[string]*vm.Program{}
	}
	if bg == nil {
		bg = &Black
	}
	buf.Fill(*bg)
	pc := &paintCtx{buf: buf, colors: colors, tree: t}
	for _, r := range t.Roots() {
		p.paint(pc, r, buf.Bounds())
	}
}

type paintCtx struct {
	buf    *Buffer
	colors Palette
	tree   *stone.Tree
}

func (p *Painter) paint(pc *paintCtx, i int, frame image.Rectangle) {
	s := pc.tree.Get(i)
	if s == nil {
		return
	}
	switch s.TagName() {
	case "fill":
		c, err := pc.colors.Resolve(s.Value)
		if err != nil {
			p.skip(s, err)
			return
		}
		pc.buf.FillRect(frame, c)
		return
	case "rect":
		r, err := p.rect(pc, i, frame)
		if err != nil {
			p.skip(s, err)
			return
		}
		frame = r
	case "":
	default:
		return
	}
	for _, c := range s.Children {
		p.paint(pc, c, frame)
	}
}

func (p *Painter) rect(pc *paintCtx, i int, frame image.Rectangle) (image.Rectangle, error) {
	t := pc.tree
	env := map[string]any{
		"width":         float64(frame.Dx()),
		"height":        float64(frame.Dy()),
		"screen_width":  float64(pc.buf.W),
		"screen_height": float64(pc.buf.H),
	}
	dim := func(name string, parent, def int) (int, error) {
		v, ok := t.Attr(i, name)
		if !ok || strings.TrimSpace(v) == "" {
			return def, nil
		}
		return p.length(v, parent, env)
	}
	x, err := dim("x", frame.Dx(), 0)
	if err != nil {
		return image.Rectangle{}, err
	}
	y, err := dim("y", frame.Dy(), 0)
	if err != nil {
		return image.Rectangle{}, err
	}
	w, err := dim("w", frame.Dx(), frame.Dx()-x)
	if err != nil {
		return image.Rectangle{}, err
	}
	h, err := dim("h", frame.Dy(), frame.Dy()-y)
	if err != nil {
		return image.Rectangle{}, err
	}
	r := image.Rect(frame.Min.X+x, frame.Min.Y+y, frame.Min.X+x+w, frame.Min.Y+y+h)

	st := Style{}
	st.Fill, _ = t.Attr(i, "fill")
	st.Stroke, _ = t.Attr(i, "stroke")
	if v, ok := t.Attr(i, "stroke_width"); ok {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return image.Rectangle{}, fmt.Errorf("stroke_width: %w", err)
		}
		st.StrokeWidth = n
	}
	if name, ok := t.Attr(i, "style"); ok {
		base, found := p.Styles[name]
		if !found {
			return image.Rectangle{}, fmt.Errorf("unknown style %q", name)
		}
		st = st.Over(base)
	}
	if st.Fill != "" {
		c, err := pc.colors.Resolve(st.Fill)
		if err != nil {
			return image.Rectangle{}, err
		}
		pc.buf.FillRect(r, c)
	}
	if st.Stroke != "" {
		c, err := pc.colors.Resolve(st.Stroke)
		if err != nil {
			return image.Rectangle{}, err
		}
		pc.buf.StrokeRect(r, max(st.StrokeWidth, 1), c)
	}
	return r, nil
}

// length evaluates a dimension: a number, a percentage of parent or an
// expression over the frame environment.
func (p *Painter) length(v string, parent int, env map[string]any) (int, error) {
	v = strings.TrimSpace(v)
	if pct, ok := strings.CutSuffix(v, "%"); ok {
		f, err := strconv.ParseFloat(strings.TrimSpace(pct), 64)
		if err != nil {
			return 0, fmt.Errorf("bad percentage %q: %w", v, err)
		}
		return int(math.Round(f * float64(parent) / 100)), nil
	}
	if f, err := strconv.ParseFloat(v, 64); err == nil {
		return int(math.Round(f)), nil
	}
	prg, ok := p.progs[v]
	if !ok {
		var err error
		prg, err = expr.Compile(v, expr.Env(env), expr.AsFloat64())
		if err != nil {
			return 0, err
		}
		p.progs[v] = prg
	}
	res, err := expr.Run(prg, env)
	if err != nil {
		return 0, err
	}
	f, ok := res.(float64)
	if !ok {
		return 0, fmt.Errorf("expression %q returned %T", v, res)
	}
	return int(math.Round(f)), nil
}

func (p *Painter) skip(s *stone.Stone, err error) {
	if debug.Frame() {
		debug.Logf("paint: skipping %s on line %d: %v\n", s.Tag, s.Line, err)
	}
}
