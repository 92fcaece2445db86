package paint

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/construct/stone"
)

var (
	red   = Color{255, 0, 0, 255}
	green = Color{0, 255, 0, 255}
	blue  = Color{0, 0, 255, 255}
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{"#000", Black},
		{"#ff0000", red},
		{"#f00", red},
		{"#00ff0080", Color{0, 255, 0, 128}},
		{" #0000ff ", blue},
	}
	for _, tc := range tests {
		got, err := ParseColor(tc.in)
		if err != nil {
			t.Errorf("ParseColor(%q): %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseColor(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
	for _, in := range []string{"red", "#12", "#gg0000", "#00000g00"} {
		if _, err := ParseColor(in); !errors.Is(err, ErrBadColor) {
			t.Errorf("ParseColor(%q) = %v, want ErrBadColor", in, err)
		}
	}
	if got := (Color{1, 2, 3, 255}).String(); got != "#010203" {
		t.Errorf("String() = %q", got)
	}
}

func TestPaletteResolve(t *testing.T) {
	p := Palette{"bg": blue}
	if c, err := p.Resolve("bg"); err != nil || c != blue {
		t.Errorf("Resolve(bg) = %v, %v", c, err)
	}
	if c, err := p.Resolve("#f00"); err != nil || c != red {
		t.Errorf("Resolve(#f00) = %v, %v", c, err)
	}
}

func TestBufferResize(t *testing.T) {
	b := NewBuffer(640, 480)
	b.Fill(red)
	b.Resize(800, 600)
	if b.W != 800 || b.H != 600 || len(b.Pix) != 800*600 {
		t.Fatalf("resize: got %dx%d with %d pixels", b.W, b.H, len(b.Pix))
	}
	if b.At(799, 599) != Black {
		t.Errorf("resized buffer not cleared: %v", b.At(799, 599))
	}
	if b.At(800, 0) != Transparent {
		t.Errorf("out of range At should be transparent")
	}
}

func TestOver(t *testing.T) {
	half := Color{255, 255, 255, 128}
	got := over(half, Black)
	if got[3] != 255 || got[0] < 127 || got[0] > 129 {
		t.Errorf("over = %v", got)
	}
	if over(Transparent, red) != red || over(green, red) != green {
		t.Errorf("over identity cases failed")
	}
}

func TestPainter(t *testing.T) {
	tr := stone.New()
	tr.Add(-1, &stone.Stone{Tag: "!fill", Value: "bg"})
	r := tr.Add(-1, &stone.Stone{Tag: "!rect", Kind: stone.MapKind})
	tr.Add(r, &stone.Stone{Name: "x", Value: "1"})
	tr.Add(r, &stone.Stone{Name: "y", Value: "25%"})
	tr.Add(r, &stone.Stone{Name: "w", Value: "width - 2"})
	tr.Add(r, &stone.Stone{Name: "h", Value: "height / 2"})
	tr.Add(r, &stone.Stone{Name: "style", Value: "box"})
	inner := tr.Add(r, &stone.Stone{Tag: "!rect", Kind: stone.MapKind, Name: "inner"})
	tr.Add(inner, &stone.Stone{Name: "w", Value: "1"})
	tr.Add(inner, &stone.Stone{Name: "h", Value: "1"})
	tr.Add(inner, &stone.Stone{Name: "fill", Value: "#0000ff"})
	bad := tr.Add(-1, &stone.Stone{Tag: "!rect", Kind: stone.MapKind})
	tr.Add(bad, &stone.Stone{Name: "w", Value: "nope +"})
	tr.Add(bad, &stone.Stone{Name: "fill", Value: "#ff0000"})
	tr.Add(-1, &stone.Stone{Tag: "!unknown", Value: "ignored"})

	p := NewPainter(map[string]Style{"box": {Fill: "fg"}})
	buf := NewBuffer(4, 4)
	p.Render(buf, Palette{"bg": red, "fg": green}, tr, nil)

	want := [4][4]Color{
		{red, red, red, red},
		{red, blue, green, red},
		{red, green, green, red},
		{red, red, red, red},
	}
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if got := buf.At(x, y); got != want[y][x] {
				t.Errorf("pixel (%d,%d) = %v, want %v", x, y, got, want[y][x])
			}
		}
	}

	bg := blue
	p.Render(buf, Palette{}, stone.New(), &bg)
	if buf.At(0, 0) != blue {
		t.Errorf("background not painted: %v", buf.At(0, 0))
	}
}

func TestRenderRepeatable(t *testing.T) {
	half := stone.New()
	r := half.Add(-1, &stone.Stone{Tag: "!rect", Kind: stone.MapKind, Name: "box"})
	half.Add(r, &stone.Stone{Name: "fill", Value: "#ff000080"})

	p := NewPainter(nil)
	buf := NewBuffer(2, 2)
	p.Render(buf, nil, half, nil)
	first := append([]Color(nil), buf.Pix...)
	p.Render(buf, nil, half, nil)
	if diff := cmp.Diff(first, buf.Pix); diff != "" {
		t.Errorf("second render differs (-first +second):\n%s", diff)
	}

	small := stone.New()
	r = small.Add(-1, &stone.Stone{Tag: "!rect", Kind: stone.MapKind})
	small.Add(r, &stone.Stone{Name: "w", Value: "1"})
	small.Add(r, &stone.Stone{Name: "h", Value: "1"})
	small.Add(r, &stone.Stone{Name: "fill", Value: "#00ff00"})
	p.Render(buf, nil, small, nil)
	if buf.At(0, 0) != green {
		t.Errorf("pixel (0,0) = %v, want %v", buf.At(0, 0), green)
	}
	if buf.At(1, 1) != Black {
		t.Errorf("previous scene left at (1,1): %v", buf.At(1, 1))
	}
}

func TestStroke(t *testing.T) {
	tr := stone.New()
	r := tr.Add(-1, &stone.Stone{Tag: "!rect", Kind: stone.MapKind})
	tr.Add(r, &stone.Stone{Name: "stroke", Value: "#00ff00"})
	buf := NewBuffer(5, 5)
	NewPainter(nil).Render(buf, nil, tr, nil)
	if buf.At(0, 0) != green || buf.At(4, 2) != green {
		t.Errorf("border not stroked")
	}
	if buf.At(2, 2) != Black {
		t.Errorf("interior painted: %v", buf.At(2, 2))
	}
}

func TestStyleOver(t *testing.T) {
	got := Style{Fill: "a"}.Over(Style{Fill: "b", Stroke: "c", StrokeWidth: 2})
	if got.Fill != "a" || got.Stroke != "c" || got.StrokeWidth != 2 {
		t.Errorf("Over = %+v", got)
	}
}
