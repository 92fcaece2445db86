package frame

import (
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/construct/keys"
	"github.com/signadot/construct/paint"
	"github.com/signadot/construct/stone"
)

// fakeSurface hands out one batch of events per poll.
type fakeSurface struct {
	w, h    int
	batches [][]Event
	titles  []string
	shown   int
}

func (s *fakeSurface) Size() (int, int) { return s.w, s.h }

func (s *fakeSurface) Poll(dst []Event) []Event {
	if len(s.batches) == 0 {
		return dst
	}
	b := s.batches[0]
	s.batches = s.batches[1:]
	return append(dst, b...)
}

func (s *fakeSurface) Present(*paint.Buffer) error { s.shown++; return nil }
func (s *fakeSurface) SetTitle(t string)           { s.titles = append(s.titles, t) }
func (s *fakeSurface) Close() error                { return nil }

type countRenderer struct {
	sizes [][2]int
}

func (r *countRenderer) Render(buf *paint.Buffer, _ paint.Palette, _ *stone.Tree, _ *paint.Color) {
	r.sizes = append(r.sizes, [2]int{buf.W, buf.H})
}

type keyTable map[keys.Key][]string

func (k keyTable) HandleKey(key keys.Key) []string { return k[key] }

func steps(t *testing.T, l *Loop, n int) {
	t.Helper()
	for range n {
		if err := l.Step(); err != nil {
			t.Fatal(err)
		}
	}
}

func TestResizeRendersOnce(t *testing.T) {
	s := &fakeSurface{w: 640, h: 480, batches: [][]Event{
		{ResizeEvent{W: 700, H: 500}, ResizeEvent{W: 800, H: 600}},
	}}
	r := &countRenderer{}
	l := NewLoop(s, r, &Scene{Tree: stone.New()})
	steps(t, l, 4)
	want := [][2]int{{640, 480}, {800, 600}}
	if diff := cmp.Diff(want, r.sizes); diff != "" {
		t.Errorf("renders mismatch (-want +got):\n%s", diff)
	}
	if b := l.Buffer(); b.W != 800 || b.H != 600 || len(b.Pix) != 800*600 {
		t.Errorf("buffer %dx%d with %d bytes", b.W, b.H, len(b.Pix))
	}
	if l.Frames() != 2 || s.shown != 2 {
		t.Errorf("frames %d, shown %d", l.Frames(), s.shown)
	}
}

func TestKeyActions(t *testing.T) {
	s := &fakeSurface{w: 4, h: 4, batches: [][]Event{
		{KeyEvent{Key: "r"}},
		{KeyEvent{Key: "b"}, KeyEvent{Key: "i", Scancode: []byte("i")}},
		{KeyEvent{Key: "q"}},
	}}
	r := &countRenderer{}
	l := NewLoop(s, r, &Scene{
		Tree: stone.New(),
		Keys: keyTable{"r": {"reload"}, "b": {"bogus"}, "i": {"key_info"}, "q": {"quit"}},
	})
	steps(t, l, 2)
	if l.Done() {
		t.Fatal("done too early")
	}
	steps(t, l, 1)
	if !l.Done() {
		t.Errorf("quit did not finish the loop")
	}
	if len(r.sizes) != 2 {
		t.Errorf("expected 2 renders, got %d", len(r.sizes))
	}
}

func TestKeysWithoutResolver(t *testing.T) {
	s := &fakeSurface{w: 2, h: 2, batches: [][]Event{{KeyEvent{Key: "q"}}}}
	l := NewLoop(s, &countRenderer{}, &Scene{Tree: stone.New()})
	steps(t, l, 2)
	if l.Done() {
		t.Errorf("key without a resolver finished the loop")
	}
}

func TestChangeReload(t *testing.T) {
	s := &fakeSurface{w: 2, h: 2, batches: [][]Event{
		{ChangeEvent{Path: "a"}},
		{ChangeEvent{Path: "a"}},
	}}
	r := &countRenderer{}
	l := NewLoop(s, r, &Scene{Tree: stone.New(), Title: "one"})
	reloads := 0
	l.Reload = func() (*Scene, error) {
		reloads++
		if reloads == 2 {
			return nil, errors.New("broken")
		}
		return &Scene{Tree: stone.New(), Title: "two"}, nil
	}
	steps(t, l, 3)
	if l.Scene().Title != "two" {
		t.Errorf("scene title %q", l.Scene().Title)
	}
	if diff := cmp.Diff([]string{"one", "two"}, s.titles); diff != "" {
		t.Errorf("titles mismatch (-want +got):\n%s", diff)
	}
	if len(r.sizes) != 2 {
		t.Errorf("expected 2 renders, got %d", len(r.sizes))
	}
}

func TestHeadlessRun(t *testing.T) {
	out := filepath.Join(t.TempDir(), "frame.png")
	s := NewHeadless(4, 4, []Event{ResizeEvent{W: 8, H: 6}}, out)
	red := paint.Color{255, 0, 0, 255}
	l := NewLoop(s, paint.NewPainter(nil), &Scene{Tree: stone.New(), Background: &red, Title: "t"})
	if err := l.Run(); err != nil {
		t.Fatal(err)
	}
	if s.Presented() != 2 || s.Title() != "t" {
		t.Errorf("presented %d, title %q", s.Presented(), s.Title())
	}
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}
	f, err := os.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 8 || b.Dy() != 6 {
		t.Errorf("png bounds %v", b)
	}
	if r, g, _, _ := img.At(3, 3).RGBA(); r != 0xffff || g != 0 {
		t.Errorf("pixel %v", img.At(3, 3))
	}
}

func TestOpenGPUPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic")
		}
	}()
	Open(GPU, Options{})
}

func TestParseBackend(t *testing.T) {
	for _, b := range []Backend{Terminal, Headless, GPU} {
		got, err := ParseBackend(b.String())
		if err != nil || got != b {
			t.Errorf("ParseBackend(%q) = %v, %v", b, got, err)
		}
	}
	if _, err := ParseBackend("vulkan"); err == nil {
		t.Errorf("expected error")
	}
}
