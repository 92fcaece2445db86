package frame

import (
	"github.com/signadot/construct/debug"
	"github.com/signadot/construct/paint"
)

// Loop renders a scene on a surface until closed.
type Loop struct {
	Surface  Surface
	Renderer Renderer
	// Sources are polled after the surface on every step.
	Sources []EventSource
	// Reload, when set, is called on a ChangeEvent to rebuild the scene.
	Reload func() (*Scene, error)

	scene  *Scene
	buf    *paint.Buffer
	w, h   int
	events []Event
	frames int

	done    bool
	dirty   bool
	resized bool
}

func NewLoop(s Surface, r Renderer, sc *Scene) *Loop {
	l := &Loop{Surface: s, Renderer: r}
	l.w, l.h = s.Size()
	l.SetScene(sc)
	l.resized = true
	return l
}

// SetScene replaces the scene and marks the loop dirty.
func (l *Loop) SetScene(sc *Scene) {
	l.scene = sc
	if ss, ok := l.Renderer.(StyleSetter); ok {
		ss.SetStyles(sc.Styles)
	}
	if sc.Title != "" {
		l.Surface.SetTitle(sc.Title)
	}
	l.dirty = true
}

func (l *Loop) Scene() *Scene {
	return l.scene
}

func (l *Loop) Done() bool {
	return l.done
}

// Frames returns how many frames have been presented.
func (l *Loop) Frames() int {
	return l.frames
}

// Buffer returns the buffer of the last frame.
func (l *Loop) Buffer() *paint.Buffer {
	return l.buf
}

// Run steps until the loop is done.
func (l *Loop) Run() error {
	for !l.done {
		if err := l.Step(); err != nil {
			return err
		}
	}
	return nil
}

// Step renders if needed, then polls and dispatches events once.
func (l *Loop) Step() error {
	if l.resized {
		if l.buf == nil {
			l.buf = paint.NewBuffer(l.w, l.h)
		} else {
			l.buf.Resize(l.w, l.h)
		}
		l.resized = false
		l.dirty = true
	}
	if l.dirty {
		sc := l.scene
		l.Renderer.Render(l.buf, sc.Palette, sc.Tree, sc.Background)
		if err := l.Surface.Present(l.buf); err != nil {
			return err
		}
		l.frames++
		l.dirty = false
		if debug.Frame() {
			debug.Logf("frame %d: %dx%d\n", l.frames, l.w, l.h)
		}
	}
	l.events = l.Surface.Poll(l.events[:0])
	for _, src := range l.Sources {
		l.events = src.Poll(l.events)
	}
	for _, e := range l.events {
		l.Dispatch(e)
	}
	clear(l.events)
	return nil
}

func (l *Loop) Dispatch(e Event) {
	switch x := e.(type) {
	case CloseEvent:
		l.done = true
	case KeyEvent:
		if l.scene.Keys == nil {
			return
		}
		for _, a := range l.scene.Keys.HandleKey(x.Key) {
			l.action(a, x)
		}
	case ResizeEvent:
		l.w, l.h = x.W, x.H
		l.resized = true
	case ChangeEvent:
		l.change(x)
	}
}

func (l *Loop) action(a string, e KeyEvent) {
	switch a {
	case "reload":
		l.dirty = true
	case "quit":
		l.done = true
	case "key_info":
		debug.Logf("%s\n", e)
	default:
		if debug.Frame() {
			debug.Logf("ignoring action %q\n", a)
		}
	}
}

func (l *Loop) change(e ChangeEvent) {
	if l.Reload == nil {
		l.dirty = true
		return
	}
	sc, err := l.Reload()
	if err != nil {
		debug.Logf("reload after change to %s: %v\n", e.Path, err)
		return
	}
	l.SetScene(sc)
}
