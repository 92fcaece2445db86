package frame

import (
	"fmt"
	"image/png"
	"os"

	"github.com/signadot/construct/paint"
)

// HeadlessSurface is an offscreen surface fed from a script of events.
// It hands out one scripted event per poll and a CloseEvent once the
// script is exhausted.
type HeadlessSurface struct {
	W, H int
	// PNG, when set, is where Close writes the last frame.
	PNG string

	script    []Event
	last      *paint.Buffer
	title     string
	presented int
}

func NewHeadless(w, h int, script []Event, pngPath string) *HeadlessSurface {
	return &HeadlessSurface{W: w, H: h, PNG: pngPath, script: script}
}

func (s *HeadlessSurface) Size() (int, int) {
	return s.W, s.H
}

func (s *HeadlessSurface) Poll(dst []Event) []Event {
	if len(s.script) == 0 {
		return append(dst, CloseEvent{})
	}
	e := s.script[0]
	s.script = s.script[1:]
	if r, ok := e.(ResizeEvent); ok {
		s.W, s.H = r.W, r.H
	}
	return append(dst, e)
}

func (s *HeadlessSurface) Present(buf *paint.Buffer) error {
	s.last = buf
	s.presented++
	return nil
}

func (s *HeadlessSurface) SetTitle(title string) {
	s.title = title
}

func (s *HeadlessSurface) Title() string {
	return s.title
}

// Presented returns the number of frames presented.
func (s *HeadlessSurface) Presented() int {
	return s.presented
}

func (s *HeadlessSurface) Close() error {
	if s.PNG == "" || s.last == nil {
		return nil
	}
	f, err := os.Create(s.PNG)
	if err != nil {
		return err
	}
	if err := png.Encode(f, s.last.Image()); err != nil {
		f.Close()
		return fmt.Errorf("could not write %s: %w", s.PNG, err)
	}
	return f.Close()
}
