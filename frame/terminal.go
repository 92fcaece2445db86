package frame

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/signadot/construct/debug"
	"github.com/signadot/construct/keys"
	"github.com/signadot/construct/paint"
	"golang.org/x/term"
)

// pollWait bounds how long Poll waits for the first event.
const pollWait = 30 * time.Millisecond

// TerminalSurface draws on a truecolor terminal, two pixels per cell
// using upper half blocks.
type TerminalSurface struct {
	in, out *os.File
	state   *term.State
	w       *bufio.Writer

	input      chan []byte
	resize     chan struct{}
	stopResize func()

	// done is closed by Close to release the reader.
	done      chan struct{}
	closeOnce sync.Once

	cells map[[2]paint.Color]*color.Color
}

// OpenTerminal puts in into raw mode and switches out to the alternate
// screen. It fails with ErrNotTerminal if either is not a terminal.
func OpenTerminal(in, out *os.File) (*TerminalSurface, error) {
	if !term.IsTerminal(int(in.Fd())) || !term.IsTerminal(int(out.Fd())) {
		return nil, ErrNotTerminal
	}
	state, err := term.MakeRaw(int(in.Fd()))
	if err != nil {
		return nil, fmt.Errorf("could not make terminal raw: %w", err)
	}
	s := &TerminalSurface{
		in:     in,
		out:    out,
		state:  state,
		w:      bufio.NewWriter(out),
		input:  make(chan []byte, 64),
		resize: make(chan struct{}, 1),
		done:   make(chan struct{}),
		cells:  map[[2]paint.Color]*color.Color{},
	}
	s.stopResize = notifyResize(s.resize)
	go s.read()
	fmt.Fprint(s.w, "\x1b[?1049h\x1b[?25l")
	return s, s.w.Flush()
}

func (s *TerminalSurface) read() {
	for {
		b := make([]byte, 64)
		n, err := s.in.Read(b)
		if err != nil {
			close(s.input)
			return
		}
		select {
		case s.input <- b[:n]:
		case <-s.done:
			return
		}
	}
}

// Size returns the pixel size: one pixel per column, two per row.
func (s *TerminalSurface) Size() (int, int) {
	w, h, err := term.GetSize(int(s.out.Fd()))
	if err != nil {
		return 80, 48
	}
	return w, 2 * h
}

func (s *TerminalSurface) Poll(dst []Event) []Event {
	timer := time.NewTimer(pollWait)
	defer timer.Stop()
	select {
	case b, ok := <-s.input:
		if !ok {
			return append(dst, CloseEvent{})
		}
		dst = append(dst, decodeKeys(b)...)
	case <-s.resize:
		w, h := s.Size()
		dst = append(dst, ResizeEvent{W: w, H: h})
	case <-timer.C:
		return dst
	}
	for {
		select {
		case b, ok := <-s.input:
			if !ok {
				return append(dst, CloseEvent{})
			}
			dst = append(dst, decodeKeys(b)...)
		case <-s.resize:
			w, h := s.Size()
			dst = append(dst, ResizeEvent{W: w, H: h})
		default:
			return dst
		}
	}
}

func (s *TerminalSurface) Present(buf *paint.Buffer) error {
	fmt.Fprint(s.w, "\x1b[H")
	for y := 0; y < buf.H; y += 2 {
		if y > 0 {
			fmt.Fprint(s.w, "\r\n")
		}
		for x := 0; x < buf.W; x++ {
			bot := paint.Black
			if y+1 < buf.H {
				bot = buf.At(x, y+1)
			}
			fmt.Fprint(s.w, s.cell(buf.At(x, y), bot).Sprint("▀"))
		}
	}
	return s.w.Flush()
}

func (s *TerminalSurface) cell(top, bot paint.Color) *color.Color {
	k := [2]paint.Color{top, bot}
	if c, ok := s.cells[k]; ok {
		return c
	}
	c := color.RGB(int(top[0]), int(top[1]), int(top[2])).AddBgRGB(int(bot[0]), int(bot[1]), int(bot[2]))
	c.EnableColor()
	s.cells[k] = c
	return c
}

func (s *TerminalSurface) SetTitle(title string) {
	fmt.Fprintf(s.w, "\x1b]2;%s\x07", strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, title))
	s.w.Flush()
}

// Close restores the terminal.
func (s *TerminalSurface) Close() error {
	s.closeOnce.Do(func() { close(s.done) })
	s.stopResize()
	fmt.Fprint(s.w, "\x1b[0m\x1b[?25h\x1b[?1049l")
	s.w.Flush()
	return term.Restore(int(s.in.Fd()), s.state)
}

var csiKeys = map[string]keys.Key{
	"A":  keys.Up,
	"B":  keys.Down,
	"C":  keys.Right,
	"D":  keys.Left,
	"H":  keys.Home,
	"F":  keys.End,
	"3~": keys.Delete,
	"5~": keys.PageUp,
	"6~": keys.PageDown,
}

// decodeKeys splits raw terminal input into key events. Unrecognized
// escape sequences are dropped.
func decodeKeys(b []byte) []Event {
	var res []Event
	for len(b) > 0 {
		k, n := decodeKey(b)
		if k != "" {
			res = append(res, KeyEvent{Key: k, Scancode: append([]byte(nil), b[:n]...)})
		} else if debug.Keys() {
			debug.Logf("undecoded input % x\n", b[:n])
		}
		b = b[n:]
	}
	return res
}

func decodeKey(b []byte) (keys.Key, int) {
	c := b[0]
	switch {
	case c == 0x1b:
		if len(b) == 1 || (b[1] != '[' && b[1] != 'O') {
			return keys.Esc, 1
		}
		// CSI or SS3: parameters then a final byte in 0x40..0x7e.
		for i := 2; i < len(b); i++ {
			if b[i] >= 0x40 && b[i] <= 0x7e {
				return csiKeys[string(b[2:i+1])], i + 1
			}
		}
		return "", len(b)
	case c == '\r' || c == '\n':
		return keys.Enter, 1
	case c == '\t':
		return keys.Tab, 1
	case c == 0x7f || c == 0x08:
		return keys.Backspace, 1
	case c >= 1 && c <= 26:
		return keys.Ctrl(rune('a' + c - 1)), 1
	case c < 0x20:
		return "", 1
	}
	r, n := utf8.DecodeRune(b)
	if r == utf8.RuneError && n <= 1 {
		return "", 1
	}
	return keys.Rune(r), n
}
