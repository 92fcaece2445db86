package frame

import (
	"fmt"
	"os"
	"strings"
)

// Backend selects a surface implementation.
type Backend int

const (
	Terminal Backend = iota
	Headless
	GPU
)

func (b Backend) String() string {
	switch b {
	case Terminal:
		return "terminal"
	case Headless:
		return "headless"
	case GPU:
		return "gpu"
	}
	return fmt.Sprintf("Backend(%d)", int(b))
}

func ParseBackend(v string) (Backend, error) {
	switch strings.ToLower(v) {
	case "terminal", "term":
		return Terminal, nil
	case "headless":
		return Headless, nil
	case "gpu":
		return GPU, nil
	}
	return 0, fmt.Errorf("unknown backend %q", v)
}

type Options struct {
	// In and Out are the terminal files, stdin and stdout if nil.
	In, Out *os.File

	// Headless size, script and PNG output.
	Width, Height int
	Script        []Event
	PNG           string
}

// Open opens a surface for b. The GPU backend is not implemented and
// panics, as does an unknown backend.
func Open(b Backend, opts Options) (Surface, error) {
	switch b {
	case Terminal:
		in, out := opts.In, opts.Out
		if in == nil {
			in = os.Stdin
		}
		if out == nil {
			out = os.Stdout
		}
		return OpenTerminal(in, out)
	case Headless:
		return NewHeadless(opts.Width, opts.Height, opts.Script, opts.PNG), nil
	case GPU:
		panic("frame: gpu backend not implemented")
	default:
		panic(fmt.Sprintf("frame: unknown backend %d", int(b)))
	}
}
