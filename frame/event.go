package frame

import (
	"fmt"

	"github.com/signadot/construct/keys"
)

type Event interface {
	event()
}

// CloseEvent asks the loop to stop.
type CloseEvent struct{}

type KeyEvent struct {
	Key keys.Key
	// Scancode holds the raw input the key was decoded from.
	Scancode []byte
}

type ResizeEvent struct {
	W, H int
}

// ChangeEvent reports that a watched file changed.
type ChangeEvent struct {
	Path string
}

func (CloseEvent) event()  {}
func (KeyEvent) event()    {}
func (ResizeEvent) event() {}
func (ChangeEvent) event() {}

func (e KeyEvent) String() string {
	return fmt.Sprintf("key %s (% x)", e.Key, e.Scancode)
}

// EventSource yields pending events.
type EventSource interface {
	// Poll appends the events available now to dst and returns it.
	Poll(dst []Event) []Event
}
