package frame

import (
	"github.com/signadot/construct/keys"
	"github.com/signadot/construct/paint"
	"github.com/signadot/construct/stone"
)

// Scene is what the loop renders and how it reacts to keys.
type Scene struct {
	Tree       *stone.Tree
	Palette    paint.Palette
	Styles     map[string]paint.Style
	Background *paint.Color
	Keys       KeyResolver
	Title      string
}

// KeyResolver maps keys to action names.
type KeyResolver interface {
	HandleKey(k keys.Key) []string
}

// Renderer draws a tree into a buffer.
type Renderer interface {
	Render(buf *paint.Buffer, colors paint.Palette, t *stone.Tree, bg *paint.Color)
}

// StyleSetter is implemented by renderers which take named styles from
// the scene.
type StyleSetter interface {
	SetStyles(styles map[string]paint.Style)
}

// Surface is where frames are shown and events come from.
type Surface interface {
	EventSource
	Size() (w, h int)
	Present(buf *paint.Buffer) error
	SetTitle(title string)
	Close() error
}
