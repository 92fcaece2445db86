package mason

import (
	"github.com/signadot/construct/debug"
	"github.com/signadot/construct/paint"
	"github.com/signadot/construct/stone"
)

// Pipeline runs the standard masons in order and unions what they
// consume. The definitions they collect stay on the pipeline.
type Pipeline struct {
	Import   *Import
	Settings *Settings
	Color    *Color
	Style    *Style
}

// NewPipeline returns a pipeline importing through files, relative to
// dir. A nil files reads from the OS.
func NewPipeline(files FileGetter, dir string) *Pipeline {
	p := &Pipeline{
		Import:   NewImport(files, dir),
		Settings: NewSettings(),
		Color:    NewColor(),
		Style:    NewStyle(),
	}
	p.Import.Pipeline = p
	return p
}

// Masons returns the passes in the order Process runs them.
func (p *Pipeline) Masons() []Mason {
	return []Mason{p.Import, p.Settings, p.Color, p.Style}
}

func (p *Pipeline) Process(t *stone.Tree, tags stone.TagIndex) (stone.Set, error) {
	var sets []stone.Set
	for _, m := range p.Masons() {
		rm, err := m.Process(t, tags)
		if err != nil {
			return nil, err
		}
		sets = append(sets, rm)
	}
	res := stone.Union(sets...)
	if debug.Mason() {
		debug.Logf("pipeline consumed %v of %d stones\n", res, t.Len())
	}
	return res, nil
}

func (p *Pipeline) Palette() paint.Palette {
	return p.Color.Palette
}

func (p *Pipeline) Styles() map[string]paint.Style {
	return p.Style.Styles
}

func (p *Pipeline) Control() *Control {
	return p.Settings.Control
}

func (p *Pipeline) Title() string {
	return p.Settings.Title
}

// Background resolves the !meta background against the palette. It
// returns nil when none was set.
func (p *Pipeline) Background() (*paint.Color, error) {
	if p.Settings.Background == "" {
		return nil, nil
	}
	c, err := p.Color.Palette.Resolve(p.Settings.Background)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
