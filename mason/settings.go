package mason

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/signadot/construct/stone"
)

// Settings handles the document wide declarations: !control bindings,
// then every !meta stone, whether or not it carries anything Settings
// understands. Of a !meta map it reads
//
//	title: window title
//	background: color name or value
type Settings struct {
	Control    *Control
	Title      string
	Background string
}

func NewSettings() *Settings {
	return &Settings{Control: NewControl()}
}

func (m *Settings) Process(t *stone.Tree, tags stone.TagIndex) (stone.Set, error) {
	res, err := m.Control.Process(t, tags)
	if err != nil {
		return nil, err
	}
	for _, i := range tags.Get("meta") {
		if !t.Present(i) {
			continue
		}
		if v, ok := t.Attr(i, "title"); ok {
			m.Title = v
		}
		if v, ok := t.Attr(i, "background"); ok {
			m.Background = v
		}
		consume(t, res, i)
	}
	return res, nil
}

type settingsDoc struct {
	Title      string              `json:"title"`
	Background string              `json:"background"`
	Keys       map[string][]string `json:"keys"`
}

// Patch applies an RFC 6902 JSON patch to the settings, seen as
//
//	{"title": "...", "background": "...", "keys": {"q": ["quit"]}}
func (m *Settings) Patch(p []byte) error {
	ops, err := jsonpatch.DecodePatch(p)
	if err != nil {
		return fmt.Errorf("bad settings patch: %w", err)
	}
	d, err := json.Marshal(settingsDoc{
		Title:      m.Title,
		Background: m.Background,
		Keys:       m.Control.Bindings(),
	})
	if err != nil {
		return err
	}
	d, err = ops.Apply(d)
	if err != nil {
		return fmt.Errorf("could not apply settings patch: %w", err)
	}
	var doc settingsDoc
	if err := json.Unmarshal(d, &doc); err != nil {
		return fmt.Errorf("patched settings: %w", err)
	}
	ctl := NewControl()
	for _, seq := range slices.Sorted(maps.Keys(doc.Keys)) {
		if err := ctl.Bind(seq, doc.Keys[seq]...); err != nil {
			return fmt.Errorf("patched settings: %w", err)
		}
	}
	m.Title = doc.Title
	m.Background = doc.Background
	*m.Control = *ctl
	return nil
}
