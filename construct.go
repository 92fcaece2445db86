// Package construct builds renderable scenes from tagged documents.
//
// [Build] loads a document, runs the standard mason pipeline over it and
// removes everything the masons consumed, leaving the tree the painter
// draws together with the definitions the pipeline collected.
package construct

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"

	"github.com/signadot/construct/debug"
	"github.com/signadot/construct/frame"
	"github.com/signadot/construct/load"
	"github.com/signadot/construct/mason"
	"github.com/signadot/construct/stone"
)

// Construct is a processed document.
type Construct struct {
	// Path is the file the document was read from, if any.
	Path     string
	Tree     *stone.Tree
	Pipeline *mason.Pipeline
}

// Apply removes the stones in rm from t and compacts it.
func Apply(t *stone.Tree, rm stone.Set) {
	t.Apply(rm)
}

// Build loads the document read from r and processes it.
func Build(r io.Reader, opts ...Option) (*Construct, error) {
	bOpts := &buildOpts{name: "<input>"}
	for _, f := range opts {
		f(bOpts)
	}
	t, tags, err := load.LoadReader(r, load.Name(bOpts.name))
	if err != nil {
		return nil, err
	}
	p := mason.NewPipeline(bOpts.files, bOpts.dir)
	if bOpts.path != "" {
		leave, err := p.Import.Enter(bOpts.path)
		if err != nil {
			return nil, err
		}
		defer leave()
	}
	rm, err := p.Process(t, tags)
	if err != nil {
		return nil, err
	}
	Apply(t, rm)
	if bOpts.patch != nil {
		if err := p.Settings.Patch(bOpts.patch); err != nil {
			return nil, err
		}
	}
	if debug.Mason() {
		debug.Logf("built %s:\n%s\n", bOpts.name, t)
	}
	return &Construct{Path: bOpts.path, Tree: t, Pipeline: p}, nil
}

// Open builds the document at path. Imports are relative to its
// directory.
func Open(path string, opts ...Option) (*Construct, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", load.ErrLoad, err)
	}
	defer f.Close()
	opts = append([]Option{func(o *buildOpts) {
		o.path = path
		o.name = path
		o.dir = filepath.Dir(path)
	}}, opts...)
	return Build(f, opts...)
}

// Files lists the document and every file it imported.
func (c *Construct) Files() []string {
	var res []string
	if c.Path != "" {
		res = append(res, c.Path)
	}
	for _, f := range c.Pipeline.Import.Imported {
		if !slices.Contains(res, f) {
			res = append(res, f)
		}
	}
	return res
}

// Scene returns what the frame loop needs to show c.
func (c *Construct) Scene() (*frame.Scene, error) {
	bg, err := c.Pipeline.Background()
	if err != nil {
		return nil, fmt.Errorf("background: %w", err)
	}
	return &frame.Scene{
		Tree:       c.Tree,
		Palette:    c.Pipeline.Palette(),
		Styles:     c.Pipeline.Styles(),
		Background: bg,
		Keys:       c.Pipeline.Control(),
		Title:      c.Pipeline.Title(),
	}, nil
}
