package mason

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/signadot/construct/debug"
	"github.com/signadot/construct/load"
	"github.com/signadot/construct/stone"
)

// FileGetter opens imported files.
type FileGetter interface {
	Get(path string) (io.ReadCloser, error)
}

// OSFiles reads from the local file system.
type OSFiles struct{}

func (OSFiles) Get(path string) (io.ReadCloser, error) {
	return os.Open(path)
}

// Import replaces each !import stone by the content of the files it
// names:
//
//	common: !import common.yaml
//	defs: !import [colors.yaml, styles.yaml]
//
// Each file is loaded and run through Pipeline before being grafted
// after the import stone, so its definitions land in the same pipeline
// and only its visible content joins the tree. Relative paths are taken
// from the importing file's directory, or Dir at the top.
type Import struct {
	Files    FileGetter
	Dir      string
	Pipeline Mason

	// Imported lists the files read so far, for watching.
	Imported []string

	// stack holds the absolute paths being imported, outermost first,
	// and dirs the matching directories as given to Files.
	stack []string
	dirs  []string
}

func NewImport(files FileGetter, dir string) *Import {
	if files == nil {
		files = OSFiles{}
	}
	return &Import{Files: files, Dir: dir}
}

// Enter marks path as being processed, so that importing it again from
// within is a cycle. The returned function undoes it.
func (m *Import) Enter(path string) (func(), error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrImport, path, err)
	}
	if slices.Contains(m.stack, abs) {
		chain := append(slices.Clone(m.stack), abs)
		return nil, fmt.Errorf("%w: %s", ErrImportCycle, strings.Join(chain, " -> "))
	}
	m.stack = append(m.stack, abs)
	m.dirs = append(m.dirs, filepath.Dir(path))
	return func() {
		m.stack = m.stack[:len(m.stack)-1]
		m.dirs = m.dirs[:len(m.dirs)-1]
	}, nil
}

func (m *Import) Process(t *stone.Tree, tags stone.TagIndex) (stone.Set, error) {
	res := stone.Set{}
	for _, i := range tags.Get("import") {
		s := t.Get(i)
		if s == nil {
			continue
		}
		at := i
		for _, p := range t.Strings(i) {
			sub, err := m.load(p)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", s.Line, err)
			}
			if grafted := t.Graft(at, sub); len(grafted) > 0 {
				at = grafted[len(grafted)-1]
			}
		}
		consume(t, res, i)
	}
	return res, nil
}

func (m *Import) dir() string {
	if len(m.dirs) == 0 {
		return m.Dir
	}
	return m.dirs[len(m.dirs)-1]
}

func (m *Import) load(p string) (*stone.Tree, error) {
	path := p
	if !filepath.IsAbs(path) {
		path = filepath.Join(m.dir(), path)
	}
	path = filepath.Clean(path)
	leave, err := m.Enter(path)
	if err != nil {
		return nil, err
	}
	defer leave()
	if debug.Import() {
		debug.Logf("import %s from %v\n", path, m.stack[:len(m.stack)-1])
	}
	rc, err := m.Files.Get(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrImport, p, err)
	}
	defer rc.Close()
	sub, tags, err := load.LoadReader(rc, load.Name(path))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrImport, p, err)
	}
	if m.Pipeline != nil {
		if err := Run(m.Pipeline, sub, tags); err != nil {
			return nil, err
		}
	}
	m.Imported = append(m.Imported, m.stack[len(m.stack)-1])
	return sub, nil
}
