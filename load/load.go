package load

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/construct/debug"
	"github.com/signadot/construct/stone"

	"github.com/goccy/go-yaml"
	"github.com/goccy/go-yaml/ast"
	"github.com/goccy/go-yaml/parser"
)

// Load parses d into a stone tree and its tag index. Any error wraps
// ErrLoad; no partial tree is returned.
func Load(d []byte, opts ...Option) (*stone.Tree, stone.TagIndex, error) {
	lOpts := &loadOpts{name: "<input>", maxDepth: 256, maxStones: 1 << 20}
	for _, f := range opts {
		f(lOpts)
	}
	file, err := parser.ParseBytes(d, 0)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %s: %s", ErrLoad, lOpts.name, yaml.FormatError(err, false, true))
	}
	b := &builder{
		opts:    lOpts,
		tree:    stone.New(),
		anchors: map[string]ast.Node{},
	}
	for _, doc := range file.Docs {
		if doc == nil || doc.Body == nil {
			continue
		}
		if err := b.top(doc.Body); err != nil {
			return nil, nil, fmt.Errorf("%w: %s: %w", ErrLoad, lOpts.name, err)
		}
	}
	tags := stone.Index(b.tree)
	if debug.Load() {
		debug.Logf("loaded %s: %d stones, tags %v\n", lOpts.name, b.tree.Len(), tags.Tags())
	}
	return b.tree, tags, nil
}

// LoadReader reads r to EOF and loads it.
func LoadReader(r io.Reader, opts ...Option) (*stone.Tree, stone.TagIndex, error) {
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: error reading: %w", ErrLoad, err)
	}
	return Load(d, opts...)
}

// LoadFile loads the document at path.
func LoadFile(path string, opts ...Option) (*stone.Tree, stone.TagIndex, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrLoad, err)
	}
	return Load(d, append([]Option{Name(path)}, opts...)...)
}

type builder struct {
	opts    *loadOpts
	tree    *stone.Tree
	anchors map[string]ast.Node
}

// top adds the entries of a document body as roots.
func (b *builder) top(n ast.Node) error {
	n, tag, err := b.unwrap(n, 0)
	if err != nil {
		return err
	}
	if tag == "" {
		switch x := n.(type) {
		case *ast.SequenceNode:
			for _, v := range x.Values {
				if err := b.add(-1, "", v, 1); err != nil {
					return err
				}
			}
			return nil
		case *ast.MappingNode, *ast.MappingValueNode:
			return b.entries(-1, n, 1)
		}
	}
	return b.addUnwrapped(-1, "", tag, n, 1)
}

func (b *builder) add(parent int, name string, n ast.Node, depth int) error {
	n, tag, err := b.unwrap(n, depth)
	if err != nil {
		return err
	}
	return b.addUnwrapped(parent, name, tag, n, depth)
}

func (b *builder) addUnwrapped(parent int, name, tag string, n ast.Node, depth int) error {
	if depth > b.opts.maxDepth {
		return fmt.Errorf("line %d: document nested deeper than %d", line(n), b.opts.maxDepth)
	}
	if b.tree.Len() >= b.opts.maxStones {
		return fmt.Errorf("line %d: document expands to more than %d stones", line(n), b.opts.maxStones)
	}
	if err := stone.CheckTag(tag); err != nil {
		return fmt.Errorf("line %d: %w", line(n), err)
	}
	s := &stone.Stone{Tag: tag, Name: name, Line: line(n)}
	switch x := n.(type) {
	case nil, *ast.NullNode:
		return b.scalar(parent, s, "")
	case *ast.MappingNode, *ast.MappingValueNode:
		s.Kind = stone.MapKind
		i := b.tree.Add(parent, s)
		return b.entries(i, x, depth+1)
	case *ast.SequenceNode:
		s.Kind = stone.SeqKind
		i := b.tree.Add(parent, s)
		for _, v := range x.Values {
			if err := b.add(i, "", v, depth+1); err != nil {
				return err
			}
		}
		return nil
	case *ast.StringNode:
		return b.scalar(parent, s, x.Value)
	case *ast.LiteralNode:
		v := ""
		if x.Value != nil {
			v = x.Value.Value
		}
		return b.scalar(parent, s, v)
	default:
		tk := n.GetToken()
		if tk == nil {
			return fmt.Errorf("line %d: unsupported node %s", line(n), n.Type())
		}
		return b.scalar(parent, s, tk.Value)
	}
}

func (b *builder) scalar(parent int, s *stone.Stone, v string) error {
	s.Kind = stone.ScalarKind
	s.Value = v
	b.tree.Add(parent, s)
	return nil
}

// entries adds the key/value pairs of a mapping under parent.
func (b *builder) entries(parent int, n ast.Node, depth int) error {
	var mvs []*ast.MappingValueNode
	switch x := n.(type) {
	case *ast.MappingNode:
		mvs = x.Values
	case *ast.MappingValueNode:
		mvs = []*ast.MappingValueNode{x}
	}
	for _, mv := range mvs {
		key := keyString(mv.Key)
		if key == "<<" {
			if err := b.merge(parent, mv.Value, depth); err != nil {
				return err
			}
			continue
		}
		if err := b.add(parent, key, mv.Value, depth); err != nil {
			return err
		}
	}
	return nil
}

// merge inlines the entries of the mapping (or sequence of mappings)
// referenced by a `<<` key.
func (b *builder) merge(parent int, n ast.Node, depth int) error {
	n, _, err := b.unwrap(n, depth)
	if err != nil {
		return err
	}
	switch x := n.(type) {
	case *ast.MappingNode, *ast.MappingValueNode:
		return b.entries(parent, x, depth)
	case *ast.SequenceNode:
		for _, v := range x.Values {
			if err := b.merge(parent, v, depth+1); err != nil {
				return err
			}
		}
		return nil
	}
	return fmt.Errorf("line %d: merge key value is not a mapping", line(n))
}

// unwrap strips tag, anchor and alias wrappers, returning the value node
// and the innermost tag.
func (b *builder) unwrap(n ast.Node, depth int) (ast.Node, string, error) {
	tag := ""
	for i := 0; ; i++ {
		if depth+i > b.opts.maxDepth {
			return nil, "", fmt.Errorf("line %d: alias expansion deeper than %d", line(n), b.opts.maxDepth)
		}
		switch x := n.(type) {
		case *ast.TagNode:
			if tag == "" && x.Start != nil {
				tag = x.Start.Value
			}
			n = x.Value
		case *ast.AnchorNode:
			if x.Name != nil && x.Name.GetToken() != nil {
				b.anchors[x.Name.GetToken().Value] = x.Value
			}
			n = x.Value
		case *ast.AliasNode:
			name := ""
			if x.Value != nil && x.Value.GetToken() != nil {
				name = x.Value.GetToken().Value
			}
			v, ok := b.anchors[name]
			if !ok {
				return nil, "", fmt.Errorf("line %d: unknown alias %q", line(x), name)
			}
			n = v
		default:
			return n, tag, nil
		}
	}
}

func keyString(k ast.Node) string {
	switch x := k.(type) {
	case nil:
		return ""
	case *ast.StringNode:
		return x.Value
	}
	if tk := k.GetToken(); tk != nil {
		return tk.Value
	}
	return k.String()
}

func line(n ast.Node) int {
	if n == nil {
		return 0
	}
	tk := n.GetToken()
	if tk == nil || tk.Position == nil {
		return 0
	}
	return tk.Position.Line
}
