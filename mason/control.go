package mason

import (
	"maps"
	"slices"

	"github.com/signadot/construct/debug"
	"github.com/signadot/construct/keys"
	"github.com/signadot/construct/stone"
)

// Control holds the key bindings declared by !control stones:
//
//	ui: !control
//	  keys:
//	    q: quit
//	    "g g": [reload, key_info]
//
// A binding maps a key sequence to a list of action names. Sequences
// sharing a prefix are resolved one key at a time by HandleKey.
type Control struct {
	root     *keyNode
	cur      *keyNode
	bindings map[string][]string
}

type keyNode struct {
	next    map[keys.Key]*keyNode
	actions []string
}

func NewControl() *Control {
	c := &Control{}
	c.Reset()
	return c
}

// Reset drops all bindings.
func (c *Control) Reset() {
	c.root = &keyNode{}
	c.cur = c.root
	c.bindings = map[string][]string{}
}

func (c *Control) Process(t *stone.Tree, tags stone.TagIndex) (stone.Set, error) {
	res := stone.Set{}
	for _, i := range tags.Get("control") {
		s := t.Get(i)
		if s == nil {
			continue
		}
		consume(t, res, i)
		_, ks := t.Child(i, "keys")
		if ks == nil {
			skip("control", s, "no keys")
			continue
		}
		for _, b := range ks.Children {
			bs := t.Get(b)
			if bs == nil {
				continue
			}
			if err := c.Bind(bs.Name, t.Strings(b)...); err != nil {
				skip("control", bs, "%v", err)
			}
		}
	}
	return res, nil
}

// Bind binds the key sequence seq to actions, replacing any previous
// binding of the same sequence.
func (c *Control) Bind(seq string, actions ...string) error {
	ks, err := keys.ParseSeq(seq)
	if err != nil {
		return err
	}
	n := c.root
	for _, k := range ks {
		if n.next == nil {
			n.next = map[keys.Key]*keyNode{}
		}
		nn := n.next[k]
		if nn == nil {
			nn = &keyNode{}
			n.next[k] = nn
		}
		n = nn
	}
	n.actions = slices.Clone(actions)
	c.bindings[keys.SeqString(ks)] = n.actions
	c.cur = c.root
	return nil
}

// HandleKey advances the pending key sequence by k and returns the
// actions of any binding it completes. A key which extends no pending
// sequence fires the pending prefix's own actions, if any, and is then
// tried afresh.
func (c *Control) HandleKey(k keys.Key) []string {
	if n, ok := c.cur.next[k]; ok {
		if len(n.next) == 0 {
			c.cur = c.root
			return c.fire(n.actions)
		}
		c.cur = n
		return nil
	}
	if c.cur == c.root {
		if debug.Keys() {
			debug.Logf("key %q: unbound\n", k)
		}
		return nil
	}
	pending := c.cur.actions
	c.cur = c.root
	return append(c.fire(pending), c.HandleKey(k)...)
}

func (c *Control) fire(actions []string) []string {
	if debug.Keys() && len(actions) > 0 {
		debug.Logf("keys: %v\n", actions)
	}
	return slices.Clone(actions)
}

// Bindings returns a copy of the binding table keyed by canonical
// sequence.
func (c *Control) Bindings() map[string][]string {
	res := make(map[string][]string, len(c.bindings))
	for seq, acts := range c.bindings {
		res[seq] = slices.Clone(acts)
	}
	return res
}

// Sequences returns the bound sequences in sorted order.
func (c *Control) Sequences() []string {
	return slices.Sorted(maps.Keys(c.bindings))
}
