package stone

import "strconv"

// Value returns the subtree at i as plain Go values: scalars are strings,
// maps are map[string]any keyed by child name and sequences are []any.
// Absent stones yield nil.
func (t *Tree) Value(i int) any {
	s := t.Get(i)
	if s == nil {
		return nil
	}
	switch s.Kind {
	case MapKind:
		m := make(map[string]any, len(s.Children))
		for j, c := range s.Children {
			cs := t.Get(c)
			if cs == nil {
				continue
			}
			name := cs.Name
			if name == "" {
				name = strconv.Itoa(j)
			}
			m[name] = t.Value(c)
		}
		return m
	case SeqKind:
		res := make([]any, 0, len(s.Children))
		for _, c := range s.Children {
			if t.Present(c) {
				res = append(res, t.Value(c))
			}
		}
		return res
	default:
		return s.Value
	}
}

// Strings returns the scalar values of the stone at i: the value itself
// for a scalar, or the scalar children in order for a sequence or map.
func (t *Tree) Strings(i int) []string {
	s := t.Get(i)
	if s == nil {
		return nil
	}
	if s.Kind == ScalarKind {
		return []string{s.Value}
	}
	var res []string
	for _, c := range s.Children {
		if cs := t.Get(c); cs != nil && cs.Kind == ScalarKind {
			res = append(res, cs.Value)
		}
	}
	return res
}
