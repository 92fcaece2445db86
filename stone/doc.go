// Package stone provides the tree of tagged nodes ("stones") that a
// construct document is loaded into.
//
// # Overview
//
// A Tree is an arena of stones addressed by integer index. The top level
// items of a document are the roots of the tree; there is no synthetic root
// stone. Each stone carries the raw tag it was written with (for example
// `!color(bg)`), the mapping key it appeared under, a scalar value and
// structural links to its parent and children.
//
// # Removal and compaction
//
// Stones are removed in two steps. Remove marks a slot absent and never
// fails: removing an absent or out of range index does nothing. Clean then
// drops every absent slot and renumbers the survivors densely, keeping
// their relative order. Survivors whose parent was removed take the removed
// parent's place among its siblings.
//
// Every index held across a call to Clean is invalid afterwards. Callers
// that need to detect this use a Ref, which records the tree generation:
//
//	r := t.Ref(i)
//	t.Remove(j)
//	t.Clean()
//	if _, err := t.Resolve(r); errors.Is(err, stone.ErrStaleRef) {
//	    // i no longer names the same stone
//	}
//
// # Tag index
//
// Index builds a TagIndex, mapping a tag head name (`color` for
// `!color(bg)`) to the indices of the stones carrying it in document order.
// A tag missing from the index means there are no stones of that kind.
package stone
