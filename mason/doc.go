// Package mason holds the passes which interpret tagged stones.
//
// A [Mason] looks up the stones carrying the tags it owns in a
// [stone.TagIndex], records whatever it learns from them and returns the
// set of stone indices it consumed. Masons never remove stones
// themselves: the caller takes the union of all returned sets and applies
// it to the tree in one go, so that every pass sees the same indices.
//
// [Pipeline] is the orchestrator. It runs, in order,
//
//   - [Import]: !import, replaced by the processed content of other files
//   - [Settings]: !control key bindings and any remaining !meta
//   - [Color]: !color palette entries
//   - [Style]: !style named styles
//
// and accumulates their results in a single pipeline value which the
// painter and the frame loop read from afterwards.
package mason
