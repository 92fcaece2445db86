// Package load turns construct documents into stone trees.
//
// Documents are YAML. Tags written on values become stone tags:
//
//   - !meta {title: demo}
//   - bg: !color "#101018"
//   - !style(box) {fill: bg}
//   - !rect {x: 1, y: 1, w: 50%, h: "height - 2", style: box}
//
// Top level sequence items and top level mapping entries become the roots
// of the tree. Multiple YAML documents in one stream are concatenated.
// Anchors and aliases are expanded, and `<<` merge keys are inlined.
package load
