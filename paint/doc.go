// Package paint holds the pixel buffer, colors and the reference painter
// that renders a normalized stone tree.
//
// The painter understands two tags. `!fill <color>` fills the current
// frame. `!rect` maps draw a rectangle and open a new frame for their
// children:
//
//	!rect
//	x: 2          # pixels from the parent frame's origin
//	y: 10%        # percent of the parent frame
//	w: width - 4  # expression over width and height of the parent frame
//	h: height / 2
//	fill: bg      # palette name or #rrggbb[aa]
//	stroke: fg
//	stroke_width: 1
//	style: box    # fills in any of fill, stroke, stroke_width left unset
//
// Untagged maps and sequences are walked, everything else is ignored.
package paint
