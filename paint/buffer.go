package paint

import (
	"image"
	"image/color"
)

// Buffer is a row major pixel buffer.
type Buffer struct {
	W, H int
	Pix  []Color
}

func NewBuffer(w, h int) *Buffer {
	b := &Buffer{}
	b.Resize(w, h)
	return b
}

// Resize reallocates the buffer to w x h, cleared to opaque black.
func (b *Buffer) Resize(w, h int) {
	w, h = max(w, 0), max(h, 0)
	b.W, b.H = w, h
	if cap(b.Pix) >= w*h {
		b.Pix = b.Pix[:w*h]
	} else {
		b.Pix = make([]Color, w*h)
	}
	b.Fill(Black)
}

func (b *Buffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.W, b.H)
}

func (b *Buffer) At(x, y int) Color {
	if x < 0 || y < 0 || x >= b.W || y >= b.H {
		return Transparent
	}
	return b.Pix[y*b.W+x]
}

func (b *Buffer) Fill(c Color) {
	for i := range b.Pix {
		b.Pix[i] = c
	}
}

// FillRect composites c over the part of r inside the buffer.
func (b *Buffer) FillRect(r image.Rectangle, c Color) {
	r = r.Intersect(b.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		row := b.Pix[y*b.W : (y+1)*b.W]
		for x := r.Min.X; x < r.Max.X; x++ {
			row[x] = over(c, row[x])
		}
	}
}

// StrokeRect draws a border of width w inside r.
func (b *Buffer) StrokeRect(r image.Rectangle, w int, c Color) {
	if w <= 0 || r.Empty() {
		return
	}
	if 2*w >= r.Dx() || 2*w >= r.Dy() {
		b.FillRect(r, c)
		return
	}
	b.FillRect(image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+w), c)
	b.FillRect(image.Rect(r.Min.X, r.Max.Y-w, r.Max.X, r.Max.Y), c)
	b.FillRect(image.Rect(r.Min.X, r.Min.Y+w, r.Min.X+w, r.Max.Y-w), c)
	b.FillRect(image.Rect(r.Max.X-w, r.Min.Y+w, r.Max.X, r.Max.Y-w), c)
}

// Image copies the buffer into an image.
func (b *Buffer) Image() *image.NRGBA {
	img := image.NewNRGBA(b.Bounds())
	for y := 0; y < b.H; y++ {
		for x := 0; x < b.W; x++ {
			c := b.Pix[y*b.W+x]
			img.SetNRGBA(x, y, color.NRGBA{R: c[0], G: c[1], B: c[2], A: c[3]})
		}
	}
	return img
}
