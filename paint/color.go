package paint

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

var ErrBadColor = errors.New("bad color")

// Color is a non premultiplied RGBA color.
type Color [4]uint8

var (
	Black       = Color{0, 0, 0, 255}
	Transparent = Color{}
)

func (c Color) String() string {
	if c[3] == 255 {
		return fmt.Sprintf("#%02x%02x%02x", c[0], c[1], c[2])
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c[0], c[1], c[2], c[3])
}

// ParseColor parses #rgb, #rrggbb and #rrggbbaa.
func ParseColor(v string) (Color, error) {
	v = strings.TrimSpace(v)
	if !strings.HasPrefix(v, "#") {
		return Color{}, fmt.Errorf("%w: %q", ErrBadColor, v)
	}
	alpha := uint64(255)
	switch len(v) {
	case 4, 7:
	case 9:
		a, err := strconv.ParseUint(v[7:], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("%w: %q: %w", ErrBadColor, v, err)
		}
		alpha = a
		v = v[:7]
	default:
		return Color{}, fmt.Errorf("%w: %q", ErrBadColor, v)
	}
	c, err := colorful.Hex(v)
	if err != nil {
		return Color{}, fmt.Errorf("%w: %w", ErrBadColor, err)
	}
	r, g, b := c.RGB255()
	return Color{r, g, b, uint8(alpha)}, nil
}

// Palette maps color names to colors.
type Palette map[string]Color

// Resolve looks v up by name, falling back to parsing it as a color.
func (p Palette) Resolve(v string) (Color, error) {
	if c, ok := p[v]; ok {
		return c, nil
	}
	return ParseColor(v)
}

// over composites src over dst.
func over(src, dst Color) Color {
	sa := uint32(src[3])
	if sa == 255 {
		return src
	}
	if sa == 0 {
		return dst
	}
	da := uint32(dst[3]) * (255 - sa) / 255
	oa := sa + da
	var res Color
	for i := 0; i < 3; i++ {
		res[i] = uint8((uint32(src[i])*sa + uint32(dst[i])*da) / oa)
	}
	res[3] = uint8(oa)
	return res
}
