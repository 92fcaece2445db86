package encode

import (
	"fmt"

	"github.com/fatih/color"
)

type ColorAttr int

const (
	ElemColor ColorAttr = iota
	TagElemColor
	AttrColor
	AttrValueColor
	TextColor
	SepColor
)

type Colors struct {
	Default func(...any) string
	Map     map[ColorAttr]func(...any) string
}

func NewColors() *Colors {
	return &Colors{
		Default: colorDefault,
		Map: map[ColorAttr]func(...any) string{
			ElemColor:      color.RGB(128, 168, 196).SprintFunc(),
			TagElemColor:   color.RGB(196, 96, 16).SprintFunc(),
			AttrColor:      color.RGB(74, 92, 138).SprintFunc(),
			AttrValueColor: color.RGB(128, 216, 236).SprintFunc(),
			TextColor:      color.RGB(8, 196, 16).SprintFunc(),
			SepColor:       color.RGB(255, 0, 196).SprintFunc(),
		},
	}
}

func colorDefault(v ...any) string { return fmt.Sprint(v...) }

func (c *Colors) Color(a ColorAttr, s string) string {
	if c == nil {
		return s
	}
	f := c.Map[a]
	if f == nil {
		return c.Default(s)
	}
	return f(s)
}
