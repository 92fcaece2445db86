package main

import (
	"fmt"
	"maps"
	"slices"
	"strconv"

	"github.com/goccy/go-yaml"
	"github.com/signadot/construct"
	"github.com/signadot/construct/paint"

	"github.com/scott-cotton/cli"
)

func info(cfg *InfoConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Info.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: info requires 1 file, got %v", cli.ErrUsage, args)
	}
	c, err := construct.Open(args[0])
	if err != nil {
		return err
	}
	d, err := yaml.Marshal(infoDoc(c))
	if err != nil {
		return err
	}
	_, err = cc.Out.Write(d)
	return err
}

func infoDoc(c *construct.Construct) yaml.MapSlice {
	p := c.Pipeline
	colors := yaml.MapSlice{}
	for _, n := range slices.Sorted(maps.Keys(p.Palette())) {
		colors = append(colors, yaml.MapItem{Key: n, Value: p.Palette()[n].String()})
	}
	styles := yaml.MapSlice{}
	for _, n := range slices.Sorted(maps.Keys(p.Styles())) {
		styles = append(styles, yaml.MapItem{Key: n, Value: styleDoc(p.Styles()[n])})
	}
	keys := yaml.MapSlice{}
	bindings := p.Control().Bindings()
	for _, seq := range p.Control().Sequences() {
		keys = append(keys, yaml.MapItem{Key: seq, Value: bindings[seq]})
	}
	return yaml.MapSlice{
		{Key: "file", Value: c.Path},
		{Key: "title", Value: p.Title()},
		{Key: "background", Value: p.Settings.Background},
		{Key: "stones", Value: c.Tree.Count()},
		{Key: "roots", Value: len(c.Tree.Roots())},
		{Key: "colors", Value: colors},
		{Key: "styles", Value: styles},
		{Key: "keys", Value: keys},
		{Key: "files", Value: c.Files()},
	}
}

func styleDoc(st paint.Style) yaml.MapSlice {
	res := yaml.MapSlice{}
	add := func(k, v string) {
		if v != "" {
			res = append(res, yaml.MapItem{Key: k, Value: v})
		}
	}
	add("fill", st.Fill)
	add("stroke", st.Stroke)
	if st.StrokeWidth != 0 {
		add("stroke_width", strconv.Itoa(st.StrokeWidth))
	}
	add("inherit", st.Inherit)
	return res
}
