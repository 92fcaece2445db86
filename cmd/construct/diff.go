package main

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/signadot/construct/encode"

	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	var texts [2]string
	for i, file := range args {
		t, err := buildTree(cc.In, file, cfg.Raw)
		if err != nil {
			return fmt.Errorf("error building %s: %w", file, err)
		}
		buf := bytes.NewBuffer(nil)
		if err := encode.Encode(t, buf, encode.EncodeFormat(encode.YAMLFormat)); err != nil {
			return err
		}
		texts[i] = buf.String()
	}
	diffs := lineDiff(texts[0], texts[1])
	if !differs(diffs) {
		return nil
	}
	if err := writeDiff(cc.Out, diffs, cfg.colorOut(cc.Out)); err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}

func lineDiff(a, b string) []diffmatchpatch.Diff {
	dmp := diffmatchpatch.New()
	ca, cb, lines := dmp.DiffLinesToChars(a, b)
	return dmp.DiffCharsToLines(dmp.DiffMain(ca, cb, false), lines)
}

func differs(diffs []diffmatchpatch.Diff) bool {
	for _, d := range diffs {
		if d.Type != diffmatchpatch.DiffEqual {
			return true
		}
	}
	return false
}

func writeDiff(w io.Writer, diffs []diffmatchpatch.Diff, colored bool) error {
	add, del := color.New(color.FgGreen), color.New(color.FgRed)
	if colored {
		add.EnableColor()
		del.EnableColor()
	} else {
		add.DisableColor()
		del.DisableColor()
	}
	for _, d := range diffs {
		prefix, c := "  ", (*color.Color)(nil)
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			prefix, c = "+ ", add
		case diffmatchpatch.DiffDelete:
			prefix, c = "- ", del
		}
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			s := prefix + strings.TrimSuffix(line, "\n")
			if c != nil {
				s = c.Sprint(s)
			}
			if _, err := fmt.Fprintln(w, s); err != nil {
				return err
			}
		}
	}
	return nil
}
