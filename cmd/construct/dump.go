package main

import (
	"fmt"
	"io"

	"github.com/signadot/construct"
	"github.com/signadot/construct/encode"
	"github.com/signadot/construct/load"
	"github.com/signadot/construct/stone"

	"github.com/scott-cotton/cli"
)

func dump(cfg *DumpConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Dump.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	opts := append(cfg.encOpts(cc.Out), encode.Indices(cfg.Indices))
	if cfg.Indent > 0 {
		opts = append(opts, encode.Indent(cfg.Indent))
	}
	for i, file := range args {
		t, err := buildTree(cc.In, file, cfg.Raw)
		if err != nil {
			return err
		}
		if err := encode.Encode(t, cc.Out, opts...); err != nil {
			return fmt.Errorf("error encoding %s: %w", file, err)
		}
		if i < len(args)-1 {
			if _, err := io.WriteString(cc.Out, "---\n"); err != nil {
				return err
			}
		}
	}
	return nil
}

// buildTree loads file, or in when file is "-", and processes it unless
// raw is set.
func buildTree(in io.Reader, file string, raw bool) (*stone.Tree, error) {
	if file == "-" {
		if raw {
			t, _, err := load.LoadReader(in, load.Name("<stdin>"))
			return t, err
		}
		c, err := construct.Build(in, construct.Name("<stdin>"))
		if err != nil {
			return nil, err
		}
		return c.Tree, nil
	}
	if raw {
		t, _, err := load.LoadFile(file)
		return t, err
	}
	c, err := construct.Open(file)
	if err != nil {
		return nil, err
	}
	return c.Tree, nil
}
