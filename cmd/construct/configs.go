package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/construct/encode"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='encode with color'"`

	OutFormat *encode.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**encode.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := encode.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

// colorOut reports whether output to w should be colored: -color when
// given, otherwise whether w is a terminal.
func (cfg *MainConfig) colorOut(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	for _, opt := range cfg.Main.Opts {
		if opt.Name == "color" && opt.Value != nil {
			return false
		}
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	fmat := encode.XMLFormat
	if cfg.OutFormat != nil {
		fmat = *cfg.OutFormat
	}
	res := []encode.EncodeOption{encode.EncodeFormat(fmat)}
	if cfg.colorOut(w) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

type ViewConfig struct {
	*MainConfig

	Watch    bool   `cli:"name=watch aliases=w desc='reload when the document or its imports change'"`
	Backend  string `cli:"name=backend desc='surface: terminal, headless or gpu'"`
	Headless bool   `cli:"name=headless desc='render offscreen'"`
	PNG      string `cli:"name=png desc='write the last frame to a png file (implies -headless)'"`
	Size     string `cli:"name=size desc='headless frame size WxH'"`
	Patch    string `cli:"name=patch desc='json patch file applied to the settings'"`
	Gops     bool   `cli:"name=gops desc='start a gops agent'"`

	View *cli.Command
}

type DumpConfig struct {
	*MainConfig

	Raw     bool `cli:"name=raw desc='dump the tree as loaded, before processing'"`
	Indices bool `cli:"name=i desc='include stone indices'"`
	Indent  int  `cli:"name=indent desc='indentation width (default 2)'"`

	Dump *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Raw bool `cli:"name=raw desc='diff the trees as loaded, before processing'"`

	Diff *cli.Command
}

type InfoConfig struct {
	*MainConfig

	Info *cli.Command
}
