package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: xml/x, yaml/y, json/j",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "construct").
		WithSynopsis("construct [opts] command [opts]").
		WithDescription("construct builds and shows tagged scene documents.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return constructMain(cfg, cc, args)
		}).
		WithSubs(
			ViewCommand(cfg),
			DumpCommand(cfg),
			DiffCommand(cfg),
			InfoCommand(cfg))
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("view").
		WithAliases("v").
		WithOpts(opts...).
		WithSynopsis("view [opts] file").
		WithDescription("render a document in the terminal, or offscreen with -headless").
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
	cfg.View = cmd
	return cmd
}

func DumpCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DumpConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("dump").
		WithAliases("du").
		WithOpts(opts...).
		WithSynopsis("dump [opts] [files]").
		WithDescription("print the stone tree of documents after processing").
		WithRun(func(cc *cli.Context, args []string) error {
			return dump(cfg, cc, args)
		})
	cfg.Dump = cmd
	return cmd
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("diff").
		WithAliases("d", "di").
		WithOpts(opts...).
		WithSynopsis("diff a b").
		WithDescription("diff the processed trees of two documents").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}

func InfoCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &InfoConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Info, "info").
		WithAliases("i").
		WithSynopsis("info file").
		WithDescription("show the definitions collected from a document").
		WithRun(func(cc *cli.Context, args []string) error {
			return info(cfg, cc, args)
		})
}
