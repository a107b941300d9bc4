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
			Name:        "I",
			Aliases:     []string{"ifmt"},
			Description: "input format: human/h, llm/l, machine/m, json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.InFormat), "(format)"),
		}, &cli.Opt{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: human/h, llm/l, machine/m, json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "dx").
		WithSynopsis("dx [opts] command [opts]").
		WithDescription("dx converts documents between the human, llm and machine formats.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return dxMain(cfg, cc, args)
		}).
		WithSubs(
			ConvertCommand(cfg),
			ViewCommand(cfg),
			CheckCommand(cfg),
			DiffCommand(cfg),
			TokensCommand(cfg),
			SelectCommand(cfg),
			ImportCommand(cfg),
			ExportCommand(cfg))
}

func ConvertCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ConvertConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Convert, "convert").
		WithAliases("c", "conv").
		WithSynopsis("convert [-j workers] [-w] [files]").
		WithDescription("convert documents to the output format (default llm)").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return convertFiles(cfg, cc, args)
		})
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.View, "view").
		WithAliases("v").
		WithSynopsis("view [files]").
		WithDescription("view documents in the human format, in color on a terminal").
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
}

func CheckCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CheckConfig{MainConfig: mainCfg, Context: 3}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Check, "check").
		WithAliases("ck").
		WithSynopsis("check [-canon] [-U n] [files]").
		WithDescription("check that documents survive every format round trip").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return check(cfg, cc, args)
		})
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Diff, "diff").
		WithAliases("d", "di").
		WithSynopsis("diff a b").
		WithDescription("list the key paths at which two documents differ").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
}

func TokensCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &TokensConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Tokens, "tokens").
		WithAliases("t", "tok").
		WithSynopsis("tokens [-m model] [files]").
		WithDescription("estimate tokens of the human and llm renderings").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return tokenReport(cfg, cc, args)
		})
}

func SelectCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SelectConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Select, "select").
		WithAliases("s", "sel").
		WithSynopsis("select [-c col,col] <tablepath> <expr> [files]").
		WithDescription("print the rows of a table matching an expression").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return selectRows(cfg, cc, args)
		})
}

func ImportCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &BridgeConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("import").
		WithAliases("imp").
		WithSynopsis("import [files]").
		WithDescription("import json or yaml documents (default output human)").
		WithRun(func(cc *cli.Context, args []string) error {
			return importFiles(cfg, cc, args)
		})
	cfg.Bridge = cmd
	return cmd
}

func ExportCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &BridgeConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("export").
		WithAliases("exp").
		WithSynopsis("export [-indent n] [files]").
		WithDescription("export documents as json or yaml (default json); tables become arrays of objects").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return exportFiles(cfg, cc, args)
		})
	cfg.Bridge = cmd
	return cmd
}

type ConvertConfig struct {
	*MainConfig
	Workers int  `cli:"name=j desc='parallel workers when converting many files'"`
	Write   bool `cli:"name=w desc='write each result next to its input with the output suffix'"`

	Convert *cli.Command
}

type ViewConfig struct {
	*MainConfig
	View *cli.Command
}

type CheckConfig struct {
	*MainConfig
	Canonical bool `cli:"name=canon desc='require human inputs to be in canonical form'"`
	Context   int  `cli:"name=U desc='lines of context around diff hunks'"`

	Check *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Diff *cli.Command
}

type TokensConfig struct {
	*MainConfig
	Model string `cli:"name=m desc='model: gpt-4o, claude, gemini, llama or other (default all)'"`

	Tokens *cli.Command
}

type SelectConfig struct {
	*MainConfig
	Columns string `cli:"name=c desc='comma separated columns to keep'"`

	Select *cli.Command
}

type BridgeConfig struct {
	*MainConfig
	Indent int `cli:"name=indent desc='indent width of exported text'"`

	Bridge *cli.Command
}
