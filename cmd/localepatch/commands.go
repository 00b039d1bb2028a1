package main

import (
	"context"

	"github.com/scott-cotton/cli"
)

func MainCommand(ctx context.Context) *cli.Command {
	cfg := &MainConfig{ctx: ctx}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Main, "localepatch").
		WithSynopsis("localepatch [opts] command [opts]").
		WithDescription("localepatch edits the translation.json catalogs of a locales directory.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return localepatchMain(cfg, cc, args)
		}).
		WithSubs(
			ApplyCommand(cfg),
			SyncCommand(cfg),
			CheckCommand(cfg),
			TableCommand(cfg))
}

func ApplyCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ApplyConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Apply, "apply").
		WithAliases("a", "ap").
		WithSynopsis("apply [-n] [-v] [-table file] [-where expr] [dir]").
		WithDescription("set the keys of the translation table in every locale catalog").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return apply(cfg, cc, args)
		})
}

func SyncCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SyncConfig{MainConfig: mainCfg, Source: "en"}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Sync, "sync").
		WithAliases("s").
		WithSynopsis("sync [-n] [-v] [-source lang] [-where expr] [dir]").
		WithDescription("copy keys missing from each catalog from the source language").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return syncLocales(cfg, cc, args)
		})
}

func CheckCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CheckConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Check, "check").
		WithAliases("c").
		WithSynopsis("check [-table file] [-where expr] [dir]").
		WithDescription("report which catalogs need apply, and the text each would show").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return check(cfg, cc, args)
		})
}

func TableCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &TableConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.TableCmd, "table").
		WithAliases("t").
		WithSynopsis("table [-table file] [-json] [-lang lang]").
		WithDescription("print the translation table in effect").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return showTable(cfg, cc, args)
		})
}
