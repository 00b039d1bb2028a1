package main

import (
	"fmt"

	"github.com/Codeislaw2049/CryptoKey/localepatch"
	"github.com/Codeislaw2049/CryptoKey/localepatch/ir"
	"github.com/Codeislaw2049/CryptoKey/localepatch/localedir"

	"github.com/scott-cotton/cli"
)

func apply(cfg *ApplyConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Apply.Parse(cc, args)
	if err != nil {
		return err
	}
	root, err := cfg.localesDir(args)
	if err != nil {
		return err
	}
	tab, err := loadTable(cfg.Table)
	if err != nil {
		return err
	}
	filter, err := compileWhere(cfg.Where)
	if err != nil {
		return err
	}
	opts := &localedir.Options{
		DryRun:   cfg.DryRun,
		Diff:     cfg.Verbose,
		Colors:   cfg.diffColors(cc.Out),
		Indent:   cfg.Indent,
		Filter:   filter,
		Known:    tab.Has,
		Allowed:  tab.Paths(),
		Progress: cfg.progress(cc.Out, resultLine),
	}
	rep, err := localedir.Run(cfg.ctx, root, opts, func(loc localedir.Locale, doc *ir.Node) (bool, error) {
		patches, _ := tab.Patches(loc.Lang)
		return localepatch.ApplyAll(doc, patches)
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(cc.Out, "Done updating translations: %s.\n", rep.Summary())
	return nil
}
