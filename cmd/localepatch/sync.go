package main

import (
	"fmt"
	"os"

	"github.com/Codeislaw2049/CryptoKey/localepatch"
	"github.com/Codeislaw2049/CryptoKey/localepatch/ir"
	"github.com/Codeislaw2049/CryptoKey/localepatch/localedir"
	"github.com/Codeislaw2049/CryptoKey/localepatch/parse"

	"github.com/scott-cotton/cli"
)

func syncLocales(cfg *SyncConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Sync.Parse(cc, args)
	if err != nil {
		return err
	}
	root, err := cfg.localesDir(args)
	if err != nil {
		return err
	}
	filter, err := compileWhere(cfg.Where)
	if err != nil {
		return err
	}
	locs, err := localedir.Discover(root)
	if err != nil {
		return err
	}
	src, ok := localedir.Find(locs, cfg.Source)
	if !ok || src.Missing {
		return fmt.Errorf("source language file not found for %q in %s", cfg.Source, root)
	}
	d, err := os.ReadFile(src.Path)
	if err != nil {
		return fmt.Errorf("%w: %w", localedir.ErrRead, err)
	}
	srcDoc, err := parse.Parse(d)
	if err != nil {
		return fmt.Errorf("could not decode %s: %w", src.Path, err)
	}
	fmt.Fprintf(cc.Out, "Syncing from %s to %d other languages...\n", cfg.Source, len(locs)-1)
	opts := &localedir.Options{
		DryRun:   cfg.DryRun,
		Diff:     cfg.Verbose,
		Colors:   cfg.diffColors(cc.Out),
		Indent:   cfg.Indent,
		Create:   true,
		Filter:   filter,
		Only:     func(loc localedir.Locale) bool { return loc.Lang != cfg.Source },
		Progress: cfg.progress(cc.Out, syncLine),
	}
	rep, err := localedir.Run(cfg.ctx, root, opts, func(_ localedir.Locale, doc *ir.Node) (bool, error) {
		return localepatch.Merge(doc, srcDoc)
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(cc.Out, "Sync complete: %s.\n", rep.Summary())
	return nil
}

func syncLine(r *localedir.Result) string {
	switch r.Status {
	case localedir.Unchanged:
		return "No changes needed for " + r.Lang
	case localedir.Created:
		return "Created new file for " + r.Lang
	}
	return r.String()
}
