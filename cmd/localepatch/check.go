package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/Codeislaw2049/CryptoKey/localepatch"
	"github.com/Codeislaw2049/CryptoKey/localepatch/catalog"
	"github.com/Codeislaw2049/CryptoKey/localepatch/ir"
	"github.com/Codeislaw2049/CryptoKey/localepatch/localedir"

	"github.com/scott-cotton/cli"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
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
	resolver, err := catalog.NewResolver(tab)
	if err != nil {
		return err
	}
	opts := &localedir.Options{
		DryRun: true,
		Indent: cfg.Indent,
		Filter: filter,
		Known:  tab.Has,
		Progress: func(r *localedir.Result) {
			if r.Status == localedir.Skipped {
				return
			}
			fmt.Fprintln(cc.Out, checkLine(r, tab))
			if r.Status == localedir.Failed {
				return
			}
			writeResolved(cc.Out, resolver, r.Lang)
		},
	}
	rep, err := localedir.Run(cfg.ctx, root, opts, func(loc localedir.Locale, doc *ir.Node) (bool, error) {
		patches, _ := tab.Patches(loc.Lang)
		want, err := localepatch.Expected(patches)
		if err != nil {
			return false, err
		}
		if localepatch.Match(doc, want) {
			return false, nil
		}
		return localepatch.ApplyAll(doc, patches)
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(cc.Out, "%d up to date, %d need apply, %d failed\n",
		rep.Count(localedir.Unchanged), rep.Count(localedir.Updated), rep.Count(localedir.Failed))
	return nil
}

func checkLine(r *localedir.Result, tab *catalog.Table) string {
	var s string
	switch r.Status {
	case localedir.Unchanged:
		s = r.Lang + ": up to date"
	case localedir.Updated:
		s = r.Lang + ": needs apply"
	default:
		return fmt.Sprintf("Error checking %s: %v", r.Lang, r.Err)
	}
	if !tab.Has(r.Lang) {
		s += " (not in table, default text)"
	}
	return s
}

func writeResolved(w io.Writer, resolver *catalog.Resolver, lang string) {
	res, err := resolver.Resolve(lang)
	if err != nil {
		fmt.Fprintf(w, "  %v\n", err)
		return
	}
	for _, x := range res {
		note := ""
		if x.Fallback {
			note = ", fallback"
		}
		fmt.Fprintf(w, "  %s = %s (%s%s)\n", x.Key, strconv.Quote(x.Value), x.Tag, note)
	}
}
