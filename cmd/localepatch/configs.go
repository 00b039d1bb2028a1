package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/Codeislaw2049/CryptoKey/localepatch/catalog"
	"github.com/Codeislaw2049/CryptoKey/localepatch/encode"
	"github.com/Codeislaw2049/CryptoKey/localepatch/eval"
	"github.com/Codeislaw2049/CryptoKey/localepatch/libdiff"
	"github.com/Codeislaw2049/CryptoKey/localepatch/localedir"

	"github.com/scott-cotton/cli"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Dir    string `cli:"name=C desc='locales directory (default $LOCALEPATCH_DIR or public/locales)'"`
	Color  bool   `cli:"name=color desc='color output'"`
	Indent int    `cli:"name=indent desc='spaces per nesting level when writing json (default 2)'"`

	ctx  context.Context
	Main *cli.Command
}

// localesDir picks the directory to work on: a positional argument, then
// -C, then the environment.
func (cfg *MainConfig) localesDir(args []string) (string, error) {
	switch len(args) {
	case 0:
	case 1:
		return args[0], nil
	default:
		return "", fmt.Errorf("%w: expected at most one directory, got %d arguments", cli.ErrUsage, len(args))
	}
	if cfg.Dir != "" {
		return cfg.Dir, nil
	}
	return envOr(EnvDir, DefaultDir), nil
}

func (cfg *MainConfig) colored(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{encode.FinalNewline(true)}
	if cfg.Indent > 0 {
		res = append(res, encode.Indent(cfg.Indent))
	}
	if cfg.colored(w) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

func (cfg *MainConfig) diffColors(w io.Writer) *libdiff.Colors {
	if cfg.colored(w) {
		return libdiff.NewColors()
	}
	return nil
}

// progress returns a function printing each result on w as it comes.
func (cfg *MainConfig) progress(w io.Writer, line func(*localedir.Result) string) func(*localedir.Result) {
	colors := map[localedir.Status]*color.Color{
		localedir.Updated: color.New(color.FgGreen),
		localedir.Created: color.New(color.FgGreen, color.Bold),
		localedir.Failed:  color.New(color.FgRed),
	}
	on := cfg.colored(w)
	for _, c := range colors {
		if on {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return func(r *localedir.Result) {
		if r.Status == localedir.Skipped {
			return
		}
		s := line(r)
		if c := colors[r.Status]; c != nil {
			s = c.Sprint(s)
		}
		fmt.Fprintln(w, s)
		if r.Diff != "" {
			fmt.Fprint(w, r.Diff)
		}
	}
}

func resultLine(r *localedir.Result) string {
	return r.String()
}

func loadTable(path string) (*catalog.Table, error) {
	if path == "" {
		path = os.Getenv(EnvTable)
	}
	var (
		tab *catalog.Table
		err error
	)
	if path == "" {
		tab = catalog.Default()
	} else {
		tab, err = catalog.Load(path)
		if err != nil {
			return nil, err
		}
	}
	for _, w := range tab.Warnings() {
		theLog.Warn(w)
	}
	return tab, nil
}

func compileWhere(src string) (*eval.Filter, error) {
	if src == "" {
		return nil, nil
	}
	f, err := eval.Compile(src)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	return f, nil
}

type ApplyConfig struct {
	*MainConfig
	DryRun  bool   `cli:"name=n aliases=dry-run desc='show changes without writing them'"`
	Verbose bool   `cli:"name=v desc='show a diff of each change'"`
	Table   string `cli:"name=table desc='translation table file, yaml or json (default built in)'"`
	Where   string `cli:"name=where desc='only process locales matching this expression'"`

	Apply *cli.Command
}

type SyncConfig struct {
	*MainConfig
	DryRun  bool   `cli:"name=n aliases=dry-run desc='show changes without writing them'"`
	Verbose bool   `cli:"name=v desc='show a diff of each change'"`
	Source  string `cli:"name=source desc='language to copy missing keys from' default=en"`
	Where   string `cli:"name=where desc='only process locales matching this expression'"`

	Sync *cli.Command
}

type CheckConfig struct {
	*MainConfig
	Table string `cli:"name=table desc='translation table file, yaml or json (default built in)'"`
	Where string `cli:"name=where desc='only check locales matching this expression'"`

	Check *cli.Command
}

type TableConfig struct {
	*MainConfig
	Table string `cli:"name=table desc='translation table file, yaml or json (default built in)'"`
	JSON  bool   `cli:"name=json aliases=j desc='print as json'"`
	Wire  bool   `cli:"name=wire desc='with -json, print on one line'"`
	Lang  string `cli:"name=lang desc='print the patches for one language'"`

	TableCmd *cli.Command
}
