package main

import (
	"fmt"

	"github.com/Codeislaw2049/CryptoKey/localepatch/encode"

	"github.com/scott-cotton/cli"
)

func showTable(cfg *TableConfig, cc *cli.Context, args []string) error {
	args, err := cfg.TableCmd.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 0 {
		return fmt.Errorf("%w: table takes no arguments", cli.ErrUsage)
	}
	tab, err := loadTable(cfg.Table)
	if err != nil {
		return err
	}
	if cfg.Lang != "" {
		patches, known := tab.Patches(cfg.Lang)
		if !known {
			fmt.Fprintf(cc.Out, "# %s is not in the table, using the default text\n", cfg.Lang)
		}
		for _, p := range patches {
			fmt.Fprintln(cc.Out, p)
		}
		return nil
	}
	if cfg.JSON {
		opts := cfg.encOpts(cc.Out)
		if cfg.Wire {
			opts = append(opts, encode.EncodeWire(true))
		}
		return encode.Encode(tab.Node(), cc.Out, opts...)
	}
	d, err := tab.YAML()
	if err != nil {
		return fmt.Errorf("error encoding table: %w", err)
	}
	_, err = cc.Out.Write(d)
	return err
}
