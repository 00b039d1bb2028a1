package main

import (
	"bytes"
	"errors"
	"testing"

	"github.com/Codeislaw2049/CryptoKey/localepatch/catalog"
	"github.com/Codeislaw2049/CryptoKey/localepatch/encode"
	"github.com/Codeislaw2049/CryptoKey/localepatch/ir"
	"github.com/Codeislaw2049/CryptoKey/localepatch/localedir"

	"github.com/scott-cotton/cli"
)

func TestLocalesDir(t *testing.T) {
	t.Setenv(EnvDir, "")
	cfg := &MainConfig{}
	if got, _ := cfg.localesDir(nil); got != DefaultDir {
		t.Errorf("got %q", got)
	}
	t.Setenv(EnvDir, "/env/locales")
	if got, _ := cfg.localesDir(nil); got != "/env/locales" {
		t.Errorf("got %q", got)
	}
	cfg.Dir = "flag"
	if got, _ := cfg.localesDir(nil); got != "flag" {
		t.Errorf("got %q", got)
	}
	if got, _ := cfg.localesDir([]string{"arg"}); got != "arg" {
		t.Errorf("got %q", got)
	}
	if _, err := cfg.localesDir([]string{"a", "b"}); !errors.Is(err, cli.ErrUsage) {
		t.Errorf("got %v", err)
	}
}

func TestLines(t *testing.T) {
	tab := catalog.Default()
	tests := []struct {
		got, want string
	}{
		{syncLine(&localedir.Result{Lang: "fr", Status: localedir.Unchanged}), "No changes needed for fr"},
		{syncLine(&localedir.Result{Lang: "fr", Status: localedir.Updated}), "Updated fr"},
		{syncLine(&localedir.Result{Lang: "ja", Status: localedir.Created}), "Created new file for ja"},
		{resultLine(&localedir.Result{Lang: "xx", Status: localedir.Failed, Err: errors.New("boom")}), "Error processing xx: boom"},
		{checkLine(&localedir.Result{Lang: "fr", Status: localedir.Unchanged}, tab), "fr: up to date"},
		{checkLine(&localedir.Result{Lang: "pt-BR", Status: localedir.Updated}, tab), "pt-BR: needs apply (not in table, default text)"},
	}
	for _, test := range tests {
		if test.got != test.want {
			t.Errorf("got %q, want %q", test.got, test.want)
		}
	}
}

func TestCompileWhere(t *testing.T) {
	if f, err := compileWhere(""); f != nil || err != nil {
		t.Errorf("empty: %v %v", f, err)
	}
	if _, err := compileWhere("lang =="); !errors.Is(err, cli.ErrUsage) {
		t.Errorf("got %v", err)
	}
}

func TestEncOpts(t *testing.T) {
	cfg := &MainConfig{Indent: 4, Main: &cli.Command{}}
	node := ir.FromKeyVals([]ir.KeyVal{{Key: "a", Val: ir.FromString("b")}})
	buf := bytes.NewBuffer(nil)
	d, err := encode.Bytes(node, cfg.encOpts(buf)...)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := string(d), "{\n    \"a\": \"b\"\n}\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	d, err = encode.Bytes(node, append(cfg.encOpts(buf), encode.EncodeWire(true))...)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := string(d), "{\"a\":\"b\"}\n"; got != want {
		t.Errorf("wire: got %q, want %q", got, want)
	}
}
