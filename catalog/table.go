// Package catalog holds the translation table: which keys to set in every
// locale catalog and what each language sets them to.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"github.com/Codeislaw2049/CryptoKey/localepatch"
	"github.com/Codeislaw2049/CryptoKey/localepatch/debug"
	"github.com/Codeislaw2049/CryptoKey/localepatch/ir"

	"github.com/goccy/go-yaml"
)

//go:embed table.yaml
var defaultTable []byte

var ErrTable = errors.New("invalid translation table")

// Target names one key to set, and where it lives in a catalog.
type Target struct {
	Key  string `json:"key"`
	Path string `json:"path"`

	path *ir.Path
}

// Entry maps target keys to text.
type Entry map[string]string

type Language struct {
	Lang   string `json:"lang"`
	Values Entry  `json:"values"`
}

type Table struct {
	DefaultLanguage string     `json:"defaultLanguage"`
	Targets         []Target   `json:"targets"`
	Default         Entry      `json:"default"`
	Languages       []Language `json:"languages"`

	index map[string]int
}

// Default returns the built in table.
func Default() *Table {
	t, err := Parse(defaultTable)
	if err != nil {
		panic(err)
	}
	return t
}

// Load reads a table from a YAML or JSON file.
func Load(path string) (*Table, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read table %q: %w", path, err)
	}
	t, err := Parse(d)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// Parse decodes and validates a table.
func Parse(d []byte) (*Table, error) {
	t := &Table{}
	if err := yaml.Unmarshal(d, t); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTable, err)
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	if debug.Table() {
		debug.Logf("loaded table with %d targets, %d languages\n", len(t.Targets), len(t.Languages))
	}
	return t, nil
}

// Validate checks that every target has a key and a well formed path with a
// default value, and that languages are listed once each.  It also
// prepares t for lookups; tables built in code must be validated before
// use.
func (t *Table) Validate() error {
	if len(t.Targets) == 0 {
		return fmt.Errorf("%w: no targets", ErrTable)
	}
	if t.DefaultLanguage == "" {
		t.DefaultLanguage = "en"
	}
	keys := map[string]bool{}
	for i := range t.Targets {
		tg := &t.Targets[i]
		if tg.Key == "" {
			return fmt.Errorf("%w: target %d has no key", ErrTable, i)
		}
		if keys[tg.Key] {
			return fmt.Errorf("%w: duplicate target %q", ErrTable, tg.Key)
		}
		keys[tg.Key] = true
		p, err := ir.ParsePath(tg.Path)
		if err != nil {
			return fmt.Errorf("%w: target %q: %w", ErrTable, tg.Key, err)
		}
		tg.path = p
		if _, ok := t.Default[tg.Key]; !ok {
			return fmt.Errorf("%w: no default for %q", ErrTable, tg.Key)
		}
	}
	t.index = make(map[string]int, len(t.Languages))
	for i := range t.Languages {
		lang := t.Languages[i].Lang
		if lang == "" {
			return fmt.Errorf("%w: language %d has no code", ErrTable, i)
		}
		if _, dup := t.index[lang]; dup {
			return fmt.Errorf("%w: duplicate language %q", ErrTable, lang)
		}
		for k := range t.Languages[i].Values {
			if !keys[k] {
				return fmt.Errorf("%w: language %q has unknown key %q", ErrTable, lang, k)
			}
		}
		t.index[lang] = i
	}
	return nil
}

// Langs returns the language codes of t in table order.
func (t *Table) Langs() []string {
	res := make([]string, len(t.Languages))
	for i := range t.Languages {
		res[i] = t.Languages[i].Lang
	}
	return res
}

// Has reports whether t lists lang.
func (t *Table) Has(lang string) bool {
	_, ok := t.index[lang]
	return ok
}

// Lookup returns the text for lang.  Codes are matched exactly; an unknown
// code gets the default entry and false.  Keys a known language lacks are
// filled from the default.
func (t *Table) Lookup(lang string) (Entry, bool) {
	i, ok := t.index[lang]
	res := make(Entry, len(t.Targets))
	for _, tg := range t.Targets {
		res[tg.Key] = t.Default[tg.Key]
		if !ok {
			continue
		}
		if v, present := t.Languages[i].Values[tg.Key]; present {
			res[tg.Key] = v
		}
	}
	return res, ok
}

// Patches returns the patches setting every target for lang, in target
// order.
func (t *Table) Patches(lang string) ([]localepatch.Patch, bool) {
	entry, ok := t.Lookup(lang)
	res := make([]localepatch.Patch, len(t.Targets))
	for i := range t.Targets {
		tg := &t.Targets[i]
		res[i] = localepatch.Patch{Path: tg.path, Value: entry[tg.Key]}
	}
	if debug.Table() {
		debug.Logf("patches for %s (known %t): %v\n", lang, ok, res)
	}
	return res, ok
}

// Paths returns the paths of the targets.
func (t *Table) Paths() []*ir.Path {
	res := make([]*ir.Path, len(t.Targets))
	for i := range t.Targets {
		res[i] = t.Targets[i].path
	}
	return res
}

// Node returns t as a document, with fields in table order.
func (t *Table) Node() *ir.Node {
	entry := func(e Entry) *ir.Node {
		res := ir.Object()
		for _, tg := range t.Targets {
			if v, ok := e[tg.Key]; ok {
				res.Append(tg.Key, ir.FromString(v))
			}
		}
		return res
	}
	targets := make([]*ir.Node, len(t.Targets))
	for i, tg := range t.Targets {
		targets[i] = ir.FromKeyVals([]ir.KeyVal{
			{Key: "key", Val: ir.FromString(tg.Key)},
			{Key: "path", Val: ir.FromString(tg.Path)},
		})
	}
	langs := make([]*ir.Node, len(t.Languages))
	for i := range t.Languages {
		l := &t.Languages[i]
		langs[i] = ir.FromKeyVals([]ir.KeyVal{
			{Key: "lang", Val: ir.FromString(l.Lang)},
			{Key: "values", Val: entry(l.Values)},
		})
	}
	return ir.FromKeyVals([]ir.KeyVal{
		{Key: "defaultLanguage", Val: ir.FromString(t.DefaultLanguage)},
		{Key: "targets", Val: ir.FromSlice(targets)},
		{Key: "default", Val: entry(t.Default)},
		{Key: "languages", Val: ir.FromSlice(langs)},
	})
}

// YAML returns t in the format Load reads.
func (t *Table) YAML() ([]byte, error) {
	return yaml.Marshal(t)
}
