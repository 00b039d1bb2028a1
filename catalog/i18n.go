package catalog

import (
	"fmt"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

// Warnings lists the language codes of t which are not well formed BCP 47
// tags.  Such languages are still patched, by exact code, but an
// application resolving locales by tag will never select them.
func (t *Table) Warnings() []string {
	var res []string
	for _, lang := range t.Langs() {
		if _, err := language.Parse(lang); err != nil {
			res = append(res, fmt.Sprintf("language %q is not a valid tag: %v", lang, err))
		}
	}
	if _, err := language.Parse(t.DefaultLanguage); err != nil {
		res = append(res, fmt.Sprintf("default language %q is not a valid tag: %v", t.DefaultLanguage, err))
	}
	return res
}

// Resolver answers which text an application using tag matching would
// show for a target, as opposed to the exact code match used for
// patching.
type Resolver struct {
	table  *Table
	bundle *i18n.Bundle
	def    language.Tag
}

// Resolved is the outcome of resolving one target for one locale.
type Resolved struct {
	Key   string
	Value string
	Tag   language.Tag
	// Fallback is set when the text came from a language other than the
	// one asked for.
	Fallback bool
}

// NewResolver builds a message bundle from t.  Languages whose codes are
// not valid tags are left out.
func NewResolver(t *Table) (*Resolver, error) {
	def, err := language.Parse(t.DefaultLanguage)
	if err != nil {
		def = language.English
	}
	bundle := i18n.NewBundle(def)
	if err := bundle.AddMessages(def, messages(t, t.Default)...); err != nil {
		return nil, fmt.Errorf("adding default messages: %w", err)
	}
	for i := range t.Languages {
		l := &t.Languages[i]
		tag, err := language.Parse(l.Lang)
		if err != nil {
			continue
		}
		entry, _ := t.Lookup(l.Lang)
		if err := bundle.AddMessages(tag, messages(t, entry)...); err != nil {
			return nil, fmt.Errorf("adding messages for %s: %w", l.Lang, err)
		}
	}
	return &Resolver{table: t, bundle: bundle, def: def}, nil
}

func messages(t *Table, e Entry) []*i18n.Message {
	res := make([]*i18n.Message, 0, len(t.Targets))
	for _, tg := range t.Targets {
		v, ok := e[tg.Key]
		if !ok {
			continue
		}
		res = append(res, &i18n.Message{ID: tg.Key, Other: v})
	}
	return res
}

// Resolve returns what each target resolves to for lang, in target order,
// falling back to the table's default language.
func (r *Resolver) Resolve(lang string) ([]Resolved, error) {
	localizer := i18n.NewLocalizer(r.bundle, lang, r.def.String())
	want, _ := language.Parse(lang)
	res := make([]Resolved, 0, len(r.table.Targets))
	for _, tg := range r.table.Targets {
		v, tag, err := localizer.LocalizeWithTag(&i18n.LocalizeConfig{MessageID: tg.Key})
		if err != nil {
			return nil, fmt.Errorf("resolving %s for %s: %w", tg.Key, lang, err)
		}
		res = append(res, Resolved{
			Key:      tg.Key,
			Value:    v,
			Tag:      tag,
			Fallback: tag != want,
		})
	}
	return res, nil
}
