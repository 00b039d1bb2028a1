package eval

import (
	"golang.org/x/text/language"
)

// Env holds the variables a filter expression sees.
type Env map[string]any

// LocaleEnv is the environment for one locale directory:
//
//	lang    the directory name, e.g. "zh-TW"
//	base    the base language of lang as a tag, e.g. "zh"; "" if lang is not a tag
//	region  the region of lang if it names one, else ""
//	known   whether the translation table lists lang
//	dir     the directory path
func LocaleEnv(lang, dir string, known bool) Env {
	env := Env{
		"lang":   lang,
		"base":   "",
		"region": "",
		"known":  known,
		"dir":    dir,
	}
	tag, err := language.Parse(lang)
	if err != nil {
		return env
	}
	base, conf := tag.Base()
	if conf != language.No {
		env["base"] = base.String()
	}
	if region, conf := tag.Region(); conf == language.Exact {
		env["region"] = region.String()
	}
	return env
}
