// Package eval compiles the expressions used to select locales, such as
//
//	base == "zh" || lang in ["pt", "es"]
//
// Expressions are written in the expr language
// (https://expr-lang.org) and evaluated against a [LocaleEnv].
package eval
