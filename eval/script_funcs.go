package eval

import (
	"os"

	"github.com/expr-lang/expr"
	"golang.org/x/text/language"
)

func exprOpts() []expr.Option {
	return []expr.Option{
		expr.Function("getenv", func(params ...any) (any, error) {
			return os.Getenv(params[0].(string)), nil
		},
			new(func(string) string)),
		expr.Function("validtag", func(params ...any) (any, error) {
			_, err := language.Parse(params[0].(string))
			return err == nil, nil
		},
			new(func(string) bool)),
	}
}
