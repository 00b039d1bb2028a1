package eval

import (
	"errors"
	"fmt"

	"github.com/Codeislaw2049/CryptoKey/localepatch/debug"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

var ErrFilter = errors.New("filter error")

// Filter is a compiled boolean expression over an Env.
type Filter struct {
	src string
	prg *vm.Program
}

// Compile compiles src, which must evaluate to a boolean given a
// LocaleEnv.
func Compile(src string) (*Filter, error) {
	opts := append(exprOpts(), expr.Env(LocaleEnv("", "", false)), expr.AsBool())
	prg, err := expr.Compile(src, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: compiling %q: %w", ErrFilter, src, err)
	}
	return &Filter{src: src, prg: prg}, nil
}

func (f *Filter) String() string {
	return f.src
}

// Match runs f against env.  A nil filter matches everything.
func (f *Filter) Match(env Env) (bool, error) {
	if f == nil {
		return true, nil
	}
	res, err := vm.Run(f.prg, env)
	if err != nil {
		return false, fmt.Errorf("%w: running %q: %w", ErrFilter, f.src, err)
	}
	if debug.Run() {
		debug.Logf("filter %q on %v: %v\n", f.src, env["lang"], res)
	}
	return res.(bool), nil
}
