package parse

import (
	"errors"
	"fmt"

	"github.com/Codeislaw2049/CryptoKey/localepatch/ir"
)

var (
	ErrParse    = ir.ErrParse
	ErrDepth    = fmt.Errorf("%w: nesting too deep", ErrParse)
	ErrTrailing = fmt.Errorf("%w: trailing data after document", ErrParse)

	ErrEncoding  = errors.New("invalid UTF-8")
	ErrSurrogate = errors.New("unpaired surrogate escape")
)
