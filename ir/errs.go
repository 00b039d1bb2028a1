package ir

import (
	"errors"
	"fmt"
)

var (
	ErrParse   = errors.New("parse error")
	ErrPath    = errors.New("bad path")
	ErrNoField = fmt.Errorf("%w: empty field", ErrPath)
)
