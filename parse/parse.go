package parse

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/Codeislaw2049/CryptoKey/localepatch/ir"
)

var bom = []byte{0xEF, 0xBB, 0xBF}

// Parse reads a JSON document.  Invalid UTF-8 and unpaired surrogate
// escapes are errors, never replaced with U+FFFD.
func Parse(d []byte) (*ir.Node, error) {
	d = bytes.TrimPrefix(d, bom)
	if !utf8.Valid(d) {
		i := invalidAt(d)
		return nil, fmt.Errorf("%w at offset %d: %w", ErrParse, i, ErrEncoding)
	}
	if err := checkEscapes(d); err != nil {
		return nil, err
	}
	pOpts := &parseOpts{maxDepth: DefaultMaxDepth}
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	res, err := parseValue(dec, 0, pOpts)
	if err != nil {
		return nil, wrap(dec, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		if err != nil {
			return nil, wrap(dec, err)
		}
		return nil, fmt.Errorf("%w at offset %d", ErrTrailing, dec.InputOffset())
	}
	return res, nil
}

func ParseString(s string) (*ir.Node, error) {
	return Parse([]byte(s))
}

func invalidAt(d []byte) int {
	for i := 0; i < len(d); {
		r, size := utf8.DecodeRune(d[i:])
		if r == utf8.RuneError && size == 1 {
			return i
		}
		i += size
	}
	return len(d)
}

// checkEscapes fails on \u escapes naming half of a surrogate pair
// without the other half.
func checkEscapes(d []byte) error {
	pendingHigh := -1
	for i := 0; i < len(d); i++ {
		if d[i] != '\\' {
			if pendingHigh >= 0 {
				return surrogateErr(pendingHigh)
			}
			continue
		}
		if i+1 >= len(d) {
			return nil
		}
		if d[i+1] != 'u' {
			if pendingHigh >= 0 {
				return surrogateErr(pendingHigh)
			}
			i++
			continue
		}
		if i+6 > len(d) {
			return nil
		}
		v, err := strconv.ParseUint(string(d[i+2:i+6]), 16, 16)
		if err != nil {
			// malformed escapes are left to the decoder
			i += 5
			continue
		}
		r := rune(v)
		switch {
		case pendingHigh >= 0:
			if !isLowSurrogate(r) {
				return surrogateErr(pendingHigh)
			}
			pendingHigh = -1
		case isLowSurrogate(r):
			return surrogateErr(i)
		case utf16.IsSurrogate(r):
			pendingHigh = i
		}
		i += 5
	}
	if pendingHigh >= 0 {
		return surrogateErr(pendingHigh)
	}
	return nil
}

func isLowSurrogate(r rune) bool {
	return r >= 0xDC00 && r <= 0xDFFF
}

func surrogateErr(off int) error {
	return fmt.Errorf("%w at offset %d: %w", ErrParse, off, ErrSurrogate)
}

func wrap(dec *json.Decoder, err error) error {
	if errors.Is(err, ErrParse) {
		return err
	}
	if errors.Is(err, io.EOF) {
		err = io.ErrUnexpectedEOF
	}
	return fmt.Errorf("%w at offset %d: %w", ErrParse, dec.InputOffset(), err)
}

func parseValue(dec *json.Decoder, depth int, opts *parseOpts) (*ir.Node, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	switch x := tok.(type) {
	case json.Delim:
		if depth >= opts.maxDepth {
			return nil, fmt.Errorf("%w (max %d)", ErrDepth, opts.maxDepth)
		}
		switch x {
		case '{':
			return parseObj(dec, depth+1, opts)
		case '[':
			return parseArray(dec, depth+1, opts)
		}
		return nil, fmt.Errorf("%w: unexpected %q", ErrParse, x)
	case string:
		return ir.FromString(x), nil
	case json.Number:
		return ir.FromNumber(string(x)), nil
	case bool:
		return ir.FromBool(x), nil
	case nil:
		return ir.Null(), nil
	}
	return nil, fmt.Errorf("%w: unexpected token %v", ErrParse, tok)
}

func parseObj(dec *json.Decoder, depth int, opts *parseOpts) (*ir.Node, error) {
	res := ir.Object()
	for dec.More() {
		kt, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := kt.(string)
		if !ok {
			return nil, fmt.Errorf("%w: expected string key, got %T", ErrParse, kt)
		}
		val, err := parseValue(dec, depth, opts)
		if err != nil {
			return nil, err
		}
		res.Set(key, val)
	}
	if err := closing(dec, '}'); err != nil {
		return nil, err
	}
	return res, nil
}

func parseArray(dec *json.Decoder, depth int, opts *parseOpts) (*ir.Node, error) {
	var vals []*ir.Node
	for dec.More() {
		val, err := parseValue(dec, depth, opts)
		if err != nil {
			return nil, err
		}
		vals = append(vals, val)
	}
	if err := closing(dec, ']'); err != nil {
		return nil, err
	}
	return ir.FromSlice(vals), nil
}

func closing(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != want {
		return fmt.Errorf("%w: expected %q, got %v", ErrParse, want, tok)
	}
	return nil
}
