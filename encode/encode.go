package encode

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/Codeislaw2049/CryptoKey/localepatch/ir"
)

type EncState struct {
	depth, indent int
	wire          bool
	finalNL       bool

	Color func(ir.Type, ColorAttr, string) string
}

// Encode writes node as JSON.  By default objects and arrays are indented
// by 2 spaces, keys are followed by ": " and non-ASCII text is written
// as is, which is the layout translation catalogs are kept in.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: 2,
	}
	for _, opt := range opts {
		opt(es)
	}
	if err := encode(node, w, es); err != nil {
		return err
	}
	if es.finalNL {
		return writeString(w, "\n")
	}
	return nil
}

// Bytes is Encode into a new buffer.
func Bytes(node *ir.Node, opts ...EncodeOption) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf, opts...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeNL(w io.Writer, es *EncState) error {
	if es.wire {
		return nil
	}
	return writeString(w, "\n"+strings.Repeat(" ", es.indent*es.depth))
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}

func applyColor(es *EncState, nodeType ir.Type, attr ColorAttr, v string) string {
	if es.Color == nil {
		return v
	}
	return es.Color(nodeType, attr, v)
}

func encode(node *ir.Node, w io.Writer, es *EncState) error {
	switch node.Type {
	case ir.ObjectType:
		return encodeObject(node, w, es)
	case ir.ArrayType:
		return encodeArray(node, w, es)
	case ir.StringType:
		return writeString(w, applyColor(es, ir.StringType, ValueColor, Quote(node.String)))
	case ir.NumberType:
		if node.Number == "" {
			return fmt.Errorf("%w: number without lexeme at %q", ErrEncoding, node.Path())
		}
		return writeString(w, applyColor(es, ir.NumberType, ValueColor, node.Number))
	case ir.BoolType:
		v := "false"
		if node.Bool {
			v = "true"
		}
		return writeString(w, applyColor(es, ir.BoolType, ValueColor, v))
	case ir.NullType:
		return writeString(w, applyColor(es, ir.NullType, ValueColor, "null"))
	default:
		return fmt.Errorf("%w: unknown node type %s", ErrEncoding, node.Type)
	}
}

func encodeObject(node *ir.Node, w io.Writer, es *EncState) error {
	if len(node.Fields) != len(node.Values) {
		return fmt.Errorf("%w: object at %q has %d fields and %d values",
			ErrEncoding, node.Path(), len(node.Fields), len(node.Values))
	}
	sep := func(s string) string { return applyColor(es, ir.ObjectType, SepColor, s) }
	if len(node.Fields) == 0 {
		return writeString(w, sep("{}"))
	}
	if err := writeString(w, sep("{")); err != nil {
		return err
	}
	es.depth++
	for i, f := range node.Fields {
		if i > 0 {
			if err := writeString(w, sep(",")); err != nil {
				return err
			}
		}
		if err := writeNL(w, es); err != nil {
			return err
		}
		colon := ": "
		if es.wire {
			colon = ":"
		}
		key := applyColor(es, ir.ObjectType, FieldColor, Quote(f.String))
		if err := writeString(w, key+sep(colon)); err != nil {
			return err
		}
		if err := encode(node.Values[i], w, es); err != nil {
			return err
		}
	}
	es.depth--
	if err := writeNL(w, es); err != nil {
		return err
	}
	return writeString(w, sep("}"))
}

func encodeArray(node *ir.Node, w io.Writer, es *EncState) error {
	sep := func(s string) string { return applyColor(es, ir.ArrayType, SepColor, s) }
	if len(node.Values) == 0 {
		return writeString(w, sep("[]"))
	}
	if err := writeString(w, sep("[")); err != nil {
		return err
	}
	es.depth++
	for i, v := range node.Values {
		if i > 0 {
			if err := writeString(w, sep(",")); err != nil {
				return err
			}
		}
		if err := writeNL(w, es); err != nil {
			return err
		}
		if err := encode(v, w, es); err != nil {
			return err
		}
	}
	es.depth--
	if err := writeNL(w, es); err != nil {
		return err
	}
	return writeString(w, sep("]"))
}

const hex = "0123456789abcdef"

// Quote returns v as a JSON string literal.  Only the quote, the
// backslash and control characters are escaped; everything else,
// including non-ASCII text, is kept literally.
func Quote(v string) string {
	d := make([]byte, 0, len(v)+2)
	d = append(d, '"')
	for i := 0; i < len(v); {
		c := v[i]
		if c >= utf8.RuneSelf {
			r, size := utf8.DecodeRuneInString(v[i:])
			if r == utf8.RuneError && size == 1 {
				d = append(d, "\uFFFD"...)
			} else {
				d = append(d, v[i:i+size]...)
			}
			i += size
			continue
		}
		switch c {
		case '"':
			d = append(d, '\\', '"')
		case '\\':
			d = append(d, '\\', '\\')
		case '\n':
			d = append(d, '\\', 'n')
		case '\r':
			d = append(d, '\\', 'r')
		case '\t':
			d = append(d, '\\', 't')
		case '\b':
			d = append(d, '\\', 'b')
		case '\f':
			d = append(d, '\\', 'f')
		default:
			if c < 0x20 {
				d = append(d, '\\', 'u', '0', '0', hex[c>>4], hex[c&0xF])
			} else {
				d = append(d, c)
			}
		}
		i++
	}
	return string(append(d, '"'))
}
