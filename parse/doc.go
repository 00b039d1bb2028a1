// Package parse reads JSON translation catalogs into ir nodes.
//
// Unlike decoding into map[string]any, the result keeps object fields in
// file order and numbers as their source lexemes, so a catalog can be
// written back without reordering or reformatting anything that was not
// changed.
//
//	node, err := parse.Parse(data)
//	if errors.Is(err, parse.ErrParse) {
//	    // malformed catalog
//	}
//
// A repeated key keeps the position of its first occurrence and the value
// of its last one.
package parse
