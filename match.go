package localepatch

import (
	"github.com/Codeislaw2049/CryptoKey/localepatch/ir"
)

// Match reports whether doc contains everything in match: every leaf of
// match must be present in doc, at the same path, with an equal value.
// Fields of doc that match does not mention are ignored, as is field
// order.  Arrays must be equal.
func Match(doc, match *ir.Node) bool {
	if doc == nil {
		return false
	}
	if match.Type != ir.ObjectType {
		return ir.Equal(doc, match)
	}
	if doc.Type != ir.ObjectType {
		return false
	}
	for i, f := range match.Fields {
		if !Match(ir.Get(doc, f.String), match.Values[i]) {
			return false
		}
	}
	return true
}

// Expected returns a document holding only the values patches set, in
// patch order.  A catalog is up to date with respect to patches when it
// matches this document.
func Expected(patches []Patch) (*ir.Node, error) {
	res := ir.Object()
	if _, err := ApplyAll(res, patches); err != nil {
		return nil, err
	}
	return res, nil
}
