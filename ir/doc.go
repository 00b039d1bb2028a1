// Package ir provides the in-memory representation of a translation
// catalog document.
//
// A catalog is a tree of *Node.  Objects keep their fields in the order
// they were read, in the parallel Fields and Values slices: Fields[i] is
// the key for Values[i].  Keeping the order is what lets a tool rewrite a
// catalog and produce a diff that only shows the keys it touched.
//
// Leaves are strings, numbers, booleans and null.  Numbers keep their
// source lexeme in Number and are never reformatted.
//
// Every node records its Parent, ParentIndex and ParentField so that
// (*Node).Path can report where it sits, for example in error messages:
//
//	doc.GetPath(ir.MustParsePath("wizard.resultStep")).Path()
//	// wizard.resultStep
//
// Paths are dotted field sequences.  A field that itself contains a dot,
// a quote or a bracket is single-quoted:
//
//	ir.ParsePath("units.'km.h'.label")
package ir
