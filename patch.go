package localepatch

import (
	"fmt"

	"github.com/Codeislaw2049/CryptoKey/localepatch/debug"
	"github.com/Codeislaw2049/CryptoKey/localepatch/ir"
)

// Apply sets the field named by path in doc to value, creating empty
// objects for missing intermediate fields.  New fields are appended after
// their existing siblings; an existing leaf is replaced in place.  Nothing
// else in doc is touched.
//
// Apply reports whether doc changed: applying the same value twice
// changes doc only the first time.
//
// If a field along path exists but is not an object, or the leaf exists
// and is an object or array, Apply returns a *SchemaConflictError and
// leaves doc unmodified.
func Apply(doc *ir.Node, path *ir.Path, value *ir.Node) (bool, error) {
	if path == nil {
		return false, ErrEmptyPath
	}
	if debug.Patch() {
		debug.Logf("apply %s = %v\n", path, value)
	}
	if err := checkPath(doc, path, value); err != nil {
		return false, err
	}
	segs := path.Segments()
	parent, err := EnsurePath(doc, ir.PathOf(segs[:len(segs)-1]...))
	if err != nil {
		return false, err
	}
	x := path.Last()
	if old := ir.Get(parent, x.Field); old != nil && ir.Equal(old, value) {
		return false, nil
	}
	parent.Set(x.Field, value)
	return true, nil
}

// ApplyString is Apply for a dotted path and a string value.
func ApplyString(doc *ir.Node, path, value string) (bool, error) {
	p, err := ir.ParsePath(path)
	if err != nil {
		return false, err
	}
	return Apply(doc, p, ir.FromString(value))
}

// checkPath walks the existing part of path and fails on the first field
// that cannot hold what the patch puts there.
func checkPath(doc *ir.Node, path *ir.Path, value *ir.Node) error {
	if doc.Type != ir.ObjectType {
		return &SchemaConflictError{Found: doc.Type, Want: ir.ObjectType}
	}
	node := doc
	var seen []string
	for x := path; x != nil; x = x.Next {
		seen = append(seen, x.Field)
		node = ir.Get(node, x.Field)
		if node == nil {
			return nil
		}
		if x.Next != nil {
			if node.Type != ir.ObjectType {
				return &SchemaConflictError{Path: ir.PathOf(seen...), Found: node.Type, Want: ir.ObjectType}
			}
			continue
		}
		// a leaf never replaces a whole subtree
		if !node.Type.IsLeaf() && value.Type.IsLeaf() {
			return &SchemaConflictError{Path: ir.PathOf(seen...), Found: node.Type, Want: value.Type}
		}
	}
	return nil
}

// EnsurePath returns the object at path in doc, creating it and any
// missing parents.  An empty path names doc itself.
func EnsurePath(doc *ir.Node, path *ir.Path) (*ir.Node, error) {
	if doc.Type != ir.ObjectType {
		return nil, &SchemaConflictError{Found: doc.Type, Want: ir.ObjectType}
	}
	node := doc
	var seen []string
	for x := path; x != nil; x = x.Next {
		seen = append(seen, x.Field)
		child := ir.Get(node, x.Field)
		if child == nil {
			child = ir.Object()
			node.Append(x.Field, child)
		} else if child.Type != ir.ObjectType {
			return nil, &SchemaConflictError{Path: ir.PathOf(seen...), Found: child.Type, Want: ir.ObjectType}
		}
		node = child
	}
	return node, nil
}

// Get returns the node at path in doc, or nil if it is absent.
func Get(doc *ir.Node, path *ir.Path) *ir.Node {
	if path == nil {
		return doc
	}
	return doc.GetPath(path)
}

// Patch is one assignment of a string value to a path.
type Patch struct {
	Path  *ir.Path
	Value string
}

func (p Patch) String() string {
	return fmt.Sprintf("%s=%q", p.Path, p.Value)
}

// ApplyAll applies patches in order.  It stops at the first error; since
// every path is checked before doc is modified, a failing patch leaves the
// effects of the earlier ones in place, so callers that need all or
// nothing should work on a clone.
func ApplyAll(doc *ir.Node, patches []Patch) (bool, error) {
	changed := false
	for _, p := range patches {
		c, err := Apply(doc, p.Path, ir.FromString(p.Value))
		if err != nil {
			return changed, err
		}
		changed = changed || c
	}
	return changed, nil
}
