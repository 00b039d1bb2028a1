package localepatch

import (
	"github.com/Codeislaw2049/CryptoKey/localepatch/debug"
	"github.com/Codeislaw2049/CryptoKey/localepatch/ir"
)

// Merge copies into dst every field of src that dst lacks, recursing into
// objects present in both.  Existing values in dst are never replaced, so
// translated entries survive and only untranslated keys are filled in
// with the source text.  New fields are appended in src order.
//
// An object in src meeting a non-object in dst is a *SchemaConflictError;
// in that case dst is left unmodified.
func Merge(dst, src *ir.Node) (bool, error) {
	if src.Type != ir.ObjectType || dst.Type != ir.ObjectType {
		found := dst.Type
		if dst.Type == ir.ObjectType {
			found = src.Type
		}
		return false, &SchemaConflictError{Found: found, Want: ir.ObjectType}
	}
	if err := mergeCheck(dst, src, nil); err != nil {
		return false, err
	}
	return merge(dst, src), nil
}

func mergeCheck(dst, src *ir.Node, at []string) error {
	for i, f := range src.Fields {
		sv := src.Values[i]
		if sv.Type != ir.ObjectType {
			continue
		}
		dv := ir.Get(dst, f.String)
		if dv == nil {
			continue
		}
		fAt := append(at[:len(at):len(at)], f.String)
		if dv.Type != ir.ObjectType {
			return &SchemaConflictError{Path: ir.PathOf(fAt...), Found: dv.Type, Want: ir.ObjectType}
		}
		if err := mergeCheck(dv, sv, fAt); err != nil {
			return err
		}
	}
	return nil
}

func merge(dst, src *ir.Node) bool {
	changed := false
	for i, f := range src.Fields {
		sv := src.Values[i]
		dv := ir.Get(dst, f.String)
		if dv == nil {
			if debug.Patch() {
				debug.Logf("merge adds %s.%s\n", dst.Path(), f.String)
			}
			dst.Append(f.String, sv.Clone())
			changed = true
			continue
		}
		if sv.Type == ir.ObjectType && merge(dv, sv) {
			changed = true
		}
	}
	return changed
}
