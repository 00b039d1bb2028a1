package localepatch

import (
	"fmt"
	"strings"

	"github.com/Codeislaw2049/CryptoKey/localepatch/ir"
	"github.com/Codeislaw2049/CryptoKey/localepatch/parse"

	jsonpatch "github.com/evanphx/json-patch"
)

// Changes returns the RFC 7386 merge patch turning before into after.
// Its fields are in sorted order; it is meant for display, not for
// writing catalogs.
func Changes(before, after []byte) (*ir.Node, error) {
	d, err := jsonpatch.CreateMergePatch(before, after)
	if err != nil {
		return nil, fmt.Errorf("computing merge patch: %w", err)
	}
	return parse.Parse(d)
}

// VerifyChange checks that the only differences between the serialized
// documents before and after are at the allowed paths, or below them.
// Anything else, such as a removed or rewritten sibling, is
// ErrUnexpectedChange.  Field order is not compared.
func VerifyChange(before, after []byte, allowed []*ir.Path) error {
	changes, err := Changes(before, after)
	if err != nil {
		return err
	}
	if changes.Type == ir.ObjectType && len(changes.Fields) == 0 {
		return nil
	}
	var bad []string
	var walk func(node *ir.Node, at []string)
	walk = func(node *ir.Node, at []string) {
		if node.Type == ir.ObjectType && len(at) > 0 && underAllowed(at, allowed) {
			return
		}
		if node.Type != ir.ObjectType || len(node.Fields) == 0 {
			p := ir.PathOf(at...)
			if !underAllowed(at, allowed) {
				bad = append(bad, p.String())
			}
			return
		}
		for i, f := range node.Fields {
			walk(node.Values[i], append(at[:len(at):len(at)], f.String))
		}
	}
	walk(changes, nil)
	if len(bad) != 0 {
		return fmt.Errorf("%w at %s", ErrUnexpectedChange, strings.Join(bad, ", "))
	}
	return nil
}

func underAllowed(at []string, allowed []*ir.Path) bool {
	for _, p := range allowed {
		segs := p.Segments()
		if len(segs) > len(at) {
			continue
		}
		match := true
		for i := range segs {
			if segs[i] != at[i] {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}
