package ir

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type pathTest struct {
	In       string
	Segments []string
	Out      string
	Err      error
}

var pathTests = []pathTest{
	{
		In:       "a",
		Segments: []string{"a"},
		Out:      "a",
	},
	{
		In:       "wizard.resultStep.fileContent.ciphertext",
		Segments: []string{"wizard", "resultStep", "fileContent", "ciphertext"},
		Out:      "wizard.resultStep.fileContent.ciphertext",
	},
	{
		In:       "$.a.b",
		Segments: []string{"a", "b"},
		Out:      "a.b",
	},
	{
		In:       "units.'km.h'.label",
		Segments: []string{"units", "km.h", "label"},
		Out:      "units.'km.h'.label",
	},
	{
		In:       `a.'it\'s'`,
		Segments: []string{"a", "it's"},
		Out:      `a.'it\'s'`,
	},
	{
		In:       "'plain'.x",
		Segments: []string{"plain", "x"},
		Out:      "plain.x",
	},
	{
		In:  "",
		Err: ErrPath,
	},
	{
		In:  "a..b",
		Err: ErrNoField,
	},
	{
		In:  "a.",
		Err: ErrNoField,
	},
	{
		In:  "a.'b",
		Err: ErrPath,
	},
	{
		In:  "'a'b",
		Err: ErrPath,
	},
}

func TestParsePath(t *testing.T) {
	for i, pt := range pathTests {
		p, err := ParsePath(pt.In)
		if pt.Err != nil {
			if !errors.Is(err, pt.Err) {
				t.Errorf("test %d %q: expected %v got %v", i, pt.In, pt.Err, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("test %d %q: %v", i, pt.In, err)
			continue
		}
		if diff := cmp.Diff(pt.Segments, p.Segments()); diff != "" {
			t.Errorf("test %d %q: segments (-want +got):\n%s", i, pt.In, diff)
		}
		if got := p.String(); got != pt.Out {
			t.Errorf("test %d %q: String() = %q, want %q", i, pt.In, got, pt.Out)
		}
		again, err := ParsePath(p.String())
		if err != nil {
			t.Errorf("test %d: reparse %q: %v", i, p.String(), err)
			continue
		}
		if !again.Equal(p) {
			t.Errorf("test %d: reparse of %q differs", i, p.String())
		}
	}
}

func TestPathHelpers(t *testing.T) {
	p := MustParsePath("a.b.c")
	if p.Len() != 3 {
		t.Errorf("Len() = %d", p.Len())
	}
	if p.Last().Field != "c" {
		t.Errorf("Last() = %q", p.Last().Field)
	}
	if !PathOf("a", "b", "c").Equal(p) {
		t.Errorf("PathOf differs from parsed path")
	}
	if got := PathOf("a", "b").Join("c"); !got.Equal(p) {
		t.Errorf("Join() = %s", got)
	}
	if PathOf("a", "b").Equal(p) {
		t.Errorf("prefix compared equal")
	}
}

func TestNodePath(t *testing.T) {
	leaf := FromString("x")
	doc := FromKeyVals([]KeyVal{
		{Key: "a", Val: FromKeyVals([]KeyVal{
			{Key: "b.c", Val: FromSlice([]*Node{Null(), leaf})},
		})},
	})
	if got, want := leaf.Path(), "a.'b.c'[1]"; got != want {
		t.Errorf("Path() = %q, want %q", got, want)
	}
	if doc.Path() != "" {
		t.Errorf("root path = %q", doc.Path())
	}
	if got := doc.GetPath(PathOf("a", "b.c")); got == nil || got.Type != ArrayType {
		t.Errorf("GetPath returned %v", got)
	}
	if got := doc.GetPath(PathOf("a", "missing")); got != nil {
		t.Errorf("GetPath on missing field returned %v", got)
	}
	if got := doc.GetPath(PathOf("a", "b.c", "d")); got != nil {
		t.Errorf("GetPath through array returned %v", got)
	}
}
