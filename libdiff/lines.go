// Package libdiff computes line diffs between two versions of a file and
// renders them in unified format.
package libdiff

import (
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

type Op int8

const (
	Equal Op = iota
	Delete
	Insert
)

func (o Op) Prefix() string {
	switch o {
	case Delete:
		return "-"
	case Insert:
		return "+"
	default:
		return " "
	}
}

// Line is one line of a diff, without its line terminator.  NoEOL marks
// the last line of a text that does not end in a newline.
type Line struct {
	Op    Op
	Text  string
	NoEOL bool
}

// Lines returns the line diff turning from into to.
func Lines(from, to string) []Line {
	dmp := diffpatch.New()
	a, b, lines := dmp.DiffLinesToChars(from, to)
	diffs := dmp.DiffMain(a, b, false)
	diffs = dmp.DiffCharsToLines(diffs, lines)
	var res []Line
	for i := range diffs {
		d := &diffs[i]
		var op Op
		switch d.Type {
		case diffpatch.DiffDelete:
			op = Delete
		case diffpatch.DiffInsert:
			op = Insert
		default:
			op = Equal
		}
		for _, ln := range splitLines(d.Text) {
			res = append(res, Line{
				Op:    op,
				Text:  strings.TrimSuffix(ln, "\n"),
				NoEOL: !strings.HasSuffix(ln, "\n"),
			})
		}
	}
	return res
}

func splitLines(s string) []string {
	res := strings.SplitAfter(s, "\n")
	if res[len(res)-1] == "" {
		res = res[:len(res)-1]
	}
	return res
}

// Changed reports whether lines has any insertion or deletion.
func Changed(lines []Line) bool {
	for i := range lines {
		if lines[i].Op != Equal {
			return true
		}
	}
	return false
}
