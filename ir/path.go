package ir

import (
	"bytes"
	"fmt"
	"strings"
)

// Path is a dotted sequence of object fields, such as
// wizard.resultStep.fileContent.ciphertext.  Fields containing a dot, a
// single quote or brackets are written single-quoted, with a backslash
// before each literal single quote.
type Path struct {
	Field string
	Next  *Path
}

// Path returns the dotted path of y from the root of its tree.  The root
// itself has the empty path.
func (y *Node) Path() string {
	if y.Parent == nil {
		return ""
	}
	prefix := y.Parent.Path()
	switch y.Parent.Type {
	case ObjectType:
		if prefix == "" {
			return pathString(y.ParentField)
		}
		return prefix + "." + pathString(y.ParentField)
	case ArrayType:
		return fmt.Sprintf("%s[%d]", prefix, y.ParentIndex)
	default:
		panic("parent but not in container")
	}
}

func (p *Path) String() string {
	buf := bytes.NewBuffer(nil)
	x := p
	for x != nil {
		if buf.Len() > 0 {
			buf.WriteByte('.')
		}
		buf.WriteString(pathString(x.Field))
		x = x.Next
	}
	return buf.String()
}

// Segments returns the fields of p in order.
func (p *Path) Segments() []string {
	var res []string
	for x := p; x != nil; x = x.Next {
		res = append(res, x.Field)
	}
	return res
}

func (p *Path) Len() int {
	n := 0
	for x := p; x != nil; x = x.Next {
		n++
	}
	return n
}

// Last returns the terminal segment of p.
func (p *Path) Last() *Path {
	x := p
	for x != nil && x.Next != nil {
		x = x.Next
	}
	return x
}

func (p *Path) Equal(o *Path) bool {
	for p != nil && o != nil {
		if p.Field != o.Field {
			return false
		}
		p, o = p.Next, o.Next
	}
	return p == nil && o == nil
}

// Join returns a new path of p followed by field.
func (p *Path) Join(field string) *Path {
	return PathOf(append(p.Segments(), field)...)
}

// PathOf builds a path from literal fields, without any quoting rules.
func PathOf(fields ...string) *Path {
	var root, last *Path
	for _, f := range fields {
		x := &Path{Field: f}
		if root == nil {
			root = x
		} else {
			last.Next = x
		}
		last = x
	}
	return root
}

// ParsePath parses a dotted path.  A leading "$." as written by older
// tools is accepted and ignored.
func ParsePath(p string) (*Path, error) {
	if strings.HasPrefix(p, "$.") {
		p = p[2:]
	}
	if p == "" {
		return nil, fmt.Errorf("%w: empty path", ErrPath)
	}
	root := &Path{}
	if err := parseFrag(p, root); err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrPath, p, err)
	}
	return root, nil
}

func MustParsePath(p string) *Path {
	res, err := ParsePath(p)
	if err != nil {
		panic(err)
	}
	return res
}

func parseFrag(frag string, parent *Path) error {
	field, rest, err := parseField(frag)
	if err != nil {
		return err
	}
	parent.Field = field
	if len(rest) == 0 {
		return nil
	}
	if rest[0] != '.' {
		return fmt.Errorf("expected '.' after field %q", field)
	}
	next := &Path{}
	if err := parseFrag(rest[1:], next); err != nil {
		return err
	}
	parent.Next = next
	return nil
}

func parseField(frag string) (field, rest string, err error) {
	if len(frag) == 0 {
		return "", "", ErrNoField
	}
	if frag[0] != '\'' {
		i := strings.IndexByte(frag, '.')
		if i == 0 {
			return "", "", ErrNoField
		}
		if i == -1 {
			return frag, "", nil
		}
		return frag[:i], frag[i:], nil
	}
	escaped := false
	res := make([]byte, 0, len(frag))
	for i := 1; i < len(frag); i++ {
		c := frag[i]
		switch c {
		case '\\':
			if escaped {
				res = append(res, c)
				escaped = false
				continue
			}
			escaped = true
		case '\'':
			if !escaped {
				return string(res), frag[i+1:], nil
			}
			fallthrough
		default:
			escaped = false
			res = append(res, c)
		}
	}
	return "", "", fmt.Errorf("end of string scanning for \"'\"")
}

// GetPath returns the node at p below y, or nil if some field along p is
// absent or is not an object.
func (y *Node) GetPath(p *Path) *Node {
	res := y
	for x := p; x != nil; x = x.Next {
		if res.Type != ObjectType {
			return nil
		}
		res = Get(res, x.Field)
		if res == nil {
			return nil
		}
	}
	return res
}

func pathString(f string) string {
	if f != "" && strings.IndexAny(f, "'.[]\\") == -1 {
		return f
	}
	f = strings.ReplaceAll(f, "\\", "\\\\")
	return "'" + strings.ReplaceAll(f, "'", "\\'") + "'"
}
