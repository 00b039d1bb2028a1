package ir

type Node struct {
	Type        Type
	Parent      *Node
	ParentIndex int
	ParentField string
	Fields      []*Node
	Values      []*Node

	String string
	Bool   bool
	// Number holds the numeric lexeme exactly as it appeared in the
	// input, so that re-encoding does not reformat numbers.
	Number string
}

func (y *Node) Clone() *Node {
	res := &Node{}
	return y.CloneTo(res)
}

func (y *Node) CloneTo(dst *Node) *Node {
	dst.Parent = y.Parent
	dst.ParentIndex = y.ParentIndex
	dst.ParentField = y.ParentField
	dst.Type = y.Type
	dst.Values = make([]*Node, len(y.Values))
	dst.Fields = make([]*Node, len(y.Fields))
	for i, yv := range y.Values {
		dstI := &Node{}
		yv.CloneTo(dstI)
		dstI.Parent = dst
		dstI.ParentIndex = i
		dstI.ParentField = yv.ParentField
		dst.Values[i] = dstI
	}
	for i, yf := range y.Fields {
		dstI := &Node{}
		yf.CloneTo(dstI)
		dstI.Parent = dst
		dstI.ParentIndex = i
		dstI.ParentField = yf.String
		dst.Fields[i] = dstI
	}
	dst.String = y.String
	dst.Number = y.Number
	dst.Bool = y.Bool
	return dst
}

func FromString(v string) *Node {
	return &Node{Type: StringType, String: v}
}

// FromNumber makes a number node from a JSON number lexeme.
func FromNumber(lexeme string) *Node {
	return &Node{Type: NumberType, Number: lexeme}
}

func FromBool(v bool) *Node {
	return &Node{
		Type: BoolType,
		Bool: v,
	}
}

func Null() *Node {
	return &Node{Type: NullType}
}

// Object returns an empty object node.
func Object() *Node {
	return &Node{Type: ObjectType}
}

type KeyVal struct {
	Key string
	Val *Node
}

// FromKeyVals builds an object whose fields appear in the order of kvs.
func FromKeyVals(kvs []KeyVal) *Node {
	res := Object()
	res.Fields = make([]*Node, 0, len(kvs))
	res.Values = make([]*Node, 0, len(kvs))
	for i := range kvs {
		res.Append(kvs[i].Key, kvs[i].Val)
	}
	return res
}

func FromSlice(ySlice []*Node) *Node {
	res := &Node{
		Type: ArrayType,
	}
	res.Values = make([]*Node, len(ySlice))
	for i, y := range ySlice {
		res.Values[i] = y
		y.Parent = res
		y.ParentIndex = i
		y.ParentField = ""
	}
	return res
}

func Get(y *Node, field string) *Node {
	i := y.Index(field)
	if i == -1 {
		return nil
	}
	return y.Values[i]
}

// Index returns the position of field in the object y, or -1.
func (y *Node) Index(field string) int {
	if y.Type != ObjectType {
		return -1
	}
	for i, f := range y.Fields {
		if f.String == field {
			return i
		}
	}
	return -1
}

// Append adds field with value v at the end of the object y.  It does not
// check for an existing field; use Set for that.
func (y *Node) Append(field string, v *Node) {
	i := len(y.Fields)
	key := &Node{
		Type:        StringType,
		String:      field,
		Parent:      y,
		ParentIndex: i,
		ParentField: field,
	}
	v.Parent = y
	v.ParentIndex = i
	v.ParentField = field
	y.Fields = append(y.Fields, key)
	y.Values = append(y.Values, v)
}

// Set replaces the value of field in place, keeping its position among
// its siblings, or appends the field if absent.
func (y *Node) Set(field string, v *Node) {
	i := y.Index(field)
	if i == -1 {
		y.Append(field, v)
		return
	}
	old := y.Values[i]
	old.Parent = nil
	v.Parent = y
	v.ParentIndex = i
	v.ParentField = field
	y.Values[i] = v
}
