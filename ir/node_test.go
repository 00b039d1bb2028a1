package ir

import "testing"

func TestSetKeepsOrder(t *testing.T) {
	obj := FromKeyVals([]KeyVal{
		{Key: "z", Val: FromNumber("1")},
		{Key: "a", Val: FromNumber("2")},
		{Key: "m", Val: FromNumber("3")},
	})
	obj.Set("a", FromString("two"))
	obj.Set("b", FromBool(true))

	want := []string{"z", "a", "m", "b"}
	if len(obj.Fields) != len(want) {
		t.Fatalf("got %d fields, want %d", len(obj.Fields), len(want))
	}
	for i, f := range obj.Fields {
		if f.String != want[i] {
			t.Errorf("field %d = %q, want %q", i, f.String, want[i])
		}
		if obj.Values[i].ParentIndex != i || obj.Values[i].Parent != obj {
			t.Errorf("field %q has bad parent links", f.String)
		}
	}
	if v := Get(obj, "a"); v.Type != StringType || v.String != "two" {
		t.Errorf("a = %v", v)
	}
}

func TestCloneIsDeep(t *testing.T) {
	orig := FromKeyVals([]KeyVal{
		{Key: "a", Val: FromKeyVals([]KeyVal{{Key: "b", Val: FromString("x")}})},
	})
	c := orig.Clone()
	Get(Get(c, "a"), "b").String = "y"
	if Get(Get(orig, "a"), "b").String != "x" {
		t.Errorf("clone shares leaves with original")
	}
	if Equal(orig, c) {
		t.Errorf("modified clone compares equal")
	}
}

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b *Node
		want bool
	}{
		{"null", Null(), Null(), true},
		{"bool", FromBool(true), FromBool(false), false},
		{"number lexeme", FromNumber("1.0"), FromNumber("1"), false},
		{"string", FromString("a"), FromString("a"), true},
		{"type", FromString("1"), FromNumber("1"), false},
		{"array", FromSlice([]*Node{FromNumber("1")}), FromSlice([]*Node{FromNumber("1")}), true},
		{"array len", FromSlice(nil), FromSlice([]*Node{Null()}), false},
		{"object order",
			FromKeyVals([]KeyVal{{Key: "a", Val: Null()}, {Key: "b", Val: Null()}}),
			FromKeyVals([]KeyVal{{Key: "b", Val: Null()}, {Key: "a", Val: Null()}}),
			false},
		{"object", FromKeyVals([]KeyVal{{Key: "a", Val: Null()}}), FromKeyVals([]KeyVal{{Key: "a", Val: Null()}}), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Equal(tt.a, tt.b); got != tt.want {
				t.Errorf("Equal() = %v, want %v", got, tt.want)
			}
			if got := Equal(tt.b, tt.a); got != tt.want {
				t.Errorf("Equal(b, a) = %v, want %v", got, tt.want)
			}
		})
	}
}
