package localepatch

import (
	"errors"
	"testing"

	"github.com/Codeislaw2049/CryptoKey/localepatch/encode"
)

func TestMerge(t *testing.T) {
	tests := []struct {
		name    string
		dst     string
		src     string
		res     string
		changed bool
		err     error
	}{
		{
			name:    "fills missing",
			dst:     `{"a":"A"}`,
			src:     `{"a":"a","b":{"c":"c"}}`,
			res:     `{"a":"A","b":{"c":"c"}}`,
			changed: true,
		},
		{
			name:    "nested",
			dst:     `{"b":{"d":"D"},"a":"A"}`,
			src:     `{"a":"a","b":{"c":"c","d":"d"}}`,
			res:     `{"b":{"d":"D","c":"c"},"a":"A"}`,
			changed: true,
		},
		{
			name: "nothing missing",
			dst:  `{"a":"A","b":{"c":"C"},"x":1}`,
			src:  `{"a":"a","b":{"c":"c"}}`,
			res:  `{"a":"A","b":{"c":"C"},"x":1}`,
		},
		{
			name: "scalar in dst wins over scalar",
			dst:  `{"a":{"k":"v"}}`,
			src:  `{"a":"flat"}`,
			res:  `{"a":{"k":"v"}}`,
		},
		{
			name: "object meets scalar",
			dst:  `{"a":{"b":"x"}}`,
			src:  `{"a":{"b":{"c":"c"}},"z":"z"}`,
			res:  `{"a":{"b":"x"}}`,
			err:  ErrSchemaConflict,
		},
		{
			name: "root not object",
			dst:  `[]`,
			src:  `{}`,
			res:  `[]`,
			err:  ErrSchemaConflict,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			dst := mustParse(t, test.dst)
			src := mustParse(t, test.src)
			changed, err := Merge(dst, src)
			if test.err != nil {
				if !errors.Is(err, test.err) {
					t.Errorf("got error %v, want %v", err, test.err)
				}
			} else if err != nil {
				t.Fatal(err)
			}
			if changed != test.changed {
				t.Errorf("changed = %t, want %t", changed, test.changed)
			}
			got, err := encode.Bytes(dst, encode.EncodeWire(true))
			if err != nil {
				t.Fatal(err)
			}
			if string(got) != test.res {
				t.Errorf("got %s, want %s", got, test.res)
			}
		})
	}
}

func TestMergeDoesNotShareNodes(t *testing.T) {
	dst := mustParse(t, `{}`)
	src := mustParse(t, `{"a":{"b":"c"}}`)
	if _, err := Merge(dst, src); err != nil {
		t.Fatal(err)
	}
	if _, err := ApplyString(dst, "a.b", "changed"); err != nil {
		t.Fatal(err)
	}
	if got := mustEncode(t, src); got != "{\n  \"a\": {\n    \"b\": \"c\"\n  }\n}" {
		t.Errorf("source modified through destination: %s", got)
	}
}
