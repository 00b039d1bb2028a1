package localepatch

import (
	"errors"
	"testing"

	"github.com/Codeislaw2049/CryptoKey/localepatch/ir"
)

func TestVerifyChange(t *testing.T) {
	allowed := []*ir.Path{
		ir.MustParsePath("wizard.resultStep.fileContent.ciphertext"),
		ir.MustParsePath("wizard.resultStep.actions.clickToSelect"),
	}
	tests := []struct {
		before, after string
		err           error
	}{
		{`{"a":1}`, `{"a":1}`, nil},
		{`{"a":1}`, `{"a":1,"wizard":{"resultStep":{"actions":{"clickToSelect":"x"}}}}`, nil},
		{
			`{"wizard":{"resultStep":{"fileContent":{"ciphertext":"old"}}}}`,
			`{"wizard":{"resultStep":{"fileContent":{"ciphertext":"new"}}}}`,
			nil,
		},
		{`{"a":1}`, `{"a":2}`, ErrUnexpectedChange},
		{`{"a":1,"b":2}`, `{"a":1}`, ErrUnexpectedChange},
		{`{"wizard":{"t":"x"}}`, `{"wizard":{"t":"y","resultStep":{"actions":{"clickToSelect":"x"}}}}`, ErrUnexpectedChange},
	}
	for i, test := range tests {
		err := VerifyChange([]byte(test.before), []byte(test.after), allowed)
		if test.err == nil && err != nil {
			t.Errorf("test %d: %v", i, err)
		}
		if test.err != nil && !errors.Is(err, test.err) {
			t.Errorf("test %d: got %v, want %v", i, err, test.err)
		}
	}
}

func TestChanges(t *testing.T) {
	changes, err := Changes([]byte(`{"a":1,"b":{"c":"x"}}`), []byte(`{"a":1,"b":{"c":"y"}}`))
	if err != nil {
		t.Fatal(err)
	}
	if got := mustEncode(t, changes); got != "{\n  \"b\": {\n    \"c\": \"y\"\n  }\n}" {
		t.Errorf("got %s", got)
	}
}
