package localepatch

import (
	"errors"
	"fmt"

	"github.com/Codeislaw2049/CryptoKey/localepatch/ir"
)

var (
	ErrSchemaConflict   = errors.New("schema conflict")
	ErrEmptyPath        = errors.New("empty patch path")
	ErrUnexpectedChange = errors.New("unexpected change")
)

// SchemaConflictError reports a field along a patch path which exists but
// does not have the type the patch needs there.
type SchemaConflictError struct {
	Path  *ir.Path
	Found ir.Type
	Want  ir.Type
}

func (e *SchemaConflictError) Error() string {
	at := e.Path.String()
	if at == "" {
		at = "document root"
	}
	return fmt.Sprintf("%s at %s: found %s, want %s", ErrSchemaConflict, at, e.Found, e.Want)
}

func (e *SchemaConflictError) Is(target error) bool {
	return target == ErrSchemaConflict
}
