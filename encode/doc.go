// Package encode writes ir nodes as JSON.
//
// # Usage
//
//	data, err := encode.Bytes(node, encode.FinalNewline(true))
//
//	// colored, for a terminal
//	err := encode.Encode(node, os.Stdout, encode.EncodeColors(encode.NewColors()))
//
// The default layout is the one used for translation catalogs: 2-space
// indentation, ": " after keys, "{}" and "[]" for empty containers, and
// non-ASCII characters written literally rather than as \u escapes.
//
// # Related Packages
//
//   - github.com/Codeislaw2049/CryptoKey/localepatch/ir - document representation
//   - github.com/Codeislaw2049/CryptoKey/localepatch/parse - JSON to ir
package encode
