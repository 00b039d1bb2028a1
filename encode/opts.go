package encode

type EncodeOption func(*EncState)

// Indent sets the number of spaces per nesting level.
func Indent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) {
		if c == nil {
			es.Color = nil
			return
		}
		es.Color = c.Color
	}
}

// EncodeWire writes the compact form, without newlines or indentation.
func EncodeWire(v bool) EncodeOption {
	return func(es *EncState) { es.wire = v }
}

// FinalNewline terminates the output with a newline.
func FinalNewline(v bool) EncodeOption {
	return func(es *EncState) { es.finalNL = v }
}
