package parse

// DefaultMaxDepth bounds the nesting of objects and arrays.
const DefaultMaxDepth = 512

type parseOpts struct {
	maxDepth int
}
