package parse

// DefaultMaxDepth bounds the nesting depth of parsed documents. The
// parser recurses per nesting level, so the limit is enforced rather
// than advisory.
const DefaultMaxDepth = 1000

type parseOpts struct {
	maxDepth int
}

type ParseOption func(*parseOpts)

func MaxDepth(n int) ParseOption {
	return func(o *parseOpts) { o.maxDepth = n }
}
