package bridge

const DefaultMaxDepth = 1000

type opts struct {
	indent   int
	maxDepth int
}

type Option func(*opts)

// Indent sets the indentation width of exported text. Zero writes JSON
// on a single line; YAML always uses at least 2.
func Indent(n int) Option {
	return func(o *opts) { o.indent = n }
}

// MaxDepth bounds nesting on import.
func MaxDepth(n int) Option {
	return func(o *opts) { o.maxDepth = n }
}

func newOpts(os []Option) *opts {
	o := &opts{maxDepth: DefaultMaxDepth}
	for _, opt := range os {
		opt(o)
	}
	return o
}
