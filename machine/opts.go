package machine

const (
	DefaultMaxDepth   = 1000
	DefaultMaxPayload = 1 << 30
)

type opts struct {
	compress   bool
	maxDepth   int
	maxPayload int
}

type Option func(*opts)

func newOpts(os []Option) *opts {
	o := &opts{maxDepth: DefaultMaxDepth, maxPayload: DefaultMaxPayload}
	for _, opt := range os {
		opt(o)
	}
	return o
}

// WithCompression zstd compresses generic payloads.
func WithCompression() Option {
	return func(o *opts) { o.compress = true }
}

// MaxDepth bounds nesting when decoding.
func MaxDepth(n int) Option {
	return func(o *opts) { o.maxDepth = n }
}

// MaxPayload bounds the decompressed payload size when decoding.
func MaxPayload(n int) Option {
	return func(o *opts) { o.maxPayload = n }
}
