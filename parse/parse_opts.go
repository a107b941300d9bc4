package parse

import (
	"github.com/najmus-sakib-hossain/zed-sub048/abbrev"
	"github.com/najmus-sakib-hossain/zed-sub048/format"
)

const (
	DefaultMaxInputSize = 100 * 1024 * 1024
	DefaultMaxDepth     = 1000
	DefaultMaxTableRows = 10_000_000
)

type parseOpts struct {
	format       format.Format
	strict       bool
	maxInputSize int
	maxDepth     int
	maxTableRows int
	dict         *abbrev.Dict
}

func newParseOpts(opts []ParseOption) *parseOpts {
	res := &parseOpts{
		format:       format.HumanFormat,
		maxInputSize: DefaultMaxInputSize,
		maxDepth:     DefaultMaxDepth,
		maxTableRows: DefaultMaxTableRows,
	}
	for _, f := range opts {
		f(res)
	}
	return res
}

type ParseOption func(*parseOpts)

func ParseHuman() ParseOption {
	return ParseFormat(format.HumanFormat)
}
func ParseLLM() ParseOption {
	return ParseFormat(format.LLMFormat)
}
func ParseFormat(f format.Format) ParseOption {
	return func(o *parseOpts) { o.format = f }
}

// Strict makes duplicate keys an error instead of last write wins.
func Strict(v bool) ParseOption {
	return func(o *parseOpts) { o.strict = v }
}

// MaxInputSize bounds the input length in bytes. Zero or negative means
// no limit.
func MaxInputSize(n int) ParseOption {
	return func(o *parseOpts) { o.maxInputSize = n }
}

// MaxDepth bounds the nesting depth of keys and inline values.
func MaxDepth(n int) ParseOption {
	return func(o *parseOpts) { o.maxDepth = n }
}

// MaxTableRows bounds the number of rows of any one table.
func MaxTableRows(n int) ParseOption {
	return func(o *parseOpts) { o.maxTableRows = n }
}

// WithDict expands abbreviated keys in LLM input with d even without an
// `#!abbrev` pragma.
func WithDict(d *abbrev.Dict) ParseOption {
	return func(o *parseOpts) { o.dict = d }
}
