package parse

import (
	"fmt"

	"github.com/najmus-sakib-hossain/zed-sub048/format"
	"github.com/najmus-sakib-hossain/zed-sub048/ir"
)

// Parse parses text in the format selected by ParseFormat (human by
// default).
func Parse(text []byte, opts ...ParseOption) (*ir.Document, error) {
	o := newParseOpts(opts)
	switch o.format {
	case format.HumanFormat:
		return Human(text, opts...)
	case format.LLMFormat:
		return LLM(text, opts...)
	}
	return nil, fmt.Errorf("%w: %s is not a text format", ErrParse, o.format)
}

// ParseString is Parse for strings.
func ParseString(text string, opts ...ParseOption) (*ir.Document, error) {
	return Parse([]byte(text), opts...)
}
