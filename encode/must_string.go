package encode

import (
	"bytes"

	"github.com/najmus-sakib-hossain/zed-sub048/ir"
)

func HumanString(doc *ir.Document, opts ...EncodeOption) (string, error) {
	buf := bytes.NewBuffer(nil)
	if err := Human(doc, buf, opts...); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func LLMString(doc *ir.Document, cfg LLMConfig) (string, error) {
	buf := bytes.NewBuffer(nil)
	if err := LLM(doc, buf, cfg); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// MustString is HumanString panicking on error.
func MustString(doc *ir.Document) string {
	s, err := HumanString(doc)
	if err != nil {
		panic(err)
	}
	return s
}
