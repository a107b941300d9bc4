package gomap

import (
	"github.com/najmus-sakib-hossain/zed-sub048/convert"
	"github.com/najmus-sakib-hossain/zed-sub048/format"
)

// Marshal maps v to a document and encodes it in format f.
func Marshal(v any, f format.Format) ([]byte, error) {
	doc, err := ToDocument(v)
	if err != nil {
		return nil, err
	}
	return convert.New().FromDocument(doc, f)
}

// Unmarshal decodes d from format f into the value p points to.
func Unmarshal(d []byte, f format.Format, p any) error {
	doc, err := convert.New().ToDocument(d, f)
	if err != nil {
		return err
	}
	return FromDocument(doc, p)
}
