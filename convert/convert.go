package convert

import (
	"bytes"
	"fmt"

	"github.com/najmus-sakib-hossain/zed-sub048/bridge"
	"github.com/najmus-sakib-hossain/zed-sub048/debug"
	"github.com/najmus-sakib-hossain/zed-sub048/encode"
	"github.com/najmus-sakib-hossain/zed-sub048/format"
	"github.com/najmus-sakib-hossain/zed-sub048/ir"
	"github.com/najmus-sakib-hossain/zed-sub048/machine"
	"github.com/najmus-sakib-hossain/zed-sub048/parse"
)

// Converter holds the settings of each side of a conversion. The zero
// value is not ready for use; call New.
type Converter struct {
	LLM         encode.LLMConfig
	ParseOpts   []parse.ParseOption
	MachineOpts []machine.Option
	HumanOpts   []encode.EncodeOption
	BridgeOpts  []bridge.Option
}

func New() *Converter {
	return &Converter{LLM: encode.DefaultLLMConfig()}
}

var std = New()

// Convert converts in from one format to another with default settings.
func Convert(in []byte, from, to format.Format) ([]byte, error) {
	return std.Convert(in, from, to)
}

func (c *Converter) HumanToDocument(in []byte) (*ir.Document, error) {
	doc, err := parse.Human(in, c.ParseOpts...)
	if err != nil {
		return nil, inErr(format.HumanFormat, err)
	}
	return doc, nil
}

func (c *Converter) LLMToDocument(in []byte) (*ir.Document, error) {
	doc, err := parse.LLM(in, c.ParseOpts...)
	if err != nil {
		return nil, inErr(format.LLMFormat, err)
	}
	return doc, nil
}

func (c *Converter) MachineToDocument(in []byte) (*ir.Document, error) {
	doc, err := machine.FromBytes(in, c.MachineOpts...)
	if err != nil {
		return nil, inErr(format.MachineFormat, err)
	}
	return doc, nil
}

func (c *Converter) DocumentToHuman(doc *ir.Document) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if err := encode.Human(doc, buf, c.HumanOpts...); err != nil {
		return nil, outErr(format.HumanFormat, err)
	}
	return buf.Bytes(), nil
}

func (c *Converter) DocumentToLLM(doc *ir.Document) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if err := encode.LLM(doc, buf, c.LLM); err != nil {
		return nil, outErr(format.LLMFormat, err)
	}
	return buf.Bytes(), nil
}

func (c *Converter) DocumentToMachine(doc *ir.Document) ([]byte, error) {
	return c.documentToMachine(doc, nil)
}

func (c *Converter) documentToMachine(doc *ir.Document, enc *machine.Encoder) ([]byte, error) {
	var (
		b   []byte
		err error
	)
	if enc != nil {
		b, err = enc.Encode(doc)
	} else {
		b, err = machine.ToBytes(doc, c.MachineOpts...)
	}
	if err != nil {
		return nil, outErr(format.MachineFormat, err)
	}
	return b, nil
}

func (c *Converter) HumanToLLM(in []byte) ([]byte, error) {
	doc, err := c.HumanToDocument(in)
	if err != nil {
		return nil, pairErr(format.HumanFormat, format.LLMFormat, err)
	}
	out, err := c.DocumentToLLM(doc)
	if err != nil {
		return nil, pairErr(format.HumanFormat, format.LLMFormat, err)
	}
	return out, nil
}

func (c *Converter) HumanToMachine(in []byte) ([]byte, error) {
	doc, err := c.HumanToDocument(in)
	if err != nil {
		return nil, pairErr(format.HumanFormat, format.MachineFormat, err)
	}
	out, err := c.DocumentToMachine(doc)
	if err != nil {
		return nil, pairErr(format.HumanFormat, format.MachineFormat, err)
	}
	return out, nil
}

func (c *Converter) LLMToHuman(in []byte) ([]byte, error) {
	doc, err := c.LLMToDocument(in)
	if err != nil {
		return nil, pairErr(format.LLMFormat, format.HumanFormat, err)
	}
	out, err := c.DocumentToHuman(doc)
	if err != nil {
		return nil, pairErr(format.LLMFormat, format.HumanFormat, err)
	}
	return out, nil
}

func (c *Converter) LLMToMachine(in []byte) ([]byte, error) {
	doc, err := c.LLMToDocument(in)
	if err != nil {
		return nil, pairErr(format.LLMFormat, format.MachineFormat, err)
	}
	out, err := c.DocumentToMachine(doc)
	if err != nil {
		return nil, pairErr(format.LLMFormat, format.MachineFormat, err)
	}
	return out, nil
}

func (c *Converter) MachineToHuman(in []byte) ([]byte, error) {
	doc, err := c.MachineToDocument(in)
	if err != nil {
		return nil, pairErr(format.MachineFormat, format.HumanFormat, err)
	}
	out, err := c.DocumentToHuman(doc)
	if err != nil {
		return nil, pairErr(format.MachineFormat, format.HumanFormat, err)
	}
	return out, nil
}

func (c *Converter) MachineToLLM(in []byte) ([]byte, error) {
	doc, err := c.MachineToDocument(in)
	if err != nil {
		return nil, pairErr(format.MachineFormat, format.LLMFormat, err)
	}
	out, err := c.DocumentToLLM(doc)
	if err != nil {
		return nil, pairErr(format.MachineFormat, format.LLMFormat, err)
	}
	return out, nil
}

// ToDocument parses or decodes in according to from. JSON and YAML are
// accepted as import formats.
func (c *Converter) ToDocument(in []byte, from format.Format) (*ir.Document, error) {
	switch from {
	case format.HumanFormat:
		return c.HumanToDocument(in)
	case format.LLMFormat:
		return c.LLMToDocument(in)
	case format.MachineFormat:
		return c.MachineToDocument(in)
	case format.JSONFormat:
		doc, err := bridge.FromJSON(in, c.BridgeOpts...)
		if err != nil {
			return nil, inErr(from, err)
		}
		return doc, nil
	case format.YAMLFormat:
		doc, err := bridge.FromYAML(in, c.BridgeOpts...)
		if err != nil {
			return nil, inErr(from, err)
		}
		return doc, nil
	default:
		return nil, inErr(from, fmt.Errorf("%w: %d", format.ErrBadFormat, int(from)))
	}
}

// FromDocument encodes doc in format to.
func (c *Converter) FromDocument(doc *ir.Document, to format.Format) ([]byte, error) {
	return c.fromDocument(doc, to, nil)
}

func (c *Converter) fromDocument(doc *ir.Document, to format.Format, enc *machine.Encoder) ([]byte, error) {
	switch to {
	case format.HumanFormat:
		return c.DocumentToHuman(doc)
	case format.LLMFormat:
		return c.DocumentToLLM(doc)
	case format.MachineFormat:
		return c.documentToMachine(doc, enc)
	case format.JSONFormat:
		buf := bytes.NewBuffer(nil)
		if err := bridge.ToJSON(doc, buf, c.BridgeOpts...); err != nil {
			return nil, outErr(to, err)
		}
		return buf.Bytes(), nil
	case format.YAMLFormat:
		buf := bytes.NewBuffer(nil)
		if err := bridge.ToYAML(doc, buf, c.BridgeOpts...); err != nil {
			return nil, outErr(to, err)
		}
		return buf.Bytes(), nil
	default:
		return nil, outErr(to, fmt.Errorf("%w: %d", format.ErrBadFormat, int(to)))
	}
}

// Convert converts in between any two formats.
func (c *Converter) Convert(in []byte, from, to format.Format) ([]byte, error) {
	return c.convert(in, from, to, nil)
}

func (c *Converter) convert(in []byte, from, to format.Format, enc *machine.Encoder) ([]byte, error) {
	doc, err := c.ToDocument(in, from)
	if err != nil {
		return nil, pairErr(from, to, err)
	}
	out, err := c.fromDocument(doc, to, enc)
	if err != nil {
		return nil, pairErr(from, to, err)
	}
	if debug.Convert() {
		debug.Logf("convert %s -> %s: %d -> %d bytes\n", from, to, len(in), len(out))
	}
	return out, nil
}
