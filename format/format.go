package format

import (
	"errors"
	"fmt"
)

type Format int

const (
	HumanFormat Format = iota
	LLMFormat
	MachineFormat
	JSONFormat
	YAMLFormat
)

var ErrBadFormat = errors.New("bad format")

func ParseFormat(v string) (Format, error) {
	f, ok := map[string]Format{
		"h":       HumanFormat,
		"human":   HumanFormat,
		"dx":      HumanFormat,
		"l":       LLMFormat,
		"llm":     LLMFormat,
		"m":       MachineFormat,
		"machine": MachineFormat,
		"bin":     MachineFormat,
		"j":       JSONFormat,
		"json":    JSONFormat,
		"y":       YAMLFormat,
		"yaml":    YAMLFormat,
	}[v]
	if ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

func (f Format) String() string {
	d, err := f.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (f Format) MarshalText() ([]byte, error) {
	switch f {
	case HumanFormat:
		return []byte("human"), nil
	case LLMFormat:
		return []byte("llm"), nil
	case MachineFormat:
		return []byte("machine"), nil
	case JSONFormat:
		return []byte("json"), nil
	case YAMLFormat:
		return []byte("yaml"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a format>", f)
	}
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

func (f Format) IsHuman() bool   { return f == HumanFormat }
func (f Format) IsLLM() bool     { return f == LLMFormat }
func (f Format) IsMachine() bool { return f == MachineFormat }

// IsBinary reports whether documents in this format are not UTF-8 text.
func (f Format) IsBinary() bool { return f == MachineFormat }

// IsBridge reports whether the format is an import/export format which does
// not round-trip table schemas.
func (f Format) IsBridge() bool { return f == JSONFormat || f == YAMLFormat }

// Suffix returns the file extension for this format (including the dot).
func (f Format) Suffix() string {
	switch f {
	case HumanFormat:
		return ".dx"
	case LLMFormat:
		return ".llm"
	case MachineFormat:
		return ".dxb"
	case JSONFormat:
		return ".json"
	case YAMLFormat:
		return ".yaml"
	default:
		return ""
	}
}

// FromSuffix returns the format for a file extension (including the dot).
func FromSuffix(suffix string) (Format, error) {
	for _, f := range append(RoundTripFormats(), JSONFormat, YAMLFormat) {
		if f.Suffix() == suffix {
			return f, nil
		}
	}
	if suffix == ".yml" {
		return YAMLFormat, nil
	}
	return 0, fmt.Errorf("%w: no format for suffix %q", ErrBadFormat, suffix)
}

// RoundTripFormats returns the formats which convert to and from a document
// without loss, in preference order.
func RoundTripFormats() []Format {
	return []Format{HumanFormat, LLMFormat, MachineFormat}
}
