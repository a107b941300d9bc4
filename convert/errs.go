package convert

import (
	"fmt"

	"github.com/najmus-sakib-hossain/zed-sub048/format"
)

// Document stands for the canonical document in errors from the
// primitives, which only know one side of a conversion.
const Document format.Format = -1

type Stage int

const (
	ParseStage Stage = iota
	DecodeStage
	EncodeStage
)

func (s Stage) String() string {
	switch s {
	case ParseStage:
		return "parse"
	case DecodeStage:
		return "decode"
	case EncodeStage:
		return "encode"
	}
	return "<unknown stage>"
}

// Error reports a failed conversion. Err is the parse, machine or encode
// error of the failing stage.
type Error struct {
	From  format.Format
	To    format.Format
	Stage Stage
	Err   error
}

func formatName(f format.Format) string {
	if f == Document {
		return "document"
	}
	return f.String()
}

func (e *Error) Error() string {
	return fmt.Sprintf("convert %s to %s: %s: %v", formatName(e.From), formatName(e.To), e.Stage, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func inErr(from format.Format, err error) error {
	st := ParseStage
	if from.IsBinary() {
		st = DecodeStage
	}
	return &Error{From: from, To: Document, Stage: st, Err: err}
}

func outErr(to format.Format, err error) error {
	return &Error{From: Document, To: to, Stage: EncodeStage, Err: err}
}

// pairErr fills in the side of a primitive's error that the primitive
// did not know.
func pairErr(from, to format.Format, err error) error {
	e, ok := err.(*Error)
	if !ok {
		return &Error{From: from, To: to, Stage: EncodeStage, Err: err}
	}
	r := *e
	r.From, r.To = from, to
	return &r
}
