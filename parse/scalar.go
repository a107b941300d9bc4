package parse

import (
	"errors"
	"strconv"
	"strings"

	"github.com/najmus-sakib-hossain/zed-sub048/base62"
	"github.com/najmus-sakib-hossain/zed-sub048/ir"
	"github.com/najmus-sakib-hossain/zed-sub048/token"
)

// wordValue converts a single word or string token to a scalar.
func wordValue(t *token.Token) (*ir.Value, error) {
	if t.Type == token.TString {
		return ir.FromString(t.String()), nil
	}
	if t.Type != token.TWord {
		return nil, unexpected(t.Pos, "expected value, found %s", t.Type)
	}
	text := string(t.Bytes)
	if strings.IndexByte(text, '"') >= 0 {
		return nil, unexpected(t.Pos, "mixed quoted word %s", text)
	}
	return literal(text, t.Pos)
}

// literal converts a bare word.
func literal(text string, pos token.Pos) (*ir.Value, error) {
	kind, err := token.Classify(text)
	if err != nil {
		return nil, &Error{Kind: IntegerOverflow, Line: pos.Line, Col: pos.Col, Msg: text}
	}
	switch kind {
	case token.KNull:
		return ir.Null(), nil
	case token.KBool:
		b, _ := token.ParseBool(text)
		return ir.FromBool(b), nil
	case token.KInt:
		i, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return nil, &Error{Kind: IntegerOverflow, Line: pos.Line, Col: pos.Col, Err: err}
		}
		return ir.FromInt(i), nil
	case token.KFloat:
		f, err := token.ParseFloat(text)
		if err != nil {
			return nil, unexpected(pos, "bad float %s", text)
		}
		return ir.FromFloat(f), nil
	}
	return ir.FromString(text), nil
}

// hintValue converts a token under a type hint.
func hintValue(t *token.Token, hint byte) (*ir.Value, error) {
	ct, _ := ir.ColumnTypeFromHint(hint)
	if hint == 'x' {
		i, err := base62Int(t)
		if err != nil {
			return nil, err
		}
		return ir.FromInt(i), nil
	}
	return typedValue(t, ct)
}

// typedValue converts a token to a value of a column type. Strings accept
// any word as is; floats accept integers.
func typedValue(t *token.Token, ct ir.ColumnType) (*ir.Value, error) {
	if ct == ir.StringColumn {
		if t.Type == token.TString {
			return ir.FromString(t.String()), nil
		}
		if t.Type != token.TWord || strings.IndexByte(string(t.Bytes), '"') >= 0 {
			return nil, unexpected(t.Pos, "bad string cell %s", t.Bytes)
		}
		return ir.FromString(string(t.Bytes)), nil
	}
	v, err := wordValue(t)
	if err != nil {
		return nil, err
	}
	switch {
	case v.Type == ct.ValueType():
		return v, nil
	case ct == ir.FloatColumn && v.Type == ir.IntType:
		f, err := token.ParseFloat(string(t.Bytes))
		if err != nil {
			return nil, unexpected(t.Pos, "bad float %s", t.Bytes)
		}
		return ir.FromFloat(f), nil
	}
	return nil, &Error{
		Kind:     SchemaMismatch,
		Line:     t.Pos.Line,
		Col:      t.Pos.Col,
		Expected: ct.ValueType().String(),
		Found:    v.Type.String(),
	}
}

func base62Int(t *token.Token) (int64, error) {
	if t.Type != token.TWord {
		return 0, unexpected(t.Pos, "base62 value must be a bare word")
	}
	i, err := base62.DecodeInt(string(t.Bytes))
	if err == nil {
		return i, nil
	}
	var de *base62.DecodeError
	switch {
	case errors.As(err, &de):
		return 0, &Error{
			Kind:     Base62DecodeError,
			Line:     t.Pos.Line,
			Col:      t.Pos.Col + de.Position,
			Char:     de.Char,
			Position: de.Position,
		}
	case errors.Is(err, base62.ErrOverflow):
		return 0, &Error{Kind: IntegerOverflow, Line: t.Pos.Line, Col: t.Pos.Col, Err: err}
	}
	return 0, unexpected(t.Pos, "bad base62 value: %v", err)
}
