package parse

import (
	"errors"
	"fmt"
	"strings"

	"github.com/najmus-sakib-hossain/zed-sub048/abbrev"
	"github.com/najmus-sakib-hossain/zed-sub048/ir"
	"github.com/najmus-sakib-hossain/zed-sub048/token"
)

// parser holds the state shared by the human and LLM parsers.
type parser struct {
	opts    *parseOpts
	llm     bool
	root    *ir.Value
	aliases map[string]string
	// prevPath is the last resolved statement key, relative to section.
	prevPath []string
	section  []string
	dict     *abbrev.Dict
}

func newParser(opts *parseOpts, llm bool) *parser {
	return &parser{
		opts:    opts,
		llm:     llm,
		root:    ir.NewObject(),
		aliases: map[string]string{},
		dict:    opts.dict,
	}
}

func errAt(kind Kind, pos token.Pos, msg string, args ...any) *Error {
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}
	return &Error{Kind: kind, Line: pos.Line, Col: pos.Col, Msg: msg}
}

func unexpected(pos token.Pos, msg string, args ...any) *Error {
	return errAt(UnexpectedToken, pos, msg, args...)
}

// tokErr converts a tokenizer failure.
func tokErr(err error) error {
	var te *token.TokenizeErr
	if !errors.As(err, &te) {
		return &Error{Kind: UnexpectedToken, Err: err}
	}
	kind := UnexpectedToken
	if errors.Is(te.Err, token.ErrUnterminated) {
		kind = UnterminatedString
	}
	return &Error{Kind: kind, Line: te.Pos.Line, Col: te.Pos.Col, Err: te.Err}
}

// tokenizeAt tokenizes s, a piece of a line starting at pos.
func tokenizeAt(s string, pos token.Pos, llm bool) ([]token.Token, error) {
	mode := token.TokenHuman()
	if llm {
		mode = token.TokenLLM()
	}
	ln, err := token.TokenizeLine([]byte(s), pos.Line, mode)
	if err != nil {
		var te *token.TokenizeErr
		if errors.As(err, &te) {
			te.Pos.Col += pos.Col - 1
		}
		return nil, tokErr(err)
	}
	for i := range ln.Tokens {
		ln.Tokens[i].Pos.Col += pos.Col - 1
	}
	return ln.Tokens, nil
}

// keySpec is a resolved key.
type keySpec struct {
	segs []string
	// hint is the type hint letter following '%', or 0.
	hint byte
}

// resolveKey resolves the key text of a statement or pair. Statement keys
// may be dotted and may start with '^'; pair keys are single segments.
func (p *parser) resolveKey(text string, pos token.Pos, statement bool) (keySpec, error) {
	var res keySpec
	caret := strings.HasPrefix(text, "^")
	if caret {
		if !statement {
			return res, unexpected(pos, "'^' is only allowed on statement keys")
		}
		text = text[1:]
		if strings.HasPrefix(text, "^") {
			return res, unexpected(pos, "prefix inheritance does not cascade")
		}
	}
	if i := token.IndexUnquoted(text, "%"); i >= 0 {
		h := text[i+1:]
		if len(h) != 1 {
			return res, unexpected(pos.Offset(i), "bad type hint %q", h)
		}
		if _, ok := ir.ColumnTypeFromHint(h[0]); !ok {
			return res, unexpected(pos.Offset(i), "bad type hint %q", h)
		}
		res.hint = h[0]
		text = text[:i]
	}
	segs, err := p.splitKey(text, pos)
	if err != nil {
		return res, err
	}
	if !statement {
		if len(segs) != 1 {
			return res, unexpected(pos, "dotted key %q in object", text)
		}
		res.segs = segs
		return res, nil
	}
	if caret && len(p.prevPath) > 1 {
		prefix := p.prevPath[:len(p.prevPath)-1]
		segs = append(append([]string{}, prefix...), segs...)
	}
	p.prevPath = segs
	res.segs = segs
	return res, nil
}

// splitKey splits a dotted key, checking bare segments and expanding
// abbreviations.
func (p *parser) splitKey(text string, pos token.Pos) ([]string, error) {
	segs, quoted, err := ir.SplitPathQuoted(text)
	if err != nil {
		return nil, &Error{Kind: UnexpectedToken, Line: pos.Line, Col: pos.Col, Err: err}
	}
	for i, seg := range segs {
		if quoted[i] {
			continue
		}
		if strings.ContainsAny(seg, "$^:=>!?%()[]|#") {
			return nil, unexpected(pos, "bad key segment %q", seg)
		}
		segs[i] = p.expand(seg)
	}
	return segs, nil
}

func (p *parser) expand(seg string) string {
	if !p.llm || p.dict == nil {
		return seg
	}
	return p.dict.Expand(seg)
}

// fullPath prefixes segs with the current section.
func (p *parser) fullPath(segs []string) []string {
	if len(p.section) == 0 {
		return segs
	}
	return append(append([]string{}, p.section...), segs...)
}

// insert sets path below the root to v, creating intermediate objects.
func (p *parser) insert(path []string, v *ir.Value, pos token.Pos) error {
	if p.opts.maxDepth > 0 && len(path) > p.opts.maxDepth {
		return errAt(LimitExceeded, pos, "key depth %d exceeds %d", len(path), p.opts.maxDepth)
	}
	cur, err := p.objectAt(path[:len(path)-1], pos)
	if err != nil {
		return err
	}
	return p.set(cur, path, v, pos)
}

// set sets the last element of path in obj.
func (p *parser) set(obj *ir.Value, path []string, v *ir.Value, pos token.Pos) error {
	last := path[len(path)-1]
	if _, exists := obj.Field(last); exists && p.opts.strict {
		return &Error{Kind: DuplicateKey, Line: pos.Line, Col: pos.Col, Name: ir.JoinPath(path)}
	}
	obj.Set(last, v)
	return nil
}

// objectAt returns the object at path, creating it and any missing
// parents. Non-object values in the way are replaced unless parsing
// strictly.
func (p *parser) objectAt(path []string, pos token.Pos) (*ir.Value, error) {
	if p.opts.maxDepth > 0 && len(path) > p.opts.maxDepth {
		return nil, errAt(LimitExceeded, pos, "key depth %d exceeds %d", len(path), p.opts.maxDepth)
	}
	cur := p.root
	for i, seg := range path {
		next, ok := cur.Field(seg)
		if ok && next.Type == ir.ObjectType {
			cur = next
			continue
		}
		if ok && p.opts.strict {
			return nil, &Error{Kind: DuplicateKey, Line: pos.Line, Col: pos.Col, Name: ir.JoinPath(path[:i+1])}
		}
		next = ir.NewObject()
		cur.Set(seg, next)
		cur = next
	}
	return cur, nil
}

// pragma applies a `#!name=value` line. Unknown pragmas are ignored.
func (p *parser) pragma(pr *token.Pragma, n int) error {
	switch pr.Name {
	case "abbrev":
		if !p.llm {
			return nil
		}
		d, ok := abbrev.Lookup(pr.Value)
		if !ok {
			return unexpected(token.Pos{Line: n, Col: 1}, "unknown abbreviation dictionary %q", pr.Value)
		}
		if p.dict == nil {
			p.dict = d
		}
	}
	return nil
}

func checkSize(text []byte, o *parseOpts) error {
	if o.maxInputSize > 0 && len(text) > o.maxInputSize {
		return &Error{
			Kind: InputTooLarge,
			Msg:  fmt.Sprintf("%d bytes exceeds limit of %d", len(text), o.maxInputSize),
		}
	}
	return nil
}

// recoverErr turns a panic below the parser entry points into an
// UnexpectedToken error.
func recoverErr(doc **ir.Document, err *error) {
	if r := recover(); r != nil {
		*doc = nil
		*err = &Error{Kind: UnexpectedToken, Msg: fmt.Sprintf("internal error: %v", r)}
	}
}
