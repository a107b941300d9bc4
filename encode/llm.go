package encode

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"unicode/utf8"

	"github.com/najmus-sakib-hossain/zed-sub048/abbrev"
	"github.com/najmus-sakib-hossain/zed-sub048/debug"
	"github.com/najmus-sakib-hossain/zed-sub048/ir"
)

// DefaultBase62Threshold is the magnitude above which integers are base62
// packed when LLMConfig.Base62Threshold is not set.
const DefaultBase62Threshold = 100000

// LLMConfig controls the LLM serializer. The transformations are applied
// in a fixed order: truncate, abbreviate, base62, ditto.
type LLMConfig struct {
	// AbbreviateKeys writes keys and column names abbreviated with Dict
	// and records the dictionary in a #!abbrev pragma.
	AbbreviateKeys bool
	// DittoCompress writes _ for a table cell equal to the cell above.
	DittoCompress bool
	// Base62Ints packs integers with magnitude > Base62Threshold.
	Base62Ints      bool
	Base62Threshold int64
	// MaxTextLength truncates strings to that many runes; 0 is no limit.
	// Truncated output no longer reads back as the same document.
	MaxTextLength int
	// Dict defaults to abbrev.Std.
	Dict *abbrev.Dict
}

func DefaultLLMConfig() LLMConfig {
	return LLMConfig{
		DittoCompress:   true,
		Base62Threshold: DefaultBase62Threshold,
	}
}

type llmState struct {
	cfg  LLMConfig
	dict *abbrev.Dict
	in   *inline
	buf  bytes.Buffer
}

func newLLMState(cfg LLMConfig) *llmState {
	ls := &llmState{cfg: cfg}
	if cfg.AbbreviateKeys {
		ls.dict = cfg.Dict
		if ls.dict == nil {
			ls.dict = abbrev.Std
		}
	}
	ls.in = &inline{
		key:   ls.key,
		signs: true,
		flags: true,
		ditto: cfg.DittoCompress,
	}
	if cfg.Base62Ints {
		ls.in.big = cfg.Base62Threshold
		if ls.in.big <= 0 {
			ls.in.big = DefaultBase62Threshold
		}
	}
	return ls
}

// key renders a key segment so that the parser, expanding abbreviations
// of bare keys, reads back k.
func (ls *llmState) key(k string) string {
	if ls.dict == nil || !ir.BareKey(k) {
		return ir.QuoteKey(k)
	}
	if a := ls.dict.Abbreviate(k); a != k && ir.BareKey(a) && ls.dict.Expand(a) == k {
		return a
	}
	if ls.dict.Expand(k) != k {
		return strconv.Quote(k)
	}
	return k
}

// LLM writes doc in the LLM format.
func LLM(doc *ir.Document, w io.Writer, cfg LLMConfig) error {
	if cfg.MaxTextLength > 0 {
		doc = Truncate(doc, cfg.MaxTextLength)
	}
	ls := newLLMState(cfg)
	if ls.dict != nil {
		ls.buf.WriteString("#!abbrev=" + ls.dict.Name() + "\n")
	}
	root := doc.Root
	for i, k := range root.Fields {
		if err := ls.statement(k, root.Values[i]); err != nil {
			return fmt.Errorf("%s: %w", ir.QuoteKey(k), err)
		}
	}
	if debug.Encode() {
		debug.Logf("llm: %d bytes for %d top level keys\n", ls.buf.Len(), root.Len())
	}
	_, err := w.Write(ls.buf.Bytes())
	return err
}

// statement writes one top level member on its own line. Table rows
// each get a line.
func (ls *llmState) statement(k string, v *ir.Value) error {
	if v.Type == ir.TableType {
		tf, err := ls.in.tableForm(v.Table)
		if err != nil {
			return err
		}
		ls.buf.WriteString(ls.key(k))
		tf.inline(&ls.buf, "\n")
		ls.buf.WriteByte('\n')
		return nil
	}
	if err := ls.in.pair(&ls.buf, k, v); err != nil {
		return err
	}
	ls.buf.WriteByte('\n')
	return nil
}

// Truncate returns doc with every string cut to at most n runes. doc is
// returned as is when nothing needs cutting.
func Truncate(doc *ir.Document, n int) *ir.Document {
	if n <= 0 || !hasLong(doc.Root, n) {
		return doc
	}
	res := doc.Clone()
	truncate(res.Root, n)
	return res
}

func hasLong(v *ir.Value, n int) bool {
	switch v.Type {
	case ir.StringType:
		return utf8.RuneCountInString(v.String) > n
	case ir.ArrayType, ir.ObjectType:
		for _, x := range v.Values {
			if hasLong(x, n) {
				return true
			}
		}
	case ir.TableType:
		for _, row := range v.Table.Rows {
			for _, x := range row {
				if hasLong(x, n) {
					return true
				}
			}
		}
	}
	return false
}

func truncate(v *ir.Value, n int) {
	switch v.Type {
	case ir.StringType:
		v.String = cut(v.String, n)
	case ir.ArrayType, ir.ObjectType:
		for _, x := range v.Values {
			truncate(x, n)
		}
	case ir.TableType:
		for _, row := range v.Table.Rows {
			for _, x := range row {
				truncate(x, n)
			}
		}
	}
}

func cut(s string, n int) string {
	i := 0
	for j := range s {
		if i == n {
			return s[:j]
		}
		i++
	}
	return s
}
