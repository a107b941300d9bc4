// Package tokens estimates how many model tokens a text costs.
//
// The estimate divides the rune count by a per-model characters per
// token figure. It is used to report how much smaller one rendering of a
// document is than another and nothing depends on it being exact.
package tokens

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"unicode/utf8"
)

type Model int

const (
	GPT4o Model = iota
	Claude
	Gemini
	Llama
	Other
)

var ErrBadModel = errors.New("bad model")

var charsPerToken = map[Model]float64{
	GPT4o:  4.0,
	Claude: 3.5,
	Gemini: 4.0,
	Llama:  3.8,
	Other:  4.0,
}

func Models() []Model {
	return []Model{GPT4o, Claude, Gemini, Llama, Other}
}

func (m Model) String() string {
	s, ok := map[Model]string{
		GPT4o:  "gpt-4o",
		Claude: "claude",
		Gemini: "gemini",
		Llama:  "llama",
		Other:  "other",
	}[m]
	if ok {
		return s
	}
	return "<unknown model>"
}

func ParseModel(v string) (Model, error) {
	m, ok := map[string]Model{
		"gpt-4o":        GPT4o,
		"gpt4o":         GPT4o,
		"openai":        GPT4o,
		"claude":        Claude,
		"sonnet":        Claude,
		"claude-sonnet": Claude,
		"gemini":        Gemini,
		"gemini-3":      Gemini,
		"llama":         Llama,
		"other":         Other,
	}[strings.ToLower(v)]
	if ok {
		return m, nil
	}
	return Other, fmt.Errorf("%w: %q", ErrBadModel, v)
}

func (m Model) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *Model) UnmarshalText(d []byte) error {
	pm, err := ParseModel(string(d))
	if err != nil {
		return err
	}
	*m = pm
	return nil
}

type Info struct {
	Tokens int
	Chars  int
	Model  Model
}

// Count estimates the tokens of text for model m. Unknown models count
// as Other. Any non-empty text costs at least one token.
func Count(text string, m Model) Info {
	cpt, ok := charsPerToken[m]
	if !ok {
		m, cpt = Other, charsPerToken[Other]
	}
	n := utf8.RuneCountInString(text)
	return Info{
		Tokens: int(math.Ceil(float64(n) / cpt)),
		Chars:  n,
		Model:  m,
	}
}

// CountAll counts text for every model in Models order.
func CountAll(text string) []Info {
	ms := Models()
	res := make([]Info, len(ms))
	for i, m := range ms {
		res[i] = Count(text, m)
	}
	return res
}

// Ratio returns b's token count as a fraction of a's, so a compact
// rendering b of a document a gives a value below 1. It is 0 when a is
// empty.
func Ratio(a, b Info) float64 {
	if a.Tokens == 0 {
		return 0
	}
	return float64(b.Tokens) / float64(a.Tokens)
}

// Savings is 1 - Ratio(a, b) as a percentage.
func Savings(a, b Info) float64 {
	if a.Tokens == 0 {
		return 0
	}
	return 100 * (1 - Ratio(a, b))
}
