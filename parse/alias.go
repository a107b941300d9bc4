package parse

import (
	"strings"

	"github.com/najmus-sakib-hossain/zed-sub048/token"
)

func isAliasChar(c byte) bool {
	return c == '_' || c >= '0' && c <= '9' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

// aliasDef recognizes a `$name=value` definition line.
func aliasDef(line string) (string, string, bool) {
	if len(line) < 3 || line[0] != '$' {
		return "", "", false
	}
	i := 1
	for i < len(line) && isAliasChar(line[i]) {
		i++
	}
	if i == 1 || i == len(line) || line[i] != '=' {
		return "", "", false
	}
	return line[1:i], strings.TrimSpace(line[i+1:]), true
}

// define registers an alias. Its value is itself substituted first, so
// definitions may build on earlier ones.
func (p *parser) define(name, value string, pos token.Pos) error {
	if _, ok := p.aliases[name]; ok {
		return &Error{Kind: DuplicateAliasDefinition, Line: pos.Line, Col: pos.Col, Name: name}
	}
	v, err := p.substitute(value, pos)
	if err != nil {
		return err
	}
	p.aliases[name] = v
	return nil
}

// substitute replaces `$name` occurrences outside quotes. pos is the
// position of s[0].
func (p *parser) substitute(s string, pos token.Pos) (string, error) {
	if strings.IndexByte(s, '$') < 0 {
		return s, nil
	}
	b := &strings.Builder{}
	for i := 0; i < len(s); {
		c := s[i]
		if c == '"' {
			end := token.QuotedEnd([]byte(s), i)
			if end < 0 {
				b.WriteString(s[i:])
				break
			}
			b.WriteString(s[i:end])
			i = end
			continue
		}
		if c != '$' {
			b.WriteByte(c)
			i++
			continue
		}
		j := i + 1
		for j < len(s) && isAliasChar(s[j]) {
			j++
		}
		if j == i+1 {
			return "", unexpected(pos.Offset(i), "'$' without alias name")
		}
		name := s[i+1 : j]
		v, ok := p.aliases[name]
		if !ok {
			return "", &Error{Kind: UnknownAlias, Line: pos.Line, Col: pos.Col + i, Name: name}
		}
		b.WriteString(v)
		i = j
	}
	return b.String(), nil
}
