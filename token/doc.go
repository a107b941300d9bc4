// Package token provides line oriented tokenization for the dx text
// formats.
//
// [Tokenize] splits a whole document into [Line]s; [TokenizeLine] works on
// one line at a time, which lets parsers rewrite a line (alias
// substitution) before tokenizing it.
//
// Words are whitespace separated runs which may contain double quoted
// segments, so `a."b c".d:1` is a single word. In LLM mode the brackets
// ()[] are tokens of their own.
//
// [Classify], [NeedsQuote] and [Quote] define the literal grammar shared by
// the parsers and formatters.
package token
