// Package tokenize provides the tokenizer contract used by corpus readers and
// a whitespace implementation of it.
package tokenize

import "strings"

// Tokenizer splits a line into an ordered sequence of tokens.
type Tokenizer interface {
	Tokenize(line string) []string
}

// TokenizerFunc adapts a function to the Tokenizer interface.
type TokenizerFunc func(line string) []string

// Tokenize calls f(line).
func (f TokenizerFunc) Tokenize(line string) []string {
	return f(line)
}

// Whitespace splits on runs of Unicode white space. Leading and trailing white
// space never produce empty tokens.
var Whitespace Tokenizer = TokenizerFunc(strings.Fields)
