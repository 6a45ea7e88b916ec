package ontonotes

import (
	"maps"
	"slices"
)

// escapes maps the bracket escapes used by the OntoNotes tokenization back to
// their literal punctuation. It is never written after initialization.
var escapes = map[string]string{
	"-LRB-": "(",
	"-RRB-": ")",
	"-LSB-": "[",
	"-RSB-": "]",
	"-LCB-": "{",
	"-RCB-": "}",
	"-AMP-": "&",
}

// Unescape returns the literal for an escape token. The match is exact and
// case-sensitive.
func Unescape(token string) (string, bool) {
	lit, ok := escapes[token]
	return lit, ok
}

// EscapeLiterals returns the recognized escape tokens in sorted order.
func EscapeLiterals() []string {
	return slices.Sorted(maps.Keys(escapes))
}
