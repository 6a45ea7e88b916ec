package ontonotes

import "strings"

const (
	symbolOpen  = "<"
	symbolClose = ">"
	attrAssign  = `="`
)

// NormalizeToken removes tag fragments glued to a raw token and maps bracket
// escapes to punctuation.
//
//	TYPE="PERSON">John  -> John
//	Smith</ENAMEX>      -> Smith
//	-LRB-               -> (
func NormalizeToken(token string) string {
	// Tail of an opening tag: everything through the first '>'.
	if strings.Contains(token, attrAssign) {
		if i := strings.Index(token, symbolClose); i >= 0 {
			token = token[i+1:]
		}
	}

	// Embedded tag: '<' ... '>' inclusive.
	if open := strings.Index(token, symbolOpen); open >= 0 {
		if n := strings.Index(token[open:], symbolClose); n >= 0 {
			token = token[:open] + token[open+n+1:]
		}
	}

	if lit, ok := Unescape(token); ok {
		return lit
	}
	return token
}
