package ontonotes

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/FocuswithJustin/namecorpus/core/errors"
	"github.com/FocuswithJustin/namecorpus/core/sample"
)

const (
	enamexOpen  = "<ENAMEX"
	enamexClose = "</ENAMEX>"
	typeAttr    = `TYPE="`
)

// parseState is the tag parser state within one line.
type parseState int

const (
	outsideEntity parseState = iota
	awaitingTagClose
)

// Fallback names a lossy recovery the parser applied to malformed markup.
type Fallback string

const (
	// FallbackOverwritten: an entity was opened while another was pending.
	FallbackOverwritten Fallback = "entity_overwritten"
	// FallbackUnclosed: an entity was still open at the end of the line.
	FallbackUnclosed Fallback = "unclosed_entity"
	// FallbackUnopened: a close tag appeared with no open entity.
	FallbackUnopened Fallback = "close_without_open"
)

// Line is one decoded sentence.
type Line struct {
	Tokens    []string
	Names     []sample.Span
	Fallbacks []Fallback
}

// ParseLine decodes the raw tokens of one corpus line. All parser state is
// local to the call.
func ParseLine(tokens []string) (Line, error) {
	line := Line{Tokens: make([]string, 0, len(tokens))}
	lower := cases.Lower(language.Und)

	state := outsideEntity
	start := -1
	label := ""

	for _, tok := range tokens {
		// The open tag is split by the tokenizer; its attributes follow in
		// the next tokens.
		if strings.HasPrefix(tok, enamexOpen) {
			if state == awaitingTagClose || start >= 0 {
				line.Fallbacks = append(line.Fallbacks, FallbackOverwritten)
			}
			state = awaitingTagClose
			start = -1
			label = ""
			continue
		}

		if state == awaitingTagClose {
			if strings.HasPrefix(tok, typeAttr) {
				value := tok[len(typeAttr):]
				end := strings.Index(value, `"`)
				if end < 0 {
					return Line{}, &errors.ParseError{
						Format:  "ontonotes",
						Message: fmt.Sprintf("unterminated TYPE attribute in token %q", tok),
					}
				}
				label = lower.String(value[:end])
			}

			if !strings.Contains(tok, symbolClose) {
				continue
			}
			// Text glued after '>' is the first entity token.
			start = len(line.Tokens)
			state = outsideEntity
		}

		// A token that is only markup still takes its position, as an empty
		// string.
		line.Tokens = append(line.Tokens, NormalizeToken(tok))

		if strings.HasSuffix(tok, enamexClose) {
			if start < 0 {
				line.Fallbacks = append(line.Fallbacks, FallbackUnopened)
			} else {
				line.Names = append(line.Names, sample.Span{Start: start, End: len(line.Tokens), Type: label})
			}
			start = -1
			label = ""
		}
	}

	if state == awaitingTagClose || start >= 0 {
		line.Fallbacks = append(line.Fallbacks, FallbackUnclosed)
	}
	return line, nil
}
