package sample

import (
	"fmt"
	"slices"
	"strings"

	"github.com/FocuswithJustin/namecorpus/core/errors"
)

// Span is a labeled, half-open token range [Start, End).
type Span struct {
	// Start is the index of the first token in the span.
	Start int `json:"start"`

	// End is the index one past the last token in the span.
	End int `json:"end"`

	// Type is the lowercase entity label (e.g., "person", "gpe").
	Type string `json:"type"`
}

// Length returns the number of tokens covered by the span.
func (s Span) Length() int {
	return s.End - s.Start
}

// Contains reports whether token index i lies inside the span.
func (s Span) Contains(i int) bool {
	return i >= s.Start && i < s.End
}

// Covered returns the tokens the span covers.
func (s Span) Covered(tokens []string) []string {
	return tokens[s.Start:s.End]
}

func (s Span) String() string {
	return fmt.Sprintf("[%d..%d) %s", s.Start, s.End, s.Type)
}

// validate checks the span against a token sequence of length n.
func (s Span) validate(n int) error {
	if s.Start < 0 || s.Start >= s.End || s.End > n {
		return &errors.ValidationError{
			Field:   "span",
			Value:   s.String(),
			Message: fmt.Sprintf("span must satisfy 0 <= start < end <= %d", n),
		}
	}
	return nil
}

// NameSample is one sentence of tokens with its entity spans.
type NameSample struct {
	// Tokens is the cleaned token sequence.
	Tokens []string `json:"tokens"`

	// Names are the entity spans over Tokens, in source order.
	Names []Span `json:"names"`

	// ClearAdaptiveData is true for the first sample of a document.
	ClearAdaptiveData bool `json:"clear_adaptive_data"`
}

// New builds a NameSample, validating every span against the tokens.
func New(tokens []string, names []Span, clearAdaptiveData bool) (NameSample, error) {
	for _, s := range names {
		if err := s.validate(len(tokens)); err != nil {
			return NameSample{}, err
		}
	}
	return NameSample{
		Tokens:            slices.Clone(tokens),
		Names:             slices.Clone(names),
		ClearAdaptiveData: clearAdaptiveData,
	}, nil
}

// Equal reports whether two samples have the same tokens, spans and flag.
func (s NameSample) Equal(o NameSample) bool {
	return s.ClearAdaptiveData == o.ClearAdaptiveData &&
		slices.Equal(s.Tokens, o.Tokens) &&
		slices.Equal(s.Names, o.Names)
}

// String renders the sample in the OpenNLP name finder training format:
//
//	<START:person> John Smith <END> works here
func (s NameSample) String() string {
	parts := make([]string, 0, len(s.Tokens)+2*len(s.Names))
	for i, tok := range s.Tokens {
		for _, n := range s.Names {
			if n.Start != i {
				continue
			}
			if n.Type == "" {
				parts = append(parts, "<START>")
			} else {
				parts = append(parts, "<START:"+n.Type+">")
			}
		}
		parts = append(parts, tok)
		for _, n := range s.Names {
			if n.End == i+1 {
				parts = append(parts, "<END>")
			}
		}
	}
	return strings.Join(parts, " ")
}
