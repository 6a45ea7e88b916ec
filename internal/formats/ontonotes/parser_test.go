package ontonotes

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	cerrors "github.com/FocuswithJustin/namecorpus/core/errors"
	"github.com/FocuswithJustin/namecorpus/core/sample"
)

func parse(t *testing.T, line string) Line {
	t.Helper()
	got, err := ParseLine(strings.Fields(line))
	if err != nil {
		t.Fatalf("ParseLine(%q) error = %v", line, err)
	}
	return got
}

func TestParseLine(t *testing.T) {
	tests := []struct {
		name      string
		line      string
		tokens    []string
		names     []sample.Span
		fallbacks []Fallback
	}{
		{
			name:   "person at start",
			line:   `<ENAMEX TYPE="PERSON">John Smith</ENAMEX> works here`,
			tokens: []string{"John", "Smith", "works", "here"},
			names:  []sample.Span{{Start: 0, End: 2, Type: "person"}},
		},
		{
			name:   "escapes without markup",
			line:   "He said -LRB- loudly -RRB-",
			tokens: []string{"He", "said", "(", "loudly", ")"},
		},
		{
			name:   "single token entity mid line",
			line:   `flights to <ENAMEX TYPE="GPE">Paris</ENAMEX> today`,
			tokens: []string{"flights", "to", "Paris", "today"},
			names:  []sample.Span{{Start: 2, End: 3, Type: "gpe"}},
		},
		{
			name:   "two entities",
			line:   `<ENAMEX TYPE="ORG">IBM</ENAMEX> hired <ENAMEX TYPE="PERSON">Ann Lee</ENAMEX>`,
			tokens: []string{"IBM", "hired", "Ann", "Lee"},
			names: []sample.Span{
				{Start: 0, End: 1, Type: "org"},
				{Start: 2, End: 4, Type: "person"},
			},
		},
		{
			name:   "extra attributes",
			line:   `<ENAMEX TYPE="ORG" S_OFF="1">Foo Corp</ENAMEX> said`,
			tokens: []string{"Foo", "Corp", "said"},
			names:  []sample.Span{{Start: 0, End: 2, Type: "org"}},
		},
		{
			name:   "escape inside entity",
			line:   `<ENAMEX TYPE="ORG">AT -AMP- T</ENAMEX>`,
			tokens: []string{"AT", "&", "T"},
			names:  []sample.Span{{Start: 0, End: 3, Type: "org"}},
		},
		{
			name:   "mixed case label",
			line:   `<ENAMEX TYPE="Work_Of_Art">Hamlet</ENAMEX>`,
			tokens: []string{"Hamlet"},
			names:  []sample.Span{{Start: 0, End: 1, Type: "work_of_art"}},
		},
		{
			name:      "unclosed entity dropped",
			line:      `<ENAMEX TYPE="PERSON">John went home`,
			tokens:    []string{"John", "went", "home"},
			fallbacks: []Fallback{FallbackUnclosed},
		},
		{
			name:      "open tag never terminated",
			line:      `said <ENAMEX TYPE="PERSON"`,
			tokens:    []string{"said"},
			fallbacks: []Fallback{FallbackUnclosed},
		},
		{
			name:      "close without open",
			line:      "office</ENAMEX> said",
			tokens:    []string{"office", "said"},
			fallbacks: []Fallback{FallbackUnopened},
		},
		{
			name:   "entity with only markup",
			line:   `a <ENAMEX TYPE="X"></ENAMEX> b`,
			tokens: []string{"a", "", "b"},
			names:  []sample.Span{{Start: 1, End: 2, Type: "x"}},
		},
		{
			name:   "spaced tags keep their positions",
			line:   `<ENAMEX TYPE="PERSON"> John </ENAMEX> x`,
			tokens: []string{"", "John", "", "x"},
			names:  []sample.Span{{Start: 0, End: 3, Type: "person"}},
		},
		{
			name:      "lone close tag",
			line:      "said </ENAMEX> it",
			tokens:    []string{"said", "", "it"},
			fallbacks: []Fallback{FallbackUnopened},
		},
		{
			name:   "empty line",
			line:   "",
			tokens: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parse(t, tt.line)
			if !reflect.DeepEqual(got.Tokens, tt.tokens) {
				t.Errorf("Tokens = %q, want %q", got.Tokens, tt.tokens)
			}
			if !reflect.DeepEqual(got.Names, tt.names) {
				t.Errorf("Names = %v, want %v", got.Names, tt.names)
			}
			if !reflect.DeepEqual(got.Fallbacks, tt.fallbacks) {
				t.Errorf("Fallbacks = %v, want %v", got.Fallbacks, tt.fallbacks)
			}
		})
	}
}

// A second open tag replaces the pending entity: the outer ORG entity is lost
// and its close tag is ignored. Nested markup is not supported; this pins the
// documented last-open-wins behavior.
func TestParseLine_NestedLastOpenWins(t *testing.T) {
	got := parse(t, `<ENAMEX TYPE="ORG">The <ENAMEX TYPE="GPE">Paris</ENAMEX> office</ENAMEX> said`)

	wantTokens := []string{"The", "Paris", "office", "said"}
	if !reflect.DeepEqual(got.Tokens, wantTokens) {
		t.Errorf("Tokens = %q, want %q", got.Tokens, wantTokens)
	}
	wantNames := []sample.Span{{Start: 1, End: 2, Type: "gpe"}}
	if !reflect.DeepEqual(got.Names, wantNames) {
		t.Errorf("Names = %v, want %v", got.Names, wantNames)
	}
	wantFallbacks := []Fallback{FallbackOverwritten, FallbackUnopened}
	if !reflect.DeepEqual(got.Fallbacks, wantFallbacks) {
		t.Errorf("Fallbacks = %v, want %v", got.Fallbacks, wantFallbacks)
	}
}

func TestParseLine_OverwriteBeforeTerminator(t *testing.T) {
	got := parse(t, `<ENAMEX <ENAMEX TYPE="NORP">French</ENAMEX>`)
	wantNames := []sample.Span{{Start: 0, End: 1, Type: "norp"}}
	if !reflect.DeepEqual(got.Names, wantNames) {
		t.Errorf("Names = %v, want %v", got.Names, wantNames)
	}
	if len(got.Fallbacks) != 1 || got.Fallbacks[0] != FallbackOverwritten {
		t.Errorf("Fallbacks = %v, want [%s]", got.Fallbacks, FallbackOverwritten)
	}
}

func TestParseLine_NoMarkupMatchesNormalizedTokens(t *testing.T) {
	lines := []string{
		"The quick brown fox",
		"-LCB- braces -RCB- and -LSB- brackets -RSB-",
		"  leading   and trailing  ",
		"a <b> c",
	}
	for _, line := range lines {
		got := parse(t, line)
		raw := strings.Fields(line)
		if len(got.Tokens) != len(raw) {
			t.Fatalf("ParseLine(%q) = %d tokens, want %d", line, len(got.Tokens), len(raw))
		}
		for i, tok := range raw {
			if got.Tokens[i] != NormalizeToken(tok) {
				t.Errorf("token %d = %q, want %q", i, got.Tokens[i], NormalizeToken(tok))
			}
		}
		if len(got.Names) != 0 {
			t.Errorf("ParseLine(%q) Names = %v, want none", line, got.Names)
		}
	}
}

func TestParseLine_UnterminatedType(t *testing.T) {
	_, err := ParseLine(strings.Fields(`<ENAMEX TYPE="PERSON>John</ENAMEX>`))
	if err == nil {
		t.Fatal("ParseLine() error = nil, want parse error")
	}
	var pe *cerrors.ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("ParseLine() error = %T, want *ParseError", err)
	}
	if pe.Format != "ontonotes" {
		t.Errorf("Format = %q, want %q", pe.Format, "ontonotes")
	}
	if !errors.Is(err, cerrors.ErrInvalidInput) {
		t.Error("error should match ErrInvalidInput")
	}
}
