package sample

import (
	"errors"
	"testing"

	cerrors "github.com/FocuswithJustin/namecorpus/core/errors"
)

func createGoldSample(t *testing.T) NameSample {
	t.Helper()
	s, err := New([]string{"John", "Smith", "works", "here"}, []Span{{Start: 0, End: 2, Type: "person"}}, true)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return s
}

func TestNew_Valid(t *testing.T) {
	s := createGoldSample(t)
	if len(s.Tokens) != 4 {
		t.Errorf("len(Tokens) = %d, want 4", len(s.Tokens))
	}
	if len(s.Names) != 1 || s.Names[0].Length() != 2 {
		t.Errorf("Names = %v, want one span of length 2", s.Names)
	}
	if !s.ClearAdaptiveData {
		t.Error("ClearAdaptiveData = false, want true")
	}
}

func TestNew_InvalidSpan(t *testing.T) {
	tokens := []string{"a", "b", "c"}
	tests := []struct {
		name string
		span Span
	}{
		{"negative start", Span{Start: -1, End: 1}},
		{"empty span", Span{Start: 1, End: 1}},
		{"reversed", Span{Start: 2, End: 1}},
		{"past end", Span{Start: 1, End: 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tokens, []Span{tt.span}, false)
			if err == nil {
				t.Fatal("New() error = nil, want validation error")
			}
			var ve *cerrors.ValidationError
			if !errors.As(err, &ve) {
				t.Errorf("New() error = %T, want *ValidationError", err)
			}
			if !errors.Is(err, cerrors.ErrInvalidInput) {
				t.Error("error should match ErrInvalidInput")
			}
		})
	}
}

func TestNew_CopiesInput(t *testing.T) {
	tokens := []string{"a", "b"}
	names := []Span{{Start: 0, End: 1, Type: "x"}}
	s, err := New(tokens, names, false)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	tokens[0] = "changed"
	names[0].Type = "changed"
	if s.Tokens[0] != "a" || s.Names[0].Type != "x" {
		t.Errorf("sample aliased caller slices: %+v", s)
	}
}

func TestEqual(t *testing.T) {
	gold := createGoldSample(t)
	if !gold.Equal(createGoldSample(t)) {
		t.Error("Equal() = false for identical samples")
	}

	other, _ := New(gold.Tokens, []Span{{Start: 0, End: 2, Type: "org"}}, true)
	if gold.Equal(other) {
		t.Error("Equal() = true for samples with different labels")
	}

	noClear, _ := New(gold.Tokens, gold.Names, false)
	if gold.Equal(noClear) {
		t.Error("Equal() = true for samples with different clear flags")
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		name   string
		tokens []string
		names  []Span
		want   string
	}{
		{
			name:   "leading entity",
			tokens: []string{"John", "Smith", "works", "here"},
			names:  []Span{{Start: 0, End: 2, Type: "person"}},
			want:   "<START:person> John Smith <END> works here",
		},
		{
			name:   "no entities",
			tokens: []string{"He", "said", "(", "loudly", ")"},
			want:   "He said ( loudly )",
		},
		{
			name:   "adjacent entities",
			tokens: []string{"Paris", "France"},
			names:  []Span{{Start: 0, End: 1, Type: "gpe"}, {Start: 1, End: 2, Type: "gpe"}},
			want:   "<START:gpe> Paris <END> <START:gpe> France <END>",
		},
		{
			name:   "untyped entity",
			tokens: []string{"x"},
			names:  []Span{{Start: 0, End: 1}},
			want:   "<START> x <END>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := New(tt.tokens, tt.names, false)
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}
			if got := s.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSpanHelpers(t *testing.T) {
	s := Span{Start: 1, End: 3, Type: "org"}
	if s.Contains(0) || !s.Contains(1) || !s.Contains(2) || s.Contains(3) {
		t.Errorf("Contains() wrong for %v", s)
	}
	got := s.Covered([]string{"the", "Red", "Cross", "said"})
	if len(got) != 2 || got[0] != "Red" || got[1] != "Cross" {
		t.Errorf("Covered() = %v, want [Red Cross]", got)
	}
	if got, want := s.String(), "[1..3) org"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
