package models

import (
	"errors"
	"reflect"
	"testing"

	cerrors "github.com/FocuswithJustin/namecorpus/core/errors"
)

func TestParseProperties(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  map[string]string
	}{
		{
			name:  "empty",
			input: "",
			want:  map[string]string{},
		},
		{
			name:  "separators and spacing",
			input: "a=1\nb = 2\nc:3\n  d : 4  \n",
			want:  map[string]string{"a": "1", "b": "2", "c": "3", "d": "4"},
		},
		{
			name:  "comments",
			input: "# comment\n! also a comment\nkey=value # not a comment\n",
			want:  map[string]string{"key": "value # not a comment"},
		},
		{
			name:  "value with separators",
			input: "url=http://example.com/a=b\n",
			want:  map[string]string{"url": "http://example.com/a=b"},
		},
		{
			name:  "empty value and bare key",
			input: "empty=\nflag\n",
			want:  map[string]string{"empty": "", "flag": ""},
		},
		{
			name:  "later key wins",
			input: "k=1\r\nk=2\r\n",
			want:  map[string]string{"k": "2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseProperties("test.properties", []byte(tt.input))
			if err != nil {
				t.Fatalf("ParseProperties() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseProperties() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseProperties_Invalid(t *testing.T) {
	_, err := ParseProperties("bad.properties", []byte("=orphan value\n"))
	var pe *cerrors.ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("ParseProperties() error = %v, want *ParseError", err)
	}
	if pe.Format != "properties" || pe.Path != "bad.properties" {
		t.Errorf("ParseError = %+v", pe)
	}
}
