package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/FocuswithJustin/namecorpus/core/stream"
)

func TestJSONWriter(t *testing.T) {
	var buf bytes.Buffer
	w := NewJSONWriter(&buf)

	n, err := w.WriteAll(stream.FromSlice(createTestSamples(t)))
	if err != nil {
		t.Fatalf("WriteAll() error = %v", err)
	}
	if n != 3 {
		t.Errorf("WriteAll() = %d, want 3", n)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3:\n%s", len(lines), buf.String())
	}

	want := []string{
		`{"tokens":["John","Smith","works","here"],"names":[{"start":0,"end":2,"type":"person"}],"clear_adaptive_data":true}`,
		`{"tokens":["He","said","(","loudly",")"],"names":[],"clear_adaptive_data":false}`,
	}
	for i, w := range want {
		if lines[i] != w {
			t.Errorf("line %d = %s, want %s", i, lines[i], w)
		}
	}
}
