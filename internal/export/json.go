package export

import (
	"encoding/json"
	"io"

	"github.com/FocuswithJustin/namecorpus/core/sample"
	"github.com/FocuswithJustin/namecorpus/core/stream"
)

// JSONWriter writes samples as JSON Lines, one object per sample.
type JSONWriter struct {
	enc *json.Encoder
}

// NewJSONWriter creates a writer on w.
func NewJSONWriter(w io.Writer) *JSONWriter {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return &JSONWriter{enc: enc}
}

// Write writes one sample.
func (w *JSONWriter) Write(ns sample.NameSample) error {
	if ns.Names == nil {
		ns.Names = []sample.Span{}
	}
	return w.enc.Encode(ns)
}

// WriteAll writes every remaining sample of s and returns how many were
// written.
func (w *JSONWriter) WriteAll(s stream.Stream[sample.NameSample]) (int, error) {
	n := 0
	err := stream.ForEach(s, func(ns sample.NameSample) error {
		if err := w.Write(ns); err != nil {
			return err
		}
		n++
		return nil
	})
	return n, err
}
