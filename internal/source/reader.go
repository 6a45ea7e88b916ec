package source

import (
	"bufio"
	"io"
	"strings"

	"github.com/FocuswithJustin/namecorpus/core/errors"
	"github.com/FocuswithJustin/namecorpus/core/stream"
	"github.com/FocuswithJustin/namecorpus/internal/validation"
)

const (
	docOpen  = "<DOC"
	docClose = "</DOC>"
)

// Reader splits one concatenated input into documents. A document runs from a
// line starting with <DOC through the line </DOC>; lines outside a document
// are dropped. Reader is single-pass.
type Reader struct {
	sc     *bufio.Scanner
	closer io.Closer
	done   bool
}

// NewReader reads documents from r. Close closes r if it is an io.Closer.
func NewReader(r io.Reader) *Reader {
	rd := &Reader{sc: NewLineScanner(r)}
	if c, ok := r.(io.Closer); ok {
		rd.closer = c
	}
	return rd
}

// Read returns the lines of the next document, sentinels included.
func (r *Reader) Read() (string, error) {
	if r.done {
		return "", io.EOF
	}

	var b strings.Builder
	lines := 0
	for r.sc.Scan() {
		line := r.sc.Text()
		if lines == 0 && !strings.HasPrefix(line, docOpen) {
			continue
		}
		b.WriteString(line)
		b.WriteByte('\n')
		lines++
		if err := validation.CheckDocumentSize("document", int64(b.Len())); err != nil {
			r.done = true
			return "", errors.NewIO("read", "", err)
		}
		if line == docClose {
			return b.String(), nil
		}
	}
	r.done = true
	if err := r.sc.Err(); err != nil {
		return "", errors.NewIO("scan", "", err)
	}
	if lines == 0 {
		return "", io.EOF
	}
	return b.String(), nil
}

// Reset always fails; the input cannot be replayed.
func (r *Reader) Reset() error {
	return stream.ErrResetUnsupported
}

func (r *Reader) Close() error {
	r.done = true
	if r.closer == nil {
		return nil
	}
	c := r.closer
	r.closer = nil
	return c.Close()
}
