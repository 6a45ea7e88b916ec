package ontonotes

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/FocuswithJustin/namecorpus/core/errors"
	"github.com/FocuswithJustin/namecorpus/core/sample"
	"github.com/FocuswithJustin/namecorpus/core/stream"
	"github.com/FocuswithJustin/namecorpus/core/tokenize"
	"github.com/FocuswithJustin/namecorpus/internal/logging"
	"github.com/FocuswithJustin/namecorpus/internal/source"
)

const (
	docOpen  = "<DOC"
	docClose = "</DOC>"
)

// NameSampleStream turns a stream of raw documents into name samples, one per
// sentence line. It buffers at most one document's samples.
type NameSampleStream struct {
	docs      stream.Stream[string]
	tokenizer tokenize.Tokenizer
	logger    *slog.Logger

	queue []sample.NameSample
	doc   int
}

// Option configures a NameSampleStream.
type Option func(*NameSampleStream)

// WithTokenizer sets the line tokenizer. The default splits on white space.
func WithTokenizer(t tokenize.Tokenizer) Option {
	return func(s *NameSampleStream) {
		s.tokenizer = t
	}
}

// WithLogger sets the logger used for per-document and fallback records.
func WithLogger(l *slog.Logger) Option {
	return func(s *NameSampleStream) {
		s.logger = l
	}
}

var _ stream.Stream[sample.NameSample] = (*NameSampleStream)(nil)

// NewNameSampleStream reads documents from docs.
func NewNameSampleStream(docs stream.Stream[string], opts ...Option) *NameSampleStream {
	s := &NameSampleStream{
		docs:      docs,
		tokenizer: tokenize.Whitespace,
		logger:    logging.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Read returns the next sample. Documents without body lines are skipped.
func (s *NameSampleStream) Read() (sample.NameSample, error) {
	for len(s.queue) == 0 {
		text, err := s.docs.Read()
		if err != nil {
			return sample.NameSample{}, err
		}
		s.doc++
		samples, err := s.decode(text)
		if err != nil {
			return sample.NameSample{}, err
		}
		s.queue = samples
	}

	next := s.queue[0]
	s.queue[0] = sample.NameSample{}
	s.queue = s.queue[1:]
	return next, nil
}

// Reset drops buffered samples and rewinds the document source.
func (s *NameSampleStream) Reset() error {
	s.queue = nil
	s.doc = 0
	return s.docs.Reset()
}

// Close closes the document source.
func (s *NameSampleStream) Close() error {
	s.queue = nil
	return s.docs.Close()
}

// decode parses one document. Lines before the document ends each become a
// sample; the first one is flagged to clear adaptive data.
func (s *NameSampleStream) decode(text string) ([]sample.NameSample, error) {
	var samples []sample.NameSample

	sc := source.NewLineScanner(strings.NewReader(text))

	lineNo := 0
	for sc.Scan() {
		lineNo++
		raw := sc.Text()

		if strings.HasPrefix(raw, docOpen) {
			continue
		}
		if raw == docClose {
			break
		}

		line, err := ParseLine(s.tokenizer.Tokenize(raw))
		if err != nil {
			var pe *errors.ParseError
			if errors.As(err, &pe) {
				pe.Path = fmt.Sprintf("doc %d line %d", s.doc, lineNo)
			}
			return nil, err
		}
		for _, fb := range line.Fallbacks {
			logging.FallbackApplied(s.logger, string(fb), s.doc, lineNo)
		}

		ns, err := sample.New(line.Tokens, line.Names, len(samples) == 0)
		if err != nil {
			return nil, errors.Wrapf(err, "doc %d line %d", s.doc, lineNo)
		}
		samples = append(samples, ns)
	}
	if err := sc.Err(); err != nil {
		return nil, errors.NewIO("scan", fmt.Sprintf("doc %d line %d", s.doc, lineNo+1), err)
	}

	logging.DocumentParsed(s.logger, s.doc, lineNo, len(samples))
	return samples, nil
}
