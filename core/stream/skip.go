package stream

import (
	"github.com/FocuswithJustin/namecorpus/core/errors"
)

// Skip discards the first n elements of its source.
type Skip[T any] struct {
	src       Stream[T]
	n         int
	remaining int
}

// NewSkip wraps s so the first n elements are never returned. n must not be
// negative.
func NewSkip[T any](s Stream[T], n int) (*Skip[T], error) {
	if n < 0 {
		return nil, &errors.ValidationError{
			Field:   "skip",
			Message: "must not be negative",
		}
	}
	return &Skip[T]{src: s, n: n, remaining: n}, nil
}

// Read discards whatever is left of the skip before returning an element. A
// failed discard is retried on the next Read.
func (s *Skip[T]) Read() (T, error) {
	for s.remaining > 0 {
		if _, err := s.src.Read(); err != nil {
			var zero T
			return zero, err
		}
		s.remaining--
	}
	return s.src.Read()
}

// Reset rewinds the source; the next Read skips again.
func (s *Skip[T]) Reset() error {
	if err := s.src.Reset(); err != nil {
		return err
	}
	s.remaining = s.n
	return nil
}

func (s *Skip[T]) Close() error {
	return s.src.Close()
}
