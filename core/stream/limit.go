package stream

import (
	"io"

	"github.com/FocuswithJustin/namecorpus/core/errors"
)

// Limit yields at most n elements of its source.
type Limit[T any] struct {
	src  Stream[T]
	n    int
	read int
}

// NewLimit wraps s so that at most n elements are returned. n must not be
// negative.
func NewLimit[T any](s Stream[T], n int) (*Limit[T], error) {
	if n < 0 {
		return nil, &errors.ValidationError{
			Field:   "limit",
			Message: "must not be negative",
		}
	}
	return &Limit[T]{src: s, n: n}, nil
}

func (l *Limit[T]) Read() (T, error) {
	if l.read >= l.n {
		var zero T
		return zero, io.EOF
	}
	v, err := l.src.Read()
	if err != nil {
		return v, err
	}
	l.read++
	return v, nil
}

func (l *Limit[T]) Reset() error {
	if err := l.src.Reset(); err != nil {
		return err
	}
	l.read = 0
	return nil
}

func (l *Limit[T]) Close() error {
	return l.src.Close()
}
