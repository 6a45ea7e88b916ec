package stream

import (
	"io"

	"github.com/FocuswithJustin/namecorpus/core/errors"
)

// ErrResetUnsupported is returned by Reset on streams that cannot be replayed.
// It also matches errors.ErrUnsupported.
var ErrResetUnsupported error = errors.NewUnsupported("reset", "stream cannot be replayed")

// Stream is a lazy sequence of T.
type Stream[T any] interface {
	// Read returns the next element, or the zero value and io.EOF when the
	// stream is exhausted. It keeps returning io.EOF until Reset.
	Read() (T, error)

	// Reset rewinds the stream to its first element.
	Reset() error

	// Close releases any resource held by the stream.
	Close() error
}

// ReadAll reads s until io.EOF and returns every element.
func ReadAll[T any](s Stream[T]) ([]T, error) {
	var out []T
	err := ForEach(s, func(v T) error {
		out = append(out, v)
		return nil
	})
	return out, err
}

// ForEach calls fn for every remaining element of s. It stops at the first
// error returned by s or fn.
func ForEach[T any](s Stream[T], fn func(T) error) error {
	for {
		v, err := s.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if err := fn(v); err != nil {
			return err
		}
	}
}
