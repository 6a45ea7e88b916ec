package stream

import (
	"io"
	"iter"
)

// All adapts s to a range-over-func sequence. Iteration ends at io.EOF; any
// other error is yielded once with the zero value and ends the sequence.
func All[T any](s Stream[T]) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for {
			v, err := s.Read()
			if err == io.EOF {
				return
			}
			if err != nil {
				var zero T
				yield(zero, err)
				return
			}
			if !yield(v, nil) {
				return
			}
		}
	}
}
