package stream

import (
	"io"
	"slices"
)

// SliceStream serves elements from an in-memory slice. It is restartable.
type SliceStream[T any] struct {
	items []T
	pos   int
}

// FromSlice returns a restartable stream over a copy of items.
func FromSlice[T any](items []T) *SliceStream[T] {
	return &SliceStream[T]{items: slices.Clone(items)}
}

func (s *SliceStream[T]) Read() (T, error) {
	if s.pos >= len(s.items) {
		var zero T
		return zero, io.EOF
	}
	v := s.items[s.pos]
	s.pos++
	return v, nil
}

func (s *SliceStream[T]) Reset() error {
	s.pos = 0
	return nil
}

func (s *SliceStream[T]) Close() error {
	return nil
}

// Len returns the number of elements in the stream.
func (s *SliceStream[T]) Len() int {
	return len(s.items)
}
