package stream

import (
	"io"
	"math/rand/v2"
)

// DefaultShuffleSeed is the fixed seed used by NewShuffle so the permutation
// is identical across runs.
const DefaultShuffleSeed uint64 = 23

// Shuffle serves a fixed permutation of a fully buffered source.
type Shuffle[T any] struct {
	buf []T
	pos int
}

// NewShuffle drains s to io.EOF and permutes the elements using
// DefaultShuffleSeed. s is closed once drained.
func NewShuffle[T any](s Stream[T]) (*Shuffle[T], error) {
	return NewShuffleSeed(s, DefaultShuffleSeed)
}

// NewShuffleSeed is NewShuffle with an explicit seed.
func NewShuffleSeed[T any](s Stream[T], seed uint64) (*Shuffle[T], error) {
	buf, err := ReadAll(s)
	if cerr := s.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return nil, err
	}

	r := rand.New(rand.NewPCG(seed, seed))
	r.Shuffle(len(buf), func(i, j int) {
		buf[i], buf[j] = buf[j], buf[i]
	})
	return &Shuffle[T]{buf: buf}, nil
}

func (s *Shuffle[T]) Read() (T, error) {
	if s.pos >= len(s.buf) {
		var zero T
		return zero, io.EOF
	}
	v := s.buf[s.pos]
	s.pos++
	return v, nil
}

// Reset rewinds to the start of the already shuffled buffer.
func (s *Shuffle[T]) Reset() error {
	s.pos = 0
	return nil
}

func (s *Shuffle[T]) Close() error {
	return nil
}

// Len returns the number of buffered elements.
func (s *Shuffle[T]) Len() int {
	return len(s.buf)
}
