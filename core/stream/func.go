package stream

// FuncStream adapts a read function to a single-pass Stream.
type FuncStream[T any] struct {
	read  func() (T, error)
	close func() error
}

// FromFunc returns a single-pass stream that calls read for each element.
// read must return io.EOF when exhausted. closeFn may be nil.
func FromFunc[T any](read func() (T, error), closeFn func() error) *FuncStream[T] {
	return &FuncStream[T]{read: read, close: closeFn}
}

func (s *FuncStream[T]) Read() (T, error) {
	return s.read()
}

// Reset always fails; the underlying function cannot be replayed.
func (s *FuncStream[T]) Reset() error {
	return ErrResetUnsupported
}

func (s *FuncStream[T]) Close() error {
	if s.close == nil {
		return nil
	}
	return s.close()
}
