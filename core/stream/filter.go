package stream

// Filter passes through only the elements accepted by keep.
type Filter[T any] struct {
	src  Stream[T]
	keep func(T) bool
}

// NewFilter wraps s with the predicate keep.
func NewFilter[T any](s Stream[T], keep func(T) bool) *Filter[T] {
	return &Filter[T]{src: s, keep: keep}
}

func (f *Filter[T]) Read() (T, error) {
	for {
		v, err := f.src.Read()
		if err != nil {
			return v, err
		}
		if f.keep(v) {
			return v, nil
		}
	}
}

func (f *Filter[T]) Reset() error {
	return f.src.Reset()
}

func (f *Filter[T]) Close() error {
	return f.src.Close()
}
