// Package span provides a bounds-checked, non-owning view over a slice.
//
// A Span never copies or reallocates the elements it refers to. Writes
// through At's pointer are visible to the owner of the slice.
package span

import (
	"iter"

	"github.com/dshills/fixbuf/internal/failure"
)

const (
	opAt      = "Span.At"
	opFront   = "Span.Front"
	opBack    = "Span.Back"
	opFirst   = "Span.First"
	opLast    = "Span.Last"
	opSubspan = "Span.Subspan"
)

// Span is a view of a contiguous run of T.
type Span[T any] struct {
	items    []T
	reporter failure.Reporter
}

// Of returns a span over s.
func Of[T any](s []T) Span[T] {
	return Span[T]{items: s, reporter: failure.Silent{}}
}

// WithReporter returns a copy of the span that reports failures to r.
// Spans derived from it inherit r.
func (s Span[T]) WithReporter(r failure.Reporter) Span[T] {
	if r != nil {
		s.reporter = r
	}
	return s
}

func (s Span[T]) Len() int    { return len(s.items) }
func (s Span[T]) Empty() bool { return len(s.items) == 0 }

// Slice returns the underlying elements.
func (s Span[T]) Slice() []T { return s.items }

func (s Span[T]) fail(err *failure.Error) error {
	s.reporter.Report(err)
	return err
}

// At returns a pointer to element i.
func (s Span[T]) At(i int) (*T, error) {
	if i < 0 || i >= len(s.items) {
		return nil, s.fail(failure.OutOfRange(opAt, i, len(s.items)))
	}
	return &s.items[i], nil
}

// Front returns the first element.
func (s Span[T]) Front() (T, error) {
	if len(s.items) == 0 {
		var zero T
		return zero, s.fail(failure.Empty(opFront))
	}
	return s.items[0], nil
}

// Back returns the last element.
func (s Span[T]) Back() (T, error) {
	if len(s.items) == 0 {
		var zero T
		return zero, s.fail(failure.Empty(opBack))
	}
	return s.items[len(s.items)-1], nil
}

// First returns the span of the first n elements.
func (s Span[T]) First(n int) (Span[T], error) {
	if n < 0 || n > len(s.items) {
		return Span[T]{reporter: s.reporter}, s.fail(failure.OutOfRange(opFirst, n, len(s.items)))
	}
	s.items = s.items[:n:n]
	return s, nil
}

// Last returns the span of the last n elements.
func (s Span[T]) Last(n int) (Span[T], error) {
	if n < 0 || n > len(s.items) {
		return Span[T]{reporter: s.reporter}, s.fail(failure.OutOfRange(opLast, n, len(s.items)))
	}
	s.items = s.items[len(s.items)-n:]
	return s, nil
}

// Subspan returns the n elements starting at off. A negative n extends to
// the end.
func (s Span[T]) Subspan(off, n int) (Span[T], error) {
	size := len(s.items)
	if off < 0 || off > size {
		return Span[T]{reporter: s.reporter}, s.fail(failure.OutOfRange(opSubspan, off, size))
	}
	if n < 0 {
		n = size - off
	}
	if n > size-off {
		return Span[T]{reporter: s.reporter}, s.fail(failure.OutOfRange(opSubspan, off+n, size))
	}
	s.items = s.items[off : off+n : off+n]
	return s, nil
}

// All yields index and element pairs in order.
func (s Span[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range s.items {
			if !yield(i, v) {
				return
			}
		}
	}
}
