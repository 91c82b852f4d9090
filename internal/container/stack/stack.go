// Package stack provides a LIFO stack with a fixed capacity.
package stack

import (
	"iter"

	"github.com/dshills/fixbuf/internal/capacity"
	"github.com/dshills/fixbuf/internal/failure"
)

const (
	opPush = "Stack.Push"
	opPop  = "Stack.Pop"
	opTop  = "Stack.Top"
)

// Option configures a Stack.
type Option func(*options)

type options struct {
	reporter failure.Reporter
}

// WithReporter sets the reporter that receives every failure.
func WithReporter(r failure.Reporter) Option {
	return func(o *options) {
		if r != nil {
			o.reporter = r
		}
	}
}

// Stack holds at most Capacity() elements in storage allocated once.
type Stack[T any] struct {
	items []T
	count capacity.Counter
	options
}

// New returns an empty stack of capacity n.
func New[T any](n int, opts ...Option) *Stack[T] {
	return NewOn(make([]T, max(n, 0)), opts...)
}

// NewOn returns an empty stack that uses storage as its slots.
func NewOn[T any](storage []T, opts ...Option) *Stack[T] {
	s := &Stack[T]{
		items:   storage,
		count:   capacity.New(len(storage)),
		options: options{reporter: failure.Silent{}},
	}
	for _, opt := range opts {
		opt(&s.options)
	}
	return s
}

// Push adds v on top. A full stack drops v and fails with
// failure.ErrTruncated.
func (s *Stack[T]) Push(v T) error {
	if s.count.Full() {
		err := failure.Length(opPush, s.count.Size()+1, s.count.Capacity())
		s.reporter.Report(err)
		return err
	}
	s.items[s.count.Size()] = v
	s.count.Grow(1)
	return nil
}

// Pop removes and returns the top element.
func (s *Stack[T]) Pop() (T, error) {
	var zero T
	if s.count.Empty() {
		err := failure.Empty(opPop)
		s.reporter.Report(err)
		return zero, err
	}
	v := s.items[s.count.Size()-1]
	s.count.Shrink(1)
	s.items[s.count.Size()] = zero
	return v, nil
}

// Top returns the top element without removing it.
func (s *Stack[T]) Top() (T, error) {
	if s.count.Empty() {
		var zero T
		err := failure.Empty(opTop)
		s.reporter.Report(err)
		return zero, err
	}
	return s.items[s.count.Size()-1], nil
}

// Clear removes every element.
func (s *Stack[T]) Clear() {
	clear(s.items[:s.count.Size()])
	s.count.Reset()
}

// All yields the elements from top to bottom.
func (s *Stack[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := s.count.Size() - 1; i >= 0; i-- {
			if !yield(s.items[i]) {
				return
			}
		}
	}
}

// Size returns the number of elements held.
func (s *Stack[T]) Size() int { return s.count.Size() }

// Capacity returns the fixed number of slots.
func (s *Stack[T]) Capacity() int { return s.count.Capacity() }

// Available returns how many more elements fit.
func (s *Stack[T]) Available() int { return s.count.Available() }

// Full reports whether Size equals Capacity.
func (s *Stack[T]) Full() bool { return s.count.Full() }

// Empty reports whether the stack holds nothing.
func (s *Stack[T]) Empty() bool { return s.count.Empty() }
