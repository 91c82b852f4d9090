// Package queue provides a FIFO ring buffer with a fixed capacity.
package queue

import (
	"iter"

	"github.com/dshills/fixbuf/internal/capacity"
	"github.com/dshills/fixbuf/internal/failure"
)

const (
	opPush  = "Queue.Push"
	opPop   = "Queue.Pop"
	opFront = "Queue.Front"
	opBack  = "Queue.Back"
	opAt    = "Queue.At"
)

// Option configures a Queue.
type Option func(*options)

type options struct {
	reporter  failure.Reporter
	overwrite bool
}

// WithReporter sets the reporter that receives every failure.
func WithReporter(r failure.Reporter) Option {
	return func(o *options) {
		if r != nil {
			o.reporter = r
		}
	}
}

// WithOverwrite makes Push on a full queue drop the oldest element instead
// of failing.
func WithOverwrite() Option {
	return func(o *options) {
		o.overwrite = true
	}
}

// Queue is a ring buffer over storage allocated once.
type Queue[T any] struct {
	items []T
	head  int // index of the oldest element
	count capacity.Counter
	options
}

// New returns an empty queue of capacity n.
func New[T any](n int, opts ...Option) *Queue[T] {
	return NewOn(make([]T, max(n, 0)), opts...)
}

// NewOn returns an empty queue that uses storage as its slots.
func NewOn[T any](storage []T, opts ...Option) *Queue[T] {
	q := &Queue[T]{
		items:   storage,
		count:   capacity.New(len(storage)),
		options: options{reporter: failure.Silent{}},
	}
	for _, opt := range opts {
		opt(&q.options)
	}
	return q
}

func (q *Queue[T]) slot(i int) int {
	return (q.head + i) % len(q.items)
}

// Push appends v at the back. A full queue fails with failure.ErrTruncated
// and drops v, unless it was built WithOverwrite.
func (q *Queue[T]) Push(v T) error {
	if q.count.Full() {
		if !q.overwrite || len(q.items) == 0 {
			err := failure.Length(opPush, q.count.Size()+1, q.count.Capacity())
			q.reporter.Report(err)
			return err
		}
		q.items[q.head] = v
		q.head = q.slot(1)
		return nil
	}
	q.items[q.slot(q.count.Size())] = v
	q.count.Grow(1)
	return nil
}

// Pop removes and returns the front element.
func (q *Queue[T]) Pop() (T, error) {
	if q.count.Empty() {
		return q.empty(opPop)
	}
	v := q.items[q.head]
	var zero T
	q.items[q.head] = zero
	q.head = q.slot(1)
	q.count.Shrink(1)
	return v, nil
}

// Front returns the oldest element.
func (q *Queue[T]) Front() (T, error) {
	if q.count.Empty() {
		return q.empty(opFront)
	}
	return q.items[q.head], nil
}

// Back returns the newest element.
func (q *Queue[T]) Back() (T, error) {
	if q.count.Empty() {
		return q.empty(opBack)
	}
	return q.items[q.slot(q.count.Size()-1)], nil
}

// At returns the i-th element counting from the front.
func (q *Queue[T]) At(i int) (T, error) {
	if i < 0 || i >= q.count.Size() {
		var zero T
		err := failure.OutOfRange(opAt, i, q.count.Size())
		q.reporter.Report(err)
		return zero, err
	}
	return q.items[q.slot(i)], nil
}

func (q *Queue[T]) empty(op string) (T, error) {
	var zero T
	err := failure.Empty(op)
	q.reporter.Report(err)
	return zero, err
}

// Clear removes every element.
func (q *Queue[T]) Clear() {
	clear(q.items)
	q.head = 0
	q.count.Reset()
}

// All yields the elements from front to back.
func (q *Queue[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < q.count.Size(); i++ {
			if !yield(q.items[q.slot(i)]) {
				return
			}
		}
	}
}

// Size returns the number of elements held.
func (q *Queue[T]) Size() int { return q.count.Size() }

// Capacity returns the fixed number of slots.
func (q *Queue[T]) Capacity() int { return q.count.Capacity() }

// Available returns how many more elements fit.
func (q *Queue[T]) Available() int { return q.count.Available() }

// Full reports whether Size equals Capacity.
func (q *Queue[T]) Full() bool { return q.count.Full() }

// Empty reports whether the queue holds nothing.
func (q *Queue[T]) Empty() bool { return q.count.Empty() }
