package fixedstr

import (
	"github.com/dshills/fixbuf/internal/capacity"
	"github.com/dshills/fixbuf/internal/failure"
	"github.com/dshills/fixbuf/internal/traits"
)

// Npos is returned by searches that find nothing.
const Npos = traits.Npos

// String is a zero-terminated string of at most Capacity() elements held in
// a single backing array that never grows.
//
// A String must not be copied by value once used; the copy would share the
// backing array. Use Clone for an independent copy.
type String[C traits.Char] struct {
	data      []C // len(data) == Capacity()+1
	count     capacity.Counter
	truncated bool
	settings
}

// Bytes is a fixed string of bytes.
type Bytes = String[byte]

// Runes is a fixed string of Unicode code points.
type Runes = String[rune]

// UTF16 is a fixed string of UTF-16 code units.
type UTF16 = String[uint16]

// New returns an empty String that holds up to n elements. Its storage is
// allocated once, here. A negative n is treated as zero.
func New[C traits.Char](n int, opts ...Option) *String[C] {
	return newString(make([]C, max(n, 0)+1), opts)
}

// NewOn returns an empty String backed by storage, which the String takes
// over. The capacity is len(storage)-1; the last slot holds the terminator.
// An empty storage slice yields a String of capacity zero.
func NewOn[C traits.Char](storage []C, opts ...Option) *String[C] {
	if len(storage) == 0 {
		storage = make([]C, 1)
	}
	return newString(storage, opts)
}

// From returns a String of capacity n holding src, clamped to n.
// The error is non-nil only when truncation is reported as an error.
func From[C traits.Char](n int, src []C, opts ...Option) (*String[C], error) {
	s := New[C](n, opts...)
	return s, s.Assign(src)
}

// FromString is From for a Go string, encoded as described by
// traits.EncodedLen.
func FromString[C traits.Char](n int, src string, opts ...Option) (*String[C], error) {
	s := New[C](n, opts...)
	return s, s.AssignString(src)
}

func newString[C traits.Char](storage []C, opts []Option) *String[C] {
	s := &String[C]{
		data:     storage,
		count:    capacity.New(len(storage) - 1),
		settings: defaultSettings(),
	}
	for _, opt := range opts {
		opt(&s.settings)
	}
	s.data[0] = 0
	return s
}

// Clone returns an independent copy with the same capacity, options and
// truncation flag. It allocates new storage.
func (s *String[C]) Clone() *String[C] {
	c := &String[C]{
		data:      make([]C, len(s.data)),
		count:     s.count,
		truncated: s.truncated,
		settings:  s.settings,
	}
	copy(c.data, s.data[:s.count.Size()+1])
	return c
}

// Size returns the number of elements in the string.
func (s *String[C]) Size() int { return s.count.Size() }

// Len is an alias for Size.
func (s *String[C]) Len() int { return s.count.Size() }

// Capacity returns the fixed maximum size.
func (s *String[C]) Capacity() int { return s.count.Capacity() }

// Available returns how many more elements fit.
func (s *String[C]) Available() int { return s.count.Available() }

// Full reports whether Size() == Capacity().
func (s *String[C]) Full() bool { return s.count.Full() }

// Empty reports whether the string holds no elements.
func (s *String[C]) Empty() bool { return s.count.Empty() }

// Truncated reports whether content has been clamped since the last Assign
// or ClearTruncated. It is always false unless tracking is enabled.
func (s *String[C]) Truncated() bool { return s.truncated }

// ClearTruncated resets the truncation flag.
func (s *String[C]) ClearTruncated() { s.truncated = false }

// Data returns the contents without the terminator. The slice aliases the
// string's storage and may be passed back as the source of any mutation.
func (s *String[C]) Data() []C {
	n := s.count.Size()
	return s.data[:n:n]
}

// Terminated returns the contents followed by the zero terminator.
func (s *String[C]) Terminated() []C {
	n := s.count.Size() + 1
	return s.data[:n:n]
}

// String returns the contents as a Go string.
func (s *String[C]) String() string {
	return traits.ToString(s.Data())
}

// At returns the element at i.
func (s *String[C]) At(i int) (C, error) {
	if i < 0 || i >= s.count.Size() {
		var zero C
		return zero, s.fail(failure.OutOfRange(opAt, i, s.count.Size()))
	}
	return s.data[i], nil
}

// Set replaces the element at i. Setting a zero element is allowed; Repair
// recomputes the size from the first zero.
func (s *String[C]) Set(i int, c C) error {
	if i < 0 || i >= s.count.Size() {
		return s.fail(failure.OutOfRange(opSet, i, s.count.Size()))
	}
	s.data[i] = c
	return nil
}

// Front returns the first element.
func (s *String[C]) Front() (C, error) {
	if s.count.Empty() {
		var zero C
		return zero, s.fail(failure.Empty(opFront))
	}
	return s.data[0], nil
}

// Back returns the last element.
func (s *String[C]) Back() (C, error) {
	if s.count.Empty() {
		var zero C
		return zero, s.fail(failure.Empty(opBack))
	}
	return s.data[s.count.Size()-1], nil
}

// Substr returns a view of up to n elements starting at pos. A negative n
// means "to the end".
func (s *String[C]) Substr(pos, n int) ([]C, error) {
	size := s.count.Size()
	if pos < 0 || pos > size {
		return nil, s.fail(failure.OutOfRange(opSubstr, pos, size))
	}
	end := size
	if n >= 0 {
		end = min(pos+n, size)
	}
	return s.data[pos:end:end], nil
}

// CopyTo copies up to len(dst) elements starting at pos into dst and
// returns the number copied.
func (s *String[C]) CopyTo(dst []C, pos int) (int, error) {
	size := s.count.Size()
	if pos < 0 || pos > size {
		return 0, s.fail(failure.OutOfRange(opCopyTo, pos, size))
	}
	return traits.Move(dst, s.data[pos:size]), nil
}

// Repair re-derives the size from the first zero element and restores the
// terminator. Call it after writing zeros through Set or Data.
func (s *String[C]) Repair() {
	n := s.count.Set(traits.Length(s.data[:s.count.Size()]))
	s.data[n] = 0
}

func (s *String[C]) fail(err *failure.Error) error {
	s.reporter.Report(err)
	return err
}
