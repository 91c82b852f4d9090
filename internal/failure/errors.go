package failure

import (
	"errors"
	"fmt"
)

// Errors reported by fixed-capacity containers. Every *Error matches exactly
// one of these through errors.Is.
var (
	// ErrOutOfRange indicates a position or range outside the valid bounds.
	ErrOutOfRange = errors.New("position out of range")

	// ErrTruncated indicates content was clamped to the fixed capacity.
	ErrTruncated = errors.New("capacity exceeded")

	// ErrEmpty indicates an element was requested from an empty container.
	ErrEmpty = errors.New("container is empty")

	// ErrInvalidArgument indicates a negative count or similar bad input.
	ErrInvalidArgument = errors.New("invalid argument")
)

// Kind classifies an Error.
type Kind uint8

const (
	KindOutOfRange      Kind = iota // Position errors: caller bugs
	KindLength                      // Capacity errors: content was clamped
	KindEmpty                       // Access on an empty container
	KindInvalidArgument             // Malformed counts
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case KindOutOfRange:
		return "out_of_range"
	case KindLength:
		return "length"
	case KindEmpty:
		return "empty"
	case KindInvalidArgument:
		return "invalid_argument"
	default:
		return "unknown"
	}
}

func (k Kind) sentinel() error {
	switch k {
	case KindOutOfRange:
		return ErrOutOfRange
	case KindLength:
		return ErrTruncated
	case KindEmpty:
		return ErrEmpty
	default:
		return ErrInvalidArgument
	}
}

// Error describes a failed container operation.
type Error struct {
	Kind Kind
	Op   string // Operation name, e.g. "Replace"
	Pos  int    // Offending position, or the requested size for KindLength
	// Bound is the limit Pos was checked against: the current size for
	// positions, the capacity for lengths.
	Bound int
}

// OutOfRange returns a positional error.
func OutOfRange(op string, pos, size int) *Error {
	return &Error{Kind: KindOutOfRange, Op: op, Pos: pos, Bound: size}
}

// Length returns a capacity error for a request of the given size.
func Length(op string, requested, capacity int) *Error {
	return &Error{Kind: KindLength, Op: op, Pos: requested, Bound: capacity}
}

// Empty returns an error for access on an empty container.
func Empty(op string) *Error {
	return &Error{Kind: KindEmpty, Op: op}
}

// InvalidArgument returns an error for a malformed count.
func InvalidArgument(op string, value int) *Error {
	return &Error{Kind: KindInvalidArgument, Op: op, Pos: value}
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch e.Kind {
	case KindOutOfRange:
		return fmt.Sprintf("%s: %v: %d not in [0, %d]", e.Op, ErrOutOfRange, e.Pos, e.Bound)
	case KindLength:
		return fmt.Sprintf("%s: %v: requested %d, capacity %d", e.Op, ErrTruncated, e.Pos, e.Bound)
	case KindEmpty:
		return fmt.Sprintf("%s: %v", e.Op, ErrEmpty)
	default:
		return fmt.Sprintf("%s: %v: %d", e.Op, ErrInvalidArgument, e.Pos)
	}
}

// Unwrap returns the sentinel for the error's kind.
func (e *Error) Unwrap() error {
	return e.Kind.sentinel()
}
