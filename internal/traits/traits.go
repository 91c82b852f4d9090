package traits

import (
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Npos is returned by the search functions when nothing matches.
const Npos = -1

// Char is the set of element types a fixed string can hold.
// byte, uint16 (UTF-16 code units) and rune are the common choices.
type Char interface {
	constraints.Unsigned | ~int32
}

// Length returns the index of the first zero element in s, or len(s) if
// s holds no terminator.
func Length[C Char](s []C) int {
	for i, c := range s {
		if c == 0 {
			return i
		}
	}
	return len(s)
}

// Compare compares the first n elements of a and b.
// It returns -1, 0 or 1. Both slices must hold at least n elements.
func Compare[C Char](a, b []C, n int) int {
	a, b = a[:n], b[:n]
	for i := range a {
		switch {
		case a[i] < b[i]:
			return -1
		case a[i] > b[i]:
			return 1
		}
	}
	return 0
}

// CompareRanges compares a and b lexicographically; a shorter slice that is
// a prefix of the longer one orders first.
func CompareRanges[C Char](a, b []C) int {
	n := min(len(a), len(b))
	if r := Compare(a, b, n); r != 0 {
		return r
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	return 0
}

// Equal reports whether a and b hold the same elements.
func Equal[C Char](a, b []C) bool {
	return len(a) == len(b) && Compare(a, b, len(a)) == 0
}

// Copy copies min(len(dst), len(src)) elements front to back and returns the
// number copied. dst and src must not overlap; use Move when they might.
func Copy[C Char](dst, src []C) int {
	n := min(len(dst), len(src))
	dst, src = dst[:n], src[:n]
	for i := range src {
		dst[i] = src[i]
	}
	return n
}

// Move copies min(len(dst), len(src)) elements and returns the number copied.
// The result is correct when dst and src share storage: the copy runs
// forward when dst starts below src and backward otherwise.
func Move[C Char](dst, src []C) int {
	n := min(len(dst), len(src))
	if n == 0 {
		return 0
	}
	dst, src = dst[:n], src[:n]

	d := uintptr(unsafe.Pointer(&dst[0]))
	s := uintptr(unsafe.Pointer(&src[0]))
	switch {
	case d == s:
	case d < s:
		for i := 0; i < n; i++ {
			dst[i] = src[i]
		}
	default:
		for i := n - 1; i >= 0; i-- {
			dst[i] = src[i]
		}
	}
	return n
}

// Fill sets every element of dst to c.
func Fill[C Char](dst []C, c C) {
	for i := range dst {
		dst[i] = c
	}
}

// Offset reports where p starts inside base. It returns false when p is
// empty or its first element is not one of base's elements.
func Offset[C Char](base, p []C) (int, bool) {
	if len(p) == 0 || len(base) == 0 {
		return 0, false
	}
	size := unsafe.Sizeof(p[0])
	b := uintptr(unsafe.Pointer(unsafe.SliceData(base)))
	q := uintptr(unsafe.Pointer(&p[0]))
	if q < b || q >= b+uintptr(len(base))*size {
		return 0, false
	}
	return int((q - b) / size), true
}
