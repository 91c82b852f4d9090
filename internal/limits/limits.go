// Package limits provides numeric limits and small integer math helpers for
// sizing fixed containers.
package limits

import (
	"math/bits"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Bits returns the width of T in bits.
func Bits[T constraints.Integer]() int {
	var v T
	return int(unsafe.Sizeof(v)) * 8
}

// IsSigned reports whether T is a signed integer type.
func IsSigned[T constraints.Integer]() bool {
	var zero T
	return zero-1 < zero
}

// Max returns the largest value of T.
func Max[T constraints.Integer]() T {
	n := Bits[T]()
	if IsSigned[T]() {
		return T(uint64(1)<<(n-1) - 1)
	}
	var zero T
	return ^zero
}

// Min returns the smallest value of T.
func Min[T constraints.Integer]() T {
	if IsSigned[T]() {
		return -Max[T]() - 1
	}
	return 0
}

// Digits returns the number of non-sign bits of T.
func Digits[T constraints.Integer]() int {
	if IsSigned[T]() {
		return Bits[T]() - 1
	}
	return Bits[T]()
}

// Digits10 returns how many decimal digits T represents without change.
func Digits10[T constraints.Integer]() int {
	// log10(2) ~= 643/2136
	return Digits[T]() * 643 / 2136
}

// Abs returns the absolute value of v. Abs(Min) overflows as it does for
// the built-in types.
func Abs[T constraints.Signed | constraints.Float](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

// Clamp limits v to [lo, hi].
func Clamp[T constraints.Ordered](v, lo, hi T) T {
	return min(max(v, lo), hi)
}

// Pow returns base**exp by repeated squaring. exp must not be negative.
func Pow[T constraints.Integer](base T, exp uint) T {
	result := T(1)
	for exp > 0 {
		if exp&1 == 1 {
			result *= base
		}
		base *= base
		exp >>= 1
	}
	return result
}

// GCD returns the greatest common divisor of a and b.
func GCD[T constraints.Integer](a, b T) T {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// LCM returns the least common multiple of a and b, or 0 if either is 0.
func LCM[T constraints.Integer](a, b T) T {
	if a == 0 || b == 0 {
		return 0
	}
	l := a / GCD(a, b) * b
	if l < 0 {
		return -l
	}
	return l
}

// IsPowerOf2 reports whether v is a positive power of two.
func IsPowerOf2[T constraints.Integer](v T) bool {
	return v > 0 && v&(v-1) == 0
}

// NextPowerOf2 returns the smallest power of two >= v. Values <= 1 yield 1.
func NextPowerOf2(v uint64) uint64 {
	if v <= 1 {
		return 1
	}
	return 1 << bits.Len64(v-1)
}

// WordsFor returns how many words of wordBits bits hold n bits.
func WordsFor(n, wordBits int) int {
	if n <= 0 {
		return 0
	}
	return (n + wordBits - 1) / wordBits
}
