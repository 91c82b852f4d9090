// Package bitset provides a set of N bits stored in a fixed array of words.
package bitset

import (
	"math/bits"
	"strings"

	"github.com/dshills/fixbuf/internal/failure"
	"github.com/dshills/fixbuf/internal/limits"
)

const wordBits = 64

const (
	opSet   = "Bitset.Set"
	opReset = "Bitset.Reset"
	opFlip  = "Bitset.Flip"
	opTest  = "Bitset.Test"
)

// Option configures a Bitset.
type Option func(*Bitset)

// WithReporter sets the reporter that receives every failure.
func WithReporter(r failure.Reporter) Option {
	return func(b *Bitset) {
		if r != nil {
			b.reporter = r
		}
	}
}

// Bitset holds a fixed number of bits. Bits past Len() in the last word are
// kept zero.
type Bitset struct {
	words    []uint64
	n        int
	reporter failure.Reporter
}

// New returns a Bitset of n bits, all clear.
func New(n int, opts ...Option) *Bitset {
	n = max(n, 0)
	b := &Bitset{
		words:    make([]uint64, limits.WordsFor(n, wordBits)),
		n:        n,
		reporter: failure.Silent{},
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Len returns the number of bits.
func (b *Bitset) Len() int { return b.n }

func (b *Bitset) check(op string, i int) error {
	if i < 0 || i >= b.n {
		err := failure.OutOfRange(op, i, b.n)
		b.reporter.Report(err)
		return err
	}
	return nil
}

// Set sets bit i.
func (b *Bitset) Set(i int) error {
	if err := b.check(opSet, i); err != nil {
		return err
	}
	b.words[i/wordBits] |= 1 << (i % wordBits)
	return nil
}

// Reset clears bit i.
func (b *Bitset) Reset(i int) error {
	if err := b.check(opReset, i); err != nil {
		return err
	}
	b.words[i/wordBits] &^= 1 << (i % wordBits)
	return nil
}

// Flip toggles bit i.
func (b *Bitset) Flip(i int) error {
	if err := b.check(opFlip, i); err != nil {
		return err
	}
	b.words[i/wordBits] ^= 1 << (i % wordBits)
	return nil
}

// Test reports whether bit i is set.
func (b *Bitset) Test(i int) (bool, error) {
	if err := b.check(opTest, i); err != nil {
		return false, err
	}
	return b.words[i/wordBits]&(1<<(i%wordBits)) != 0, nil
}

// SetAll sets every bit.
func (b *Bitset) SetAll() {
	for i := range b.words {
		b.words[i] = ^uint64(0)
	}
	b.trim()
}

// ResetAll clears every bit.
func (b *Bitset) ResetAll() {
	clear(b.words)
}

// FlipAll toggles every bit.
func (b *Bitset) FlipAll() {
	for i := range b.words {
		b.words[i] = ^b.words[i]
	}
	b.trim()
}

// trim clears the unused high bits of the last word.
func (b *Bitset) trim() {
	if r := b.n % wordBits; r != 0 {
		b.words[len(b.words)-1] &= 1<<r - 1
	}
}

// Count returns the number of set bits.
func (b *Bitset) Count() int {
	c := 0
	for _, w := range b.words {
		c += bits.OnesCount64(w)
	}
	return c
}

// All reports whether every bit is set. It is true for an empty set.
func (b *Bitset) All() bool { return b.Count() == b.n }

// Any reports whether at least one bit is set.
func (b *Bitset) Any() bool { return b.Count() > 0 }

// None reports whether no bit is set.
func (b *Bitset) None() bool { return b.Count() == 0 }

// String renders the bits with bit 0 last, as in "0101".
func (b *Bitset) String() string {
	var sb strings.Builder
	sb.Grow(b.n)
	for i := b.n - 1; i >= 0; i-- {
		if b.words[i/wordBits]&(1<<(i%wordBits)) != 0 {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}
