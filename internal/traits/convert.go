package traits

import (
	"strings"
	"unicode/utf16"
	"unicode/utf8"
	"unsafe"
)

// Width returns the size in bytes of one C.
func Width[C Char]() int {
	var c C
	return int(unsafe.Sizeof(c))
}

// EncodedLen returns how many elements of C the string s occupies.
// One-byte types hold s byte for byte, two-byte types hold UTF-16 code
// units and wider types hold one rune per element.
func EncodedLen[C Char](s string) int {
	switch Width[C]() {
	case 1:
		return len(s)
	case 2:
		n := 0
		for _, r := range s {
			if r >= 0x10000 && r <= utf8.MaxRune {
				n += 2
			} else {
				n++
			}
		}
		return n
	default:
		return utf8.RuneCountInString(s)
	}
}

// EncodeString writes s into dst using the encoding EncodedLen describes and
// returns the number of elements written. Output stops when dst is full, so a
// surrogate pair may be cut after its first unit.
func EncodeString[C Char](dst []C, s string) int {
	switch Width[C]() {
	case 1:
		n := min(len(dst), len(s))
		for i := 0; i < n; i++ {
			dst[i] = C(s[i])
		}
		return n
	case 2:
		n := 0
		for _, r := range s {
			if n == len(dst) {
				break
			}
			if r1, r2 := utf16.EncodeRune(r); r1 != utf8.RuneError || r2 != utf8.RuneError {
				dst[n] = C(r1)
				n++
				if n == len(dst) {
					break
				}
				dst[n] = C(r2)
			} else {
				dst[n] = C(r)
			}
			n++
		}
		return n
	default:
		n := 0
		for _, r := range s {
			if n == len(dst) {
				break
			}
			dst[n] = C(r)
			n++
		}
		return n
	}
}

// FromString returns s encoded as a new slice of C.
func FromString[C Char](s string) []C {
	out := make([]C, EncodedLen[C](s))
	EncodeString(out, s)
	return out
}

// ToString decodes s back into a Go string; it is the inverse of FromString
// for valid input.
func ToString[C Char](s []C) string {
	switch Width[C]() {
	case 1:
		var sb strings.Builder
		sb.Grow(len(s))
		for _, c := range s {
			sb.WriteByte(byte(c))
		}
		return sb.String()
	case 2:
		units := make([]uint16, len(s))
		for i, c := range s {
			units[i] = uint16(c)
		}
		return string(utf16.Decode(units))
	default:
		var sb strings.Builder
		sb.Grow(len(s))
		for _, c := range s {
			sb.WriteRune(rune(c))
		}
		return sb.String()
	}
}
