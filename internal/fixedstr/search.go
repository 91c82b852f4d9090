package fixedstr

import "github.com/dshills/fixbuf/internal/traits"

// Searches follow the usual string conventions: a start position past the
// end yields Npos instead of an error.

// Find returns the index of the first occurrence of sub at or after pos.
func (s *String[C]) Find(sub []C, pos int) int {
	data := s.Data()
	if pos < 0 || pos > len(data) {
		return Npos
	}
	if i := traits.Index(data[pos:], sub); i != Npos {
		return pos + i
	}
	return Npos
}

// FindString is Find for a Go string.
func (s *String[C]) FindString(sub string, pos int) int {
	return s.Find(traits.FromString[C](sub), pos)
}

// FindChar returns the index of the first c at or after pos.
func (s *String[C]) FindChar(c C, pos int) int {
	data := s.Data()
	if pos < 0 || pos > len(data) {
		return Npos
	}
	if i := traits.Find(data[pos:], c); i != Npos {
		return pos + i
	}
	return Npos
}

// RFind returns the index of the last occurrence of sub starting at or
// before pos. A pos at or past the end searches the whole string.
func (s *String[C]) RFind(sub []C, pos int) int {
	data := s.Data()
	if pos < 0 {
		return Npos
	}
	end := len(data)
	if pos < end-len(sub) {
		end = pos + len(sub)
	}
	return traits.LastIndex(data[:end], sub)
}

// RFindChar returns the index of the last c at or before pos.
func (s *String[C]) RFindChar(c C, pos int) int {
	data := s.Data()
	if pos < 0 || len(data) == 0 {
		return Npos
	}
	return traits.RFind(data[:through(pos, len(data))], c)
}

// FindFirstOf returns the index of the first element at or after pos that
// is in set.
func (s *String[C]) FindFirstOf(set []C, pos int) int {
	data := s.Data()
	if pos < 0 || pos > len(data) {
		return Npos
	}
	if i := traits.IndexAny(data[pos:], set); i != Npos {
		return pos + i
	}
	return Npos
}

// FindFirstNotOf returns the index of the first element at or after pos
// that is not in set.
func (s *String[C]) FindFirstNotOf(set []C, pos int) int {
	data := s.Data()
	if pos < 0 || pos > len(data) {
		return Npos
	}
	if i := traits.IndexNotAny(data[pos:], set); i != Npos {
		return pos + i
	}
	return Npos
}

// FindLastOf returns the index of the last element at or before pos that is
// in set.
func (s *String[C]) FindLastOf(set []C, pos int) int {
	data := s.Data()
	if pos < 0 || len(data) == 0 {
		return Npos
	}
	return traits.LastIndexAny(data[:through(pos, len(data))], set)
}

// FindLastNotOf returns the index of the last element at or before pos that
// is not in set.
func (s *String[C]) FindLastNotOf(set []C, pos int) int {
	data := s.Data()
	if pos < 0 || len(data) == 0 {
		return Npos
	}
	return traits.LastIndexNotAny(data[:through(pos, len(data))], set)
}

// Contains reports whether sub occurs in the string.
func (s *String[C]) Contains(sub []C) bool {
	return traits.Index(s.Data(), sub) != Npos
}

// StartsWith reports whether the string begins with prefix.
func (s *String[C]) StartsWith(prefix []C) bool {
	data := s.Data()
	return len(prefix) <= len(data) && traits.Compare(data, prefix, len(prefix)) == 0
}

// EndsWith reports whether the string ends with suffix.
func (s *String[C]) EndsWith(suffix []C) bool {
	data := s.Data()
	n := len(suffix)
	return n <= len(data) && traits.Compare(data[len(data)-n:], suffix, n) == 0
}

// Compare compares the string with other lexicographically and returns
// -1, 0 or 1.
func (s *String[C]) Compare(other []C) int {
	return traits.CompareRanges(s.Data(), other)
}

// Equal reports whether the string holds exactly other.
func (s *String[C]) Equal(other []C) bool {
	return traits.Equal(s.Data(), other)
}

// EqualString reports whether the string holds str.
func (s *String[C]) EqualString(str string) bool {
	if traits.EncodedLen[C](str) != s.Size() {
		return false
	}
	return s.String() == str
}

// through returns the exclusive end of a backward search that may start at
// pos in a string of length n.
func through(pos, n int) int {
	if pos >= n-1 {
		return n
	}
	return pos + 1
}
