package traits

// Find returns the index of the first c in s, or Npos.
func Find[C Char](s []C, c C) int {
	for i, x := range s {
		if x == c {
			return i
		}
	}
	return Npos
}

// RFind returns the index of the last c in s, or Npos.
func RFind[C Char](s []C, c C) int {
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] == c {
			return i
		}
	}
	return Npos
}

// Index returns the index of the first occurrence of sub in s, or Npos.
// An empty sub matches at 0.
func Index[C Char](s, sub []C) int {
	n := len(sub)
	switch {
	case n == 0:
		return 0
	case n > len(s):
		return Npos
	}
	for i := 0; i+n <= len(s); i++ {
		if s[i] == sub[0] && Compare(s[i:], sub, n) == 0 {
			return i
		}
	}
	return Npos
}

// LastIndex returns the index of the last occurrence of sub in s, or Npos.
// An empty sub matches at len(s).
func LastIndex[C Char](s, sub []C) int {
	n := len(sub)
	switch {
	case n == 0:
		return len(s)
	case n > len(s):
		return Npos
	}
	for i := len(s) - n; i >= 0; i-- {
		if s[i] == sub[0] && Compare(s[i:], sub, n) == 0 {
			return i
		}
	}
	return Npos
}

// IndexAny returns the index of the first element of s contained in set.
func IndexAny[C Char](s, set []C) int {
	for i, c := range s {
		if Find(set, c) != Npos {
			return i
		}
	}
	return Npos
}

// LastIndexAny returns the index of the last element of s contained in set.
func LastIndexAny[C Char](s, set []C) int {
	for i := len(s) - 1; i >= 0; i-- {
		if Find(set, s[i]) != Npos {
			return i
		}
	}
	return Npos
}

// IndexNotAny returns the index of the first element of s not in set.
func IndexNotAny[C Char](s, set []C) int {
	for i, c := range s {
		if Find(set, c) == Npos {
			return i
		}
	}
	return Npos
}

// LastIndexNotAny returns the index of the last element of s not in set.
func LastIndexNotAny[C Char](s, set []C) int {
	for i := len(s) - 1; i >= 0; i-- {
		if Find(set, s[i]) == Npos {
			return i
		}
	}
	return Npos
}
