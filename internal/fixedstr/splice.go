package fixedstr

import (
	"slices"

	"github.com/dshills/fixbuf/internal/failure"
	"github.com/dshills/fixbuf/internal/traits"
)

// Operation names carried by errors.
const (
	opAppend     = "Append"
	opAssign     = "Assign"
	opAt         = "At"
	opBack       = "Back"
	opCopyTo     = "CopyTo"
	opErase      = "Erase"
	opFront      = "Front"
	opInsert     = "Insert"
	opPopBack    = "PopBack"
	opPushBack   = "PushBack"
	opReplace    = "Replace"
	opResize     = "Resize"
	opSet        = "Set"
	opSubstr     = "Substr"
	opSwap       = "Swap"
	opAssignFill = "AssignFill"
)

// splice describes replacing data[first:last] with insert new elements,
// after clamping to capacity.
type splice struct {
	first, last int
	insert      int  // elements written at first
	keep        int  // tail elements surviving after the new content
	requested   int  // size the caller asked for, before clamping
	truncated   bool // insert or keep was clamped
}

// delta is the signed change in size, ignoring tail truncation.
func (p splice) delta() int { return p.insert - (p.last - p.first) }

// end is where the surviving tail starts once the splice is applied.
func (p splice) end() int { return p.first + p.insert }

// plan validates positions and clamps a splice of count elements to capacity.
// ok is false when there is nothing to do.
func (s *String[C]) plan(op string, first, last, count int) (p splice, ok bool, err error) {
	size := s.count.Size()
	switch {
	case first < 0 || first > size:
		return p, false, s.fail(failure.OutOfRange(op, first, size))
	case last < 0 || last > size:
		return p, false, s.fail(failure.OutOfRange(op, last, size))
	case count < 0:
		return p, false, s.fail(failure.InvalidArgument(op, count))
	case first > last:
		// Inverted ranges are ignored rather than reported.
		return p, false, nil
	case first == last && count == 0:
		return p, false, nil
	}

	capacity := s.count.Capacity()
	tail := size - last
	p = splice{
		first:     first,
		last:      last,
		insert:    min(count, capacity-first),
		requested: size - (last - first) + count,
	}
	p.keep = min(tail, capacity-p.end())
	p.truncated = p.insert < count || p.keep < tail
	return p, true, nil
}

// shiftTail moves the surviving tail from last to end.
func (s *String[C]) shiftTail(p splice) {
	traits.Move(s.data[p.end():p.end()+p.keep], s.data[p.last:p.last+p.keep])
}

// commit stores the new size, terminates and handles truncation.
func (s *String[C]) commit(op string, p splice) error {
	n := s.count.Set(p.end() + p.keep)
	s.data[n] = 0
	if p.truncated {
		return s.truncate(op, p.requested)
	}
	return nil
}

// truncate records a capacity overflow. The content has already been clamped.
func (s *String[C]) truncate(op string, requested int) error {
	if s.track {
		s.truncated = true
	}
	if !s.strict {
		return nil
	}
	return s.fail(failure.Length(op, requested, s.count.Capacity()))
}

// Replace replaces data[first:last] with source. source may alias the
// string's own storage, including the replaced range and the tail.
//
// A nil or empty source erases the range. An inverted range (first > last)
// is ignored. Positions outside [0, Size()] fail with failure.ErrOutOfRange
// and leave the string unchanged. Content that does not fit is clamped.
func (s *String[C]) Replace(first, last int, source []C) error {
	return s.replace(opReplace, first, last, source)
}

func (s *String[C]) replace(op string, first, last int, source []C) error {
	p, ok, err := s.plan(op, first, last, len(source))
	if !ok {
		return err
	}

	src := source[:p.insert]
	off, aliased := traits.Offset(s.data, src)

	switch d := p.delta(); {
	case d == 0:
		traits.Move(s.data[p.first:], src)

	case d < 0:
		// Write first: the tail still sits where src expects it.
		traits.Move(s.data[p.first:], src)
		s.shiftTail(p)

	default:
		if aliased && off+p.insert > p.last+p.keep {
			// Part of src lives where the tail is dropped or past the
			// end; the shift below would overwrite it.
			src, aliased = slices.Clone(src), false
		}
		s.shiftTail(p)

		switch {
		case !aliased || off+p.insert <= p.last:
			// src is untouched by the shift.
			traits.Move(s.data[p.first:], src)
		case off >= p.last:
			// src lies wholly in the tail and moved with it.
			off += d
			traits.Move(s.data[p.first:], s.data[off:off+p.insert])
		default:
			// src straddles last: its head stayed, its tail moved.
			head := p.last - off
			traits.Move(s.data[p.first:], s.data[off:p.last])
			traits.Copy(s.data[p.first+head:p.end()], s.data[p.last+d:])
		}
	}
	return s.commit(op, p)
}

// fillSplice opens a gap for count elements at first and lets write fill it.
// write never sees storage outside the gap.
func (s *String[C]) fillSplice(op string, first, last, count int, write func(gap []C)) error {
	p, ok, err := s.plan(op, first, last, count)
	if !ok {
		return err
	}
	s.shiftTail(p)
	write(s.data[p.first:p.end()])
	return s.commit(op, p)
}

// Insert inserts source before position pos.
func (s *String[C]) Insert(pos int, source []C) error {
	return s.replace(opInsert, pos, pos, source)
}

// Erase removes data[first:last].
func (s *String[C]) Erase(first, last int) error {
	return s.replace(opErase, first, last, nil)
}

// EraseAt removes the element at pos.
func (s *String[C]) EraseAt(pos int) error {
	return s.replace(opErase, pos, pos+1, nil)
}

// Append adds source at the end.
func (s *String[C]) Append(source []C) error {
	n := s.count.Size()
	return s.replace(opAppend, n, n, source)
}

// Assign replaces the whole content with source and clears the truncation
// flag before writing.
func (s *String[C]) Assign(source []C) error {
	s.truncated = false
	n := traits.Move(s.data[:s.count.Capacity()], source)
	s.count.Set(n)
	s.data[n] = 0
	if n < len(source) {
		return s.truncate(opAssign, len(source))
	}
	return nil
}

// PushBack appends c. On a full string c is dropped and treated as a
// truncation.
func (s *String[C]) PushBack(c C) error {
	n := s.count.Size()
	if s.count.Full() {
		return s.truncate(opPushBack, n+1)
	}
	s.data[n] = c
	s.data[s.count.Set(n+1)] = 0
	return nil
}

// PopBack removes the last element.
func (s *String[C]) PopBack() error {
	if s.count.Empty() {
		return s.fail(failure.Empty(opPopBack))
	}
	s.data[s.count.Set(s.count.Size()-1)] = 0
	return nil
}

// Clear empties the string. The truncation flag is left as is.
func (s *String[C]) Clear() {
	s.count.Reset()
	s.data[0] = 0
}

// Resize sets the size to n, filling new positions with c.
func (s *String[C]) Resize(n int, c C) error {
	if n < 0 {
		return s.fail(failure.InvalidArgument(opResize, n))
	}
	size := s.count.Size()
	if n <= size {
		s.data[s.count.Set(n)] = 0
		return nil
	}
	return s.fillSplice(opResize, size, size, n-size, func(gap []C) {
		traits.Fill(gap, c)
	})
}

// ReplaceFill replaces data[first:last] with n copies of c.
func (s *String[C]) ReplaceFill(first, last, n int, c C) error {
	return s.fillSplice(opReplace, first, last, n, func(gap []C) {
		traits.Fill(gap, c)
	})
}

// InsertFill inserts n copies of c before pos.
func (s *String[C]) InsertFill(pos, n int, c C) error {
	return s.fillSplice(opInsert, pos, pos, n, func(gap []C) {
		traits.Fill(gap, c)
	})
}

// AppendFill appends n copies of c.
func (s *String[C]) AppendFill(n int, c C) error {
	size := s.count.Size()
	return s.fillSplice(opAppend, size, size, n, func(gap []C) {
		traits.Fill(gap, c)
	})
}

// AssignFill replaces the content with n copies of c.
func (s *String[C]) AssignFill(n int, c C) error {
	if n < 0 {
		return s.fail(failure.InvalidArgument(opAssignFill, n))
	}
	s.truncated = false
	s.Clear()
	return s.fillSplice(opAssignFill, 0, 0, n, func(gap []C) {
		traits.Fill(gap, c)
	})
}

// ReplaceString replaces data[first:last] with str, encoded for C.
func (s *String[C]) ReplaceString(first, last int, str string) error {
	return s.fillSplice(opReplace, first, last, traits.EncodedLen[C](str), func(gap []C) {
		traits.EncodeString(gap, str)
	})
}

// InsertString inserts str before pos.
func (s *String[C]) InsertString(pos int, str string) error {
	return s.ReplaceString(pos, pos, str)
}

// AppendString appends str.
func (s *String[C]) AppendString(str string) error {
	size := s.count.Size()
	return s.fillSplice(opAppend, size, size, traits.EncodedLen[C](str), func(gap []C) {
		traits.EncodeString(gap, str)
	})
}

// AssignString replaces the content with str and clears the truncation flag.
func (s *String[C]) AssignString(str string) error {
	s.truncated = false
	n := traits.EncodeString(s.data[:s.count.Capacity()], str)
	s.data[s.count.Set(n)] = 0
	if want := traits.EncodedLen[C](str); n < want {
		return s.truncate(opAssign, want)
	}
	return nil
}

// Swap exchanges the contents of s and other. When one side holds more
// than the other can take, that side is clamped and truncation is recorded
// on the receiving string. Truncation flags themselves are not exchanged.
func (s *String[C]) Swap(other *String[C]) error {
	if s == other {
		return nil
	}
	a, b := s.count.Size(), other.count.Size()
	common := min(a, b)
	for i := 0; i < common; i++ {
		s.data[i], other.data[i] = other.data[i], s.data[i]
	}

	var errA, errB error
	switch {
	case a > b:
		n := b + traits.Copy(other.data[b:other.count.Capacity()], s.data[b:a])
		other.data[other.count.Set(n)] = 0
		s.data[s.count.Set(b)] = 0
		if n < a {
			errB = other.truncate(opSwap, a)
		}
	case b > a:
		n := a + traits.Copy(s.data[a:s.count.Capacity()], other.data[a:b])
		s.data[s.count.Set(n)] = 0
		other.data[other.count.Set(a)] = 0
		if n < b {
			errA = s.truncate(opSwap, b)
		}
	}
	if errA != nil {
		return errA
	}
	return errB
}
