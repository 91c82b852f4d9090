// Package fixedstr provides String, a zero-terminated string whose capacity
// is fixed when it is created and whose storage is never reallocated.
//
// It is meant for code that must not allocate once it is running: the
// backing array is allocated by New, or supplied by the caller through NewOn,
// and every mutation happens inside it.
//
// Basic usage:
//
//	s := fixedstr.New[byte](16)
//	s.AssignString("Hello")       // "Hello"
//	s.InsertString(5, ", World")  // "Hello, World"
//	s.Erase(5, 7)                 // "HelloWorld"
//
//	// The source of a mutation may be the string itself.
//	s.Replace(0, 5, s.Data()[5:]) // "WorldWorld"
//
// Every mutation is a splice: Replace removes a range and writes new content
// in its place, and Insert, Erase and Append are special cases of it. The
// splice is correct when the source overlaps the replaced range or the tail
// that has to move.
//
// Failures:
//
// A position outside [0, Size()] is a caller bug. The string is left
// unchanged, the failure goes to the configured failure.Reporter and an
// error matching failure.ErrOutOfRange is returned.
//
// Content that does not fit is clamped to capacity. This is not an error by
// default. WithTruncationTracking records it in a sticky flag read by
// Truncated, and WithTruncationError additionally reports it and returns
// failure.ErrTruncated. The clamped content is written either way.
//
// Thread Safety:
//
// A String is not safe for concurrent use. Callers sharing one across
// goroutines must synchronize access themselves.
package fixedstr
