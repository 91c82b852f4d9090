// Package traits provides the character-level primitives fixed strings are
// built on: length, comparison, copying, overlap-safe moves and searching
// over plain slices of a character type.
//
// Nothing in this package allocates except FromString and ToString, which
// convert between Go strings and character slices.
package traits
