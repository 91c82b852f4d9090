package config

import (
	"errors"
	"fmt"
	"strconv"
)

// Errors returned by configuration operations.
var (
	// ErrFileNotFound indicates the configuration file doesn't exist.
	ErrFileNotFound = errors.New("config file not found")

	// ErrUnknownFormat indicates a file extension other than .toml, .yaml or .yml.
	ErrUnknownFormat = errors.New("unknown config format")

	// ErrValidationFailed indicates a value outside its allowed range.
	ErrValidationFailed = errors.New("validation failed")
)

// ParseError locates a TOML or YAML decoding failure in a config file.
// Line and Column are zero when the decoder does not report them; YAML
// errors carry a line only.
type ParseError struct {
	Path         string
	Line, Column int
	Err          error
}

func (e *ParseError) Error() string {
	loc := e.Path
	if e.Line > 0 {
		loc += ":" + strconv.Itoa(e.Line)
		if e.Column > 0 {
			loc += ":" + strconv.Itoa(e.Column)
		}
	}
	return fmt.Sprintf("config %s: %v", loc, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ValidationError describes a setting that failed validation.
type ValidationError struct {
	Setting string
	Value   any
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %v: %s", e.Setting, e.Value, e.Message)
}

// Unwrap returns ErrValidationFailed.
func (e *ValidationError) Unwrap() error {
	return ErrValidationFailed
}
