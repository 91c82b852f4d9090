package fixedstr

import "github.com/dshills/fixbuf/internal/failure"

// Option is a functional option for configuring a String.
type Option func(*settings)

type settings struct {
	track    bool // record truncation in the sticky flag
	strict   bool // report truncation as ErrTruncated
	reporter failure.Reporter
}

func defaultSettings() settings {
	return settings{reporter: failure.Silent{}}
}

// WithTruncationTracking enables the sticky truncation flag. Without it
// Truncated always returns false.
func WithTruncationTracking() Option {
	return func(s *settings) {
		s.track = true
	}
}

// WithTruncationError makes capacity overflows report ErrTruncated through
// the reporter and return it. The clamped mutation is still applied.
func WithTruncationError() Option {
	return func(s *settings) {
		s.strict = true
	}
}

// WithReporter sets the reporter that receives every failure.
func WithReporter(r failure.Reporter) Option {
	return func(s *settings) {
		if r != nil {
			s.reporter = r
		}
	}
}

// WithOptions combines several options into one.
func WithOptions(opts ...Option) Option {
	return func(s *settings) {
		for _, opt := range opts {
			opt(s)
		}
	}
}
