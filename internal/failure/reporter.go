package failure

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// Reporter receives every failure a container detects. Containers never
// depend on Report returning or not: they leave themselves in a valid state
// before calling it and return the same error to their caller afterwards.
type Reporter interface {
	Report(err *Error)
}

// ReporterFunc adapts a function to the Reporter interface.
type ReporterFunc func(err *Error)

// Report calls f(err).
func (f ReporterFunc) Report(err *Error) { f(err) }

// Silent discards failures. Callers rely on returned errors alone.
type Silent struct{}

// Report does nothing.
func (Silent) Report(*Error) {}

// Raise panics with the *Error. Recover converts the panic back into an
// error at an API boundary.
type Raise struct{}

// Report panics with err.
func (Raise) Report(err *Error) { panic(err) }

// Log writes failures to a zap logger and lets execution continue.
type Log struct {
	logger *zap.Logger
}

// NewLog returns a Log reporter. A nil logger discards output.
func NewLog(logger *zap.Logger) *Log {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Log{logger: logger.Named("failure")}
}

// Report logs err. Capacity errors are warnings; the rest are errors since
// they point at caller bugs.
func (l *Log) Report(err *Error) {
	fields := []zap.Field{
		zap.String("kind", err.Kind.String()),
		zap.String("op", err.Op),
		zap.Int("pos", err.Pos),
		zap.Int("bound", err.Bound),
	}
	if err.Kind == KindLength {
		l.logger.Warn("content truncated", fields...)
		return
	}
	l.logger.Error("container operation failed", fields...)
}

// Recover stops a panic raised by the Raise reporter and stores it in *errp.
// Any other panic continues unwinding. Use it as a deferred call:
//
//	defer failure.Recover(&err)
func Recover(errp *error) {
	r := recover()
	if r == nil {
		return
	}
	if e, ok := r.(*Error); ok {
		*errp = e
		return
	}
	panic(r)
}

// Policy selects one of the built-in reporters.
type Policy uint8

const (
	PolicySilent Policy = iota
	PolicyLog
	PolicyRaise
)

// String returns the policy name.
func (p Policy) String() string {
	switch p {
	case PolicySilent:
		return "silent"
	case PolicyLog:
		return "log"
	case PolicyRaise:
		return "raise"
	default:
		return "unknown"
	}
}

// ParsePolicy parses "silent", "log" or "raise" (case-insensitive).
// The empty string selects PolicySilent.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "silent", "none":
		return PolicySilent, nil
	case "log":
		return PolicyLog, nil
	case "raise", "panic":
		return PolicyRaise, nil
	default:
		return PolicySilent, fmt.Errorf("unknown failure policy %q", s)
	}
}

// NewReporter builds the reporter for p. logger is only used by PolicyLog.
func NewReporter(p Policy, logger *zap.Logger) Reporter {
	switch p {
	case PolicyLog:
		return NewLog(logger)
	case PolicyRaise:
		return Raise{}
	default:
		return Silent{}
	}
}
