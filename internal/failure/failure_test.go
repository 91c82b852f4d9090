package failure

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestErrorIs(t *testing.T) {
	tests := []struct {
		err  *Error
		want error
		msg  string
	}{
		{OutOfRange("Insert", 9, 5), ErrOutOfRange, "Insert: position out of range: 9 not in [0, 5]"},
		{Length("Append", 12, 8), ErrTruncated, "Append: capacity exceeded: requested 12, capacity 8"},
		{Empty("Pop"), ErrEmpty, "Pop: container is empty"},
		{InvalidArgument("Resize", -1), ErrInvalidArgument, "Resize: invalid argument: -1"},
	}
	for _, tt := range tests {
		t.Run(tt.err.Kind.String(), func(t *testing.T) {
			assert.ErrorIs(t, tt.err, tt.want)
			assert.Equal(t, tt.msg, tt.err.Error())

			wrapped := errors.Join(errors.New("context"), tt.err)
			var fe *Error
			require.True(t, errors.As(wrapped, &fe))
			assert.Equal(t, tt.err.Op, fe.Op)
		})
	}
	assert.NotErrorIs(t, OutOfRange("At", 1, 0), ErrTruncated)
}

func TestRaiseAndRecover(t *testing.T) {
	run := func() (err error) {
		defer Recover(&err)
		Raise{}.Report(OutOfRange("Erase", 3, 1))
		return nil
	}
	err := run()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestRecoverRepanicsForeignValues(t *testing.T) {
	assert.PanicsWithValue(t, "boom", func() {
		var err error
		defer Recover(&err)
		panic("boom")
	})
}

func TestRecoverWithoutPanic(t *testing.T) {
	err := func() (err error) {
		defer Recover(&err)
		return nil
	}()
	assert.NoError(t, err)
}

func TestLogReporter(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	r := NewLog(zap.New(core))

	r.Report(Length("Append", 10, 4))
	r.Report(OutOfRange("Insert", 7, 2))

	entries := logs.AllUntimed()
	require.Len(t, entries, 2)

	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
	assert.Equal(t, "failure", entries[0].LoggerName)
	assert.Equal(t, "length", entries[0].ContextMap()["kind"])
	assert.Equal(t, int64(10), entries[0].ContextMap()["pos"])

	assert.Equal(t, zapcore.ErrorLevel, entries[1].Level)
	assert.Equal(t, "Insert", entries[1].ContextMap()["op"])
}

func TestLogReporterNilLogger(t *testing.T) {
	assert.NotPanics(t, func() {
		NewLog(nil).Report(Empty("Pop"))
	})
}

func TestReporterFunc(t *testing.T) {
	var got []*Error
	r := ReporterFunc(func(err *Error) { got = append(got, err) })
	r.Report(Empty("Top"))
	require.Len(t, got, 1)
	assert.Equal(t, KindEmpty, got[0].Kind)
}

func TestParsePolicy(t *testing.T) {
	tests := []struct {
		in   string
		want Policy
	}{
		{"", PolicySilent},
		{"silent", PolicySilent},
		{"LOG", PolicyLog},
		{" raise ", PolicyRaise},
		{"panic", PolicyRaise},
	}
	for _, tt := range tests {
		p, err := ParsePolicy(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, p, tt.in)
	}

	_, err := ParsePolicy("abort")
	assert.Error(t, err)
}

func TestNewReporter(t *testing.T) {
	assert.IsType(t, Silent{}, NewReporter(PolicySilent, nil))
	assert.IsType(t, Raise{}, NewReporter(PolicyRaise, nil))
	assert.IsType(t, &Log{}, NewReporter(PolicyLog, zap.NewNop()))
	assert.Equal(t, "raise", PolicyRaise.String())
}
