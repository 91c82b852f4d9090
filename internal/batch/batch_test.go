package batch

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/dshills/fixbuf/internal/failure"
	"github.com/dshills/fixbuf/internal/fixedstr"
)

func TestParse(t *testing.T) {
	b, err := Parse([]byte(`{
		"capacity": 10,
		"init": "abcdef",
		"ops": [
			{"op": "replace", "first": 1, "last": 3, "text": "XY"},
			{"op": "insert", "pos": 0, "text": ">"},
			{"op": "self_replace", "first": 0, "last": 1, "src_first": 2, "src_last": 4},
			{"op": "push_back", "char": "!"},
			{"op": "resize", "size": 3},
			{"op": "pop_back"}
		]
	}`), 64, 1024)
	require.NoError(t, err)
	assert.Equal(t, 10, b.Capacity)
	assert.Equal(t, "abcdef", b.Init)
	require.Len(t, b.Ops, 6)
	assert.Equal(t, Op{Name: OpReplace, First: 1, Last: 3, Text: "XY"}, b.Ops[0])
	assert.Equal(t, Op{Name: OpInsert, Text: ">"}, b.Ops[1])
	assert.Equal(t, Op{Name: OpSelfReplace, Last: 1, SrcFirst: 2, SrcLast: 4}, b.Ops[2])
	assert.Equal(t, byte('!'), b.Ops[3].Char)
	assert.Equal(t, 3, b.Ops[4].First)
}

func TestParseDefaultCapacity(t *testing.T) {
	b, err := Parse([]byte(`{"init":"x"}`), 64, 1024)
	require.NoError(t, err)
	assert.Equal(t, 64, b.Capacity)
	assert.Empty(t, b.Ops)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"malformed", `{"ops": [`},
		{"not object", `[1, 2]`},
		{"negative capacity", `{"capacity": -1}`},
		{"string capacity", `{"capacity": "8"}`},
		{"capacity too large", `{"capacity": 9000000000000000000, "init": "x"}`},
		{"capacity above limit", `{"capacity": 1025}`},
		{"ops not array", `{"ops": {}}`},
		{"op not object", `{"ops": [1]}`},
		{"missing op", `{"ops": [{"text": "x"}]}`},
		{"unknown op", `{"ops": [{"op": "reverse"}]}`},
		{"missing text", `{"ops": [{"op": "append"}]}`},
		{"missing range", `{"ops": [{"op": "erase", "first": 1}]}`},
		{"long char", `{"ops": [{"op": "push_back", "char": "ab"}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.in), 8, 1024)
			assert.ErrorIs(t, err, ErrInvalidBatch)
		})
	}
}

func TestParseCapacityAtLimit(t *testing.T) {
	b, err := Parse([]byte(`{"capacity": 1024, "init": "x"}`), 8, 1024)
	require.NoError(t, err)
	assert.Equal(t, 1024, b.Capacity)

	res := NewRunner(nil).Run(b)
	assert.Equal(t, 1024, res.Capacity)
	assert.Equal(t, "x", res.Text)
}

func TestRun(t *testing.T) {
	b, err := Parse([]byte(`{
		"capacity": 10,
		"init": "abcdef",
		"ops": [
			{"op": "replace", "first": 1, "last": 3, "text": "XYZ"},
			{"op": "erase", "first": 9, "last": 9},
			{"op": "self_replace", "first": 0, "last": 0, "src_first": 1, "src_last": 4},
			{"op": "append", "text": "tail"},
			{"op": "reset_truncated"},
			{"op": "pop_back"}
		]
	}`), 0, 1024)
	require.NoError(t, err)

	res := NewRunner(nil, fixedstr.WithTruncationTracking()).Run(b)

	_, perr := uuid.Parse(res.ID)
	require.NoError(t, perr)
	require.Len(t, res.Steps, 6)

	assert.NoError(t, res.Steps[0].Err)
	assert.Equal(t, 7, res.Steps[0].Size) // aXYZdef

	assert.ErrorIs(t, res.Steps[1].Err, failure.ErrOutOfRange)
	assert.Equal(t, 7, res.Steps[1].Size)

	assert.NoError(t, res.Steps[2].Err)
	assert.Equal(t, 10, res.Steps[2].Size) // XYZaXYZdef
	assert.False(t, res.Steps[2].Truncated)

	assert.NoError(t, res.Steps[3].Err)
	assert.True(t, res.Steps[3].Truncated)
	assert.False(t, res.Steps[4].Truncated)

	assert.Equal(t, "XYZaXYZde", res.Text)
	assert.Equal(t, 9, res.Size)
	assert.Equal(t, 10, res.Capacity)
	assert.Equal(t, 9, res.Width)
	assert.Equal(t, 9, res.Graphemes)
	assert.Equal(t, 1, res.Failed())
}

func TestRunRaisePolicy(t *testing.T) {
	b := &Batch{Capacity: 4, Init: "ab", Ops: []Op{
		{Name: OpInsert, First: 7, Last: 7, Text: "x"},
		{Name: OpAppend, Text: "cd"},
	}}
	res := NewRunner(nil, fixedstr.WithReporter(failure.Raise{})).Run(b)

	require.Len(t, res.Steps, 2)
	assert.ErrorIs(t, res.Steps[0].Err, failure.ErrOutOfRange)
	assert.NoError(t, res.Steps[1].Err)
	assert.Equal(t, "abcd", res.Text)
}

func TestRunLogs(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	b := &Batch{Capacity: 2, Ops: []Op{{Name: OpPopBack}}}

	NewRunner(zap.New(core)).Run(b)

	failed := logs.FilterMessage("op failed").All()
	require.Len(t, failed, 1)
	assert.Equal(t, "batch", failed[0].LoggerName)
	assert.Equal(t, OpPopBack, failed[0].ContextMap()["op"])
	assert.Equal(t, 1, logs.FilterMessage("batch finished").Len())
}

func TestReport(t *testing.T) {
	r := &Result{
		ID:        "run-1",
		Text:      "héllo",
		Size:      6,
		Capacity:  8,
		Width:     5,
		Graphemes: 5,
		Steps: []Step{
			{Op: OpAppend, Size: 6},
			{Op: OpErase, Size: 6, Err: failure.OutOfRange("Erase", 9, 6)},
		},
	}
	out, err := Report(r)
	require.NoError(t, err)
	require.True(t, gjson.ValidBytes(out))

	doc := gjson.ParseBytes(out)
	assert.Equal(t, "run-1", doc.Get("id").String())
	assert.Equal(t, "héllo", doc.Get("text").String())
	assert.Equal(t, int64(8), doc.Get("capacity").Int())
	assert.Equal(t, int64(5), doc.Get("display.width").Int())
	assert.Equal(t, int64(1), doc.Get("failed").Int())
	assert.Equal(t, int64(2), doc.Get("ops.#").Int())
	assert.False(t, doc.Get("ops.0.error").Exists())
	assert.Contains(t, doc.Get("ops.1.error").String(), "out of range")
}

func TestReportNoOps(t *testing.T) {
	out, err := Report(&Result{ID: "x"})
	require.NoError(t, err)
	assert.True(t, gjson.GetBytes(out, "ops").IsArray())
	assert.Equal(t, int64(0), gjson.GetBytes(out, "ops.#").Int())
}
