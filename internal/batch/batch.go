// Package batch applies a JSON list of edits to a fixed byte string and
// reports the outcome as JSON.
//
// A batch looks like:
//
//	{
//	  "capacity": 16,
//	  "init": "Hello",
//	  "ops": [
//	    {"op": "append", "text": ", World"},
//	    {"op": "replace", "first": 0, "last": 5, "text": "Howdy"},
//	    {"op": "self_replace", "first": 0, "last": 0, "src_first": 7, "src_last": 12}
//	  ]
//	}
//
// Every op runs even when an earlier one failed; failures are recorded per
// op in the report.
package batch

import (
	"errors"
	"fmt"

	"github.com/tidwall/gjson"
)

// Op names.
const (
	OpAssign         = "assign"
	OpAppend         = "append"
	OpInsert         = "insert"
	OpErase          = "erase"
	OpReplace        = "replace"
	OpSelfReplace    = "self_replace"
	OpPushBack       = "push_back"
	OpPopBack        = "pop_back"
	OpResize         = "resize"
	OpClear          = "clear"
	OpResetTruncated = "reset_truncated"
)

// ErrInvalidBatch is wrapped by every parse failure.
var ErrInvalidBatch = errors.New("invalid batch")

// Batch is a parsed edit batch.
type Batch struct {
	Capacity int
	Init     string
	Ops      []Op
}

// Op is a single edit. Which fields are meaningful depends on Name.
type Op struct {
	Name     string
	First    int
	Last     int
	SrcFirst int
	SrcLast  int
	Text     string
	Char     byte
}

// FieldError describes a malformed op.
type FieldError struct {
	Index int
	Field string
	Msg   string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("op %d: %s: %s", e.Index, e.Field, e.Msg)
}

// Unwrap returns ErrInvalidBatch.
func (e *FieldError) Unwrap() error { return ErrInvalidBatch }

// Parse decodes a batch. A missing capacity takes defaultCapacity; a
// capacity above maxCapacity is rejected.
func Parse(data []byte, defaultCapacity, maxCapacity int) (*Batch, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: malformed JSON", ErrInvalidBatch)
	}
	doc := gjson.ParseBytes(data)
	if !doc.IsObject() {
		return nil, fmt.Errorf("%w: top level must be an object", ErrInvalidBatch)
	}

	b := &Batch{Capacity: defaultCapacity, Init: doc.Get("init").String()}
	if c := doc.Get("capacity"); c.Exists() {
		if c.Type != gjson.Number || c.Float() < 0 {
			return nil, fmt.Errorf("%w: capacity must be a non-negative number", ErrInvalidBatch)
		}
		if c.Float() > float64(maxCapacity) {
			return nil, fmt.Errorf("%w: capacity %s exceeds %d", ErrInvalidBatch, c.Raw, maxCapacity)
		}
		b.Capacity = int(c.Int())
	}

	ops := doc.Get("ops")
	if ops.Exists() && !ops.IsArray() {
		return nil, fmt.Errorf("%w: ops must be an array", ErrInvalidBatch)
	}
	var perr error
	ops.ForEach(func(_, v gjson.Result) bool {
		op, err := parseOp(len(b.Ops), v)
		if err != nil {
			perr = err
			return false
		}
		b.Ops = append(b.Ops, op)
		return true
	})
	if perr != nil {
		return nil, perr
	}
	return b, nil
}

func parseOp(idx int, v gjson.Result) (Op, error) {
	if !v.IsObject() {
		return Op{}, &FieldError{Index: idx, Field: "op", Msg: "must be an object"}
	}
	op := Op{Name: v.Get("op").String()}

	num := func(field string, dst *int) error {
		f := v.Get(field)
		if !f.Exists() || f.Type != gjson.Number {
			return &FieldError{Index: idx, Field: field, Msg: "number required"}
		}
		*dst = int(f.Int())
		return nil
	}
	text := func() error {
		f := v.Get("text")
		if f.Type != gjson.String {
			return &FieldError{Index: idx, Field: "text", Msg: "string required"}
		}
		op.Text = f.Str
		return nil
	}
	char := func() error {
		f := v.Get("char")
		if f.Type != gjson.String || len(f.Str) != 1 {
			return &FieldError{Index: idx, Field: "char", Msg: "single-byte string required"}
		}
		op.Char = f.Str[0]
		return nil
	}

	var err error
	switch op.Name {
	case OpAssign, OpAppend:
		err = text()
	case OpInsert:
		err = errors.Join(num("pos", &op.First), text())
		op.Last = op.First
	case OpErase:
		err = errors.Join(num("first", &op.First), num("last", &op.Last))
	case OpReplace:
		err = errors.Join(num("first", &op.First), num("last", &op.Last), text())
	case OpSelfReplace:
		err = errors.Join(
			num("first", &op.First), num("last", &op.Last),
			num("src_first", &op.SrcFirst), num("src_last", &op.SrcLast),
		)
	case OpPushBack:
		err = char()
	case OpResize:
		err = num("size", &op.First)
		if v.Get("char").Exists() {
			err = errors.Join(err, char())
		}
	case OpPopBack, OpClear, OpResetTruncated:
	case "":
		err = &FieldError{Index: idx, Field: "op", Msg: "missing"}
	default:
		err = &FieldError{Index: idx, Field: "op", Msg: fmt.Sprintf("unknown op %q", op.Name)}
	}
	return op, err
}
