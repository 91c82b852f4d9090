package batch

import (
	"github.com/google/uuid"
	"github.com/rivo/uniseg"
	"go.uber.org/zap"

	"github.com/dshills/fixbuf/internal/failure"
	"github.com/dshills/fixbuf/internal/fixedstr"
)

// Step records the outcome of one op.
type Step struct {
	Op        string
	Err       error
	Size      int
	Truncated bool
}

// Result is the outcome of a batch run.
type Result struct {
	ID        string
	Text      string
	Size      int
	Capacity  int
	Truncated bool
	// Width and Graphemes describe Text as displayed in a terminal.
	Width     int
	Graphemes int
	Steps     []Step
}

// Failed returns the number of ops that returned an error.
func (r *Result) Failed() int {
	n := 0
	for _, s := range r.Steps {
		if s.Err != nil {
			n++
		}
	}
	return n
}

// Runner applies batches.
type Runner struct {
	logger *zap.Logger
	opts   []fixedstr.Option
	newID  func() string
}

// NewRunner returns a Runner whose strings are built with opts. A nil logger
// disables logging.
func NewRunner(logger *zap.Logger, opts ...fixedstr.Option) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{
		logger: logger.Named("batch"),
		opts:   opts,
		newID:  uuid.NewString,
	}
}

// Run applies b to a new string of b.Capacity bytes.
func (r *Runner) Run(b *Batch) *Result {
	id := r.newID()
	log := r.logger.With(zap.String("run", id))

	s := fixedstr.New[byte](b.Capacity, r.opts...)
	res := &Result{ID: id, Steps: make([]Step, 0, len(b.Ops))}
	if err := apply(s, Op{Name: OpAssign, Text: b.Init}); err != nil {
		log.Debug("init clamped", zap.Error(err))
	}

	for i, op := range b.Ops {
		err := apply(s, op)
		res.Steps = append(res.Steps, Step{
			Op:        op.Name,
			Err:       err,
			Size:      s.Size(),
			Truncated: s.Truncated(),
		})
		if err != nil {
			log.Debug("op failed", zap.Int("index", i), zap.String("op", op.Name), zap.Error(err))
		}
	}

	res.Text = s.String()
	res.Size = s.Size()
	res.Capacity = s.Capacity()
	res.Truncated = s.Truncated()
	res.Width = uniseg.StringWidth(res.Text)
	res.Graphemes = uniseg.GraphemeClusterCount(res.Text)
	log.Info("batch finished",
		zap.Int("ops", len(b.Ops)),
		zap.Int("failed", res.Failed()),
		zap.Int("size", res.Size),
		zap.Bool("truncated", res.Truncated),
	)
	return res
}

// apply runs one op. A panic from the raise reporter becomes the op's error.
func apply(s *fixedstr.Bytes, op Op) (err error) {
	defer failure.Recover(&err)

	switch op.Name {
	case OpAssign:
		return s.AssignString(op.Text)
	case OpAppend:
		return s.AppendString(op.Text)
	case OpInsert:
		return s.InsertString(op.First, op.Text)
	case OpErase:
		return s.Erase(op.First, op.Last)
	case OpReplace:
		return s.ReplaceString(op.First, op.Last, op.Text)
	case OpSelfReplace:
		src, err := s.Substr(op.SrcFirst, -1)
		if err != nil {
			return err
		}
		if _, err := s.Substr(op.SrcLast, 0); err != nil {
			return err
		}
		return s.Replace(op.First, op.Last, src[:max(op.SrcLast-op.SrcFirst, 0)])
	case OpPushBack:
		return s.PushBack(op.Char)
	case OpPopBack:
		return s.PopBack()
	case OpResize:
		return s.Resize(op.First, op.Char)
	case OpClear:
		s.Clear()
	case OpResetTruncated:
		s.ClearTruncated()
	}
	return nil
}
