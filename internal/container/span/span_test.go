package span

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/fixbuf/internal/failure"
)

func TestSpanViews(t *testing.T) {
	data := []int{1, 2, 3, 4, 5, 6}
	s := Of(data)
	assert.Equal(t, 6, s.Len())

	first, err := s.First(2)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, first.Slice())

	last, err := s.Last(2)
	require.NoError(t, err)
	assert.Equal(t, []int{5, 6}, last.Slice())

	mid, err := s.Subspan(1, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3, 4}, mid.Slice())

	rest, err := s.Subspan(4, -1)
	require.NoError(t, err)
	assert.Equal(t, []int{5, 6}, rest.Slice())

	front, err := mid.Front()
	require.NoError(t, err)
	back, err := mid.Back()
	require.NoError(t, err)
	assert.Equal(t, 2, front)
	assert.Equal(t, 4, back)
}

func TestSpanWritesThrough(t *testing.T) {
	data := []int{1, 2, 3}
	p, err := Of(data).At(1)
	require.NoError(t, err)
	*p = 20
	assert.Equal(t, []int{1, 20, 3}, data)
}

func TestSpanFirstDoesNotExposeTail(t *testing.T) {
	data := []int{1, 2, 3}
	first, err := Of(data).First(1)
	require.NoError(t, err)
	assert.Equal(t, 1, cap(first.Slice()))
}

func TestSpanFailures(t *testing.T) {
	var got []*failure.Error
	s := Of([]byte("abc")).WithReporter(failure.ReporterFunc(func(e *failure.Error) {
		got = append(got, e)
	}))

	_, err := s.At(3)
	assert.ErrorIs(t, err, failure.ErrOutOfRange)
	_, err = s.First(4)
	assert.ErrorIs(t, err, failure.ErrOutOfRange)
	_, err = s.Last(-1)
	assert.ErrorIs(t, err, failure.ErrOutOfRange)
	_, err = s.Subspan(2, 2)
	assert.ErrorIs(t, err, failure.ErrOutOfRange)

	empty, err := s.Subspan(3, 0)
	require.NoError(t, err)
	assert.True(t, empty.Empty())
	_, err = empty.Front()
	assert.ErrorIs(t, err, failure.ErrEmpty)

	require.Len(t, got, 5)
	assert.Equal(t, "Span.Subspan", got[3].Op)
	assert.Equal(t, failure.KindEmpty, got[4].Kind)
}

func TestSpanAll(t *testing.T) {
	var idx, vals []int
	for i, v := range Of([]int{7, 8, 9}).All() {
		idx = append(idx, i)
		vals = append(vals, v)
		if i == 1 {
			break
		}
	}
	assert.Equal(t, []int{0, 1}, idx)
	assert.Equal(t, []int{7, 8}, vals)
}
