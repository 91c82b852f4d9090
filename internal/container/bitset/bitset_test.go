package bitset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/fixbuf/internal/failure"
)

func TestBitsetBasics(t *testing.T) {
	b := New(10)
	require.NoError(t, b.Set(0))
	require.NoError(t, b.Set(3))
	require.NoError(t, b.Flip(9))

	assert.Equal(t, "1000001001", b.String())
	assert.Equal(t, 3, b.Count())
	assert.True(t, b.Any())
	assert.False(t, b.All())

	on, err := b.Test(3)
	require.NoError(t, err)
	assert.True(t, on)

	require.NoError(t, b.Reset(3))
	on, _ = b.Test(3)
	assert.False(t, on)
}

func TestBitsetOutOfRange(t *testing.T) {
	var reported int
	b := New(8, WithReporter(failure.ReporterFunc(func(*failure.Error) { reported++ })))

	assert.ErrorIs(t, b.Set(8), failure.ErrOutOfRange)
	assert.ErrorIs(t, b.Flip(-1), failure.ErrOutOfRange)
	_, err := b.Test(100)
	assert.ErrorIs(t, err, failure.ErrOutOfRange)
	assert.Equal(t, 3, reported)
	assert.True(t, b.None())
}

func TestBitsetWholeSet(t *testing.T) {
	b := New(70)
	b.SetAll()
	assert.Equal(t, 70, b.Count(), "bits past Len must stay clear")
	assert.True(t, b.All())

	require.NoError(t, b.Reset(65))
	b.FlipAll()
	assert.Equal(t, 1, b.Count())

	b.ResetAll()
	assert.True(t, b.None())
}

func TestBitsetEmpty(t *testing.T) {
	b := New(0)
	b.SetAll()
	assert.Equal(t, "", b.String())
	assert.True(t, b.All())
	assert.True(t, b.None())
}
