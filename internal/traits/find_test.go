package traits

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFind(t *testing.T) {
	s := []byte("hello world")
	assert.Equal(t, 2, Find(s, 'l'))
	assert.Equal(t, 9, RFind(s, 'l'))
	assert.Equal(t, Npos, Find(s, 'z'))
	assert.Equal(t, Npos, RFind(s, 'z'))
}

func TestIndex(t *testing.T) {
	s := []byte("abcabcab")
	tests := []struct {
		sub       string
		first     int
		lastIndex int
	}{
		{"abc", 0, 3},
		{"cab", 2, 5},
		{"ab", 0, 6},
		{"", 0, 8},
		{"abd", Npos, Npos},
		{"abcabcabc", Npos, Npos},
	}
	for _, tt := range tests {
		t.Run(tt.sub, func(t *testing.T) {
			assert.Equal(t, tt.first, Index(s, []byte(tt.sub)))
			assert.Equal(t, tt.lastIndex, LastIndex(s, []byte(tt.sub)))
		})
	}
}

func TestIndexAny(t *testing.T) {
	s := []rune("  key = value  ")
	ws := []rune(" \t")

	assert.Equal(t, 6, IndexAny(s, []rune("=")))
	assert.Equal(t, 2, IndexNotAny(s, ws))
	assert.Equal(t, 12, LastIndexNotAny(s, ws))
	assert.Equal(t, 14, LastIndexAny(s, ws))
	assert.Equal(t, Npos, IndexAny(s, []rune("#")))
	assert.Equal(t, Npos, IndexNotAny([]rune("   "), ws))
	assert.Equal(t, Npos, LastIndexNotAny([]rune(""), ws))
}
