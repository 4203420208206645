package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryDetectsStillLife(t *testing.T) {
	b := NewBoard(10, 10)
	require.NoError(t, InsertPattern(b, Block, 2, 2, nil))

	h := NewHistory(5)
	assert.False(t, h.Record(b))
	assert.True(t, h.Record(b.NextGeneration()))
}

func TestHistoryDetectsOscillator(t *testing.T) {
	b := NewBoard(10, 10)
	require.NoError(t, InsertPattern(b, Blinker, 3, 3, nil))

	h := NewHistory(5)
	assert.False(t, h.Record(b))
	b = b.NextGeneration()
	assert.False(t, h.Record(b))
	b = b.NextGeneration()
	assert.True(t, h.Record(b))
}

func TestHistoryWindow(t *testing.T) {
	b := NewBoard(BoardWidth, BoardHeight)
	require.NoError(t, InsertPattern(b, Glider, 0, 0, nil))

	h := NewHistory(3)
	for range 10 {
		assert.False(t, h.Record(b), "a lone glider never repeats within the window")
		b = b.NextGeneration()
	}
	assert.Equal(t, 3, h.Len())

	assert.Equal(t, 1, NewHistory(0).size)
}
