package model

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sheikhrachel/go-gol-torus/rules"
)

func TestBoardString(t *testing.T) {
	b := NewBoard(3, 2)
	b.SetCellState(0, 0, rules.Alive)
	b.SetCellState(2, 1, rules.Alive)

	assert.Equal(t, "| #.. |\n| ..# |\n", b.String())
}

func TestBoardWriteTo(t *testing.T) {
	b := NewBoard(BoardWidth, BoardHeight)
	require.NoError(t, InsertPattern(b, Glider, 0, 0, nil))

	var buf bytes.Buffer
	n, err := b.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(buf.Len()), n)

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, BoardHeight)
	for _, line := range lines {
		assert.Len(t, line, BoardWidth+4)
		assert.True(t, strings.HasPrefix(line, "| "))
		assert.True(t, strings.HasSuffix(line, " |"))
	}
	assert.Equal(t, "| #"+strings.Repeat(".", BoardWidth-1)+" |", lines[0])
	assert.Equal(t, "| .##"+strings.Repeat(".", BoardWidth-3)+" |", lines[1])
	assert.Equal(t, "| ##."+strings.Repeat(".", BoardWidth-3)+" |", lines[2])
}

func TestTerminalRendererDisplay(t *testing.T) {
	b := NewBoard(2, 1)
	b.SetCellState(1, 0, rules.Alive)

	var buf bytes.Buffer
	r := NewTerminalRenderer(&buf)
	require.NoError(t, r.Display(7, b))

	want := ".__________________________ Iteration 7 __________________________.\n" +
		"| .# |\n" +
		"\n"
	assert.Equal(t, want, buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("broken pipe")
}

func TestTerminalRendererDisplayWriteError(t *testing.T) {
	r := NewTerminalRenderer(failingWriter{})
	err := r.Display(0, NewBoard(2, 2))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken pipe")
}

// shortWriter accepts at most limit bytes in total, then fails
type shortWriter struct {
	limit int
}

func (s *shortWriter) Write(p []byte) (int, error) {
	if len(p) <= s.limit {
		s.limit -= len(p)
		return len(p), nil
	}
	n := s.limit
	s.limit = 0
	return n, errors.New("disk full")
}

func TestBoardWriteToCountsWrittenBytes(t *testing.T) {
	b := NewBoard(BoardWidth, BoardHeight)

	n, err := b.WriteTo(&shortWriter{limit: 10})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
	assert.Equal(t, int64(10), n)

	n, err = b.WriteTo(&shortWriter{limit: 1 << 20})
	require.NoError(t, err)
	assert.Equal(t, int64(BoardHeight*(BoardWidth+4)), n)
}
