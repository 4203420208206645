package rules

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextCellState(t *testing.T) {
	tests := []struct {
		state      CellState
		neighbours int
		want       CellState
	}{
		{Alive, 0, Dead},
		{Alive, 1, Dead},
		{Alive, 2, Alive},
		{Alive, 3, Alive},
		{Alive, 4, Dead},
		{Alive, 8, Dead},
		{Dead, 0, Dead},
		{Dead, 2, Dead},
		{Dead, 3, Alive},
		{Dead, 4, Dead},
		{Dead, 8, Dead},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s with %d", tt.state, tt.neighbours), func(t *testing.T) {
			assert.Equal(t, tt.want, NextCellState(tt.state, tt.neighbours))
		})
	}
}

func TestCellStateString(t *testing.T) {
	assert.Equal(t, "alive", Alive.String())
	assert.Equal(t, "dead", Dead.String())
	assert.Equal(t, "unknown", CellState(7).String())
}
