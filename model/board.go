package model

import (
	"crypto/md5"
	"fmt"

	"github.com/sheikhrachel/go-gol-torus/rules"
)

const (
	// BoardWidth and BoardHeight are the dimensions the simulation runs with
	BoardWidth  = 64
	BoardHeight = 20
)

// Board represents the game board. Both axes wrap, so the board is a torus.
type Board struct {
	width  int
	height int
	cells  []rules.CellState
}

// NewBoard creates an all-dead board with the specified dimensions
func NewBoard(width, height int) *Board {
	if width < 1 || height < 1 {
		panic(fmt.Sprintf("model: invalid board dimensions %dx%d", width, height))
	}
	return &Board{
		width:  width,
		height: height,
		cells:  make([]rules.CellState, width*height),
	}
}

// GetWidth returns the width of the board
func (b *Board) GetWidth() int {
	return b.width
}

// GetHeight returns the height of the board
func (b *Board) GetHeight() int {
	return b.height
}

// wrap maps v onto [0, dim) using the always non-negative remainder
func wrap(v, dim int) int {
	return ((v % dim) + dim) % dim
}

// index resolves any coordinate pair to its position in the flat cell buffer
func (b *Board) index(x, y int) int {
	return wrap(y, b.height)*b.width + wrap(x, b.width)
}

// GetCellState returns the state of the cell at (x, y) after wraparound
func (b *Board) GetCellState(x, y int) rules.CellState {
	return b.cells[b.index(x, y)]
}

// SetCellState sets the cell at (x, y) after wraparound
func (b *Board) SetCellState(x, y int, state rules.CellState) {
	b.cells[b.index(x, y)] = state
}

// SetCellStateWithOffset sets the cell at (x+offsetX, y+offsetY)
func (b *Board) SetCellStateWithOffset(x, y int, state rules.CellState, offsetX, offsetY int) {
	b.SetCellState(x+offsetX, y+offsetY, state)
}

// CountLiveNeighbours counts the living cells among the 8 surrounding (x, y)
func (b *Board) CountLiveNeighbours(x, y int) int {
	count := 0
	for ny := y - 1; ny <= y+1; ny++ {
		for nx := x - 1; nx <= x+1; nx++ {
			if nx == x && ny == y {
				continue
			}
			if b.GetCellState(nx, ny) == rules.Alive {
				count++
			}
		}
	}
	return count
}

// GetNextCellState returns the state the cell at (x, y) will have in the next generation
func (b *Board) GetNextCellState(x, y int) rules.CellState {
	return rules.NextCellState(b.GetCellState(x, y), b.CountLiveNeighbours(x, y))
}

// NextGeneration calculates the next generation into a fresh board.
// Every cell is evaluated against b, never against the board being built.
func (b *Board) NextGeneration() *Board {
	next := NewBoard(b.width, b.height)
	for y := range b.height {
		for x := range b.width {
			next.cells[y*b.width+x] = b.GetNextCellState(x, y)
		}
	}
	return next
}

// CountLivingCells returns the total number of living cells
func (b *Board) CountLivingCells() (count int) {
	for _, c := range b.cells {
		if c == rules.Alive {
			count++
		}
	}
	return
}

// Equal reports whether both boards have the same dimensions and cells
func (b *Board) Equal(other *Board) bool {
	if other == nil || b.width != other.width || b.height != other.height {
		return false
	}
	for i, c := range b.cells {
		if other.cells[i] != c {
			return false
		}
	}
	return true
}

// GetBoardHash returns an MD5 hash of the current board state
func (b *Board) GetBoardHash() string {
	h := md5.New()
	buf := make([]byte, len(b.cells))
	for i, c := range b.cells {
		buf[i] = byte(c)
	}
	h.Write(buf)
	return fmt.Sprintf("%x", h.Sum(nil))
}

// LivingCells returns the coordinates of every living cell in row-major order
func (b *Board) LivingCells() []Point {
	var points []Point
	for y := range b.height {
		for x := range b.width {
			if b.cells[y*b.width+x] == rules.Alive {
				points = append(points, Point{X: x, Y: y})
			}
		}
	}
	return points
}

// Point is a board coordinate
type Point struct {
	X, Y int
}

// Clone returns an independent copy of the board
func (b *Board) Clone() *Board {
	c := NewBoard(b.width, b.height)
	copy(c.cells, b.cells)
	return c
}
