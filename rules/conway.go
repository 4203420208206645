package rules

// CellState is the state of a single cell on the board
type CellState uint8

const (
	Dead CellState = iota
	Alive
)

// String returns a human-readable name for the state
func (s CellState) String() string {
	switch s {
	case Alive:
		return "alive"
	case Dead:
		return "dead"
	}
	return "unknown"
}

/*
NextCellState applies Conway's Game of Life rules to determine the next state of a cell.

An alive cell survives with 2 or 3 live neighbours, a dead cell is born with exactly 3.
Every other combination yields a dead cell.
*/
func NextCellState(state CellState, liveNeighbours int) CellState {
	switch state {
	case Alive:
		if liveNeighbours == 2 || liveNeighbours == 3 {
			return Alive
		}
		return Dead
	case Dead:
		if liveNeighbours == 3 {
			return Alive
		}
		return Dead
	}
	return Dead
}
