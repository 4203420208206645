package model

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-torus/rules"
)

// Pattern names an arrangement of cells that can be stamped onto a board
type Pattern int

const (
	Glider Pattern = iota
	Blinker
	Block
	Random
)

var patternNames = map[Pattern]string{
	Glider:  "glider",
	Blinker: "blinker",
	Block:   "block",
	Random:  "random",
}

// fixed patterns as cells relative to the insertion offset
var patternCells = map[Pattern][]Point{
	Glider:  {{0, 0}, {0, 2}, {1, 1}, {1, 2}, {2, 1}},
	Blinker: {{0, 0}, {1, 0}, {2, 0}},
	Block:   {{0, 0}, {1, 0}, {0, 1}, {1, 1}},
}

// RandomSource supplies uniform integers in [0, n); *rand.Rand from math/rand/v2 satisfies it
type RandomSource interface {
	IntN(n int) int
}

func (p Pattern) String() string {
	if name, ok := patternNames[p]; ok {
		return name
	}
	return "unknown"
}

// ParsePattern looks up a pattern by its name
func ParsePattern(name string) (Pattern, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for p, n := range patternNames {
		if n == name {
			return p, nil
		}
	}
	return 0, errors.Errorf("[ParsePattern] unknown pattern: %q", name)
}

// InsertPattern stamps p onto the board at the given offset.
// Random ignores the offset and gives every cell a 1 in 3 chance of becoming alive.
func InsertPattern(b *Board, p Pattern, offsetX, offsetY int, rng RandomSource) error {
	if p == Random {
		if rng == nil {
			return errors.New("[InsertPattern] random pattern requires a random source")
		}
		for y := range b.height {
			for x := range b.width {
				if rng.IntN(3) == 0 {
					b.SetCellState(x, y, rules.Alive)
				}
			}
		}
		return nil
	}

	cells, ok := patternCells[p]
	if !ok {
		return errors.Errorf("[InsertPattern] unknown pattern: %d", int(p))
	}
	for _, c := range cells {
		b.SetCellStateWithOffset(c.X, c.Y, rules.Alive, offsetX, offsetY)
	}
	return nil
}
