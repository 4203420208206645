package model

// History keeps the hashes of recent boards to spot static or cycling states
type History struct {
	size   int
	hashes []string
}

// NewHistory returns a history remembering the last size boards
func NewHistory(size int) *History {
	if size < 1 {
		size = 1
	}
	return &History{size: size}
}

// Record adds the board to the history. It reports whether the board
// matches one already in the window, which means the simulation is
// either static or periodic with a period no longer than the window.
func (h *History) Record(b *Board) bool {
	hash := b.GetBoardHash()

	stagnant := false
	for _, prev := range h.hashes {
		if prev == hash {
			stagnant = true
			break
		}
	}

	h.hashes = append(h.hashes, hash)
	if len(h.hashes) > h.size {
		h.hashes = h.hashes[1:]
	}
	return stagnant
}

// Len returns how many hashes are currently held
func (h *History) Len() int {
	return len(h.hashes)
}
