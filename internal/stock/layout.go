package stock

import "go-tile-puzzle/internal/defs"

// Placement is the grid cell of one stock slot.
type Placement struct {
	Name  string
	Index int
	I, J  int
}

// MaxRows is the number of stock rows available next to the board.
// Never less than 1.
func MaxRows(level *defs.Level, bottomMargin int) int {
	rows := level.Height - bottomMargin
	if rows < 1 {
		return 1
	}
	return rows
}

// SlotPosition maps slot index k to a grid cell right of the board:
// rows fill top to bottom, then a new column starts.
func SlotPosition(k, maxRows, boardWidth int) (i, j int) {
	return k/maxRows + boardWidth + 1, k % maxRows
}

// Placements lays out names in order.
func Placements(names []string, maxRows, boardWidth int) []Placement {
	out := make([]Placement, len(names))
	for k, name := range names {
		i, j := SlotPosition(k, maxRows, boardWidth)
		out[k] = Placement{Name: name, Index: k, I: i, J: j}
	}
	return out
}

// Columns is the number of grid columns n slots occupy.
func Columns(n, maxRows int) int {
	if n == 0 {
		return 0
	}
	return (n-1)/maxRows + 1
}
