package tetris

import "github.com/vovakirdan/playzone/internal/core"

// Cell is one board square. A filled cell always carries a non-empty color.
type Cell struct {
	Filled bool
	Color  core.Color
}

// Board is the fixed-size playfield. Rows are indexed from the top.
type Board struct {
	width  int
	height int
	cells  [][]Cell
}

// NewBoard returns an empty width×height board.
func NewBoard(width, height int) *Board {
	b := &Board{width: width, height: height}
	b.cells = make([][]Cell, height)
	for y := range b.cells {
		b.cells[y] = make([]Cell, width)
	}
	return b
}

// Width returns the number of columns.
func (b *Board) Width() int { return b.width }

// Height returns the number of rows.
func (b *Board) Height() int { return b.height }

// At returns the cell at (x, y); out of range coordinates read as empty.
func (b *Board) At(x, y int) Cell {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return Cell{}
	}
	return b.cells[y][x]
}

// Fill marks (x, y) as filled with color c. Out of range writes are dropped.
func (b *Board) Fill(x, y int, c core.Color) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height || c.IsEmpty() {
		return
	}
	b.cells[y][x] = Cell{Filled: true, Color: c}
}

// IsValidPosition reports whether shape can sit with its top-left corner at
// (x, y). Cells above the board (negative y) are always allowed.
func (b *Board) IsValidPosition(shape Shape, x, y int) bool {
	for sy, row := range shape {
		for sx, on := range row {
			if !on {
				continue
			}
			bx, by := x+sx, y+sy
			if bx < 0 || bx >= b.width || by >= b.height {
				return false
			}
			if by >= 0 && b.cells[by][bx].Filled {
				return false
			}
		}
	}
	return true
}

// Place writes shape's filled cells into the board. Cells with y < 0 are discarded.
func (b *Board) Place(shape Shape, x, y int, c core.Color) {
	for sy, row := range shape {
		for sx, on := range row {
			if on {
				b.Fill(x+sx, y+sy, c)
			}
		}
	}
}

// ClearLines removes every full row, shifts the rows above it down and
// refills the top with empty rows. Returns the number of rows removed.
func (b *Board) ClearLines() int {
	kept := make([][]Cell, 0, b.height)
	for _, row := range b.cells {
		if !rowFull(row) {
			kept = append(kept, row)
		}
	}

	cleared := b.height - len(kept)
	if cleared == 0 {
		return 0
	}

	fresh := make([][]Cell, cleared, b.height)
	for i := range fresh {
		fresh[i] = make([]Cell, b.width)
	}
	b.cells = append(fresh, kept...)
	return cleared
}

func rowFull(row []Cell) bool {
	for _, c := range row {
		if !c.Filled {
			return false
		}
	}
	return true
}

// Rows returns a deep copy of the grid.
func (b *Board) Rows() [][]Cell {
	out := make([][]Cell, b.height)
	for y, row := range b.cells {
		out[y] = append([]Cell(nil), row...)
	}
	return out
}

// FilledCount returns the number of filled cells.
func (b *Board) FilledCount() int {
	n := 0
	for _, row := range b.cells {
		for _, c := range row {
			if c.Filled {
				n++
			}
		}
	}
	return n
}
