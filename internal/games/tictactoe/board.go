package tictactoe

// Mark is the content of a board cell.
type Mark int

const (
	Empty Mark = iota
	X
	O
)

func (m Mark) String() string {
	switch m {
	case X:
		return "X"
	case O:
		return "O"
	default:
		return " "
	}
}

// Other returns the opposing mark.
func (m Mark) Other() Mark {
	if m == X {
		return O
	}
	return X
}

// Lines are the eight winning lines: rows, columns, diagonals.
var Lines = [8][3]int{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8},
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8},
	{0, 4, 8}, {2, 4, 6},
}

// Board is a 3×3 grid indexed row by row from 0 to 8.
type Board [9]Mark

// Winner returns the mark that owns a full line and that line.
func (b Board) Winner() (Mark, [3]int, bool) {
	for _, l := range Lines {
		if m := b[l[0]]; m != Empty && m == b[l[1]] && m == b[l[2]] {
			return m, l, true
		}
	}
	return Empty, [3]int{}, false
}

// Full reports whether no cell is empty.
func (b Board) Full() bool {
	for _, m := range b {
		if m == Empty {
			return false
		}
	}
	return true
}

// Free returns the empty cell indices in order.
func (b Board) Free() []int {
	free := make([]int, 0, len(b))
	for i, m := range b {
		if m == Empty {
			free = append(free, i)
		}
	}
	return free
}
