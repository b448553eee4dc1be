package tetris

import "github.com/vovakirdan/playzone/internal/core"

// Kind identifies one of the seven tetrominoes. The zero value means "none".
type Kind int

const (
	KindNone Kind = iota
	KindI
	KindO
	KindT
	KindS
	KindZ
	KindJ
	KindL
)

// Kinds lists every playable tetromino in a stable order.
var Kinds = [...]Kind{KindI, KindO, KindT, KindS, KindZ, KindJ, KindL}

// Shape is a small bitmap, indexed [row][col]. Shapes are never mutated in
// place; rotation always allocates a new one.
type Shape [][]bool

type tetromino struct {
	name  string
	shape Shape
	color core.Color
}

func bits(rows ...string) Shape {
	s := make(Shape, len(rows))
	for i, row := range rows {
		s[i] = make([]bool, len(row))
		for j, c := range row {
			s[i][j] = c == '1'
		}
	}
	return s
}

var tetrominoes = map[Kind]tetromino{
	KindI: {"I", bits("1111"), core.ColorCyan},
	KindO: {"O", bits("11", "11"), core.ColorYellow},
	KindT: {"T", bits("010", "111"), core.ColorPurple},
	KindS: {"S", bits("011", "110"), core.ColorGreen},
	KindZ: {"Z", bits("110", "011"), core.ColorRed},
	KindJ: {"J", bits("100", "111"), core.ColorBlue},
	KindL: {"L", bits("001", "111"), core.ColorOrange},
}

// String returns the single-letter name of the piece.
func (k Kind) String() string {
	if t, ok := tetrominoes[k]; ok {
		return t.name
	}
	return "-"
}

// Color returns the color tag of the piece.
func (k Kind) Color() core.Color {
	return tetrominoes[k].color
}

// BaseShape returns a copy of the piece's rotation-0 bitmap.
func (k Kind) BaseShape() Shape {
	return tetrominoes[k].shape.clone()
}

// ShapeAt returns the piece's bitmap after rotation quarter turns clockwise.
func (k Kind) ShapeAt(rotation int) Shape {
	s := tetrominoes[k].shape.clone()
	for i := 0; i < ((rotation%4)+4)%4; i++ {
		s = RotateShape(s)
	}
	return s
}

// RotateShape returns shape turned 90° clockwise: an R×C input becomes C×R
// with out[j][R-1-i] = in[i][j].
func RotateShape(shape Shape) Shape {
	rows := len(shape)
	if rows == 0 {
		return Shape{}
	}
	cols := len(shape[0])

	out := make(Shape, cols)
	for j := range out {
		out[j] = make([]bool, rows)
	}
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			out[j][rows-1-i] = shape[i][j]
		}
	}
	return out
}

// Equal reports whether two shapes have the same dimensions and bits.
func (s Shape) Equal(o Shape) bool {
	if len(s) != len(o) {
		return false
	}
	for i := range s {
		if len(s[i]) != len(o[i]) {
			return false
		}
		for j := range s[i] {
			if s[i][j] != o[i][j] {
				return false
			}
		}
	}
	return true
}

func (s Shape) clone() Shape {
	out := make(Shape, len(s))
	for i, row := range s {
		out[i] = append([]bool(nil), row...)
	}
	return out
}

// Piece is the falling tetromino: its kind, the board offset of its
// bitmap's top-left corner and the number of clockwise quarter turns.
type Piece struct {
	Kind     Kind
	X, Y     int
	Rotation int // 0..3
}

// Shape returns the piece's current rotated bitmap.
func (p Piece) Shape() Shape {
	return p.Kind.ShapeAt(p.Rotation)
}
