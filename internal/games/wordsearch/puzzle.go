package wordsearch

import (
	"math/rand"
	"strings"

	"github.com/vovakirdan/playzone/internal/core"
)

// Directions are the eight straight lines a word may run along.
var Directions = [8]core.Point{
	{X: -1, Y: -1}, {X: 0, Y: -1}, {X: 1, Y: -1},
	{X: -1, Y: 0}, {X: 1, Y: 0},
	{X: -1, Y: 1}, {X: 0, Y: 1}, {X: 1, Y: 1},
}

// Placement records where a word was written into the grid.
type Placement struct {
	Word  string
	Cells []core.Point
}

// Puzzle is a square letter grid with hidden words.
type Puzzle struct {
	size    int
	letters [][]byte
	placed  []Placement
}

// Generate picks count words from pool and hides them in a size×size grid.
// Each word gets up to attempts random placements; words that never fit are
// left out. Overlaps are allowed where letters agree. Remaining cells get
// random letters A-Z.
func Generate(pool []string, size, count, attempts int, rng *rand.Rand) *Puzzle {
	p := &Puzzle{size: size, letters: make([][]byte, size)}
	for y := range p.letters {
		p.letters[y] = make([]byte, size)
	}

	words := make([]string, len(pool))
	for i, w := range pool {
		words[i] = strings.ToUpper(w)
	}
	rng.Shuffle(len(words), func(i, j int) {
		words[i], words[j] = words[j], words[i]
	})
	if count < len(words) {
		words = words[:count]
	}

	for _, w := range words {
		for range attempts {
			dir := Directions[rng.Intn(len(Directions))]
			start := core.Point{X: rng.Intn(size), Y: rng.Intn(size)}
			if cells, ok := p.fit(w, start, dir); ok {
				for i, c := range cells {
					p.letters[c.Y][c.X] = w[i]
				}
				p.placed = append(p.placed, Placement{Word: w, Cells: cells})
				break
			}
		}
	}

	for y := range size {
		for x := range size {
			if p.letters[y][x] == 0 {
				p.letters[y][x] = byte('A' + rng.Intn(26))
			}
		}
	}
	return p
}

// fit returns the cells word would occupy from start along dir, or false
// when it leaves the grid or conflicts with a different letter.
func (p *Puzzle) fit(word string, start, dir core.Point) ([]core.Point, bool) {
	cells := make([]core.Point, 0, len(word))
	for i := range len(word) {
		c := start.Add(dir.X*i, dir.Y*i)
		if !p.inside(c) {
			return nil, false
		}
		if l := p.letters[c.Y][c.X]; l != 0 && l != word[i] {
			return nil, false
		}
		cells = append(cells, c)
	}
	return cells, true
}

func (p *Puzzle) inside(c core.Point) bool {
	return c.X >= 0 && c.X < p.size && c.Y >= 0 && c.Y < p.size
}

// Size returns the grid edge length.
func (p *Puzzle) Size() int { return p.size }

// Letter returns the letter at (x, y).
func (p *Puzzle) Letter(x, y int) byte { return p.letters[y][x] }

// Placements returns the hidden words in placement order.
func (p *Puzzle) Placements() []Placement { return p.placed }

// Words returns the hidden words.
func (p *Puzzle) Words() []string {
	out := make([]string, len(p.placed))
	for i, pl := range p.placed {
		out[i] = pl.Word
	}
	return out
}

// Text returns the letters along cells.
func (p *Puzzle) Text(cells []core.Point) string {
	var b strings.Builder
	for _, c := range cells {
		if p.inside(c) {
			b.WriteByte(p.letters[c.Y][c.X])
		}
	}
	return b.String()
}

// Line returns the cells from a to b when they share a row, a column or a
// 45 degree diagonal. Any other pair yields just a.
func Line(a, b core.Point) []core.Point {
	dx, dy := b.X-a.X, b.Y-a.Y
	if dx != 0 && dy != 0 && core.Abs(dx) != core.Abs(dy) {
		return []core.Point{a}
	}
	n := max(core.Abs(dx), core.Abs(dy))
	sx, sy := core.Sign(dx), core.Sign(dy)
	cells := make([]core.Point, 0, n+1)
	for i := 0; i <= n; i++ {
		cells = append(cells, a.Add(sx*i, sy*i))
	}
	return cells
}

// Reverse returns s with its bytes in reverse order.
func Reverse(s string) string {
	b := []byte(s)
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return string(b)
}
