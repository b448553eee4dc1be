package tetris

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/playzone/internal/config"
	"github.com/vovakirdan/playzone/internal/core"
)

func newTestEngine(seed int64) *Engine {
	return NewEngine(config.DefaultTetrisConfig(), rand.New(rand.NewSource(seed)))
}

// fillRow fills row y except the listed columns.
func fillRow(b *Board, y int, holes ...int) {
	skip := make(map[int]bool, len(holes))
	for _, h := range holes {
		skip[h] = true
	}
	for x := 0; x < b.Width(); x++ {
		if !skip[x] {
			b.Fill(x, y, core.ColorGray)
		}
	}
}

func TestRotateFourTimesIsIdentity(t *testing.T) {
	for _, k := range Kinds {
		t.Run(k.String(), func(t *testing.T) {
			s := k.BaseShape()
			r := s
			for i := 0; i < 4; i++ {
				r = RotateShape(r)
			}
			assert.True(t, s.Equal(r), "four rotations of %s changed the shape", k)
			assert.True(t, k.ShapeAt(4).Equal(s))
			assert.True(t, k.ShapeAt(-1).Equal(k.ShapeAt(3)))
		})
	}
}

func TestRotateShapeClockwise(t *testing.T) {
	assert.True(t, RotateShape(KindT.BaseShape()).Equal(bits("10", "11", "10")))
	assert.True(t, RotateShape(KindI.BaseShape()).Equal(bits("1", "1", "1", "1")))
	assert.True(t, RotateShape(KindJ.BaseShape()).Equal(bits("11", "10", "10")))
	assert.Empty(t, RotateShape(Shape{}))

	// The base bitmaps are never mutated.
	base := KindS.BaseShape()
	RotateShape(base)
	assert.True(t, base.Equal(bits("011", "110")))
}

func TestIsValidPosition(t *testing.T) {
	b := NewBoard(10, 20)
	b.Fill(5, 10, core.ColorRed)
	o := KindO.BaseShape()
	i := KindI.BaseShape()

	tests := []struct {
		name  string
		shape Shape
		x, y  int
		want  bool
	}{
		{"open space", o, 0, 0, true},
		{"overlaps filled cell", o, 4, 9, false},
		{"touches filled cell diagonally", o, 3, 8, true},
		{"past left wall", o, -1, 0, false},
		{"past right wall", i, 7, 0, false},
		{"flush with right wall", i, 6, 0, true},
		{"below floor", o, 0, 19, false},
		{"resting on floor", o, 0, 18, true},
		{"above the board", o, 4, -2, true},
		{"partly above the board", o, 0, -1, true},
		{"flat piece fully above", i, 0, -1, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, b.IsValidPosition(tc.shape, tc.x, tc.y))
		})
	}
}

func TestIsValidPositionAboveFullBoard(t *testing.T) {
	b := NewBoard(10, 20)
	for y := 0; y < 20; y++ {
		fillRow(b, y)
	}
	for _, k := range Kinds {
		s := k.BaseShape()
		assert.True(t, b.IsValidPosition(s, 3, -len(s)), "%s above the board should be valid", k)
		assert.False(t, b.IsValidPosition(s, 3, 0))
	}
}

func TestClearLines(t *testing.T) {
	b := NewBoard(10, 20)
	fillRow(b, 19)
	fillRow(b, 18, 3)
	fillRow(b, 17)
	b.Fill(0, 16, core.ColorBlue)

	cleared := b.ClearLines()
	assert.Equal(t, 2, cleared)
	assert.Equal(t, 20, b.Height())
	assert.Len(t, b.Rows(), 20)

	// The partial row dropped to the bottom, the marker above it followed.
	assert.False(t, b.At(3, 19).Filled)
	assert.True(t, b.At(0, 19).Filled)
	assert.Equal(t, core.ColorBlue, b.At(0, 18).Color)
	assert.Equal(t, 10, b.FilledCount())

	for y := 0; y < 18; y++ {
		for x := 0; x < 10; x++ {
			assert.False(t, b.At(x, y).Filled, "row %d should be empty", y)
		}
	}

	assert.Equal(t, 0, b.ClearLines())
}

func TestClearLinesKeepsHeight(t *testing.T) {
	b := NewBoard(10, 20)
	for round := 0; round < 5; round++ {
		for y := 0; y < 20; y++ {
			fillRow(b, y)
		}
		require.Equal(t, 20, b.ClearLines())
		require.Len(t, b.Rows(), 20)
		require.Zero(t, b.FilledCount())
	}
}

func TestPlaceDiscardsCellsAboveBoard(t *testing.T) {
	b := NewBoard(10, 20)
	b.Place(KindI.ShapeAt(1), 0, -2, KindI.Color())
	assert.Equal(t, 2, b.FilledCount())
	assert.True(t, b.At(0, 0).Filled)
	assert.True(t, b.At(0, 1).Filled)
	assert.Equal(t, core.ColorCyan, b.At(0, 0).Color)
}

func TestSpawnPosition(t *testing.T) {
	e := newTestEngine(1)
	assert.Equal(t, StatusIdle, e.Status())
	_, ok := e.Next()
	assert.False(t, ok, "reset clears the next piece")

	e.Start()
	p, ok := e.Active()
	require.True(t, ok)
	assert.Equal(t, 4, p.X)
	assert.Equal(t, 0, p.Y)
	assert.Equal(t, 0, p.Rotation)

	_, ok = e.Next()
	assert.True(t, ok)
	assert.Equal(t, StatusRunning, e.Status())
}

func TestSpawnUsesQueuedPiece(t *testing.T) {
	e := newTestEngine(1)
	e.next = KindZ
	e.Start()
	p, _ := e.Active()
	assert.Equal(t, KindZ, p.Kind)
}

func TestOPieceFallsToFloorThenLocks(t *testing.T) {
	e := newTestEngine(3)
	e.next = KindO
	e.Start()

	for want := 1; want <= 18; want++ {
		e.Tick()
		p, ok := e.Active()
		require.True(t, ok)
		require.Equal(t, KindO, p.Kind)
		require.Equal(t, want, p.Y)
	}

	// Resting on the floor: the next tick locks.
	e.Tick()
	b := e.Board()
	assert.Equal(t, 4, b.FilledCount())
	for _, pt := range []core.Point{{X: 4, Y: 18}, {X: 5, Y: 18}, {X: 4, Y: 19}, {X: 5, Y: 19}} {
		assert.True(t, b.At(pt.X, pt.Y).Filled, "expected %v filled", pt)
		assert.Equal(t, core.ColorYellow, b.At(pt.X, pt.Y).Color)
	}
	assert.Equal(t, 10, e.Score())

	p, ok := e.Active()
	require.True(t, ok, "a new piece spawns after the lock")
	assert.Equal(t, 0, p.Y)
}

func TestScoreForDoubleAtLevelThree(t *testing.T) {
	e := newTestEngine(5)
	e.Start()
	e.level = 3
	e.lines = 20
	e.score = 1000

	b := e.Board()
	fillRow(b, 18, 4, 5)
	fillRow(b, 19, 4, 5)
	e.active = &Piece{Kind: KindO, X: 4, Y: 18}

	e.Tick()

	assert.Equal(t, 1000+610, e.Score())
	assert.Equal(t, 22, e.Lines())
	assert.Equal(t, 3, e.Level())
	assert.Zero(t, b.FilledCount())
}

func TestLevelUpAfterTenLines(t *testing.T) {
	e := newTestEngine(5)
	e.Start()
	e.lines = 8
	assert.Equal(t, 1000, e.DropIntervalMs())

	b := e.Board()
	fillRow(b, 18, 0)
	fillRow(b, 19, 0)
	e.active = &Piece{Kind: KindI, X: 0, Y: 16, Rotation: 1}

	e.Tick()

	assert.Equal(t, 10, e.Lines())
	assert.Equal(t, 2, e.Level())
	assert.Equal(t, 950, e.DropIntervalMs())
	assert.Equal(t, 2*100*1+10, e.Score())
	// Two cells of the vertical I survive at the bottom of column 0.
	assert.Equal(t, 2, b.FilledCount())
	assert.True(t, b.At(0, 19).Filled)
	assert.True(t, b.At(0, 18).Filled)
}

func TestDropIntervalFloor(t *testing.T) {
	e := newTestEngine(1)
	assert.Equal(t, 1000, e.intervalFor(1))
	assert.Equal(t, 550, e.intervalFor(10))
	assert.Equal(t, 100, e.intervalFor(19))
	assert.Equal(t, 100, e.intervalFor(40))
}

func TestLockWritesRotatedShape(t *testing.T) {
	e := newTestEngine(9)
	e.Start()
	e.active = &Piece{Kind: KindI, X: 2, Y: 0}
	require.True(t, e.Rotate())

	for i := 0; i < 30; i++ {
		if p, _ := e.Active(); p.Kind != KindI || p.Rotation != 1 {
			break
		}
		e.Tick()
	}

	b := e.Board()
	for y := 16; y < 20; y++ {
		assert.True(t, b.At(2, y).Filled, "vertical I should fill (2,%d)", y)
	}
	assert.Equal(t, 4, b.FilledCount())
}

func TestMoveAndRotateRejectInvalid(t *testing.T) {
	e := newTestEngine(2)
	e.Start()
	e.active = &Piece{Kind: KindI, X: 0, Y: 0}

	assert.False(t, e.Move(-1, 0), "wall on the left")
	assert.True(t, e.Move(1, 0))
	p, _ := e.Active()
	assert.Equal(t, 1, p.X)

	e.active = &Piece{Kind: KindI, X: 0, Y: 18, Rotation: 0}
	assert.False(t, e.Rotate(), "vertical I does not fit above the floor")
	p, _ = e.Active()
	assert.Equal(t, 0, p.Rotation)
}

func TestPauseAndResume(t *testing.T) {
	e := newTestEngine(4)
	e.Pause()
	assert.Equal(t, StatusIdle, e.Status(), "pause before start keeps idle")

	e.Start()
	before, _ := e.Active()
	e.Pause()
	assert.Equal(t, StatusPaused, e.Status())
	assert.False(t, e.Move(1, 0))
	e.Tick()
	after, _ := e.Active()
	assert.Equal(t, before, after, "no gravity while paused")

	e.Start()
	assert.Equal(t, StatusRunning, e.Status())
	after, _ = e.Active()
	assert.Equal(t, before, after, "resume does not respawn")
}

func TestSpawnCollisionEndsGame(t *testing.T) {
	e := newTestEngine(6)
	b := e.Board()
	fillRow(b, 0, 0)
	fillRow(b, 1, 0)

	e.Start()
	assert.Equal(t, StatusOver, e.Status())
	assert.True(t, e.Over())
	assert.False(t, e.Running())

	p, _ := e.Active()
	assert.False(t, e.Move(0, 0))
	assert.False(t, e.Move(1, 0))
	assert.False(t, e.Rotate())
	e.Tick()
	e.Start()
	e.Pause()
	e.Spawn()
	after, _ := e.Active()
	assert.Equal(t, p, after)
	assert.Equal(t, StatusOver, e.Status())

	e.Reset()
	assert.Equal(t, StatusIdle, e.Status())
	assert.Zero(t, e.Board().FilledCount())
	assert.Zero(t, e.Score())
	assert.Equal(t, 1, e.Level())
}

func TestComposeOverlaysActivePiece(t *testing.T) {
	e := newTestEngine(7)
	e.Start()
	e.active = &Piece{Kind: KindT, X: 0, Y: -1}

	grid := e.Compose()
	require.Len(t, grid, 20)
	// Only the bottom row of the T is visible.
	assert.True(t, grid[0][0].Filled)
	assert.True(t, grid[0][1].Filled)
	assert.True(t, grid[0][2].Filled)
	assert.Equal(t, core.ColorPurple, grid[0][1].Color)
	assert.Zero(t, e.Board().FilledCount(), "compose never writes the board")
}

func TestFilledCellsAlwaysColored(t *testing.T) {
	e := newTestEngine(11)
	e.Start()
	for i := 0; i < 2000 && !e.Over(); i++ {
		if i%3 == 0 {
			e.Move(-1, 0)
		}
		if i%7 == 0 {
			e.Rotate()
		}
		e.Tick()
	}
	for _, row := range e.Board().Rows() {
		for _, c := range row {
			if c.Filled {
				assert.False(t, c.Color.IsEmpty())
			}
		}
	}
}
