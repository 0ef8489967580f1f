package level

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Step sizes of the block centre, in world units.
const (
	// RollStep is the distance the centre travels when the block tips over.
	RollStep = 0.75
	// SlideStep is the distance the centre travels when a lying block rolls
	// across its long side.
	SlideStep = 0.5
	// StandingHeight is the centre height of an upright block.
	StandingHeight = 0.25
)

// CellSize is the edge length of a grid cell.
const CellSize = 0.5

// GridSize is the number of cells along each side of the level grid.
const GridSize = 10

// Cell addresses one square of the level grid.
type Cell struct {
	I, J int
}

// Center returns the world-space centre of the cell on the floor plane.
func (c Cell) Center() mgl32.Vec3 {
	return mgl32.Vec3{
		(float32(c.I) - 4.5) * CellSize,
		0,
		(float32(c.J) - 4.5) * CellSize,
	}
}

// CellAt returns the cell whose centre is at (x, z), if there is one.
func CellAt(x, z float32) (Cell, bool) {
	fi := float64(x/CellSize + 4.5)
	fj := float64(z/CellSize + 4.5)
	i, j := math.Round(fi), math.Round(fj)
	if !mgl32.FloatEqual(float32(fi), float32(i)) || !mgl32.FloatEqual(float32(fj), float32(j)) {
		return Cell{}, false
	}
	return Cell{I: int(i), J: int(j)}, true
}

// Span is a run of cells on grid row J from column From up to, but not
// including, column To. Columns listed in Skip are left empty.
type Span struct {
	J        int
	From, To int
	Skip     []int
}

// Cells expands the span into its cells.
func (s Span) Cells() []Cell {
	cells := make([]Cell, 0, s.To-s.From)
	for i := s.From; i < s.To; i++ {
		skipped := false
		for _, k := range s.Skip {
			if k == i {
				skipped = true
				break
			}
		}
		if !skipped {
			cells = append(cells, Cell{I: i, J: s.J})
		}
	}
	return cells
}

// Zone is an open region of the XZ plane. A block whose centre lies strictly
// inside any zone has left the path.
type Zone struct {
	MinX, MaxX float32
	MinZ, MaxZ float32
}

// Contains reports whether (x, z) is strictly inside the zone.
func (z Zone) Contains(x, zz float32) bool {
	return x > z.MinX && x < z.MaxX && zz > z.MinZ && zz < z.MaxZ
}

var (
	inf    = float32(math.Inf(1))
	negInf = float32(math.Inf(-1))
)

// Layout is one level map.
type Layout struct {
	Name      string
	Floor     []Span
	Breakable []Span
	Hole      Cell
	Start     Cell
	Zones     []Zone
}

// FloorCells returns every normal tile of the layout.
func (l *Layout) FloorCells() []Cell {
	return expand(l.Floor)
}

// BreakableCells returns every breakable tile of the layout.
func (l *Layout) BreakableCells() []Cell {
	return expand(l.Breakable)
}

// IsBreakable reports whether c is a breakable tile.
func (l *Layout) IsBreakable(c Cell) bool {
	for _, b := range l.BreakableCells() {
		if b == c {
			return true
		}
	}
	return false
}

func expand(spans []Span) []Cell {
	var cells []Cell
	for _, s := range spans {
		cells = append(cells, s.Cells()...)
	}
	return cells
}

// Level1 returns the bridge level: a staircase of floor leading from the
// start in the far corner to a patch of breakable tiles, with a single hole
// on the way.
func Level1() *Layout {
	return &Layout{
		Name: "bridge",
		Floor: []Span{
			{J: 0, From: 0, To: 3},
			{J: 1, From: 0, To: 6},
			{J: 2, From: 0, To: 8},
			{J: 3, From: 1, To: 10},
			{J: 4, From: 5, To: 10, Skip: []int{7}},
			{J: 5, From: 6, To: 9},
		},
		Breakable: []Span{
			{J: 6, From: 6, To: 9},
			{J: 7, From: 6, To: 9},
		},
		Hole:  Cell{I: 7, J: 4},
		Start: Cell{I: 1, J: 1},
		Zones: []Zone{
			// outside the grid
			{MinX: negInf, MaxX: inf, MinZ: negInf, MaxZ: -2.25},
			{MinX: negInf, MaxX: -2.25, MinZ: negInf, MaxZ: inf},
			{MinX: negInf, MaxX: inf, MinZ: 1.25, MaxZ: inf},
			{MinX: 2.25, MaxX: inf, MinZ: negInf, MaxZ: inf},
			// ragged edges, row by row
			{MinX: -1.25, MaxX: inf, MinZ: negInf, MaxZ: -1.75},
			{MinX: 0.25, MaxX: inf, MinZ: negInf, MaxZ: -1.25},
			{MinX: 1.25, MaxX: inf, MinZ: negInf, MaxZ: -0.75},
			{MinX: 2.25, MaxX: inf, MinZ: -1.25, MaxZ: inf},
			{MinX: negInf, MaxX: -1.75, MinZ: -1.25, MaxZ: inf},
			{MinX: 2.25, MaxX: inf, MinZ: -0.75, MaxZ: inf},
			{MinX: negInf, MaxX: 0.25, MinZ: -0.75, MaxZ: inf},
			{MinX: 1.75, MaxX: inf, MinZ: -0.25, MaxZ: inf},
			{MinX: negInf, MaxX: 0.75, MinZ: -0.25, MaxZ: inf},
		},
	}
}
