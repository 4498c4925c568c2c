package wave

import (
	"iter"

	"github.com/wavesynth/wfc/geom"
	"github.com/wavesynth/wfc/pattern"
	"github.com/wavesynth/wfc/xrand"
)

// Wave is the grid of cells a solve runs against: a fixed output size,
// created once per solve and reset between retries.
type Wave struct {
	grid *geom.Grid[*Cell]
}

// New allocates a Wave of size, with every cell initialized against
// stats.
func New(size geom.Size, stats *pattern.GlobalStats, rng xrand.Source) *Wave {
	return &Wave{grid: geom.NewFunc(size, func(geom.Coord) *Cell {
		return NewCell(stats, rng)
	})}
}

// Size returns the wave's output size.
func (w *Wave) Size() geom.Size {
	return w.grid.Size()
}

// Get returns the cell at coord, which must be valid.
func (w *Wave) Get(coord geom.Coord) *Cell {
	return w.grid.Get(coord)
}

// Enumerate streams (coordinate, cell) pairs in row-major order.
func (w *Wave) Enumerate() iter.Seq2[geom.Coord, *Cell] {
	return w.grid.Enumerate()
}

// Reset reinitializes every cell against stats. Used between retries.
// The grid's slice of cell pointers is reused, but each cell is replaced
// by a newly built Cell, so per-cell support tables and bitmaps are
// allocated afresh on every reset.
func (w *Wave) Reset(stats *pattern.GlobalStats, rng xrand.Source) {
	w.grid.ForEach(func(_ geom.Coord, _ *Cell) *Cell {
		return NewCell(stats, rng)
	})
}
