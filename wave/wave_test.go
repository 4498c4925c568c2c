package wave

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wavesynth/wfc/geom"
	"github.com/wavesynth/wfc/xrand"
)

func TestNewWaveInitializesEveryCell(t *testing.T) {
	stats := buildStats(t)
	size := geom.Size{W: 3, H: 2}
	w := New(size, stats, xrand.NewCounter(11))

	assert.Equal(t, size, w.Size())
	for _, coord := range []geom.Coord{{X: 0, Y: 0}, {X: 2, Y: 1}} {
		cell := w.Get(coord)
		assertSupportCoherent(t, cell, 3)
		assert.Equal(t, 2, cell.NumCompat())
	}
}

func TestWaveResetReinitializesCells(t *testing.T) {
	stats := buildStats(t)
	size := geom.Size{W: 2, H: 2}
	w := New(size, stats, xrand.NewCounter(5))

	coord := geom.Coord{X: 0, Y: 0}
	w.Get(coord).ForbidPattern(1, stats)
	assert.Equal(t, 1, w.Get(coord).NumCompat())

	w.Reset(stats, xrand.NewCounter(5))
	assert.Equal(t, 2, w.Get(coord).NumCompat())
}
