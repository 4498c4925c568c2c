package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWraps(t *testing.T) {
	size := Size{W: 4, H: 5}

	got, ok := WrapNone{}.Normalize(Coord{X: 2, Y: 3}, size)
	assert.True(t, ok)
	assert.Equal(t, Coord{X: 2, Y: 3}, got)

	_, ok = WrapNone{}.Normalize(Coord{X: 4, Y: 3}, size)
	assert.False(t, ok)

	got, ok = WrapX{}.Normalize(Coord{X: 4, Y: 3}, size)
	assert.True(t, ok)
	assert.Equal(t, Coord{X: 0, Y: 3}, got)

	_, ok = WrapY{}.Normalize(Coord{X: 4, Y: 3}, size)
	assert.False(t, ok)

	got, ok = WrapY{}.Normalize(Coord{X: 2, Y: 6}, size)
	assert.True(t, ok)
	assert.Equal(t, Coord{X: 2, Y: 1}, got)

	got, ok = WrapXY{}.Normalize(Coord{X: 2, Y: 6}, size)
	assert.True(t, ok)
	assert.Equal(t, Coord{X: 2, Y: 1}, got)
}
