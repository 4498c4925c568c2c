package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoordIsValid(t *testing.T) {
	size := Size{W: 4, H: 5}
	assert.True(t, (Coord{X: 0, Y: 0}).IsValid(size))
	assert.True(t, (Coord{X: 3, Y: 4}).IsValid(size))
	assert.False(t, (Coord{X: 4, Y: 0}).IsValid(size))
	assert.False(t, (Coord{X: -1, Y: 0}).IsValid(size))
}

func TestCoordNormalize(t *testing.T) {
	size := Size{W: 4, H: 5}
	assert.Equal(t, Coord{X: 2, Y: 1}, (Coord{X: 2, Y: 6}).Normalize(size))
	assert.Equal(t, Coord{X: 3, Y: 4}, (Coord{X: -1, Y: -1}).Normalize(size))
}

func TestSizeCount(t *testing.T) {
	assert.Equal(t, 20, Size{W: 4, H: 5}.Count())
}
