package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrientationTransformCoord(t *testing.T) {
	size := Size{W: 3, H: 3}
	assert.Equal(t, Coord{X: 2, Y: 1}, Clockwise90.TransformCoord(size, Coord{X: 1, Y: 2}))
	assert.Equal(t, Coord{X: 0, Y: 2}, Clockwise90.TransformCoord(size, Coord{X: 0, Y: 0}))
	assert.Equal(t, Coord{X: 1, Y: 2}, Original.TransformCoord(size, Coord{X: 1, Y: 2}))
}

func TestAllOrientationsAreEightAndDistinctOnAPoint(t *testing.T) {
	size := Size{W: 4, H: 4}
	seen := map[Coord]int{}
	for _, o := range AllOrientations {
		seen[o.TransformCoord(size, Coord{X: 0, Y: 1})]++
	}
	assert.Len(t, AllOrientations, 8)
	// (0,1) is an edge cell off the diagonals and off the centre lines, so
	// each of the 8 symmetries sends it to a different position.
	assert.Len(t, seen, 8)
	total := 0
	for _, c := range seen {
		total += c
	}
	assert.Equal(t, 8, total)
}
