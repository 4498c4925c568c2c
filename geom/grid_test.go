package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGridGetSet(t *testing.T) {
	g := New[int](Size{W: 3, H: 2})
	g.Set(Coord{X: 1, Y: 1}, 7)
	assert.Equal(t, 7, g.Get(Coord{X: 1, Y: 1}))
	assert.Equal(t, 0, g.Get(Coord{X: 0, Y: 0}))
}

func TestGridNewFuncAndEnumerate(t *testing.T) {
	size := Size{W: 2, H: 2}
	g := NewFunc(size, func(c Coord) int { return c.X + c.Y*10 })
	count := 0
	for c, v := range g.Enumerate() {
		assert.Equal(t, c.X+c.Y*10, v)
		count++
	}
	assert.Equal(t, 4, count)
}

func TestGridGetTiledWraps(t *testing.T) {
	g := NewFunc(Size{W: 4, H: 4}, func(c Coord) Coord { return c })
	assert.Equal(t, Coord{X: 3, Y: 0}, g.GetTiled(Coord{X: -1, Y: -4}))
}

func TestGridClone(t *testing.T) {
	g := New[int](Size{W: 2, H: 2})
	g.Set(Coord{X: 0, Y: 0}, 5)
	clone := g.Clone()
	clone.Set(Coord{X: 0, Y: 0}, 9)
	assert.Equal(t, 5, g.Get(Coord{X: 0, Y: 0}))
	assert.Equal(t, 9, clone.Get(Coord{X: 0, Y: 0}))
}
