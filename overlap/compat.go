package overlap

import (
	"bytes"

	"github.com/wavesynth/wfc/geom"
)

// directionOffsets returns the pair of offsets, within the overlap region,
// at which a and b must agree for b to be allowed to sit in direction dir
// from a. North means b sits one row above a, so a's row 0 must match b's
// row 1, and so on.
func directionOffsets(dir geom.Direction) (aOffset, bOffset geom.Coord) {
	switch dir {
	case geom.North:
		return geom.Coord{X: 0, Y: 0}, geom.Coord{X: 0, Y: 1}
	case geom.South:
		return geom.Coord{X: 0, Y: 1}, geom.Coord{X: 0, Y: 0}
	case geom.East:
		return geom.Coord{X: 1, Y: 0}, geom.Coord{X: 0, Y: 0}
	case geom.West:
		return geom.Coord{X: 0, Y: 0}, geom.Coord{X: 1, Y: 0}
	default:
		panic("overlap: invalid direction")
	}
}

// arePatternsCompatible reports whether b is allowed to occupy the cell
// one step in dir from a: every cell in the region where a and b's
// windows overlap, once offset by dir, must carry the same value.
func arePatternsCompatible[T geom.Cell](a, b geom.TiledSlice[T], dir geom.Direction) bool {
	size := a.Size()
	axis := dir.Axis()
	overlap := size.WithAxisDelta(axis, -1)
	aOffset, bOffset := directionOffsets(dir)

	for y := 0; y < overlap.H; y++ {
		for x := 0; x < overlap.W; x++ {
			c := geom.Coord{X: x, Y: y}
			av, err := a.Get(c.Add(aOffset)).MarshalBinary()
			if err != nil {
				panic("overlap: cell MarshalBinary: " + err.Error())
			}
			bv, err := b.Get(c.Add(bOffset)).MarshalBinary()
			if err != nil {
				panic("overlap: cell MarshalBinary: " + err.Error())
			}
			if !bytes.Equal(av, bv) {
				return false
			}
		}
	}
	return true
}
