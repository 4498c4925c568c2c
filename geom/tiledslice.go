package geom

import (
	"bytes"
	"encoding"

	"blainsmith.com/go/seahash"
)

// Cell is the constraint a grid's element type must satisfy to be used as
// a pattern key: it must be serializable to bytes so a TiledSlice can be
// hashed and compared cheaply, the way grailbio-bio seahashes serialized
// record bytes to key a concurrent map.
type Cell interface {
	encoding.BinaryMarshaler
}

// TiledSlice is a read-only, toroidally-wrapped, optionally
// rotated/flipped window into a Grid. Two slices of the same size compare
// equal iff their row-major sequence of values are pairwise equal; that
// same sequence feeds the hash, so a hash map keyed by TiledSlice
// deduplicates patterns regardless of which orientation produced them.
type TiledSlice[T Cell] struct {
	grid        *Grid[T]
	offset      Coord
	size        Size
	orientation Orientation
}

// NewTiledSlice returns a view of size starting at offset within grid,
// read through orientation's coordinate remapping.
func NewTiledSlice[T Cell](grid *Grid[T], offset Coord, size Size, orientation Orientation) TiledSlice[T] {
	return TiledSlice[T]{grid: grid, offset: offset, size: size, orientation: orientation}
}

// Size returns the slice's extent.
func (s TiledSlice[T]) Size() Size {
	return s.size
}

// Offset returns the slice's top-left coordinate within its backing grid.
func (s TiledSlice[T]) Offset() Coord {
	return s.offset
}

// Get returns the value at coord (local to the slice, 0 <= coord < Size),
// transformed by the slice's orientation and read from the backing grid
// with toroidal wrapping.
func (s TiledSlice[T]) Get(coord Coord) T {
	transformed := s.orientation.TransformCoord(s.size, coord)
	return s.grid.GetTiled(s.offset.Add(transformed))
}

// Hash returns a seahash digest of the slice's row-major value sequence.
func (s TiledSlice[T]) Hash() uint64 {
	h := seahash.New()
	for y := 0; y < s.size.H; y++ {
		for x := 0; x < s.size.W; x++ {
			v := s.Get(Coord{X: x, Y: y})
			b, err := v.MarshalBinary()
			if err != nil {
				panic("geom: cell MarshalBinary: " + err.Error())
			}
			h.Write(b)
		}
	}
	return h.Sum64()
}

// Equal reports whether s and other have the same size and the same
// row-major value sequence.
func (s TiledSlice[T]) Equal(other TiledSlice[T]) bool {
	if s.size != other.size {
		return false
	}
	for y := 0; y < s.size.H; y++ {
		for x := 0; x < s.size.W; x++ {
			c := Coord{X: x, Y: y}
			ab, err := s.Get(c).MarshalBinary()
			if err != nil {
				panic("geom: cell MarshalBinary: " + err.Error())
			}
			bb, err := other.Get(c).MarshalBinary()
			if err != nil {
				panic("geom: cell MarshalBinary: " + err.Error())
			}
			if !bytes.Equal(ab, bb) {
				return false
			}
		}
	}
	return true
}
