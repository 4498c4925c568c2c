package geom

// Orientation is one of the eight symmetries of the square: the four
// rotations, and the four rotations composed with a diagonal flip.
type Orientation uint8

const (
	Original Orientation = iota
	Clockwise90
	Clockwise180
	Clockwise270
	DiagonallyFlipped
	DiagonallyFlippedClockwise90
	DiagonallyFlippedClockwise180
	DiagonallyFlippedClockwise270
)

// AllOrientations is every Orientation value, in a fixed order.
var AllOrientations = [8]Orientation{
	Original,
	Clockwise90,
	Clockwise180,
	Clockwise270,
	DiagonallyFlipped,
	DiagonallyFlippedClockwise90,
	DiagonallyFlippedClockwise180,
	DiagonallyFlippedClockwise270,
}

// TransformCoord remaps coord, which must lie within a size.W x size.H
// patch, to the position it occupies under this orientation. Original is
// the identity.
func (o Orientation) TransformCoord(size Size, coord Coord) Coord {
	switch o {
	case Original:
		return coord
	case Clockwise90:
		return Coord{X: coord.Y, Y: size.W - 1 - coord.X}
	case Clockwise180:
		return Coord{X: size.W - 1 - coord.X, Y: size.H - 1 - coord.Y}
	case Clockwise270:
		return Coord{X: size.H - 1 - coord.Y, Y: coord.X}
	case DiagonallyFlipped:
		return Coord{X: coord.Y, Y: coord.X}
	case DiagonallyFlippedClockwise90:
		return Coord{X: size.W - 1 - coord.X, Y: coord.Y}
	case DiagonallyFlippedClockwise180:
		return Coord{X: size.H - 1 - coord.Y, Y: size.W - 1 - coord.X}
	case DiagonallyFlippedClockwise270:
		return Coord{X: coord.X, Y: size.H - 1 - coord.Y}
	default:
		panic("geom: invalid orientation")
	}
}

// OrientationTable is a sparse, Orientation-indexed table: not every
// orientation is necessarily populated for a given entry (a pattern
// extractor running over a restricted orientation set only fills the
// orientations it was given).
type OrientationTable[T any] struct {
	present [8]bool
	entries [8]T
}

// Insert stores v for o.
func (t *OrientationTable[T]) Insert(o Orientation, v T) {
	t.entries[o] = v
	t.present[o] = true
}

// Get returns the value stored for o, if any.
func (t *OrientationTable[T]) Get(o Orientation) (T, bool) {
	return t.entries[o], t.present[o]
}
