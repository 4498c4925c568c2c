package geom

// Size is the extent of a 2D grid.
type Size struct {
	W, H int
}

// Count returns the number of cells a grid of this size holds.
func (s Size) Count() int {
	return s.W * s.H
}

// WithAxisDelta returns a copy of s with delta added to the dimension
// along axis (W for AxisX, H for AxisY).
func (s Size) WithAxisDelta(axis Axis, delta int) Size {
	if axis == AxisX {
		return Size{W: s.W + delta, H: s.H}
	}
	return Size{W: s.W, H: s.H + delta}
}

// Coord is a signed 2D grid coordinate. Coordinates may be negative or
// outside a grid's Size; it is up to a Wrap policy or explicit bounds
// check to decide what that means.
type Coord struct {
	X, Y int
}

// Add returns the coordinate offset by other.
func (c Coord) Add(other Coord) Coord {
	return Coord{X: c.X + other.X, Y: c.Y + other.Y}
}

// IsValid reports whether c lies within a grid of the given size, i.e.
// 0 <= X < size.W and 0 <= Y < size.H.
func (c Coord) IsValid(size Size) bool {
	return c.X >= 0 && c.X < size.W && c.Y >= 0 && c.Y < size.H
}

// normalizeAxis maps an arbitrary integer into [0, size) by wrapping.
func normalizeAxis(value, size int) int {
	value %= size
	if value < 0 {
		value += size
	}
	return value
}

// Normalize wraps c into a grid of the given size on both axes.
func (c Coord) Normalize(size Size) Coord {
	return Coord{X: normalizeAxis(c.X, size.W), Y: normalizeAxis(c.Y, size.H)}
}

// Index returns the row-major index of c within a grid of the given size.
// Callers must ensure c.IsValid(size).
func (c Coord) Index(size Size) int {
	return c.Y*size.W + c.X
}
