package geom

import "iter"

// Grid is a fixed-size, row-major 2D array. Reads via GetTiled wrap
// toroidally regardless of any Wrap policy in effect elsewhere; it exists
// so a TiledSlice can sample an input grid at an arbitrary offset without
// special-casing the edges.
type Grid[T any] struct {
	size  Size
	cells []T
}

// New allocates a grid of the given size with every cell set to the zero
// value of T.
func New[T any](size Size) *Grid[T] {
	return &Grid[T]{size: size, cells: make([]T, size.Count())}
}

// NewFunc allocates a grid of the given size, populating each cell by
// calling fn with its coordinate.
func NewFunc[T any](size Size, fn func(Coord) T) *Grid[T] {
	g := New[T](size)
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			c := Coord{X: x, Y: y}
			g.cells[c.Index(size)] = fn(c)
		}
	}
	return g
}

// Size returns the grid's dimensions.
func (g *Grid[T]) Size() Size {
	return g.size
}

// Get returns the value at coord, which must be valid.
func (g *Grid[T]) Get(coord Coord) T {
	return g.cells[coord.Index(g.size)]
}

// GetPtr returns a pointer to the cell at coord, which must be valid, for
// in-place mutation.
func (g *Grid[T]) GetPtr(coord Coord) *T {
	return &g.cells[coord.Index(g.size)]
}

// Set stores v at coord, which must be valid.
func (g *Grid[T]) Set(coord Coord, v T) {
	g.cells[coord.Index(g.size)] = v
}

// GetTiled returns the value at coord after wrapping it toroidally into
// the grid, regardless of whether coord was in bounds.
func (g *Grid[T]) GetTiled(coord Coord) T {
	return g.Get(coord.Normalize(g.size))
}

// Coords streams every coordinate of the grid in row-major (X then Y)
// order.
func (g *Grid[T]) Coords() iter.Seq[Coord] {
	return func(yield func(Coord) bool) {
		for y := 0; y < g.size.H; y++ {
			for x := 0; x < g.size.W; x++ {
				if !yield((Coord{X: x, Y: y})) {
					return
				}
			}
		}
	}
}

// Enumerate streams (coordinate, value) pairs in row-major order.
func (g *Grid[T]) Enumerate() iter.Seq2[Coord, T] {
	return func(yield func(Coord, T) bool) {
		for y := 0; y < g.size.H; y++ {
			for x := 0; x < g.size.W; x++ {
				c := Coord{X: x, Y: y}
				if !yield(c, g.cells[c.Index(g.size)]) {
					return
				}
			}
		}
	}
}

// ForEach mutates every cell in place by calling fn with its current
// value and storing the result.
func (g *Grid[T]) ForEach(fn func(Coord, T) T) {
	for y := 0; y < g.size.H; y++ {
		for x := 0; x < g.size.W; x++ {
			c := Coord{X: x, Y: y}
			idx := c.Index(g.size)
			g.cells[idx] = fn(c, g.cells[idx])
		}
	}
}

// Clone returns a deep copy of the grid (deep in the sense that the
// backing slice is freshly allocated; T itself is copied by value).
func (g *Grid[T]) Clone() *Grid[T] {
	cells := make([]T, len(g.cells))
	copy(cells, g.cells)
	return &Grid[T]{size: g.size, cells: cells}
}
