package overlap

import (
	"github.com/wavesynth/wfc/geom"
	"github.com/wavesynth/wfc/pattern"
)

// entry is one deduplicated pattern: the canonical window it was first
// seen as, and how many times (across every position and orientation
// scanned) an equal window occurred.
type entry[T geom.Cell] struct {
	slice geom.TiledSlice[T]
	count uint32
}

// Patterns is the result of extracting every orientation-instance of a
// fixed-size window from an input grid, deduplicated by content. It
// retains enough to answer both "what does pattern N look like" and
// "which pattern sits at cell C under orientation O", plus the derived
// per-direction compatibility relation.
type Patterns[T geom.Cell] struct {
	grid        *geom.Grid[T]
	patternSize geom.Size
	entries     []*entry[T]
	idGrid      *geom.Grid[geom.OrientationTable[pattern.ID]]
}

// New extracts patterns of patternSize from every position of grid
// (sampled toroidally, so edge windows wrap) under each orientation in
// orientations.
func New[T geom.Cell](grid *geom.Grid[T], patternSize geom.Size, orientations []geom.Orientation) (*Patterns[T], error) {
	if patternSize.W <= 0 || patternSize.H <= 0 {
		return nil, ErrInvalidPatternSize
	}
	if len(orientations) == 0 {
		return nil, ErrNoOrientations
	}

	var entries []*entry[T]
	buckets := make(map[uint64][]pattern.ID)
	idGrid := geom.New[geom.OrientationTable[pattern.ID]](grid.Size())

	for coord := range grid.Coords() {
		var table geom.OrientationTable[pattern.ID]
		for _, o := range orientations {
			slice := geom.NewTiledSlice(grid, coord, patternSize, o)
			h := slice.Hash()

			id, found := pattern.ID(0), false
			for _, candidate := range buckets[h] {
				if entries[candidate].slice.Equal(slice) {
					id, found = candidate, true
					break
				}
			}
			if found {
				entries[id].count++
			} else {
				id = pattern.ID(len(entries))
				entries = append(entries, &entry[T]{slice: slice, count: 1})
				buckets[h] = append(buckets[h], id)
			}
			table.Insert(o, id)
		}
		idGrid.Set(coord, table)
	}

	return &Patterns[T]{
		grid:        grid,
		patternSize: patternSize,
		entries:     entries,
		idGrid:      idGrid,
	}, nil
}

// NewAllOrientations extracts patterns under all eight symmetries.
func NewAllOrientations[T geom.Cell](grid *geom.Grid[T], patternSize geom.Size) (*Patterns[T], error) {
	return New(grid, patternSize, geom.AllOrientations[:])
}

// NewOriginalOrientation extracts patterns under the identity orientation
// only, for inputs where rotating or flipping would produce nonsense
// (e.g. text, directional tile sets).
func NewOriginalOrientation[T geom.Cell](grid *geom.Grid[T], patternSize geom.Size) (*Patterns[T], error) {
	return New(grid, patternSize, []geom.Orientation{geom.Original})
}

// Grid returns the input grid patterns were extracted from.
func (p *Patterns[T]) Grid() *geom.Grid[T] {
	return p.grid
}

// NumPatterns returns how many distinct patterns were found.
func (p *Patterns[T]) NumPatterns() int {
	return len(p.entries)
}

// PatternSize returns the window size patterns were extracted at.
func (p *Patterns[T]) PatternSize() geom.Size {
	return p.patternSize
}

// Pattern returns the canonical window for id.
func (p *Patterns[T]) Pattern(id pattern.ID) geom.TiledSlice[T] {
	return p.entries[id].slice
}

// Count returns how many times id occurred across the scan.
func (p *Patterns[T]) Count(id pattern.ID) uint32 {
	return p.entries[id].count
}

// ClearCount zeroes id's occurrence count, so the GlobalStats built from
// PatternDescriptions afterward treats it as unweighted: still a legal
// neighbour for compatibility purposes, but never chosen by Observe. Used
// to veto specific patterns (e.g. ones straddling an input's edge) without
// removing them from the adjacency graph entirely.
func (p *Patterns[T]) ClearCount(id pattern.ID) {
	p.entries[id].count = 0
}

// IDGrid returns, for every input coordinate, the pattern id produced at
// that position under each orientation that was scanned.
func (p *Patterns[T]) IDGrid() *geom.Grid[geom.OrientationTable[pattern.ID]] {
	return p.idGrid
}

// IDGridOriginalOrientation returns, for every input coordinate, the
// pattern id produced at that position under the identity orientation.
// Orientations that were never scanned leave that coordinate's entry at
// its zero value; callers that only ever call NewOriginalOrientation or
// NewAllOrientations need not worry about this.
func (p *Patterns[T]) IDGridOriginalOrientation() *geom.Grid[pattern.ID] {
	return geom.NewFunc(p.grid.Size(), func(c geom.Coord) pattern.ID {
		id, _ := p.idGrid.Get(c).Get(geom.Original)
		return id
	})
}

// PatternDescriptions derives the per-pattern weight (its occurrence
// count) and per-direction adjacency relation (which other patterns may
// legally sit next to it) from the extracted windows.
func (p *Patterns[T]) PatternDescriptions() pattern.Table[pattern.Description] {
	descriptions := make([]pattern.Description, len(p.entries))
	for id, e := range p.entries {
		var neighbours geom.DirectionTable[[]pattern.ID]
		for _, d := range geom.Directions {
			var allowed []pattern.ID
			for otherID, other := range p.entries {
				if arePatternsCompatible(e.slice, other.slice, d) {
					allowed = append(allowed, pattern.ID(otherID))
				}
			}
			neighbours.Set(d, allowed)
		}
		descriptions[id] = pattern.Description{Weight: e.count, AllowedNeighbours: neighbours}
	}
	return pattern.NewTable(descriptions)
}

// GlobalStats builds a pattern.GlobalStats from the extracted patterns.
func (p *Patterns[T]) GlobalStats() (*pattern.GlobalStats, error) {
	return pattern.New(p.PatternDescriptions())
}
