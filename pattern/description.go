package pattern

import "github.com/wavesynth/wfc/geom"

// Description is the per-pattern input to GlobalStats: an optional weight
// (0 means absent — the pattern is legal but never sampled and
// contributes nothing to entropy) and, for each cardinal direction, the
// set of patterns allowed to occupy the neighboring cell in that
// direction.
type Description struct {
	Weight            uint32
	AllowedNeighbours geom.DirectionTable[[]ID]
}
