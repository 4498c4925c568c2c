package wave

import (
	"math"

	"github.com/kelindar/bitmap"

	"github.com/wavesynth/wfc/geom"
	"github.com/wavesynth/wfc/pattern"
	"github.com/wavesynth/wfc/xrand"
)

// Cell is the superposition of patterns still admissible at one output
// position. admitted mirrors, as a bitmap, exactly the set of pattern ids
// whose four-directional support tuple is all-nonzero — the same
// admit/remove decision support itself encodes, kept as a bitmap purely
// so sampling and enumeration don't have to linearly scan support.
type Cell struct {
	noise             uint32
	numCompat         int
	numWeightedCompat uint32
	sumW              uint32
	sumWLogW          float32
	support           []geom.DirectionTable[uint32]
	admitted          bitmap.Bitmap
}

// NewCell initializes a cell from stats: every pattern starts admitted
// with support S0, except a pattern whose S0 has a zero component in any
// direction, which is unreachable from the boundary and starts removed.
func NewCell(stats *pattern.GlobalStats, rng xrand.Source) *Cell {
	n := stats.NumPatterns()
	c := &Cell{
		noise:             rng.Uint32(),
		numCompat:         n,
		numWeightedCompat: stats.NumWeightedPatterns(),
		sumW:              stats.SumWeight(),
		sumWLogW:          stats.SumWeightLog(),
		support:           make([]geom.DirectionTable[uint32], n),
	}
	c.admitted.Grow(uint32(n))
	for i := 0; i < n; i++ {
		c.admitted.Set(uint32(i))
	}

	for id := pattern.ID(0); id < pattern.ID(n); id++ {
		s0 := stats.InitialSupport(id)
		c.support[id] = s0

		unreachable := false
		for _, d := range geom.Directions {
			if s0.Get(d) == 0 {
				unreachable = true
				break
			}
		}
		if unreachable {
			c.clampPattern(id, stats)
		}
	}
	return c
}

// clampPattern zeroes pid's support tuple and folds its removal into the
// cell's aggregates. The caller must know pid is currently admitted.
func (c *Cell) clampPattern(pid pattern.ID, stats *pattern.GlobalStats) {
	var zero geom.DirectionTable[uint32]
	c.support[pid] = zero
	c.admitted.Remove(uint32(pid))
	c.numCompat--
	if w := stats.Weight(pid); w != nil {
		c.numWeightedCompat--
		c.sumW -= w.Value()
		c.sumWLogW -= w.Log()
	}
}

// NumCompat returns how many patterns (weighted or not) remain admitted.
func (c *Cell) NumCompat() int {
	return c.numCompat
}

// NumWeightedCompat returns how many admitted patterns carry a weight.
func (c *Cell) NumWeightedCompat() uint32 {
	return c.numWeightedCompat
}

// SumWeight returns the summed weight of admitted weighted patterns.
func (c *Cell) SumWeight() uint32 {
	return c.sumW
}

// IsAdmitted reports whether pid is still possible at this cell.
func (c *Cell) IsAdmitted(pid pattern.ID) bool {
	return c.admitted.Contains(uint32(pid))
}

// Support returns pid's raw four-direction support tuple, for tests and
// for invariant checks; pid is admitted iff every entry is nonzero.
func (c *Cell) Support(pid pattern.ID) geom.DirectionTable[uint32] {
	return c.support[pid]
}

// EnumerateAdmitted calls fn with every admitted pattern id, in ascending
// order.
func (c *Cell) EnumerateAdmitted(fn func(pattern.ID)) {
	c.admitted.Range(func(x uint32) {
		fn(pattern.ID(x))
	})
}

// Entropy returns the cell's Shannon entropy over admitted weighted
// patterns, and false if no weighted pattern is admitted (entropy is
// undefined there: sumW is zero).
func (c *Cell) Entropy() (float32, bool) {
	if c.sumW == 0 {
		return 0, false
	}
	return float32(math.Log2(float64(c.sumW))) - c.sumWLogW/float32(c.sumW), true
}

// EntropyKey returns the cell's current (entropy, noise, snapshot) key for
// the observer's priority queue, and false if the cell has no admitted
// weighted pattern.
func (c *Cell) EntropyKey() (EntropyKey, bool) {
	e, ok := c.Entropy()
	if !ok {
		return EntropyKey{}, false
	}
	return EntropyKey{Entropy: e, Noise: c.noise, SnapshotWeightedCount: c.numWeightedCompat}, true
}

// DecrementSupport records that one fewer neighbor (in the direction
// opposite dir, relative to the neighbor) supports pid here, and reports
// the resulting outcome for the caller (a Propagator) to act on.
func (c *Cell) DecrementSupport(pid pattern.ID, dir geom.Direction, stats *pattern.GlobalStats) Outcome {
	s := c.support[pid].Get(dir)
	if s == 0 {
		return NoChange
	}
	s--
	c.support[pid].Set(dir, s)
	if s != 0 {
		return NoChange
	}

	c.clampPattern(pid, stats)
	switch {
	case c.numCompat == 0:
		return HardContradiction
	case c.numWeightedCompat == 0:
		return SoftContradiction
	case c.numCompat == 1:
		return Finalized
	default:
		return RemovedWeighted
	}
}

// ForbidPattern removes pid from this cell's admitted set directly,
// without going through support decrements, and reports whether it was
// admitted beforehand. Used to apply a forbid hook's or a caller's
// ForbidPattern request (ForbidAllPatternsExcept uses RemoveAllExcept
// instead); the caller is responsible for enqueueing the removal for propagation and
// for the "would cause immediate contradiction" precondition.
func (c *Cell) ForbidPattern(pid pattern.ID, stats *pattern.GlobalStats) bool {
	if !c.admitted.Contains(uint32(pid)) {
		return false
	}
	c.clampPattern(pid, stats)
	return true
}

// RemoveAllExcept clamps every admitted pattern other than keep, and
// returns the ids removed so the caller can enqueue each for propagation.
func (c *Cell) RemoveAllExcept(keep pattern.ID, stats *pattern.GlobalStats) []pattern.ID {
	var removed []pattern.ID
	c.admitted.Range(func(x uint32) {
		if pattern.ID(x) != keep {
			removed = append(removed, pattern.ID(x))
		}
	})
	for _, pid := range removed {
		c.clampPattern(pid, stats)
	}
	return removed
}

// SamplePattern draws a pattern id proportional to weight among admitted
// weighted patterns, consuming one uniform draw from rng. It returns
// false if no weighted pattern is admitted.
func (c *Cell) SamplePattern(stats *pattern.GlobalStats, rng xrand.Source) (pattern.ID, bool) {
	if c.sumW == 0 {
		return 0, false
	}
	r := rng.UintN(c.sumW)
	var chosen pattern.ID
	found := false
	c.admitted.Range(func(x uint32) {
		if found {
			return
		}
		pid := pattern.ID(x)
		w := stats.Weight(pid)
		if w == nil {
			return
		}
		if r < w.Value() {
			chosen = pid
			found = true
			return
		}
		r -= w.Value()
	})
	return chosen, found
}

// ChosenPatternID returns the cell's sole admitted pattern, or an error if
// it has none or more than one.
func (c *Cell) ChosenPatternID() (pattern.ID, error) {
	switch c.numCompat {
	case 0:
		return 0, ErrNoCompatiblePatterns
	default:
		if c.numCompat > 1 {
			return 0, ErrMultipleCompatiblePatterns
		}
		var id pattern.ID
		c.admitted.Range(func(x uint32) {
			id = pattern.ID(x)
		})
		return id, nil
	}
}
