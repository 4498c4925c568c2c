package wfc

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wavesynth/wfc/geom"
	"github.com/wavesynth/wfc/pattern"
	"github.com/wavesynth/wfc/xrand"
)

// oddCycleStats describes two patterns, A and B, that are each
// self-compatible North/South but only cross-compatible East/West: A may
// only be flanked by B and vice versa, never by itself. Placed around an
// odd-length ring that wraps in X, no assignment can satisfy every
// adjacency simultaneously (a two-coloring of an odd cycle does not
// exist), so any Collapse over such a wave is guaranteed to contradict.
func oddCycleStats(t *testing.T) *pattern.GlobalStats {
	t.Helper()
	var a, b geom.DirectionTable[[]pattern.ID]
	a.Set(geom.North, []pattern.ID{0})
	a.Set(geom.South, []pattern.ID{0})
	a.Set(geom.East, []pattern.ID{1})
	a.Set(geom.West, []pattern.ID{1})

	b.Set(geom.North, []pattern.ID{1})
	b.Set(geom.South, []pattern.ID{1})
	b.Set(geom.East, []pattern.ID{0})
	b.Set(geom.West, []pattern.ID{0})

	descriptions := pattern.NewTable([]pattern.Description{
		{Weight: 1, AllowedNeighbours: a},
		{Weight: 1, AllowedNeighbours: b},
	})
	stats, err := pattern.New(descriptions)
	assert.NoError(t, err)
	return stats
}

// TestCollapseOddCycleAlwaysContradicts exercises the Propagator's
// hard-contradiction path end to end: a 3-wide ring (wrapped in X only,
// unwrapped and size-1 in Y so North/South never has a neighbor) cannot
// be strictly 2-colored, so Collapse must fail with ErrContradiction, and
// NumTimes(0) surfaces that first contradiction without retrying.
func TestCollapseOddCycleAlwaysContradicts(t *testing.T) {
	stats := oddCycleStats(t)
	size := geom.Size{W: 3, H: 1}
	rng := xrand.NewCounter(42)

	run := NewRunOwn(size, stats, geom.WrapX{}, ForbidNothing{}, rng)
	retry := &NumTimes{Remaining: 0}
	err := run.CollapseRetrying(retry, rng)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, ErrContradiction))
}
