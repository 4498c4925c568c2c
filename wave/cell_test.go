package wave

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wavesynth/wfc/geom"
	"github.com/wavesynth/wfc/pattern"
	"github.com/wavesynth/wfc/xrand"
)

// buildStats describes three patterns: 0 and 1 are mutually compatible in
// every direction (so both have a fully nonzero initial support tuple),
// and 2 is isolated — it allows no neighbour in any direction, so its
// initial support is all-zero and it must start unreachable.
func buildStats(t *testing.T) *pattern.GlobalStats {
	t.Helper()

	var n0, n1, n2 geom.DirectionTable[[]pattern.ID]
	for _, d := range geom.Directions {
		n0.Set(d, []pattern.ID{1})
		n1.Set(d, []pattern.ID{0})
	}

	descriptions := pattern.NewTable([]pattern.Description{
		{Weight: 3, AllowedNeighbours: n0},
		{Weight: 2, AllowedNeighbours: n1},
		{Weight: 5, AllowedNeighbours: n2},
	})
	stats, err := pattern.New(descriptions)
	assert.NoError(t, err)
	return stats
}

func countAdmitted(c *Cell) int {
	n := 0
	c.EnumerateAdmitted(func(pattern.ID) { n++ })
	return n
}

func assertSupportCoherent(t *testing.T, c *Cell, numPatterns int) {
	t.Helper()
	for id := pattern.ID(0); id < pattern.ID(numPatterns); id++ {
		s := c.Support(id)
		zero, nonzero := 0, 0
		for _, d := range geom.Directions {
			if s.Get(d) == 0 {
				zero++
			} else {
				nonzero++
			}
		}
		admitted := c.IsAdmitted(id)
		if admitted {
			assert.Equal(t, 4, nonzero, "admitted pattern %d has a zero support component", id)
		} else {
			assert.Equal(t, 4, zero, "removed pattern %d has a nonzero support component", id)
		}
	}
}

func TestNewCellUnreachablePatternStartsUnadmitted(t *testing.T) {
	stats := buildStats(t)
	rng := xrand.NewCounter(1)
	c := NewCell(stats, rng)

	assertSupportCoherent(t, c, 3)
	assert.False(t, c.IsAdmitted(2))
	assert.Equal(t, 2, c.NumCompat())
	assert.Equal(t, countAdmitted(c), c.NumCompat())
	assert.Equal(t, uint32(2), c.NumWeightedCompat())
	assert.Equal(t, uint32(5), c.SumWeight()) // 3 + 2, pattern 2 excluded
}

func TestDecrementSupportClassifiesOutcomes(t *testing.T) {
	stats := buildStats(t)
	rng := xrand.NewCounter(7)
	c := NewCell(stats, rng)

	// Pattern 1 has exactly one support unit in every direction; a single
	// decrement in any direction removes it, leaving pattern 0 as the
	// cell's sole admitted pattern.
	got := c.DecrementSupport(pattern.ID(1), geom.North, stats)
	assert.Equal(t, Finalized, got)
	assert.False(t, c.IsAdmitted(1))
	assert.True(t, c.IsAdmitted(0))
	assert.Equal(t, 1, c.NumCompat())

	// A second decrement of an already-removed pattern is a no-op.
	again := c.DecrementSupport(pattern.ID(1), geom.East, stats)
	assert.Equal(t, NoChange, again)

	// Removing the cell's last admitted pattern is a hard contradiction.
	final := c.DecrementSupport(pattern.ID(0), geom.North, stats)
	assert.Equal(t, HardContradiction, final)
	assert.Equal(t, 0, c.NumCompat())
}

func TestForbidPatternAndRemoveAllExcept(t *testing.T) {
	stats := buildStats(t)
	rng := xrand.NewCounter(3)
	c := NewCell(stats, rng)

	ok := c.ForbidPattern(pattern.ID(2), stats)
	assert.False(t, ok, "pattern 2 was never admitted to begin with")

	removed := c.RemoveAllExcept(pattern.ID(0), stats)
	assert.ElementsMatch(t, []pattern.ID{1}, removed)
	assert.True(t, c.IsAdmitted(0))
	assert.False(t, c.IsAdmitted(1))
	assert.Equal(t, 1, c.NumCompat())

	_, hasEntropy := c.Entropy()
	assert.True(t, hasEntropy, "pattern 0 is still weighted and admitted")

	id, err := c.ChosenPatternID()
	assert.NoError(t, err)
	assert.Equal(t, pattern.ID(0), id)
}

func TestChosenPatternIDErrorsWhenNotSingular(t *testing.T) {
	stats := buildStats(t)
	rng := xrand.NewCounter(9)
	c := NewCell(stats, rng)

	_, err := c.ChosenPatternID()
	assert.ErrorIs(t, err, ErrMultipleCompatiblePatterns)

	c.ForbidPattern(pattern.ID(0), stats)
	c.ForbidPattern(pattern.ID(1), stats)
	_, err = c.ChosenPatternID()
	assert.ErrorIs(t, err, ErrNoCompatiblePatterns)
}

func TestSamplePatternStaysWithinWeightedAdmittedSet(t *testing.T) {
	stats := buildStats(t)
	rng := xrand.NewCounter(42)
	c := NewCell(stats, rng)

	for i := 0; i < 20; i++ {
		id, ok := c.SamplePattern(stats, rng)
		assert.True(t, ok)
		assert.True(t, id == pattern.ID(0) || id == pattern.ID(1))
	}
}
