package main

import (
	"fmt"
	"time"

	"github.com/kelindar/bench"

	"github.com/wavesynth/wfc"
	"github.com/wavesynth/wfc/geom"
	"github.com/wavesynth/wfc/overlap"
	"github.com/wavesynth/wfc/pattern"
	"github.com/wavesynth/wfc/xrand"
)

var sizes = []int{16, 64, 128}

func main() {
	bench.Run(func(b *bench.B) {
		runStripes(b)
		runPermissive(b)
	}, bench.WithDuration(10*time.Millisecond), bench.WithSamples(100))
}

// runStripes benchmarks Collapse against the same two-pattern,
// column-alternating stats used by the stripes scenario in the core
// package's tests, across a range of square output sizes.
func runStripes(b *bench.B) {
	stats := stripesStats()
	for _, size := range sizes {
		size := size
		name := fmt.Sprintf("stripes collapse (%dx%d)", size, size)
		b.Run(name, func(i int) {
			rng := xrand.NewCounter(uint32(i) + 1)
			run := wfc.NewRunOwnDefault(geom.Size{W: size, H: size}, stats, rng)
			if err := run.Collapse(rng); err != nil {
				panic(err)
			}
		})
	}
}

// runPermissive benchmarks Collapse against a pattern set with no
// adjacency constraints at all, isolating the cost of observation and
// bookkeeping from constraint propagation (since a permissive wave never
// removes a neighbor's support).
func runPermissive(b *bench.B) {
	stats := permissiveStats()
	for _, size := range sizes {
		size := size
		name := fmt.Sprintf("permissive collapse (%dx%d)", size, size)
		b.Run(name, func(i int) {
			rng := xrand.NewCounter(uint32(i) + 1)
			run := wfc.NewRunOwnDefault(geom.Size{W: size, H: size}, stats, rng)
			if err := run.Collapse(rng); err != nil {
				panic(err)
			}
		})
	}
}

func stripesStats() *pattern.GlobalStats {
	grid := geom.New[geom.Token](geom.Size{W: 2, H: 2})
	grid.Set(geom.Coord{X: 0, Y: 0}, 0)
	grid.Set(geom.Coord{X: 1, Y: 0}, 1)
	grid.Set(geom.Coord{X: 0, Y: 1}, 0)
	grid.Set(geom.Coord{X: 1, Y: 1}, 1)

	patterns, err := overlap.NewOriginalOrientation(grid, geom.Size{W: 2, H: 2})
	if err != nil {
		panic(err)
	}
	stats, err := patterns.GlobalStats()
	if err != nil {
		panic(err)
	}
	return stats
}

func permissiveStats() *pattern.GlobalStats {
	var n0, n1 geom.DirectionTable[[]pattern.ID]
	for _, d := range geom.Directions {
		n0.Set(d, []pattern.ID{0, 1})
		n1.Set(d, []pattern.ID{0, 1})
	}
	descriptions := pattern.NewTable([]pattern.Description{
		{Weight: 1, AllowedNeighbours: n0},
		{Weight: 1, AllowedNeighbours: n1},
	})
	stats, err := pattern.New(descriptions)
	if err != nil {
		panic(err)
	}
	return stats
}
