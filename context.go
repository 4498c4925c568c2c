package wfc

import (
	"github.com/wavesynth/wfc/geom"
	"github.com/wavesynth/wfc/pattern"
	"github.com/wavesynth/wfc/wave"
	"github.com/wavesynth/wfc/xrand"
)

// Observe reports the result of a single observation step.
type Observe int

const (
	// Incomplete means a cell was collapsed and propagation is needed.
	Incomplete Observe = iota
	// Complete means every cell has at most one weighted candidate left;
	// the solve is done.
	Complete
)

// Context bundles the propagator worklist, the observer's priority queue,
// and the scratch state a solve mutates between Step calls. It is owned
// exclusively by one RunBorrow/RunOwn and is cleared and reused across
// retries rather than reallocated.
type Context struct {
	propagator     propagator
	observer       observer
	entropyChanges map[geom.Coord]wave.EntropyKey
	// remaining counts cells that still admit more than one weighted
	// pattern; observe reports Complete once it reaches zero.
	remaining uint32
}

// NewContext returns an empty Context ready for Init.
func NewContext() *Context {
	return &Context{entropyChanges: make(map[geom.Coord]wave.EntropyKey)}
}

// Init resets the context and seeds the observer with every cell's
// current entropy. Called once per solve and again on every retry reset.
func (c *Context) Init(w *wave.Wave, stats *pattern.GlobalStats) {
	c.propagator.clear()
	c.observer.clear()
	for k := range c.entropyChanges {
		delete(c.entropyChanges, k)
	}

	if stats.NumWeightedPatterns() <= 1 {
		c.remaining = 0
		return
	}
	c.remaining = uint32(w.Size().Count())
	for coord, cell := range w.Enumerate() {
		if key, ok := cell.EntropyKey(); ok {
			c.observer.push(coord, key)
		}
	}
}

// propagate drains the propagator worklist under wrap, then transfers
// every recorded entropy change into the observer's queue.
func (c *Context) propagate(w *wave.Wave, stats *pattern.GlobalStats, wrap geom.Wrap) error {
	if err := c.propagator.propagate(w, stats, wrap, c.entropyChanges, &c.remaining); err != nil {
		return err
	}
	for coord, key := range c.entropyChanges {
		c.observer.push(coord, key)
		delete(c.entropyChanges, coord)
	}
	return nil
}

// observe chooses the next cell to collapse (if any), samples a pattern
// for it, and enqueues the rest of its admitted patterns for propagation.
func (c *Context) observe(w *wave.Wave, stats *pattern.GlobalStats, rng xrand.Source) Observe {
	if c.remaining == 0 {
		return Complete
	}
	coord, ok := c.observer.chooseNextCell(w)
	if !ok {
		return Complete
	}
	cell := w.Get(coord)
	// chooseNextCell only returns cells whose live weighted count matches a
	// snapshot taken when it was non-zero, so sampling always succeeds.
	pid, _ := cell.SamplePattern(stats, rng)
	for _, removed := range cell.RemoveAllExcept(pid, stats) {
		c.propagator.enqueue(coord, removed)
	}
	c.remaining--
	return Incomplete
}
