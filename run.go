package wfc

import (
	"github.com/wavesynth/wfc/geom"
	"github.com/wavesynth/wfc/pattern"
	"github.com/wavesynth/wfc/wave"
	"github.com/wavesynth/wfc/xrand"
)

// RunBorrow drives a solve over a Wave and Context supplied by the
// caller, so their backing storage can be reused across retries instead
// of reallocated. Wrap and the forbid hook are fixed for the run's
// lifetime.
type RunBorrow struct {
	context *Context
	wave    *wave.Wave
	stats   *pattern.GlobalStats
	wrap    geom.Wrap
	forbid  ForbidHook
}

// NewRunBorrow initializes wave and context against stats, then invokes
// forbid once before the first step.
func NewRunBorrow(
	context *Context,
	w *wave.Wave,
	stats *pattern.GlobalStats,
	wrap geom.Wrap,
	forbid ForbidHook,
	rng xrand.Source,
) *RunBorrow {
	w.Reset(stats, rng)
	context.Init(w, stats)
	r := &RunBorrow{context: context, wave: w, stats: stats, wrap: wrap, forbid: forbid}
	forbid.Forbid(r.forbidInterface(), rng)
	return r
}

// NewRunBorrowDefault is NewRunBorrow with WrapXY and ForbidNothing, the
// common case.
func NewRunBorrowDefault(context *Context, w *wave.Wave, stats *pattern.GlobalStats, rng xrand.Source) *RunBorrow {
	return NewRunBorrow(context, w, stats, geom.WrapXY{}, ForbidNothing{}, rng)
}

func (r *RunBorrow) forbidInterface() *ForbidInterface {
	return &ForbidInterface{wave: r.wave, context: r.context, stats: r.stats, wrap: r.wrap}
}

// Reset reinitializes the wave and context in place and re-applies the
// forbid hook. Called automatically on contradiction; callers may also
// call it directly to start a fresh attempt with the same rng stream.
func (r *RunBorrow) Reset(rng xrand.Source) {
	r.wave.Reset(r.stats, rng)
	r.context.Init(r.wave, r.stats)
	r.forbid.Forbid(r.forbidInterface(), rng)
}

// Step performs one observe, and if the observation was incomplete, one
// propagate. On contradiction it resets the run before returning the
// error, per the "Wave is undefined after Contradiction" contract.
func (r *RunBorrow) Step(rng xrand.Source) (Observe, error) {
	obs := r.context.observe(r.wave, r.stats, rng)
	if obs == Complete {
		return Complete, nil
	}
	if err := r.context.propagate(r.wave, r.stats, r.wrap); err != nil {
		r.Reset(rng)
		return obs, err
	}
	return obs, nil
}

// Collapse steps until the solve completes or contradicts.
func (r *RunBorrow) Collapse(rng xrand.Source) error {
	for {
		obs, err := r.Step(rng)
		if err != nil {
			return err
		}
		if obs == Complete {
			return nil
		}
	}
}

// CollapseRetrying runs Collapse under retry, which decides whether and
// how to reset and try again on contradiction.
func (r *RunBorrow) CollapseRetrying(retry RetryBorrow, rng xrand.Source) error {
	return retry.Retry(r, rng)
}

// ForbidAllPatternsExcept removes every admitted pattern at coord other
// than keep and propagates. Usable between Steps, not just from a
// ForbidHook.
func (r *RunBorrow) ForbidAllPatternsExcept(coord geom.Coord, keep pattern.ID) error {
	return r.forbidInterface().ForbidAllPatternsExcept(coord, keep)
}

// ForbidPattern removes pid from coord's admitted set and propagates, or
// returns ErrForbidWouldContradict if pid is the cell's sole admission.
func (r *RunBorrow) ForbidPattern(coord geom.Coord, pid pattern.ID) error {
	return r.forbidInterface().ForbidPattern(coord, pid)
}

// WaveCellRef returns a read-only view of the cell at coord, for output
// extraction and animation previews.
func (r *RunBorrow) WaveCellRef(coord geom.Coord) WaveCellRef {
	return WaveCellRef{cell: r.wave.Get(coord), stats: r.stats}
}

// WaveCellRefEnumerate calls fn with every output coordinate and its
// cell view, in row-major order.
func (r *RunBorrow) WaveCellRefEnumerate(fn func(geom.Coord, WaveCellRef)) {
	for coord, cell := range r.wave.Enumerate() {
		fn(coord, WaveCellRef{cell: cell, stats: r.stats})
	}
}

// Wave returns the underlying Wave for direct inspection once a solve has
// completed.
func (r *RunBorrow) Wave() *wave.Wave {
	return r.wave
}

// WaveCellRef is a read-only view onto one output cell: enough to answer
// "what pattern did this cell end up as" or, pre-completion, "what would
// a weighted blend of its admitted patterns look like".
type WaveCellRef struct {
	cell  *wave.Cell
	stats *pattern.GlobalStats
}

// ChosenPatternID returns the cell's sole admitted pattern, or an error
// if it has none or more than one.
func (w WaveCellRef) ChosenPatternID() (pattern.ID, error) {
	return w.cell.ChosenPatternID()
}

// SumCompatibleWeight returns the summed weight of the cell's admitted
// weighted patterns.
func (w WaveCellRef) SumCompatibleWeight() uint32 {
	return w.cell.SumWeight()
}

// EnumerateCompatibleWeights calls fn with every admitted pattern id and
// its weight (0 for an admitted but unweighted pattern), in ascending id
// order.
func (w WaveCellRef) EnumerateCompatibleWeights(fn func(pattern.ID, uint32)) {
	w.cell.EnumerateAdmitted(func(pid pattern.ID) {
		var weight uint32
		if wt := w.stats.Weight(pid); wt != nil {
			weight = wt.Value()
		}
		fn(pid, weight)
	})
}

// RunOwn is a RunBorrow that allocates and owns its Wave and Context,
// used where the caller wants a self-contained run — in particular, for
// ParNumTimes's independent concurrent attempts.
type RunOwn struct {
	*RunBorrow
}

// NewRunOwn allocates a fresh Wave of size and a fresh Context, and
// starts a run against them.
func NewRunOwn(
	size geom.Size,
	stats *pattern.GlobalStats,
	wrap geom.Wrap,
	forbid ForbidHook,
	rng xrand.Source,
) *RunOwn {
	w := wave.New(size, stats, rng)
	ctx := NewContext()
	return &RunOwn{RunBorrow: NewRunBorrow(ctx, w, stats, wrap, forbid, rng)}
}

// NewRunOwnDefault is NewRunOwn with WrapXY and ForbidNothing.
func NewRunOwnDefault(size geom.Size, stats *pattern.GlobalStats, rng xrand.Source) *RunOwn {
	return NewRunOwn(size, stats, geom.WrapXY{}, ForbidNothing{}, rng)
}
