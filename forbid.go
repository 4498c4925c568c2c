package wfc

import (
	"github.com/wavesynth/wfc/geom"
	"github.com/wavesynth/wfc/pattern"
	"github.com/wavesynth/wfc/wave"
	"github.com/wavesynth/wfc/xrand"
)

// ForbidHook lets a caller inject pre-observation constraints: it runs
// once right after a run is constructed or reset, before the first
// observe/propagate cycle, and may call ForbidAllPatternsExcept/
// ForbidPattern on the handle any number of times.
type ForbidHook interface {
	Forbid(fi *ForbidInterface, rng xrand.Source)
}

// ForbidNothing is the default hook: it does nothing, so the common case
// of "no pre-seeded constraints" pays no cost beyond the interface call.
type ForbidNothing struct{}

// Forbid implements ForbidHook.
func (ForbidNothing) Forbid(*ForbidInterface, xrand.Source) {}

// ForbidInterface is the capability a ForbidHook (or a caller, between
// Steps) uses to constrain specific cells. Each call clamps the relevant
// support and immediately propagates the consequences.
type ForbidInterface struct {
	wave    *wave.Wave
	context *Context
	stats   *pattern.GlobalStats
	wrap    geom.Wrap
}

// WaveSize returns the size of the wave a hook is constraining, so a hook
// can address cells relative to the output's edges without the caller
// threading the size through separately.
func (fi *ForbidInterface) WaveSize() geom.Size {
	return fi.wave.Size()
}

// ForbidAllPatternsExcept removes every admitted pattern at coord other
// than keep, then propagates.
func (fi *ForbidInterface) ForbidAllPatternsExcept(coord geom.Coord, keep pattern.ID) error {
	cell := fi.wave.Get(coord)
	for _, removed := range cell.RemoveAllExcept(keep, fi.stats) {
		fi.context.propagator.enqueue(coord, removed)
	}
	return fi.context.propagate(fi.wave, fi.stats, fi.wrap)
}

// ForbidPattern removes pid from coord's admitted set, then propagates.
// If pid is already not admitted, this is a no-op. If pid is the cell's
// sole remaining admission, it returns ErrForbidWouldContradict without
// mutating any state.
func (fi *ForbidInterface) ForbidPattern(coord geom.Coord, pid pattern.ID) error {
	cell := fi.wave.Get(coord)
	if !cell.IsAdmitted(pid) {
		return nil
	}
	if cell.NumCompat() == 1 {
		return ErrForbidWouldContradict
	}
	cell.ForbidPattern(pid, fi.stats)
	fi.context.propagator.enqueue(coord, pid)
	return fi.context.propagate(fi.wave, fi.stats, fi.wrap)
}
