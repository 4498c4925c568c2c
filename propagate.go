package wfc

import (
	"github.com/wavesynth/wfc/geom"
	"github.com/wavesynth/wfc/pattern"
	"github.com/wavesynth/wfc/wave"
)

// removal is one entry in the propagator's worklist: pid was just removed
// from the cell at coord, and every neighbor that depended on it in any
// direction must be revisited.
type removal struct {
	coord geom.Coord
	pid   pattern.ID
}

// propagator is a LIFO worklist of pattern removals still needing to be
// fanned out to neighboring cells.
type propagator struct {
	worklist []removal
}

func (p *propagator) clear() {
	p.worklist = p.worklist[:0]
}

// enqueue records that pid was removed at coord; the caller must already
// have clamped the cell's support for pid and updated its aggregates
// before calling this (wave.Cell.ForbidPattern/RemoveAllExcept/
// DecrementSupport all do so).
func (p *propagator) enqueue(coord geom.Coord, pid pattern.ID) {
	p.worklist = append(p.worklist, removal{coord: coord, pid: pid})
}

func (p *propagator) pop() (removal, bool) {
	n := len(p.worklist)
	if n == 0 {
		return removal{}, false
	}
	r := p.worklist[n-1]
	p.worklist = p.worklist[:n-1]
	return r, true
}

// propagate drains the worklist, decrementing support in every neighbor of
// every removed pattern and fanning out further removals, until the
// worklist empties or a cell loses its last admitted pattern. Cells whose
// weighted-pattern count changed have their new EntropyKey recorded in
// entropyChanges (keeping the lowest by lex order per coordinate);
// remaining tracks how many cells still have more than one weighted
// candidate, for the Observer's completion check.
func (p *propagator) propagate(
	w *wave.Wave,
	stats *pattern.GlobalStats,
	wrap geom.Wrap,
	entropyChanges map[geom.Coord]wave.EntropyKey,
	remaining *uint32,
) error {
	for {
		r, ok := p.pop()
		if !ok {
			return nil
		}
		for _, d := range geom.Directions {
			neighbor, ok := wrap.Normalize(r.coord.Add(d.Coord()), w.Size())
			if !ok {
				continue
			}
			cell := w.Get(neighbor)
			for _, q := range stats.CompatiblePatterns(r.pid, d) {
				outcome := cell.DecrementSupport(q, d, stats)
				switch outcome {
				case wave.NoChange:
					continue
				case wave.RemovedWeighted:
					key, _ := cell.EntropyKey()
					if existing, ok := entropyChanges[neighbor]; !ok || key.Less(existing) {
						entropyChanges[neighbor] = key
					}
				case wave.Finalized:
					*remaining--
					delete(entropyChanges, neighbor)
				case wave.SoftContradiction:
					delete(entropyChanges, neighbor)
				case wave.HardContradiction:
					return ErrContradiction
				}
				p.enqueue(neighbor, q)
			}
		}
	}
}
