// Package wave holds the mutable per-solve state: Cell, the superposition
// of patterns still admissible at one output position, and Wave, the grid
// of cells a solve runs against. Everything here is exclusively owned by
// a single solve; GlobalStats, which a Cell references on every mutating
// call, is immutable and safely shared.
package wave
