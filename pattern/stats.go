package pattern

import "github.com/wavesynth/wfc/geom"

// GlobalStats is the immutable statistical model a solve runs against: the
// per-pattern weight (if any), the per-direction adjacency-compatibility
// relation, and the aggregates entropy math needs. It never changes once
// built and is safe to share by reference across an entire solve and
// across parallel retries.
type GlobalStats struct {
	weights Table[*Weight]
	compat  Table[geom.DirectionTable[[]ID]]
	// initialSupport[pid][dir] = |compat[pid][opposite(dir)]|, the number
	// of distinct patterns in the neighbor that "vote for" pid from
	// direction dir. Precomputed once so every wave cell's Init can copy
	// it instead of recomputing it.
	initialSupport Table[geom.DirectionTable[uint32]]

	numWeighted uint32
	sumWeight   uint32
	sumWeightLog float32
}

// New builds a GlobalStats from a per-pattern description table. The
// descriptions are consumed; callers should not reuse them.
func New(descriptions Table[Description]) (*GlobalStats, error) {
	if descriptions.Len() == 0 {
		return nil, ErrEmptyTable
	}

	weights := make([]*Weight, descriptions.Len())
	compat := make([]geom.DirectionTable[[]ID], descriptions.Len())
	var numWeighted uint32
	var sumWeight uint32
	var sumWeightLog float32

	for id, desc := range descriptions.Enumerate() {
		compat[id] = desc.AllowedNeighbours
		if desc.Weight == 0 {
			continue
		}
		w, err := NewWeight(desc.Weight)
		if err != nil {
			return nil, err
		}
		weights[id] = &w
		numWeighted++
		sumWeight += w.Value()
		sumWeightLog += w.Log()
	}

	initialSupport := make([]geom.DirectionTable[uint32], descriptions.Len())
	for id := range descriptions.Len() {
		var table geom.DirectionTable[uint32]
		for _, d := range geom.Directions {
			table.Set(d, uint32(len(compat[id].Get(d.Opposite()))))
		}
		initialSupport[id] = table
	}

	return &GlobalStats{
		weights:        NewTable(weights),
		compat:         NewTable(compat),
		initialSupport: NewTable(initialSupport),
		numWeighted:    numWeighted,
		sumWeight:      sumWeight,
		sumWeightLog:   sumWeightLog,
	}, nil
}

// NumPatterns returns the total number of patterns in the table
// (weighted and unweighted).
func (g *GlobalStats) NumPatterns() int {
	return g.weights.Len()
}

// NumWeightedPatterns returns how many patterns carry a weight.
func (g *GlobalStats) NumWeightedPatterns() uint32 {
	return g.numWeighted
}

// SumWeight returns the sum of every weighted pattern's weight.
func (g *GlobalStats) SumWeight() uint32 {
	return g.sumWeight
}

// SumWeightLog returns the sum of every weighted pattern's w*log2(w).
func (g *GlobalStats) SumWeightLog() float32 {
	return g.sumWeightLog
}

// Weight returns the pattern's weight, or nil if it has none.
func (g *GlobalStats) Weight(id ID) *Weight {
	return g.weights.Get(id)
}

// CompatiblePatterns returns the patterns allowed to occupy the cell
// offset by dir from a cell holding id.
func (g *GlobalStats) CompatiblePatterns(id ID, dir geom.Direction) []ID {
	return g.compat.Get(id).Get(dir)
}

// InitialSupport returns the precomputed S0[id]: for each direction, the
// number of distinct patterns in the neighbor voting for id from that
// direction.
func (g *GlobalStats) InitialSupport(id ID) geom.DirectionTable[uint32] {
	return g.initialSupport.Get(id)
}
