package pattern

import "math"

// Weight carries a pattern's occurrence weight and its precomputed
// w*log2(w) term, so entropy math never recomputes a log on the hot path.
type Weight struct {
	weight    uint32
	weightLog float32
}

// NewWeight builds a Weight from a positive occurrence count. It errors
// on 0: a zero-weight pattern is represented by the absence of a Weight
// (Description.Weight == 0), not by a Weight wrapping zero.
func NewWeight(w uint32) (Weight, error) {
	if w == 0 {
		return Weight{}, ErrZeroWeight
	}
	return Weight{
		weight:    w,
		weightLog: float32(w) * float32(math.Log2(float64(w))),
	}, nil
}

// Value returns the occurrence weight.
func (w Weight) Value() uint32 {
	return w.weight
}

// Log returns the precomputed w*log2(w).
func (w Weight) Log() float32 {
	return w.weightLog
}
