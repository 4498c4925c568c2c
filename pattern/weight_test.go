package pattern

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewWeight(t *testing.T) {
	w, err := NewWeight(4)
	assert.NoError(t, err)
	assert.Equal(t, uint32(4), w.Value())
	assert.InDelta(t, 8.0, w.Log(), 1e-4) // 4*log2(4) = 4*2 = 8
}

func TestNewWeightZeroErrors(t *testing.T) {
	_, err := NewWeight(0)
	assert.ErrorIs(t, err, ErrZeroWeight)
}
