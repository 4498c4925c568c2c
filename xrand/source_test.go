package xrand

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCounterDeterministic(t *testing.T) {
	a := NewCounter(42)
	b := NewCounter(42)
	for i := 0; i < 16; i++ {
		assert.Equal(t, a.Uint32(), b.Uint32())
	}
}

func TestCounterDifferentSeedsDiverge(t *testing.T) {
	a := NewCounter(1)
	b := NewCounter(2)
	same := true
	for i := 0; i < 8; i++ {
		if a.Uint32() != b.Uint32() {
			same = false
		}
	}
	assert.False(t, same)
}

func TestCounterUintNInRange(t *testing.T) {
	c := NewCounter(7)
	for i := 0; i < 100; i++ {
		v := c.UintN(5)
		assert.Less(t, v, uint32(5))
	}
}

func TestCounterUintNPanicsOnZero(t *testing.T) {
	c := NewCounter(1)
	assert.Panics(t, func() { c.UintN(0) })
}
