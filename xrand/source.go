package xrand

import "math/bits"

// Source is the uniform-integer generator the solver consumes: one draw
// of Uint32 per call, and one call of UintN per weighted-pattern sample.
// Any seedable implementation works; Counter is the one this module
// ships.
type Source interface {
	// Uint32 returns the next uniformly-distributed 32-bit value.
	Uint32() uint32
	// UintN returns a value uniformly distributed in [0, n). n must be > 0.
	UintN(n uint32) uint32
}

// xxhash64 is an unrolled xxhash that produces the same output as xxh3;
// it is the mixing step every draw below is built on.
func xxhash64(v, seed uint64) uint64 {
	x := v ^ (0x1cad21f72c81017c ^ 0xdb979083e96dd4de) + seed
	x ^= bits.RotateLeft64(x, 49) ^ bits.RotateLeft64(x, 24)
	x *= 0x9fb21c651e98df25
	x ^= (x >> 35) + 4
	x *= 0x9fb21c651e98df25
	x ^= (x >> 28)
	return x
}

// Counter is a deterministic Source: it hashes an incrementing counter
// together with a fixed seed, so two Counters constructed with the same
// seed draw identical sequences.
type Counter struct {
	seed    uint32
	counter uint64
}

// NewCounter returns a Counter seeded with seed.
func NewCounter(seed uint32) *Counter {
	return &Counter{seed: seed}
}

// Uint32 implements Source.
func (c *Counter) Uint32() uint32 {
	h := xxhash64(c.counter, uint64(c.seed))
	c.counter++
	return uint32(h >> 32)
}

// UintN implements Source.
func (c *Counter) UintN(n uint32) uint32 {
	if n == 0 {
		panic("xrand: UintN requires n > 0")
	}
	return c.Uint32() % n
}
