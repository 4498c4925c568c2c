// Package xrand provides the uniform-integer source the solver consumes.
// Any seedable generator satisfying Source works; Counter is a small
// xxhash-based implementation that draws a fresh uniformly-distributed
// value on every call and reproduces the same sequence for a given seed.
package xrand
