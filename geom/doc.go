// Package geom provides the coordinate and grid primitives that the solver
// is built on: a fixed-size toroidal 2D grid, the four cardinal directions,
// the eight symmetries of the square, and the four wrap policies that turn
// a possibly out-of-bounds coordinate into an in-bounds one (or nothing).
//
// Nothing here knows about patterns or waves; it is the leaf layer every
// other package in this module depends on.
package geom
