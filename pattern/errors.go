package pattern

import "errors"

var (
	// ErrZeroWeight indicates a pattern weight of 0 was supplied; weights
	// are either a positive integer or entirely absent (Description.Weight == 0).
	ErrZeroWeight = errors.New("pattern: weight must be positive")
	// ErrEmptyTable indicates GlobalStats was built from zero patterns.
	ErrEmptyTable = errors.New("pattern: pattern table must not be empty")
)
