package overlap

import "errors"

var (
	ErrInvalidPatternSize = errors.New("overlap: pattern size must be positive in both dimensions")
	ErrNoOrientations     = errors.New("overlap: at least one orientation must be given")
)
