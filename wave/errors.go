package wave

import "errors"

var (
	// ErrNoCompatiblePatterns is returned by ChosenPatternID when a cell has
	// zero admitted patterns (a contradiction the caller observed directly
	// rather than through propagation).
	ErrNoCompatiblePatterns = errors.New("wave: cell has no compatible patterns")
	// ErrMultipleCompatiblePatterns is returned by ChosenPatternID when a
	// cell has more than one admitted pattern; the solve is not yet
	// (or will never be) fully collapsed at that cell.
	ErrMultipleCompatiblePatterns = errors.New("wave: cell has more than one compatible pattern")
)
