package wfc

import "errors"

var (
	// ErrContradiction is returned by Step/Collapse when propagation
	// removes the last admitted pattern from some cell. The Wave is left
	// in an undefined intermediate state; RunBorrow/RunOwn reset it
	// automatically before returning this error.
	ErrContradiction = errors.New("wfc: contradiction")

	// ErrForbidWouldContradict is returned by ForbidPattern when the
	// requested pattern is the cell's sole remaining admission: forbidding
	// it would be an immediate contradiction, so the call is rejected
	// without mutating state.
	ErrForbidWouldContradict = errors.New("wfc: forbidding this pattern would immediately contradict the cell")
)
