package wfc

import (
	"errors"

	"github.com/wavesynth/wfc/wave"
	"github.com/wavesynth/wfc/xrand"
)

// RetryBorrow decides, on a Collapse contradiction, whether to reset the
// run and try again, and how many times.
type RetryBorrow interface {
	Retry(run *RunBorrow, rng xrand.Source) error
}

// Forever retries on every contradiction, forever. It never returns an
// error other than one Collapse itself could not recover from by
// resetting.
type Forever struct{}

// Retry implements RetryBorrow.
func (Forever) Retry(run *RunBorrow, rng xrand.Source) error {
	for {
		err := run.Collapse(rng)
		if err == nil {
			return nil
		}
		if !errors.Is(err, ErrContradiction) {
			return err
		}
	}
}

// NumTimes retries up to Remaining times, then surfaces the final
// contradiction.
type NumTimes struct {
	Remaining int
}

// Retry implements RetryBorrow.
func (n *NumTimes) Retry(run *RunBorrow, rng xrand.Source) error {
	for {
		err := run.Collapse(rng)
		if err == nil {
			return nil
		}
		if !errors.Is(err, ErrContradiction) {
			return err
		}
		if n.Remaining <= 0 {
			return err
		}
		n.Remaining--
	}
}

// CollapseParNumTimes spawns up to attempts independent RunOwn instances,
// each built by newRun from its own rng seeded off rng, and runs them to
// completion concurrently. It returns the first successful Wave; the
// other attempts' results are discarded. If every attempt contradicts,
// it returns the last observed error.
//
// Interleaving is non-deterministic by construction (goroutine scheduling
// decides which attempt finishes first); callers who need reproducible
// output must use NumTimes instead.
func CollapseParNumTimes(
	attempts int,
	newRun func(rng xrand.Source) *RunOwn,
	rng xrand.Source,
) (*wave.Wave, error) {
	if attempts < 1 {
		attempts = 1
	}

	type outcome struct {
		wave *wave.Wave
		err  error
	}
	results := make(chan outcome, attempts)
	for i := 0; i < attempts; i++ {
		childRNG := xrand.NewCounter(rng.Uint32())
		go func(rng xrand.Source) {
			run := newRun(rng)
			err := run.Collapse(rng)
			results <- outcome{wave: run.Wave(), err: err}
		}(childRNG)
	}

	var lastErr error
	for i := 0; i < attempts; i++ {
		res := <-results
		if res.err == nil {
			return res.wave, nil
		}
		lastErr = res.err
	}
	return nil, lastErr
}
