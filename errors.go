package freud

import (
	"errors"
	"fmt"

	"github.com/ernie2k/freud/box"
	"github.com/ernie2k/freud/locality"
)

var (
	// ErrInvalidConfiguration is returned when an engine is constructed or
	// updated with parameters that cannot produce a valid computation, such
	// as a cutoff radius that does not fit inside the box.
	ErrInvalidConfiguration = errors.New("invalid configuration")
)

// checkBox validates a cutoff radius against a box without touching any
// engine state.
func checkBox(b box.Box, rmax float64) error {
	if err := locality.CheckCutoff(b, rmax); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfiguration, err)
	}
	return nil
}

func validateOptions(rmax float64, o options) error {
	if rmax <= 0 {
		return fmt.Errorf("%w: cutoff radius must be positive, got %g", ErrInvalidConfiguration, rmax)
	}
	if o.symmetry < 1 {
		return fmt.Errorf("%w: symmetry order must be at least 1, got %d", ErrInvalidConfiguration, o.symmetry)
	}
	if o.neighbors < 1 {
		return fmt.Errorf("%w: neighbor count must be at least 1, got %d", ErrInvalidConfiguration, o.neighbors)
	}
	if o.workers < 0 {
		return fmt.Errorf("%w: worker count cannot be negative, got %d", ErrInvalidConfiguration, o.workers)
	}
	return nil
}
