package freud

import (
	"fmt"

	"github.com/ernie2k/freud/box"
	"github.com/ernie2k/freud/locality"
)

// neighborhood bundles the box an engine last accepted with the neighbor
// finder built for it. Engines swap the whole value on box change, so a
// half-updated pairing is never observable.
type neighborhood struct {
	box box.Box
	nn  *locality.NearestNeighbors
}

func newNeighborhood(b box.Box, rmax float64, k, workers int) (*neighborhood, error) {
	nn, err := locality.NewNearestNeighbors(b, rmax, k, func(o *locality.Options) {
		o.Workers = workers
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfiguration, err)
	}
	return &neighborhood{box: b, nn: nn}, nil
}
