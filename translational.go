package freud

import (
	"context"

	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/ernie2k/freud/box"
)

// Translational computes the per-particle translational order parameter:
// the average minimum-image bond vector to the nearest neighbors, encoded
// as the complex number delta.x + i*delta.y. Symmetric environments cancel
// toward 0; a particle displaced from the center of its cage picks up a
// nonzero value pointing along the net displacement.
//
// The lifecycle matches Hexatic: the box and neighbor finder are cached
// across computes and rebuilt on box change. The symmetry option has no
// effect on this kernel; the neighbor count works the same way.
//
// A Translational instance is not safe for concurrent use.
type Translational struct {
	engine
}

// NewTranslational creates an engine with the given cutoff radius. The
// neighbor count defaults like in NewHexatic.
func NewTranslational(rmax float64, optFns ...Option) (*Translational, error) {
	e, err := newEngine(rmax, optFns)
	if err != nil {
		return nil, err
	}
	return &Translational{engine: e}, nil
}

// UpdateBox validates b and rebuilds the neighbor finder when the box
// geometry changed. Feeding the cached box again is a no-op. On error,
// engine state is untouched and previous results stay valid.
func (tr *Translational) UpdateBox(b box.Box) error {
	return tr.updateBox(context.Background(), b)
}

// Compute updates the box, rebuilds the neighbor lists for points, and
// evaluates the order parameter for every particle. Results are read back
// with OrderParameters.
func (tr *Translational) Compute(ctx context.Context, b box.Box, points []v3.Vec) error {
	return tr.compute(ctx, b, points, func(delta v3.Vec) complex128 {
		return complex(delta.X, delta.Y)
	})
}
