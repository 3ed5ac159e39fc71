package freud

import (
	"context"
	"math"
	"math/cmplx"

	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/ernie2k/freud/box"
)

// DefaultSymmetry is the symmetry order engines use unless configured
// otherwise: six-fold, the hexatic case.
const DefaultSymmetry = 6

// Hexatic computes the per-particle k-fold bond-orientational order
// parameter
//
//	psi_k(i) = (1/n) * sum over neighbors j of exp(i k theta_ij)
//
// where theta_ij is the in-plane angle of the minimum-image bond vector
// from particle i to neighbor j, k is the symmetry order, and n is the
// neighbor count. |psi_k| approaches 1 when the local environment has
// k-fold orientational order and 0 when it is disordered.
//
// The angle is measured in the xy plane; in 3D boxes the z component still
// participates in neighbor distances and the coincidence guard.
//
// A Hexatic instance is not safe for concurrent use.
type Hexatic struct {
	engine
}

// NewHexatic creates an engine with the given cutoff radius. The symmetry
// order defaults to DefaultSymmetry and the neighbor count follows the
// symmetry order; see WithSymmetry and WithNeighbors to decouple them.
//
// No box is cached at construction: the first UpdateBox (or Compute)
// builds the neighbor finder.
func NewHexatic(rmax float64, optFns ...Option) (*Hexatic, error) {
	e, err := newEngine(rmax, optFns)
	if err != nil {
		return nil, err
	}
	return &Hexatic{engine: e}, nil
}

// UpdateBox validates b and rebuilds the neighbor finder when the box
// geometry changed. Feeding the cached box again is a no-op. On error,
// engine state is untouched and previous results stay valid.
func (h *Hexatic) UpdateBox(b box.Box) error {
	return h.updateBox(context.Background(), b)
}

// Compute updates the box, rebuilds the neighbor lists for points, and
// evaluates the order parameter for every particle. Results are read back
// with OrderParameters.
//
// Positions are origin-centered; coordinates outside the box are wrapped.
// The output buffer is reallocated only when the particle count changes.
// The context is consulted between work chunks only.
func (h *Hexatic) Compute(ctx context.Context, b box.Box, points []v3.Vec) error {
	k := float64(h.symmetry)
	return h.compute(ctx, b, points, func(delta v3.Vec) complex128 {
		theta := math.Atan2(delta.Y, delta.X)
		return cmplx.Exp(complex(0, k*theta))
	})
}
