// Package freud computes per-particle order parameters for particle
// simulations with periodic boundary conditions.
//
// The central tool is the bond-orientational (hexatic) order parameter: for
// each particle, the bond angles to its nearest neighbors are folded into a
// single complex number whose magnitude approaches 1 when the local
// environment has the chosen rotational symmetry and 0 when it is
// disordered.
//
// # Quick Start
//
//	engine, _ := freud.NewHexatic(2.0)
//
//	b := box.Square(10)
//	points := []v3.Vec{ ... }  // origin-centered positions
//
//	ctx := context.Background()
//	if err := engine.Compute(ctx, b, points); err != nil {
//	    log.Fatal(err)
//	}
//	psi := engine.OrderParameters()  // one complex value per particle
//
// The symmetry order and the neighbor count are independent knobs:
//
//	// Four-fold symmetry scored against the four nearest neighbors.
//	engine, _ := freud.NewHexatic(2.0, freud.WithSymmetry(4), freud.WithNeighbors(4))
//
// Engines cache the box and the neighbor finder built for it; feeding the
// same box to Compute again reuses both, while a changed box rebuilds them
// before the pass runs.
//
// # Packages
//
//   - box: the periodic (triclinic) simulation cell and minimum-image wrapping
//   - locality: cell lists and fixed-k nearest-neighbor queries
//   - testutil: seeded generators for boxes, lattices and configurations
//
// Engines are single-writer: internal computation is parallel, but calls
// into one engine must not overlap.
package freud
