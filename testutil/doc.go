// Package testutil provides testing utilities for the order-parameter
// engines.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded random source, generators for boxes and particle
// configurations, and exact ground-truth neighbor lists.
//
// # Random Configurations
//
//	rng := testutil.NewRNG(seed)
//	points := rng.Points(box.Cube(10), 500) // uniform over the box
//
// # Reference Configurations
//
//	b, points := testutil.TriangularLattice(8, 8, 1.0) // |psi6| = 1 everywhere
//	hexagon := testutil.Ring(center, 1.5, 6, 0)
//
// # Exact Neighbors (Ground Truth)
//
//	ids := testutil.BruteForceNeighbors(b, points, i, 6)
package testutil
