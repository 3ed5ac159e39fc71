// Package locality finds spatial neighbors of particles under periodic
// boundary conditions.
//
// CellList buckets particles into a grid of cells sized from the box
// geometry, so a neighbor query only touches the cells that can contain
// matches. NearestNeighbors builds on it to produce fixed-length
// nearest-neighbor lists using minimum-image distances, expanding its
// search radius when a cutoff alone cannot satisfy the requested count.
//
// Both types are rebuilt-per-frame structures: construct once per box and
// cutoff, call Compute (or Assign) for every new set of positions.
package locality
