package testutil

import (
	"math"
	"math/rand"
	"sort"
	"sync"

	v3 "github.com/deadsy/sdfx/vec/v3"
	"gonum.org/v1/gonum/floats"

	"github.com/ernie2k/freud/box"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// Points generates n positions uniformly distributed over the box, tilt
// included. Two-dimensional boxes get z = 0.
func (r *RNG) Points(b box.Box, n int) []v3.Vec {
	r.mu.Lock()
	defer r.mu.Unlock()

	points := make([]v3.Vec, n)
	for i := range points {
		points[i] = b.Coordinates(v3.Vec{
			X: r.rand.Float64(),
			Y: r.rand.Float64(),
			Z: r.rand.Float64(),
		})
	}
	return points
}

// Ring places n points evenly around center at the given radius in the xy
// plane, starting at angle phase. The z coordinate follows center.
func Ring(center v3.Vec, radius float64, n int, phase float64) []v3.Vec {
	angles := floats.Span(make([]float64, n+1), phase, phase+2*math.Pi)

	points := make([]v3.Vec, n)
	for i := range points {
		points[i] = v3.Vec{
			X: center.X + radius*math.Cos(angles[i]),
			Y: center.Y + radius*math.Sin(angles[i]),
			Z: center.Z,
		}
	}
	return points
}

// TriangularLattice builds a periodic two-dimensional triangular lattice
// with the given spacing: every particle has six neighbors at exactly the
// spacing distance. ny is rounded up to even so the row offset pattern
// wraps cleanly.
func TriangularLattice(nx, ny int, spacing float64) (box.Box, []v3.Vec) {
	if ny%2 != 0 {
		ny++
	}
	h := spacing * math.Sqrt(3) / 2
	lx := float64(nx) * spacing
	ly := float64(ny) * h
	b := box.New2D(lx, ly)

	points := make([]v3.Vec, 0, nx*ny)
	for row := 0; row < ny; row++ {
		offset := 0.0
		if row%2 == 1 {
			offset = 0.5
		}
		for col := 0; col < nx; col++ {
			points = append(points, v3.Vec{
				X: (float64(col)+0.5+offset)*spacing - lx/2,
				Y: (float64(row)+0.5)*h - ly/2,
			})
		}
	}
	return b, points
}

// SquareLattice builds a periodic two-dimensional square lattice with the
// given spacing: every particle has four neighbors at exactly the spacing
// distance.
func SquareLattice(nx, ny int, spacing float64) (box.Box, []v3.Vec) {
	lx := float64(nx) * spacing
	ly := float64(ny) * spacing
	b := box.New2D(lx, ly)

	points := make([]v3.Vec, 0, nx*ny)
	for row := 0; row < ny; row++ {
		for col := 0; col < nx; col++ {
			points = append(points, v3.Vec{
				X: (float64(col)+0.5)*spacing - lx/2,
				Y: (float64(row)+0.5)*spacing - ly/2,
			})
		}
	}
	return b, points
}

// BruteForceNeighbors performs an exact nearest-neighbor search for ground
// truth: the k nearest minimum-image neighbors of particle i, sorted by
// distance with ties broken by index, padded with i itself when fewer
// exist.
func BruteForceNeighbors(b box.Box, points []v3.Vec, i, k int) []int32 {
	type result struct {
		index int32
		rsq   float64
	}

	results := make([]result, 0, len(points)-1)
	for j, q := range points {
		if j == i {
			continue
		}
		d := b.Wrap(q.Sub(points[i]))
		results = append(results, result{index: int32(j), rsq: d.Dot(d)})
	}

	sort.Slice(results, func(a, b int) bool {
		if results[a].rsq != results[b].rsq {
			return results[a].rsq < results[b].rsq
		}
		return results[a].index < results[b].index
	})

	out := make([]int32, k)
	for s := range out {
		if s < len(results) {
			out[s] = results[s].index
		} else {
			out[s] = int32(i)
		}
	}
	return out
}
