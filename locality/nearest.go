package locality

import (
	"context"
	"errors"
	"fmt"
	"sort"

	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/ernie2k/freud/box"
	"github.com/ernie2k/freud/internal/parallel"
)

// ErrCutoffTooLarge is returned when a cutoff radius does not fit inside
// the box under the minimum image convention.
var ErrCutoffTooLarge = errors.New("cutoff radius must be smaller than half the periodic box extents")

// expandFactor grows the search radius when a cutoff sweep finds fewer
// neighbors than requested.
const expandFactor = 1.4

// CheckCutoff verifies that rmax fits inside the box: minimum-image
// distances are only well defined below half of every periodic extent. The
// z extent is exempt for two-dimensional boxes.
func CheckCutoff(b box.Box, rmax float64) error {
	if rmax >= b.Lx/2 || rmax >= b.Ly/2 || (!b.Is2D() && rmax >= b.Lz/2) {
		return fmt.Errorf("%w: rmax %g, extents (%g, %g, %g)", ErrCutoffTooLarge, rmax, b.Lx, b.Ly, b.Lz)
	}
	return nil
}

// Options configures a NearestNeighbors finder.
type Options struct {
	// Workers bounds the number of goroutines Compute may use.
	// Zero means GOMAXPROCS.
	Workers int
}

// DefaultOptions holds the defaults applied before option functions run.
var DefaultOptions = Options{
	Workers: 0,
}

// NearestNeighbors produces a fixed-length nearest-neighbor list for every
// particle, using minimum-image distances in a periodic box.
//
// The finder is bound to one box and cutoff for its lifetime; call Compute
// for each new set of positions. Compute runs queries for distinct
// particles in parallel. A NearestNeighbors instance is not safe for
// concurrent use.
type NearestNeighbors struct {
	box     box.Box
	rmax    float64
	k       int
	workers int

	cells *CellList
	list  []int32
	np    int
}

// NewNearestNeighbors creates a finder that reports the k nearest
// neighbors of each particle. rmax is the cutoff the initial search sweep
// uses; particles with fewer than k neighbors inside it are completed by
// widening sweeps, so rmax is a performance hint, not a hard limit.
func NewNearestNeighbors(b box.Box, rmax float64, k int, optFns ...func(o *Options)) (*NearestNeighbors, error) {
	opts := DefaultOptions
	for _, fn := range optFns {
		fn(&opts)
	}

	if k < 1 {
		return nil, fmt.Errorf("neighbor count must be at least 1, got %d", k)
	}
	if rmax <= 0 {
		return nil, fmt.Errorf("cutoff radius must be positive, got %g", rmax)
	}
	if err := CheckCutoff(b, rmax); err != nil {
		return nil, err
	}

	cells, err := NewCellList(b, rmax)
	if err != nil {
		return nil, err
	}

	return &NearestNeighbors{
		box:     b,
		rmax:    rmax,
		k:       k,
		workers: opts.Workers,
		cells:   cells,
	}, nil
}

// Compute rebuilds the neighbor list for a new set of positions. The
// context is only consulted between work chunks.
func (nn *NearestNeighbors) Compute(ctx context.Context, points []v3.Vec) error {
	nn.cells.Assign(points)

	if n := len(points) * nn.k; n != len(nn.list) {
		nn.list = make([]int32, n)
	}

	err := parallel.For(ctx, len(points), nn.workers, func(begin, end int) {
		var cand []candidate
		for i := begin; i < end; i++ {
			cand = nn.collect(i, points, cand[:0])
			nn.fill(i, cand)
		}
	})
	if err != nil {
		return err
	}

	nn.np = len(points)
	return nil
}

// Neighbors returns the neighbor indices of particle i, sorted ascending
// by distance with ties broken by index. Slots that could not be filled
// hold i itself; consumers treat zero-length bonds as absent. The returned
// slice is a view; callers must not modify it.
func (nn *NearestNeighbors) Neighbors(i int) []int32 {
	return nn.list[i*nn.k : (i+1)*nn.k : (i+1)*nn.k]
}

// K returns the configured neighbor count.
func (nn *NearestNeighbors) K() int { return nn.k }

// RMax returns the cutoff radius of the initial search sweep.
func (nn *NearestNeighbors) RMax() float64 { return nn.rmax }

// Box returns the box the finder was built for.
func (nn *NearestNeighbors) Box() box.Box { return nn.box }

// NumPoints returns the particle count of the last Compute.
func (nn *NearestNeighbors) NumPoints() int { return nn.np }

type candidate struct {
	index int32
	rsq   float64
}

// collect gathers every particle within the current search radius of
// particle i, widening the radius until k candidates exist or every other
// particle has been admitted.
func (nn *NearestNeighbors) collect(i int, points []v3.Vec, cand []candidate) []candidate {
	p := points[i]
	cx, cy, cz := nn.cells.coords(p)
	r := nn.rmax
	for {
		cand = cand[:0]
		rsq := r * r
		sx, sy, sz := nn.cells.spans(r)
		nn.cells.forBlock(cx, cy, cz, sx, sy, sz, func(bucket []int32) {
			for _, j := range bucket {
				if int(j) == i {
					continue
				}
				d := nn.box.Wrap(points[j].Sub(p))
				if drsq := d.Dot(d); drsq <= rsq {
					cand = append(cand, candidate{index: j, rsq: drsq})
				}
			}
		})
		if len(cand) >= nn.k {
			return cand
		}
		if nn.cells.covers(sx, sy, sz) && len(cand) == len(points)-1 {
			return cand
		}
		r *= expandFactor
	}
}

// fill sorts the candidates and writes the row for particle i, padding
// short rows with i itself.
func (nn *NearestNeighbors) fill(i int, cand []candidate) {
	sort.Slice(cand, func(a, b int) bool {
		if cand[a].rsq != cand[b].rsq {
			return cand[a].rsq < cand[b].rsq
		}
		return cand[a].index < cand[b].index
	})

	row := nn.list[i*nn.k : (i+1)*nn.k]
	for s := range row {
		if s < len(cand) {
			row[s] = cand[s].index
		} else {
			row[s] = int32(i)
		}
	}
}
