package freud

import (
	"context"
	"time"

	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/ernie2k/freud/box"
	"github.com/ernie2k/freud/internal/parallel"
)

// coincidentRsq is the squared-distance floor below which a bond has no
// meaningful direction and is skipped. Neighbor slots padded with the
// particle's own index land here too.
const coincidentRsq = 1e-6

// engine carries the lifecycle shared by the order-parameter kernels: the
// validated configuration, the cached neighborhood, and the output buffer.
type engine struct {
	rmax      float64
	symmetry  int
	neighbors int
	workers   int

	logger  *Logger
	metrics MetricsCollector

	env *neighborhood
	out []complex128
	np  int
}

func newEngine(rmax float64, optFns []Option) (engine, error) {
	o := applyOptions(optFns)
	if err := validateOptions(rmax, o); err != nil {
		return engine{}, err
	}
	return engine{
		rmax:      rmax,
		symmetry:  o.symmetry,
		neighbors: o.neighbors,
		workers:   o.workers,
		logger:    o.logger,
		metrics:   o.metricsCollector,
	}, nil
}

// updateBox validates b, then rebuilds the neighborhood when the box
// geometry changed. An identical box is a no-op. On error nothing is
// modified and previous results stay valid.
func (e *engine) updateBox(ctx context.Context, b box.Box) error {
	rebuilt := false
	err := checkBox(b, e.rmax)
	if err == nil && (e.env == nil || !e.env.box.Equal(b)) {
		var env *neighborhood
		if env, err = newNeighborhood(b, e.rmax, e.neighbors, e.workers); err == nil {
			e.env = env
			rebuilt = true
		}
	}
	e.metrics.RecordBoxUpdate(rebuilt, err)
	e.logger.LogUpdateBox(ctx, b, rebuilt, err)
	return err
}

// compute runs one full pass: box update, neighbor pass, then the
// per-particle kernel. bond maps a minimum-image bond vector to its
// contribution; the accumulated sum is divided by the configured neighbor
// count.
func (e *engine) compute(ctx context.Context, b box.Box, points []v3.Vec, bond func(delta v3.Vec) complex128) error {
	start := time.Now()

	err := e.updateBox(ctx, b)
	if err == nil {
		err = e.run(ctx, points, bond)
	}

	elapsed := time.Since(start)
	e.metrics.RecordCompute(len(points), elapsed, err)
	e.logger.LogCompute(ctx, len(points), elapsed, err)
	return err
}

func (e *engine) run(ctx context.Context, points []v3.Vec, bond func(delta v3.Vec) complex128) error {
	nn := e.env.nn
	if err := nn.Compute(ctx, points); err != nil {
		return err
	}

	if len(points) != e.np || e.out == nil {
		e.out = make([]complex128, len(points))
	}
	e.np = len(points)

	wrap := e.env.box
	div := complex(float64(e.neighbors), 0)
	return parallel.For(ctx, len(points), e.workers, func(begin, end int) {
		for i := begin; i < end; i++ {
			p := points[i]
			var acc complex128
			for _, j := range nn.Neighbors(i) {
				delta := wrap.Wrap(points[j].Sub(p))
				if delta.Dot(delta) <= coincidentRsq {
					continue
				}
				acc += bond(delta)
			}
			e.out[i] = acc / div
		}
	})
}

// Box returns the box of the last successful update. The zero Box is
// returned before the first update.
func (e *engine) Box() box.Box {
	if e.env == nil {
		return box.Box{}
	}
	return e.env.box
}

// OrderParameters returns one complex value per particle from the last
// compute pass, nil before the first. The slice is the engine's live
// buffer: it stays valid until the next compute and callers must not
// modify it.
func (e *engine) OrderParameters() []complex128 {
	return e.out
}

// Symmetry returns the configured symmetry order.
func (e *engine) Symmetry() int { return e.symmetry }

// Neighbors returns the configured neighbor count.
func (e *engine) Neighbors() int { return e.neighbors }

// RMax returns the cutoff radius neighbor searches start from.
func (e *engine) RMax() float64 { return e.rmax }
