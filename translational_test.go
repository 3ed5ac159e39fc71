package freud

import (
	"context"
	"math/cmplx"
	"testing"

	v3 "github.com/deadsy/sdfx/vec/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ernie2k/freud/box"
	"github.com/ernie2k/freud/testutil"
)

func TestNewTranslational(t *testing.T) {
	tr, err := NewTranslational(2.0, WithNeighbors(4))
	require.NoError(t, err)
	assert.Equal(t, 4, tr.Neighbors())

	_, err = NewTranslational(-1)
	require.ErrorIs(t, err, ErrInvalidConfiguration)
}

func TestTranslationalSymmetricCancels(t *testing.T) {
	ctx := context.Background()

	t.Run("square lattice", func(t *testing.T) {
		b, points := testutil.SquareLattice(6, 6, 1.0)

		tr, err := NewTranslational(1.5, WithNeighbors(4))
		require.NoError(t, err)
		require.NoError(t, tr.Compute(ctx, b, points))

		for i, p := range tr.OrderParameters() {
			assert.InDelta(t, 0.0, cmplx.Abs(p), 1e-9, "particle %d", i)
		}
	})

	t.Run("hexagon center", func(t *testing.T) {
		points := append([]v3.Vec{{}}, testutil.Ring(v3.Vec{}, 1.5, 6, 0)...)

		tr, err := NewTranslational(2.0)
		require.NoError(t, err)
		require.NoError(t, tr.Compute(ctx, box.Square(10), points))

		center := tr.OrderParameters()[0]
		assert.InDelta(t, 0.0, cmplx.Abs(center), 1e-9)
	})
}

func TestTranslationalPair(t *testing.T) {
	points := []v3.Vec{
		{},
		{X: 1, Y: 0.5},
	}

	tr, err := NewTranslational(2.0, WithNeighbors(1))
	require.NoError(t, err)
	require.NoError(t, tr.Compute(context.Background(), box.Cube(10), points))

	out := tr.OrderParameters()
	require.Len(t, out, 2)
	assert.InDelta(t, 1.0, real(out[0]), 1e-12)
	assert.InDelta(t, 0.5, imag(out[0]), 1e-12)
	assert.InDelta(t, -1.0, real(out[1]), 1e-12)
	assert.InDelta(t, -0.5, imag(out[1]), 1e-12)
}

func TestTranslationalLifecycle(t *testing.T) {
	tr, err := NewTranslational(2.0)
	require.NoError(t, err)

	require.NoError(t, tr.UpdateBox(box.Cube(10)))
	env := tr.env
	require.NoError(t, tr.UpdateBox(box.Cube(10)))
	assert.Same(t, env, tr.env)

	require.ErrorIs(t, tr.UpdateBox(box.Cube(2)), ErrInvalidConfiguration)
	assert.Same(t, env, tr.env)
}
