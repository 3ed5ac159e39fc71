package locality

import (
	"context"
	"testing"

	v3 "github.com/deadsy/sdfx/vec/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ernie2k/freud/box"
	"github.com/ernie2k/freud/testutil"
)

func TestCheckCutoff(t *testing.T) {
	tests := []struct {
		name    string
		b       box.Box
		rmax    float64
		wantErr bool
	}{
		{name: "fits", b: box.Cube(10), rmax: 2, wantErr: false},
		{name: "exactly half is too large", b: box.Cube(10), rmax: 5, wantErr: true},
		{name: "exceeds x", b: box.New(3, 10, 10), rmax: 2, wantErr: true},
		{name: "exceeds y", b: box.New(10, 3, 10), rmax: 2, wantErr: true},
		{name: "exceeds z", b: box.New(10, 10, 3), rmax: 2, wantErr: true},
		{name: "2D exempts z", b: box.Square(10), rmax: 2, wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckCutoff(tt.b, tt.rmax)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrCutoffTooLarge)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestNewNearestNeighborsValidation(t *testing.T) {
	_, err := NewNearestNeighbors(box.Cube(10), 2, 0)
	require.Error(t, err)

	_, err = NewNearestNeighbors(box.Cube(10), 0, 6)
	require.Error(t, err)

	_, err = NewNearestNeighbors(box.Cube(3), 2, 6)
	require.ErrorIs(t, err, ErrCutoffTooLarge)

	nn, err := NewNearestNeighbors(box.Cube(10), 2, 6)
	require.NoError(t, err)
	assert.Equal(t, 6, nn.K())
	assert.Equal(t, 2.0, nn.RMax())
	assert.True(t, nn.Box().Equal(box.Cube(10)))
}

func TestNearestNeighborsMatchesBruteForce(t *testing.T) {
	rng := testutil.NewRNG(7)

	tests := []struct {
		name string
		b    box.Box
		n    int
	}{
		{name: "cube", b: box.Cube(10), n: 120},
		{name: "orthorhombic", b: box.New(8, 12, 16), n: 150},
		{name: "tilted", b: box.NewTilted(10, 10, 10, 0.4, -0.3, 0.2), n: 100},
		{name: "square 2D", b: box.Square(12), n: 140},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			points := rng.Points(tt.b, tt.n)

			nn, err := NewNearestNeighbors(tt.b, 2.0, 6)
			require.NoError(t, err)
			require.NoError(t, nn.Compute(context.Background(), points))
			require.Equal(t, tt.n, nn.NumPoints())

			for i := range points {
				want := testutil.BruteForceNeighbors(tt.b, points, i, 6)
				assert.Equal(t, want, nn.Neighbors(i), "particle %d", i)
			}
		})
	}
}

func TestNearestNeighborsPadding(t *testing.T) {
	points := []v3.Vec{
		{X: 0},
		{X: 1},
		{X: 2.5},
	}

	nn, err := NewNearestNeighbors(box.Cube(10), 2, 5)
	require.NoError(t, err)
	require.NoError(t, nn.Compute(context.Background(), points))

	assert.Equal(t, []int32{1, 2, 0, 0, 0}, nn.Neighbors(0))
	assert.Equal(t, []int32{0, 2, 1, 1, 1}, nn.Neighbors(1))
	assert.Equal(t, []int32{1, 0, 2, 2, 2}, nn.Neighbors(2))
}

func TestNearestNeighborsExpansion(t *testing.T) {
	// Nothing inside the cutoff; the sweep must widen until the ring at
	// radius 3 fills the list.
	points := append([]v3.Vec{{}}, testutil.Ring(v3.Vec{}, 3, 6, 0.3)...)

	nn, err := NewNearestNeighbors(box.Cube(10), 1, 6)
	require.NoError(t, err)
	require.NoError(t, nn.Compute(context.Background(), points))

	assert.ElementsMatch(t, []int32{1, 2, 3, 4, 5, 6}, nn.Neighbors(0))
}

func TestNearestNeighborsWrapAcrossBoundary(t *testing.T) {
	// Two particles hugging opposite faces are nearest neighbors through
	// the boundary, not across the box interior.
	points := []v3.Vec{
		{X: -4.9},
		{X: 4.9},
		{X: 0},
	}

	nn, err := NewNearestNeighbors(box.Cube(10), 1, 1)
	require.NoError(t, err)
	require.NoError(t, nn.Compute(context.Background(), points))

	assert.Equal(t, []int32{1}, nn.Neighbors(0))
	assert.Equal(t, []int32{0}, nn.Neighbors(1))
}

func TestNearestNeighborsRecompute(t *testing.T) {
	rng := testutil.NewRNG(9)
	b := box.Cube(10)

	nn, err := NewNearestNeighbors(b, 2, 4)
	require.NoError(t, err)

	first := rng.Points(b, 60)
	require.NoError(t, nn.Compute(context.Background(), first))
	require.Equal(t, 60, nn.NumPoints())

	second := rng.Points(b, 25)
	require.NoError(t, nn.Compute(context.Background(), second))
	require.Equal(t, 25, nn.NumPoints())

	for i := range second {
		want := testutil.BruteForceNeighbors(b, second, i, 4)
		assert.Equal(t, want, nn.Neighbors(i), "particle %d", i)
	}
}

func TestNearestNeighborsCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	b := box.Cube(10)
	nn, err := NewNearestNeighbors(b, 2, 6)
	require.NoError(t, err)

	err = nn.Compute(ctx, testutil.NewRNG(2).Points(b, 50))
	require.ErrorIs(t, err, context.Canceled)
}
