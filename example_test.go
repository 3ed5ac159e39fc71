package freud_test

import (
	"context"
	"fmt"
	"log"
	"math/cmplx"

	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/ernie2k/freud"
	"github.com/ernie2k/freud/box"
	"github.com/ernie2k/freud/testutil"
)

// ExampleHexatic scores the center of a perfect hexagon.
func ExampleHexatic() {
	engine, err := freud.NewHexatic(2.0)
	if err != nil {
		log.Fatal(err)
	}

	b := box.Square(10)
	points := append([]v3.Vec{{}}, testutil.Ring(v3.Vec{}, 1.5, 6, 0)...)

	if err := engine.Compute(context.Background(), b, points); err != nil {
		log.Fatal(err)
	}

	psi := engine.OrderParameters()
	fmt.Printf("|psi6| of the center particle: %.2f\n", cmplx.Abs(psi[0]))
	// Output: |psi6| of the center particle: 1.00
}

// ExampleHexatic_squareLattice matches the symmetry order to a four-fold
// environment.
func ExampleHexatic_squareLattice() {
	engine, err := freud.NewHexatic(1.5, freud.WithSymmetry(4))
	if err != nil {
		log.Fatal(err)
	}

	b, points := testutil.SquareLattice(6, 6, 1.0)

	if err := engine.Compute(context.Background(), b, points); err != nil {
		log.Fatal(err)
	}

	psi := engine.OrderParameters()
	fmt.Printf("|psi4| on a square lattice: %.2f\n", cmplx.Abs(psi[0]))
	// Output: |psi4| on a square lattice: 1.00
}

// ExampleTranslational reads the net bond vector toward a particle's
// single neighbor.
func ExampleTranslational() {
	engine, err := freud.NewTranslational(2.0, freud.WithNeighbors(1))
	if err != nil {
		log.Fatal(err)
	}

	points := []v3.Vec{
		{},
		{X: 1},
	}

	if err := engine.Compute(context.Background(), box.Cube(10), points); err != nil {
		log.Fatal(err)
	}

	out := engine.OrderParameters()
	fmt.Printf("t of particle 0: %.1f%+.1fi\n", real(out[0]), imag(out[0]))
	// Output: t of particle 0: 1.0+0.0i
}
