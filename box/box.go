// Package box models the periodic simulation cell that particle coordinates
// live in. A Box is a plain value: copy it, compare it, pass it around.
//
// The cell is triclinic in general. Its lattice vectors form an upper
// triangular matrix
//
//	a1 = (Lx,        0,       0)
//	a2 = (XY*Ly,     Ly,      0)
//	a3 = (XZ*Lz,  YZ*Lz,     Lz)
//
// and coordinates are centered on the origin, so an untilted box spans
// [-L/2, +L/2) along each axis. Two-dimensional boxes set Lz to zero and
// ignore the z coordinate when wrapping.
package box

import (
	"math"

	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Box describes a periodic triclinic simulation cell.
//
// The zero value is a degenerate box with no periodic extent; wrapping
// through it is the identity.
type Box struct {
	// Lx, Ly and Lz are the extents along the three lattice vectors.
	Lx, Ly, Lz float64

	// XY, XZ and YZ are the tilt factors (shear of the second and third
	// lattice vectors, expressed as fractions of Ly and Lz).
	XY, XZ, YZ float64

	// TwoD marks the box as two-dimensional: the z coordinate does not
	// participate in wrapping or fractional coordinates.
	TwoD bool
}

// New creates an orthorhombic three-dimensional box.
func New(lx, ly, lz float64) Box {
	return Box{Lx: lx, Ly: ly, Lz: lz}
}

// New2D creates a two-dimensional box. The z extent is zero and the z
// coordinate is ignored by every operation.
func New2D(lx, ly float64) Box {
	return Box{Lx: lx, Ly: ly, TwoD: true}
}

// NewTilted creates a triclinic three-dimensional box with the given tilt
// factors.
func NewTilted(lx, ly, lz, xy, xz, yz float64) Box {
	return Box{Lx: lx, Ly: ly, Lz: lz, XY: xy, XZ: xz, YZ: yz}
}

// Cube creates an orthorhombic box with equal extents.
func Cube(l float64) Box {
	return New(l, l, l)
}

// Square creates a two-dimensional box with equal extents.
func Square(l float64) Box {
	return New2D(l, l)
}

// Is2D reports whether the box is two-dimensional.
func (b Box) Is2D() bool {
	return b.TwoD
}

// Equal reports whether two boxes have identical extents and tilt factors.
// The TwoD flag changes how coordinates are interpreted, not the cell
// geometry, so it does not participate; use == for strict equality.
func (b Box) Equal(o Box) bool {
	return b.Lx == o.Lx && b.Ly == o.Ly && b.Lz == o.Lz &&
		b.XY == o.XY && b.XZ == o.XZ && b.YZ == o.YZ
}

// Wrap maps a displacement (or origin-centered position) to its minimum
// image under the periodic boundary conditions. Vectors several periods
// away wrap in a single call. Axes with zero extent are untouched, as is z
// for two-dimensional boxes.
//
// A displacement of exactly half a box length resolves to one of its two
// mirror-equivalent images; callers must not rely on the sign.
func (b Box) Wrap(v v3.Vec) v3.Vec {
	// Image subtraction runs z, y, x so the tilt contributions of each
	// lattice vector cascade into the remaining axes.
	if !b.TwoD && b.Lz > 0 {
		img := math.Round(v.Z / b.Lz)
		v.X -= b.XZ * b.Lz * img
		v.Y -= b.YZ * b.Lz * img
		v.Z -= b.Lz * img
	}
	if b.Ly > 0 {
		img := math.Round(v.Y / b.Ly)
		v.X -= b.XY * b.Ly * img
		v.Y -= b.Ly * img
	}
	if b.Lx > 0 {
		v.X -= b.Lx * math.Round(v.X/b.Lx)
	}
	return v
}

// Fraction converts an origin-centered position into fractional coordinates
// along the lattice vectors. Positions inside the primary cell land in
// [0,1) per periodic axis; positions outside map beyond that range, one
// unit per period. Two-dimensional boxes report z as zero.
func (b Box) Fraction(p v3.Vec) v3.Vec {
	var f v3.Vec
	if !b.TwoD && b.Lz > 0 {
		f.Z = p.Z/b.Lz + 0.5
	}
	if b.Ly > 0 {
		f.Y = (p.Y-b.YZ*b.Lz*(f.Z-0.5))/b.Ly + 0.5
	}
	if b.Lx > 0 {
		f.X = (p.X-b.XY*b.Ly*(f.Y-0.5)-b.XZ*b.Lz*(f.Z-0.5))/b.Lx + 0.5
	}
	return f
}

// Coordinates converts fractional coordinates back into an origin-centered
// position. It is the inverse of Fraction.
func (b Box) Coordinates(f v3.Vec) v3.Vec {
	fx, fy, fz := f.X-0.5, f.Y-0.5, f.Z-0.5
	if b.TwoD {
		fz = 0
	}
	return v3.Vec{
		X: b.Lx*fx + b.XY*b.Ly*fy + b.XZ*b.Lz*fz,
		Y: b.Ly*fy + b.YZ*b.Lz*fz,
		Z: b.Lz * fz,
	}
}

// NearestPlaneDistance returns the perpendicular distance between opposite
// faces of the cell along each axis. For an untilted box this is simply the
// extents; shear brings opposing faces closer. It bounds how large a cutoff
// radius the cell can support and how thick spatial bins can be.
func (b Box) NearestPlaneDistance() v3.Vec {
	shearX := b.XY*b.YZ - b.XZ
	return v3.Vec{
		X: b.Lx / math.Sqrt(1+b.XY*b.XY+shearX*shearX),
		Y: b.Ly / math.Sqrt(1+b.YZ*b.YZ),
		Z: b.Lz,
	}
}
