package locality

import (
	"fmt"
	"math"

	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/ernie2k/freud/box"
)

// maxCellsPerAxis caps the grid resolution so a tiny cell width inside a
// large box does not allocate an unbounded number of buckets.
const maxCellsPerAxis = 64

// CellList buckets particle indices by the cell their position falls in.
// Cells are laid out on the fractional coordinates of the box, so tilted
// boxes bucket just as well as orthorhombic ones.
//
// Buckets are rebuilt in place by Assign and keep their capacity across
// calls.
type CellList struct {
	box        box.Box
	nx, ny, nz int
	width      v3.Vec // per-axis cell thickness in plane-distance units
	buckets    [][]int32
}

// NewCellList partitions the box into cells at least width wide along each
// periodic axis, measured by the perpendicular plane spacing of the cell.
// Two-dimensional boxes get a single layer of cells in z.
func NewCellList(b box.Box, width float64) (*CellList, error) {
	if width <= 0 {
		return nil, fmt.Errorf("cell width must be positive, got %g", width)
	}
	if b.Lx <= 0 || b.Ly <= 0 || (!b.Is2D() && b.Lz <= 0) {
		return nil, fmt.Errorf("box has a non-positive periodic extent: (%g, %g, %g)", b.Lx, b.Ly, b.Lz)
	}

	d := b.NearestPlaneDistance()
	nx := cellsAlong(d.X, width)
	ny := cellsAlong(d.Y, width)
	nz := 1
	var wz float64
	if !b.Is2D() {
		nz = cellsAlong(d.Z, width)
		wz = d.Z / float64(nz)
	}

	return &CellList{
		box: b,
		nx:  nx,
		ny:  ny,
		nz:  nz,
		width: v3.Vec{
			X: d.X / float64(nx),
			Y: d.Y / float64(ny),
			Z: wz,
		},
		buckets: make([][]int32, nx*ny*nz),
	}, nil
}

func cellsAlong(extent, width float64) int {
	n := int(math.Floor(extent / width))
	if n < 1 {
		n = 1
	}
	if n > maxCellsPerAxis {
		n = maxCellsPerAxis
	}
	return n
}

// Assign rebuilds the buckets for a new set of positions. Previously
// returned bucket views are invalidated.
func (c *CellList) Assign(points []v3.Vec) {
	for i := range c.buckets {
		c.buckets[i] = c.buckets[i][:0]
	}
	for i, p := range points {
		cell := c.Cell(p)
		c.buckets[cell] = append(c.buckets[cell], int32(i))
	}
}

// Cell returns the flat index of the cell containing p. Positions outside
// the primary cell wrap toroidally.
func (c *CellList) Cell(p v3.Vec) int {
	cx, cy, cz := c.coords(p)
	return c.index(cx, cy, cz)
}

// Bucket returns the particle indices assigned to the given cell. The
// returned slice is a view; callers must not modify it or hold it across
// Assign.
func (c *CellList) Bucket(cell int) []int32 {
	return c.buckets[cell]
}

// Dims returns the number of cells along each axis.
func (c *CellList) Dims() (nx, ny, nz int) {
	return c.nx, c.ny, c.nz
}

func (c *CellList) coords(p v3.Vec) (cx, cy, cz int) {
	f := c.box.Fraction(p)
	cx = wrapCell(f.X, c.nx)
	cy = wrapCell(f.Y, c.ny)
	if c.nz > 1 {
		cz = wrapCell(f.Z, c.nz)
	}
	return cx, cy, cz
}

func (c *CellList) index(cx, cy, cz int) int {
	return (cz*c.ny+cy)*c.nx + cx
}

func wrapCell(f float64, n int) int {
	i := int(math.Floor(f * float64(n)))
	i %= n
	if i < 0 {
		i += n
	}
	return i
}

// spans returns how many cells away from a center cell a search must look
// along each axis to cover radius r.
func (c *CellList) spans(r float64) (sx, sy, sz int) {
	sx = spanAlong(r, c.width.X, c.nx)
	sy = spanAlong(r, c.width.Y, c.ny)
	sz = spanAlong(r, c.width.Z, c.nz)
	return sx, sy, sz
}

func spanAlong(r, width float64, n int) int {
	if n == 1 {
		return 0
	}
	return int(math.Ceil(r / width))
}

// covers reports whether the given spans reach every cell of the grid.
func (c *CellList) covers(sx, sy, sz int) bool {
	return 2*sx+1 >= c.nx && 2*sy+1 >= c.ny && 2*sz+1 >= c.nz
}

// forBlock invokes fn for the bucket of every cell within the given spans
// of the center cell, wrapping toroidally. Each bucket is visited at most
// once even when a span wraps all the way around an axis.
func (c *CellList) forBlock(cx, cy, cz, sx, sy, sz int, fn func(bucket []int32)) {
	xlo, xhi := clampSpan(sx, c.nx)
	ylo, yhi := clampSpan(sy, c.ny)
	zlo, zhi := clampSpan(sz, c.nz)
	for dz := zlo; dz <= zhi; dz++ {
		z := wrapIndex(cz+dz, c.nz)
		for dy := ylo; dy <= yhi; dy++ {
			y := wrapIndex(cy+dy, c.ny)
			for dx := xlo; dx <= xhi; dx++ {
				x := wrapIndex(cx+dx, c.nx)
				fn(c.buckets[c.index(x, y, z)])
			}
		}
	}
}

// clampSpan turns a per-axis span into an offset range, collapsing to one
// full sweep of the axis once the span wraps around.
func clampSpan(span, n int) (lo, hi int) {
	if 2*span+1 >= n {
		return 0, n - 1
	}
	return -span, span
}

func wrapIndex(i, n int) int {
	i %= n
	if i < 0 {
		i += n
	}
	return i
}
