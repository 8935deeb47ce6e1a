package hex

import "fmt"

// Coord is an absolute position on the grid, stored as unsigned axial
// coordinates. (0,0) is the top-left of the rhombus and each row down shifts
// half a tile right. Negative axial values are stored wrapped, so axial -1 is
// 255.
type Coord struct {
	q uint8
	r uint8
}

// NewCoord creates a Coord from axial coordinates.
func NewCoord(q, r uint8) Coord {
	return Coord{q: q, r: r}
}

// Q returns the axial q (column) component.
func (c Coord) Q() uint8 { return c.q }

// R returns the axial r (row) component.
func (c Coord) R() uint8 { return c.r }

// X returns the cubic x component.
func (c Coord) X() int16 { return int16(c.q) }

// Y returns the cubic y component, widened so -x-z cannot overflow.
func (c Coord) Y() int16 { return -int16(c.q) - int16(c.r) }

// Z returns the cubic z component.
func (c Coord) Z() int16 { return int16(c.r) }

// Axial returns (q, r).
func (c Coord) Axial() (q, r uint8) { return c.q, c.r }

// Cubic returns (x, y, z).
func (c Coord) Cubic() (x, y, z int16) { return c.X(), c.Y(), c.Z() }

// Add translates c by o, wrapping on both axes.
func (c Coord) Add(o Orientation) Coord {
	return Coord{q: c.q + uint8(o.q), r: c.r + uint8(o.r)}
}

// Sub returns the wrapped displacement that takes other to c.
func (c Coord) Sub(other Coord) Orientation {
	return Orientation{q: int8(c.q - other.q), r: int8(c.r - other.r)}
}

// DistanceTo returns the hex distance between c and other on the 256x256
// torus. Results beyond 255 saturate.
func (c Coord) DistanceTo(other Coord) uint8 {
	d := c.Sub(other)
	n := cubicLength(int16(d.q), int16(d.r))
	if n > 255 {
		return 255
	}
	return uint8(n)
}

// Idx maps c into a row-major buffer of (maxX+1) columns and (maxZ+1) rows.
// maxX and maxZ are inclusive maxima. It reports false when the row is past
// maxZ, or when the grid does not wrap and the column is past maxX. Wrapping
// grids take the column modulo maxX+1.
func (c Coord) Idx(maxX, maxZ uint8, wrapsX bool) (int, bool) {
	if c.r > maxZ || (!wrapsX && c.q > maxX) {
		return 0, false
	}
	stride := int(maxX) + 1
	x := int(c.q) % stride
	return int(c.r)*stride + x, true
}

// CoordFromIdx is the inverse of Idx for an index inside the grid.
func CoordFromIdx(idx int, maxX uint8) Coord {
	stride := int(maxX) + 1
	return Coord{q: uint8(idx % stride), r: uint8(idx / stride)}
}

// OffsetBy translates c by o inside a grid whose inclusive maxima are width
// and height. The row must stay within [0, height]. The column wraps modulo
// width+1 when wrapsX is set and must stay within [0, width] otherwise.
func (c Coord) OffsetBy(o Orientation, width, height uint8, wrapsX bool) (Coord, bool) {
	r := int(c.r) + int(o.r)
	if r < 0 || r > int(height) {
		return Coord{}, false
	}
	q := int(c.q) + int(o.q)
	if wrapsX {
		stride := int(width) + 1
		q = ((q % stride) + stride) % stride
	} else if q < 0 || q > int(width) {
		return Coord{}, false
	}
	return Coord{q: uint8(q), r: uint8(r)}, true
}

// RotateCW rotates c 60 degrees clockwise around center.
func (c Coord) RotateCW(center Coord) Coord {
	return center.Add(c.Sub(center).CW())
}

// RotateCCW rotates c 60 degrees counter-clockwise around center.
func (c Coord) RotateCCW(center Coord) Coord {
	return center.Add(c.Sub(center).CCW())
}

// Ring returns an iterator over the coords at exactly distance d from c.
func (c Coord) Ring(d uint8) *RingIter {
	it := NewRingIter(c, d)
	return &it
}

// Disk returns an iterator over the coords within distance d of c.
func (c Coord) Disk(d uint8) *DiskIter {
	it := NewDiskIter(c, d)
	return &it
}

// String returns "(q,r)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.q, c.r)
}
