// Package hex provides hex-grid coordinate geometry: axial/cubic coordinates,
// projection to and from linear (pixel) space, indexing into bounded and
// horizontally wrapping tile grids, and lazy ring/disk neighbor enumeration.
//
// All arithmetic is fixed width and wraps on overflow. Go defines signed and
// unsigned overflow as two's-complement wraparound, and this package relies on
// that: a Coord lives on a 256x256 torus and an Orientation is a displacement
// modulo 256 per axis. Nothing here allocates, logs or returns errors; out of
// range lookups report absence through a boolean.
package hex

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Orientation is a relative displacement in axial hex space.
// The cubic form is (x, y, z) = (q, -q-r, r) with x+y+z == 0.
type Orientation struct {
	q int8
	r int8
}

// Directions are the six unit orientations in ring walking order.
var Directions = [6]Orientation{
	{1, 0}, {0, 1}, {-1, 1}, {-1, 0}, {0, -1}, {1, -1},
}

// NewAxial creates an Orientation from axial components.
func NewAxial(q, r int8) Orientation {
	return Orientation{q: q, r: r}
}

// NewCubic creates an Orientation from cubic components.
// It panics if x+y+z != 0: the caller's math is wrong.
func NewCubic(x, y, z int8) Orientation {
	if x+y+z != 0 {
		panic(fmt.Sprintf("hex: cubic coordinate (%d,%d,%d) does not sum to zero", x, y, z))
	}
	return Orientation{q: x, r: z}
}

// Q returns the axial q component.
func (o Orientation) Q() int8 { return o.q }

// R returns the axial r component.
func (o Orientation) R() int8 { return o.r }

// X returns the cubic x component.
func (o Orientation) X() int8 { return o.q }

// Y returns the cubic y component, -x-z with wrapping.
func (o Orientation) Y() int8 { return -o.q - o.r }

// Z returns the cubic z component.
func (o Orientation) Z() int8 { return o.r }

// Axial returns (q, r).
func (o Orientation) Axial() (q, r int8) { return o.q, o.r }

// Cubic returns (x, y, z).
func (o Orientation) Cubic() (x, y, z int8) { return o.X(), o.Y(), o.Z() }

// IsZero reports whether o is the zero displacement.
func (o Orientation) IsZero() bool { return o.q == 0 && o.r == 0 }

// Add returns o+other.
func (o Orientation) Add(other Orientation) Orientation {
	return Orientation{q: o.q + other.q, r: o.r + other.r}
}

// Sub returns o-other.
func (o Orientation) Sub(other Orientation) Orientation {
	return Orientation{q: o.q - other.q, r: o.r - other.r}
}

// Neg returns -o. Negating -128 yields -128.
func (o Orientation) Neg() Orientation {
	return Orientation{q: -o.q, r: -o.r}
}

// Scale multiplies both components by k.
func (o Orientation) Scale(k int8) Orientation {
	return Orientation{q: o.q * k, r: o.r * k}
}

// CW rotates o by 60 degrees clockwise.
func (o Orientation) CW() Orientation {
	x, y, z := o.Neg().Cubic()
	return NewCubic(z, x, y)
}

// CCW rotates o by 60 degrees counter-clockwise.
func (o Orientation) CCW() Orientation {
	x, y, z := o.Neg().Cubic()
	return NewCubic(y, z, x)
}

// DistanceTo returns the hex distance between o and other, the largest
// absolute cubic component of their exact difference.
func (o Orientation) DistanceTo(other Orientation) uint16 {
	dx := int16(o.q) - int16(other.q)
	dz := int16(o.r) - int16(other.r)
	return uint16(cubicLength(dx, dz))
}

// Len returns the hex distance of o from the zero displacement.
func (o Orientation) Len() uint16 {
	return o.DistanceTo(Orientation{})
}

// String returns "(q,r)".
func (o Orientation) String() string {
	return fmt.Sprintf("(%d,%d)", o.q, o.r)
}

// cubicLength is max(|x|, |y|, |z|) for the axial pair (x, z).
func cubicLength(x, z int16) int16 {
	return max(abs(x), abs(-x-z), abs(z))
}

func abs[T constraints.Signed](v T) T {
	if v < 0 {
		return -v
	}
	return v
}
