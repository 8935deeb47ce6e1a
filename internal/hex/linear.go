package hex

import "math"

// Pointy-top layout with unit spacing: adjacent hex centers are 1 apart.
const (
	sqrt3 = 1.73205080756887729352744634150587236694280525381038062805580697945

	// centerToPoint is the distance from a hex center to a corner,
	// 1/(2*cos(30deg)).
	centerToPoint = 1 / sqrt3
)

// ToLinear projects c to linear (pixel) space.
func (c Coord) ToLinear() (x, y float32) {
	q := float64(c.q)
	r := float64(c.r)
	x = float32(centerToPoint * (sqrt3*q + sqrt3/2*r))
	y = float32(centerToPoint * (1.5 * r))
	return x, y
}

// FromLinear returns the Coord whose hex contains the linear point (x, y).
//
// The plane is cut by three families of lines half a hex apart, one per cubic
// axis. Flooring against each family buckets the point into a triangle and the
// triangle votes identify the hex, so points on a boundary always land in
// exactly one hex. For every c, FromLinear(c.ToLinear()) == c.
func FromLinear(x, y float32) Coord {
	fx := float64(x)
	fy := float64(y)
	a := math.Floor(fx + sqrt3*fy + 1)
	q := math.Floor((math.Floor(2*fx+1) + a) / 3)
	r := math.Floor((a + math.Floor(-fx+sqrt3*fy+1)) / 3)
	return Coord{q: uint8(int(q - r)), r: uint8(int(r))}
}
