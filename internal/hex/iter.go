package hex

import "iter"

type ringState uint8

const (
	ringExhausted ringState = iota
	ringCenter
	ringWalking
)

// RingIter lazily enumerates the hexes at exactly one distance from a center.
//
// The walk starts at the vertex d steps along (1,0) and follows each of the
// six sides for d steps before turning clockwise, so a ring of distance d > 0
// yields 6d distinct hexes. Distance 0 yields the center once.
type RingIter struct {
	center   Coord
	state    ringState
	side     Orientation
	sides    uint8
	distance uint8
	offset   uint8
}

// NewRingIter creates a ring iterator around center at distance d.
func NewRingIter(center Coord, d uint8) RingIter {
	if d == 0 {
		return RingIter{center: center, state: ringCenter}
	}
	return RingIter{
		center:   center,
		state:    ringWalking,
		side:     Directions[0],
		distance: d,
	}
}

// Distance returns the ring's distance from its center.
func (it *RingIter) Distance() uint8 { return it.distance }

// Next returns the next offset from the center and the absolute coord it
// lands on. ok is false once the ring is exhausted.
func (it *RingIter) Next() (o Orientation, c Coord, ok bool) {
	switch it.state {
	case ringCenter:
		it.state = ringExhausted
		return Orientation{}, it.center, true
	case ringWalking:
		d := int8(it.distance)
		o = it.side.Scale(d).Add(it.side.Neg().CCW().Scale(int8(it.offset)))
		it.offset++
		if it.offset == it.distance {
			it.offset = 0
			it.side = it.side.CW()
			it.sides++
			if it.sides == 6 {
				it.state = ringExhausted
			}
		}
		return o, it.center.Add(o), true
	default:
		return Orientation{}, Coord{}, false
	}
}

// All yields the remaining (offset, coord) pairs.
func (it *RingIter) All() iter.Seq2[Orientation, Coord] {
	return func(yield func(Orientation, Coord) bool) {
		for {
			o, c, ok := it.Next()
			if !ok || !yield(o, c) {
				return
			}
		}
	}
}

// Coords yields the remaining absolute coords.
func (it *RingIter) Coords() iter.Seq[Coord] {
	return func(yield func(Coord) bool) {
		for {
			_, c, ok := it.Next()
			if !ok || !yield(c) {
				return
			}
		}
	}
}

// DiskIter lazily enumerates every hex within a distance of a center by
// walking rings 0 through N. It yields 3N(N+1)+1 distinct hexes.
type DiskIter struct {
	ring     RingIter
	center   Coord
	distance uint8
}

// NewDiskIter creates a disk iterator around center with radius d.
func NewDiskIter(center Coord, d uint8) DiskIter {
	return DiskIter{
		ring:     NewRingIter(center, 0),
		center:   center,
		distance: d,
	}
}

// Next returns the next offset and absolute coord, ring by ring outwards.
func (it *DiskIter) Next() (Orientation, Coord, bool) {
	for {
		if o, c, ok := it.ring.Next(); ok {
			return o, c, true
		}
		if it.ring.distance >= it.distance {
			return Orientation{}, Coord{}, false
		}
		it.ring = NewRingIter(it.center, it.ring.distance+1)
	}
}

// All yields the remaining (offset, coord) pairs.
func (it *DiskIter) All() iter.Seq2[Orientation, Coord] {
	return func(yield func(Orientation, Coord) bool) {
		for {
			o, c, ok := it.Next()
			if !ok || !yield(o, c) {
				return
			}
		}
	}
}

// Coords yields the remaining absolute coords.
func (it *DiskIter) Coords() iter.Seq[Coord] {
	return func(yield func(Coord) bool) {
		for {
			_, c, ok := it.Next()
			if !ok || !yield(c) {
				return
			}
		}
	}
}

// RangeIter walks the rectangle between two coords row by row, q fastest.
// Both axes wrap, so from may lie after to.
type RangeIter struct {
	from    Coord
	to      Coord
	current Coord
	done    bool
}

// NewRangeIter creates an iterator from from to to, both inclusive.
func NewRangeIter(from, to Coord) RangeIter {
	return RangeIter{from: from, to: to, current: from}
}

// Next returns the next coord in the rectangle.
func (it *RangeIter) Next() (Coord, bool) {
	if it.done {
		return Coord{}, false
	}
	c := it.current
	switch {
	case c.q != it.to.q:
		it.current.q++
	case c.r != it.to.r:
		it.current.q = it.from.q
		it.current.r++
	default:
		it.done = true
	}
	return c, true
}

// Coords yields the remaining coords.
func (it *RangeIter) Coords() iter.Seq[Coord] {
	return func(yield func(Coord) bool) {
		for {
			c, ok := it.Next()
			if !ok || !yield(c) {
				return
			}
		}
	}
}
