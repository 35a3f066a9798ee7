// Package physics implements the swept tile collision resolver and the value
// types it operates on. It is deterministic and allocation-light: one call to
// Resolve advances a single entity by one fixed step against the tile grid.
package physics

// Vec2 represents a 2D vector.
type Vec2 struct {
	X, Y float64
}

// AABB is an axis-aligned bounding box stored as center position plus
// half-extents. Half-extents are never negative; constructors and the crouch
// resize path are the only writers.
type AABB struct {
	X, Y  float64 // center, world px
	HalfW float64
	HalfH float64
}

// NewAABB builds a box from its center and half-extents. Negative extents are
// a programming error.
func NewAABB(x, y, halfW, halfH float64) AABB {
	if halfW < 0 || halfH < 0 {
		panic("physics: negative AABB half-extent")
	}
	return AABB{X: x, Y: y, HalfW: halfW, HalfH: halfH}
}

func (b AABB) Left() float64   { return b.X - b.HalfW }
func (b AABB) Right() float64  { return b.X + b.HalfW }
func (b AABB) Top() float64    { return b.Y - b.HalfH }
func (b AABB) Bottom() float64 { return b.Y + b.HalfH }

// Overlaps reports whether the interiors of two boxes intersect. Boxes that
// merely share an edge do not overlap.
func (b AABB) Overlaps(o AABB) bool {
	return b.Left() < o.Right() && o.Left() < b.Right() &&
		b.Top() < o.Bottom() && o.Top() < b.Bottom()
}
