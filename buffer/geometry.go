package buffer

// Point is a pixel coordinate pair. Within a view, points are relative to the
// view's own top-left corner.
type Point struct {
	X, Y Dimension
}

// Rect is an axis-aligned rectangle: top-left corner (X, Y) and extent (W, H).
// It covers the half-open spans [X, X+W) × [Y, Y+H); a zero W or H makes it
// empty.
type Rect struct {
	X, Y Dimension
	W, H Dimension
}

// NewRect builds a Rect from a top-left point and an extent.
func NewRect(topLeft Point, w, h Dimension) Rect {
	return Rect{X: topLeft.X, Y: topLeft.Y, W: w, H: h}
}

// Dimensions reports the extent (W, H) of r.
func (r Rect) Dimensions() (Dimension, Dimension) { return r.W, r.H }

// Empty reports whether r covers no pixels.
func (r Rect) Empty() bool { return r.W == 0 || r.H == 0 }

// Contains reports whether pt lies within r.
func (r Rect) Contains(pt Point) bool {
	return pt.X >= r.X && pt.X-r.X < r.W && pt.Y >= r.Y && pt.Y-r.Y < r.H
}

// ContainsRect reports whether o lies entirely within r. An empty o counts as
// contained when its corner does. All comparisons are subtraction-based so
// coordinates near the top of the Dimension range cannot wrap.
func (r Rect) ContainsRect(o Rect) bool {
	return o.X >= r.X && o.X-r.X <= r.W && o.W <= r.W-(o.X-r.X) &&
		o.Y >= r.Y && o.Y-r.Y <= r.H && o.H <= r.H-(o.Y-r.Y)
}

// Overlaps reports whether r and o share at least one pixel. Empty rectangles
// overlap nothing, including themselves.
func (r Rect) Overlaps(o Rect) bool {
	return axisOverlap(r.X, r.W, o.X, o.W) && axisOverlap(r.Y, r.H, o.Y, o.H)
}

// axisOverlap reports whether the half-open spans [a, a+aw) and [b, b+bw)
// intersect, without computing sums that could wrap.
func axisOverlap(a, aw, b, bw Dimension) bool {
	if aw == 0 || bw == 0 {
		return false
	}
	if a <= b {
		return b-a < aw
	}
	return a-b < bw
}

// fits reports whether r, expressed in view-relative coordinates, lies within
// a view of extent w×h.
func fits(r Rect, w, h Dimension) bool {
	return r.X <= w && r.W <= w-r.X && r.Y <= h && r.H <= h-r.Y
}
