package buffer

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/pict/pixel"
)

// View is a read-only rectangular window into a Buffer's storage (or into the
// storage behind another view). It never owns pixels and never repacks them:
// rows are addressed through the stride of the original allocation.
//
// Views are plain values — copy, narrow and overlap them freely. Reads never
// race with reads.
type View[P pixel.Format] struct {
	pix    []P       // full backing storage of the originating buffer
	stride Dimension // row stride: the originating buffer's width
	bounds Rect      // window position, in storage-absolute coordinates
}

// Width reports the view width in pixels.
func (v View[P]) Width() Dimension { return v.bounds.W }

// Height reports the view height in pixels.
func (v View[P]) Height() Dimension { return v.bounds.H }

// Dimensions reports (width, height).
func (v View[P]) Dimensions() (Dimension, Dimension) { return v.bounds.W, v.bounds.H }

// Size reports the total pixel count of the view.
func (v View[P]) Size() int { return int(v.bounds.W) * int(v.bounds.H) }

// Bounds reports the view's extent as a rectangle anchored at (0,0).
func (v View[P]) Bounds() Rect { return Rect{W: v.bounds.W, H: v.bounds.H} }

// index maps view-relative coordinates to a storage index. Callers must have
// bounds-checked (x, y) already; the result always fits in int because the
// originating buffer's byte size was validated at construction.
func (v View[P]) index(x, y Dimension) int {
	return (int(v.bounds.Y) + int(y)) * int(v.stride) + int(v.bounds.X) + int(x)
}

// row returns the y-th row of the view as a slice aliasing the storage,
// capacity-clipped to the view's width. Callers must have bounds-checked y.
func (v View[P]) row(y Dimension) []P {
	start := v.index(0, y)
	end := start + int(v.bounds.W)
	return v.pix[start:end:end]
}

// PixelAt reads the pixel at view-relative pt.
// Returns ErrOutOfBounds if pt lies outside the view's extent.
// Complexity: O(1).
func (v View[P]) PixelAt(pt Point) (P, error) {
	if pt.X >= v.bounds.W || pt.Y >= v.bounds.H {
		var zero P
		return zero, fmt.Errorf("%w: (%d,%d) in %d×%d view", ErrOutOfBounds, pt.X, pt.Y, v.bounds.W, v.bounds.H)
	}
	return v.pix[v.index(pt.X, pt.Y)], nil
}

// Row exposes row y as a read slice aliasing the storage. The slice covers
// exactly the view's width; its capacity is clipped so it cannot reach
// neighboring pixels. Returns ErrOutOfBounds if y ≥ height.
// Complexity: O(1).
func (v View[P]) Row(y Dimension) ([]P, error) {
	if y >= v.bounds.H {
		return nil, fmt.Errorf("%w: row %d in %d-row view", ErrOutOfBounds, y, v.bounds.H)
	}
	return v.row(y), nil
}

// SubView narrows the view to r (relative to this view's origin).
// Returns ErrOutOfBounds if r exceeds the view's extent; the region is never
// clamped. Complexity: O(1).
func (v View[P]) SubView(r Rect) (View[P], error) {
	if !fits(r, v.bounds.W, v.bounds.H) {
		return View[P]{}, fmt.Errorf("%w: region (%d,%d %d×%d) in %d×%d view",
			ErrOutOfBounds, r.X, r.Y, r.W, r.H, v.bounds.W, v.bounds.H)
	}
	return View[P]{pix: v.pix, stride: v.stride, bounds: v.abs(r)}, nil
}

// SubViews narrows the view to each region in turn. Overlap between read
// views is permitted; only containment is checked. All-or-nothing: the first
// out-of-bounds region fails the whole call with ErrOutOfBounds.
func (v View[P]) SubViews(regions []Rect) ([]View[P], error) {
	views := make([]View[P], len(regions))
	for i, r := range regions {
		sub, err := v.SubView(r)
		if err != nil {
			return nil, fmt.Errorf("region %d: %w", i, err)
		}
		views[i] = sub
	}
	return views, nil
}

// SplitXAt splits the view at vertical coordinate at into a left [0,at) and
// right [at,width) view, both spanning all rows. Returns ErrOutOfRange if
// at > width. Read splits do not consume anything.
func (v View[P]) SplitXAt(at Dimension) (left, right View[P], err error) {
	if at > v.bounds.W {
		return View[P]{}, View[P]{}, fmt.Errorf("%w: x=%d in %d-wide view", ErrOutOfRange, at, v.bounds.W)
	}
	left = View[P]{pix: v.pix, stride: v.stride, bounds: Rect{v.bounds.X, v.bounds.Y, at, v.bounds.H}}
	right = View[P]{pix: v.pix, stride: v.stride, bounds: Rect{v.bounds.X + at, v.bounds.Y, v.bounds.W - at, v.bounds.H}}
	return left, right, nil
}

// SplitYAt is the horizontal analogue of SplitXAt.
func (v View[P]) SplitYAt(at Dimension) (upper, lower View[P], err error) {
	if at > v.bounds.H {
		return View[P]{}, View[P]{}, fmt.Errorf("%w: y=%d in %d-tall view", ErrOutOfRange, at, v.bounds.H)
	}
	upper = View[P]{pix: v.pix, stride: v.stride, bounds: Rect{v.bounds.X, v.bounds.Y, v.bounds.W, at}}
	lower = View[P]{pix: v.pix, stride: v.stride, bounds: Rect{v.bounds.X, v.bounds.Y + at, v.bounds.W, v.bounds.H - at}}
	return upper, lower, nil
}

// Pixels returns a lazy, restartable, row-major sequence of the view's pixel
// values. Bounds are fixed at creation; no per-element checks run.
func (v View[P]) Pixels() iter.Seq[P] {
	return func(yield func(P) bool) {
		for y := Dimension(0); y < v.bounds.H; y++ {
			for _, px := range v.row(y) {
				if !yield(px) {
					return
				}
			}
		}
	}
}

// PixelsWithCoords is Pixels paired with view-relative coordinates.
func (v View[P]) PixelsWithCoords() iter.Seq2[Point, P] {
	return func(yield func(Point, P) bool) {
		for y := Dimension(0); y < v.bounds.H; y++ {
			row := v.row(y)
			for x := range row {
				if !yield(Point{X: Dimension(x), Y: y}, row[x]) {
					return
				}
			}
		}
	}
}

// ToBuffer snapshots the view into a fresh, independently owned Buffer.
// This is the one deliberate copy in the package. Complexity: O(W×H).
func (v View[P]) ToBuffer() *Buffer[P] {
	pix := make([]P, v.Size())
	for y := Dimension(0); y < v.bounds.H; y++ {
		copy(pix[int(y)*int(v.bounds.W):], v.row(y))
	}
	return &Buffer[P]{pix: pix, width: v.bounds.W, height: v.bounds.H}
}

// abs translates a view-relative rectangle into storage-absolute coordinates.
func (v View[P]) abs(r Rect) Rect {
	return Rect{X: v.bounds.X + r.X, Y: v.bounds.Y + r.Y, W: r.W, H: r.H}
}
