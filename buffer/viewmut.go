package buffer

import (
	"fmt"
	"iter"
	"sync/atomic"

	"github.com/katalvlaran/pict/pixel"
)

// ViewMut is a rectangular window with exclusive mutation rights over its
// pixel footprint. At any instant the live ViewMut footprints derived from
// one Buffer are pairwise disjoint: splitting transfers exclusivity from the
// parent to its children atomically with the call, and the parent is
// consumed — it can never again reach the bytes its children hold.
//
// A ViewMut belongs to a single goroutine. Disjoint children obtained from
// one split or ViewMutMultiple call may each be handed to a different
// goroutine; only Release touches shared state (atomically).
type ViewMut[P pixel.Format] struct {
	pix    []P
	stride Dimension
	bounds Rect

	// live is the owning buffer's count of outstanding exclusive handles.
	live *atomic.Int32

	consumed bool // a split transferred this view's exclusivity to children
	released bool // Release returned this view's exclusivity to the buffer
}

// usable gates every operation on the exclusivity token state.
func (v *ViewMut[P]) usable() error {
	if v.released {
		return ErrViewReleased
	}
	if v.consumed {
		return ErrViewConsumed
	}
	return nil
}

// asView reads the window as an untracked View. Internal: callers have
// already checked usable.
func (v *ViewMut[P]) asView() View[P] {
	return View[P]{pix: v.pix, stride: v.stride, bounds: v.bounds}
}

// child derives a new exclusive handle over abs. The caller is responsible
// for the containment/disjointness proof and the live-count accounting.
func (v *ViewMut[P]) child(abs Rect) *ViewMut[P] {
	return &ViewMut[P]{pix: v.pix, stride: v.stride, bounds: abs, live: v.live}
}

// Release returns this view's exclusivity to the buffer. Idempotent; a
// consumed parent holds no exclusivity, so releasing it is a no-op. Once all
// handles of a tree are released, Buffer.ViewMut can be acquired again.
func (v *ViewMut[P]) Release() {
	if v.consumed || v.released {
		return
	}
	v.released = true
	v.live.Add(-1)
}

// Width reports the view width in pixels.
func (v *ViewMut[P]) Width() Dimension { return v.bounds.W }

// Height reports the view height in pixels.
func (v *ViewMut[P]) Height() Dimension { return v.bounds.H }

// Dimensions reports (width, height).
func (v *ViewMut[P]) Dimensions() (Dimension, Dimension) { return v.bounds.W, v.bounds.H }

// Size reports the total pixel count of the view.
func (v *ViewMut[P]) Size() int { return int(v.bounds.W) * int(v.bounds.H) }

// Bounds reports the view's extent as a rectangle anchored at (0,0).
func (v *ViewMut[P]) Bounds() Rect { return Rect{W: v.bounds.W, H: v.bounds.H} }

// View reads the same window through the read-only surface. The returned
// View aliases storage this handle still holds exclusively; it is intended
// for read paths (codecs, comparisons) while mutation is paused. Fails once
// the handle is consumed or released.
func (v *ViewMut[P]) View() (View[P], error) {
	if err := v.usable(); err != nil {
		return View[P]{}, err
	}
	return v.asView(), nil
}

// PixelAt reads the pixel at view-relative pt. See View.PixelAt.
func (v *ViewMut[P]) PixelAt(pt Point) (P, error) {
	if err := v.usable(); err != nil {
		var zero P
		return zero, err
	}
	return v.asView().PixelAt(pt)
}

// Row exposes row y read-only. See View.Row.
func (v *ViewMut[P]) Row(y Dimension) ([]P, error) {
	if err := v.usable(); err != nil {
		return nil, err
	}
	return v.asView().Row(y)
}

// PixelMut returns an exclusive handle to the pixel at view-relative pt,
// valid while this ViewMut is live and unconsumed. Returns ErrOutOfBounds if
// pt lies outside the view. Complexity: O(1).
func (v *ViewMut[P]) PixelMut(pt Point) (*P, error) {
	if err := v.usable(); err != nil {
		return nil, err
	}
	if pt.X >= v.bounds.W || pt.Y >= v.bounds.H {
		return nil, fmt.Errorf("%w: (%d,%d) in %d×%d view", ErrOutOfBounds, pt.X, pt.Y, v.bounds.W, v.bounds.H)
	}
	view := v.asView()
	return &view.pix[view.index(pt.X, pt.Y)], nil
}

// RowMut exposes row y as a writable slice aliasing the storage, capacity-
// clipped to the view's width. Returns ErrOutOfBounds if y ≥ height.
func (v *ViewMut[P]) RowMut(y Dimension) ([]P, error) {
	if err := v.usable(); err != nil {
		return nil, err
	}
	if y >= v.bounds.H {
		return nil, fmt.Errorf("%w: row %d in %d-row view", ErrOutOfBounds, y, v.bounds.H)
	}
	return v.asView().row(y), nil
}

// Pixels returns a lazy row-major sequence of pixel values. The token state
// is validated once, here; the sequence itself is restartable.
func (v *ViewMut[P]) Pixels() (iter.Seq[P], error) {
	if err := v.usable(); err != nil {
		return nil, err
	}
	return v.asView().Pixels(), nil
}

// PixelsWithCoords is Pixels paired with view-relative coordinates.
func (v *ViewMut[P]) PixelsWithCoords() (iter.Seq2[Point, P], error) {
	if err := v.usable(); err != nil {
		return nil, err
	}
	return v.asView().PixelsWithCoords(), nil
}

// PixelsMut returns a lazy row-major sequence of exclusive pixel handles.
// Each address is visited exactly once per restart; writes land in the live
// storage immediately, with no buffering or copy-back.
func (v *ViewMut[P]) PixelsMut() (iter.Seq[*P], error) {
	if err := v.usable(); err != nil {
		return nil, err
	}
	view := v.asView()
	return func(yield func(*P) bool) {
		for y := Dimension(0); y < view.bounds.H; y++ {
			row := view.row(y)
			for x := range row {
				if !yield(&row[x]) {
					return
				}
			}
		}
	}, nil
}

// PixelsWithCoordsMut is PixelsMut paired with view-relative coordinates.
func (v *ViewMut[P]) PixelsWithCoordsMut() (iter.Seq2[Point, *P], error) {
	if err := v.usable(); err != nil {
		return nil, err
	}
	view := v.asView()
	return func(yield func(Point, *P) bool) {
		for y := Dimension(0); y < view.bounds.H; y++ {
			row := view.row(y)
			for x := range row {
				if !yield(Point{X: Dimension(x), Y: y}, &row[x]) {
					return
				}
			}
		}
	}, nil
}

// SplitXAtMut splits the view at vertical coordinate at into a left [0,at)
// and right [at,width) child, both spanning all rows and both independently
// mutable at once. The parent is consumed by the call and can no longer be
// used directly. Returns ErrOutOfRange if at > width; a boundary split
// (at == 0 or at == width) succeeds with one empty child.
func (v *ViewMut[P]) SplitXAtMut(at Dimension) (left, right *ViewMut[P], err error) {
	if err = v.usable(); err != nil {
		return nil, nil, err
	}
	if at > v.bounds.W {
		return nil, nil, fmt.Errorf("%w: x=%d in %d-wide view", ErrOutOfRange, at, v.bounds.W)
	}
	left = v.child(Rect{v.bounds.X, v.bounds.Y, at, v.bounds.H})
	right = v.child(Rect{v.bounds.X + at, v.bounds.Y, v.bounds.W - at, v.bounds.H})
	v.consume(2)
	return left, right, nil
}

// SplitYAtMut is the horizontal analogue of SplitXAtMut.
func (v *ViewMut[P]) SplitYAtMut(at Dimension) (upper, lower *ViewMut[P], err error) {
	if err = v.usable(); err != nil {
		return nil, nil, err
	}
	if at > v.bounds.H {
		return nil, nil, fmt.Errorf("%w: y=%d in %d-tall view", ErrOutOfRange, at, v.bounds.H)
	}
	upper = v.child(Rect{v.bounds.X, v.bounds.Y, v.bounds.W, at})
	lower = v.child(Rect{v.bounds.X, v.bounds.Y + at, v.bounds.W, v.bounds.H - at})
	v.consume(2)
	return upper, lower, nil
}

// SubViewMut narrows the view to a single region, consuming the parent.
// Equivalent to ViewMutMultiple with one region.
func (v *ViewMut[P]) SubViewMut(r Rect) (*ViewMut[P], error) {
	children, err := v.ViewMutMultiple([]Rect{r})
	if err != nil {
		return nil, err
	}
	return children[0], nil
}

// ViewMutMultiple carves the view into one exclusive child per requested
// region, in request order, consuming the parent.
//
// Checks run in two phases, all-or-nothing: first every region is bounds-
// checked against the parent's extent (ErrOutOfBounds), then every pair is
// tested for axis-aligned intersection (ErrOverlappingRegions). On any
// failure no views are granted and the parent remains usable. The pairwise
// phase is O(N²); N is caller-bounded and typically small.
func (v *ViewMut[P]) ViewMutMultiple(regions []Rect) ([]*ViewMut[P], error) {
	if err := v.usable(); err != nil {
		return nil, err
	}
	for i, r := range regions {
		if !fits(r, v.bounds.W, v.bounds.H) {
			return nil, fmt.Errorf("%w: region %d (%d,%d %d×%d) in %d×%d view",
				ErrOutOfBounds, i, r.X, r.Y, r.W, r.H, v.bounds.W, v.bounds.H)
		}
	}
	for i := range regions {
		for j := i + 1; j < len(regions); j++ {
			if regions[i].Overlaps(regions[j]) {
				return nil, fmt.Errorf("%w: regions %d and %d", ErrOverlappingRegions, i, j)
			}
		}
	}
	children := make([]*ViewMut[P], len(regions))
	for i, r := range regions {
		children[i] = v.child(v.asView().abs(r))
	}
	v.consume(len(regions))
	return children, nil
}

// consume marks the parent consumed and transfers its single live count to
// n children. The adjustment is one atomic add, so exclusivity moves from
// parent to children with no intermediate unowned state.
func (v *ViewMut[P]) consume(n int) {
	v.consumed = true
	v.live.Add(int32(n) - 1)
}

// Fill writes p into every pixel of the view. Complexity: O(W×H).
func (v *ViewMut[P]) Fill(p P) error {
	if err := v.usable(); err != nil {
		return err
	}
	view := v.asView()
	for y := Dimension(0); y < view.bounds.H; y++ {
		row := view.row(y)
		for x := range row {
			row[x] = p
		}
	}
	return nil
}

// CopyFrom copies src's pixels into this view, row by row. Returns
// ErrDimensionMismatch unless the extents are equal. Complexity: O(W×H).
func (v *ViewMut[P]) CopyFrom(src View[P]) error {
	if err := v.usable(); err != nil {
		return err
	}
	if v.bounds.W != src.bounds.W || v.bounds.H != src.bounds.H {
		return fmt.Errorf("%w: dst %d×%d, src %d×%d",
			ErrDimensionMismatch, v.bounds.W, v.bounds.H, src.bounds.W, src.bounds.H)
	}
	dst := v.asView()
	for y := Dimension(0); y < dst.bounds.H; y++ {
		copy(dst.row(y), src.row(y))
	}
	return nil
}

// SwapWith exchanges the contents of this view and other, which must have
// equal extents (ErrDimensionMismatch otherwise). Both handles must be live.
// Complexity: O(W×H).
func (v *ViewMut[P]) SwapWith(other *ViewMut[P]) error {
	if err := v.usable(); err != nil {
		return err
	}
	if err := other.usable(); err != nil {
		return err
	}
	if v.bounds.W != other.bounds.W || v.bounds.H != other.bounds.H {
		return fmt.Errorf("%w: %d×%d vs %d×%d",
			ErrDimensionMismatch, v.bounds.W, v.bounds.H, other.bounds.W, other.bounds.H)
	}
	a, b := v.asView(), other.asView()
	for y := Dimension(0); y < a.bounds.H; y++ {
		ra, rb := a.row(y), b.row(y)
		for x := range ra {
			ra[x], rb[x] = rb[x], ra[x]
		}
	}
	return nil
}
