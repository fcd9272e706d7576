package draw

import (
	"fmt"

	"github.com/katalvlaran/pict/buffer"
	"github.com/katalvlaran/pict/pixel"
)

// Source computes the pixel value for a coordinate, enabling gradients and
// patterns as well as constant colors.
type Source[P pixel.Format] func(buffer.Point) P

// Uniform wraps a constant color as a Source.
func Uniform[P pixel.Format](p P) Source[P] {
	return func(buffer.Point) P { return p }
}

// Line draws a segment from start to end, both endpoints inclusive, using
// integer Bresenham stepping. Returns buffer.ErrOutOfBounds if either
// endpoint lies outside the view; token-state errors propagate from the
// view. Complexity: O(max(Δx, Δy)).
func Line[P pixel.Format](v *buffer.ViewMut[P], start, end buffer.Point, src Source[P]) error {
	if _, err := v.View(); err != nil { // token check before endpoint validation
		return err
	}
	b := v.Bounds()
	if !b.Contains(start) || !b.Contains(end) {
		return fmt.Errorf("%w: line (%d,%d)→(%d,%d) in %d×%d view",
			buffer.ErrOutOfBounds, start.X, start.Y, end.X, end.Y, b.W, b.H)
	}

	x0, y0 := int64(start.X), int64(start.Y)
	x1, y1 := int64(end.X), int64(end.Y)
	dx, sx := delta(x0, x1)
	dy, sy := delta(y0, y1)
	dy = -dy
	e := dx + dy

	for {
		pt := buffer.Point{X: buffer.Dimension(x0), Y: buffer.Dimension(y0)}
		px, err := v.PixelMut(pt)
		if err != nil {
			return err
		}
		*px = src(pt)
		if x0 == x1 && y0 == y1 {
			return nil
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

// delta returns |b-a| and the unit step from a toward b.
func delta(a, b int64) (int64, int64) {
	if b >= a {
		return b - a, 1
	}
	return a - b, -1
}

// FillRect fills r (view-relative) through the row interface. Returns
// buffer.ErrOutOfBounds if r exceeds the view; the region is never clamped.
// Complexity: O(r.W×r.H).
func FillRect[P pixel.Format](v *buffer.ViewMut[P], r buffer.Rect, src Source[P]) error {
	if _, err := v.View(); err != nil {
		return err
	}
	if !v.Bounds().ContainsRect(r) {
		return fmt.Errorf("%w: rect (%d,%d %d×%d) in %d×%d view",
			buffer.ErrOutOfBounds, r.X, r.Y, r.W, r.H, v.Width(), v.Height())
	}
	for y := r.Y; y < r.Y+r.H; y++ {
		row, err := v.RowMut(y)
		if err != nil {
			return err
		}
		for x := r.X; x < r.X+r.W; x++ {
			row[x] = src(buffer.Point{X: x, Y: y})
		}
	}
	return nil
}

// Circumference draws the outline of the circle with the given center and
// radius, clipped to the view. The center itself may lie outside the view.
// Complexity: O(radius).
func Circumference[P pixel.Format](v *buffer.ViewMut[P], center buffer.Point, radius buffer.Dimension, src Source[P]) error {
	if _, err := v.View(); err != nil { // token check up front
		return err
	}
	cx, cy := int64(center.X), int64(center.Y)
	relX, relY := int64(0), int64(radius)
	// Midpoint circle against (radius + 1/2)² ≈ radius² + radius.
	limit := int64(radius)*int64(radius) + int64(radius)

	for relX <= relY {
		for _, p := range [8][2]int64{
			{cx + relX, cy + relY}, {cx + relX, cy - relY},
			{cx - relX, cy + relY}, {cx - relX, cy - relY},
			{cx + relY, cy + relX}, {cx + relY, cy - relX},
			{cx - relY, cy + relX}, {cx - relY, cy - relX},
		} {
			if err := plotClipped(v, p[0], p[1], src); err != nil {
				return err
			}
		}
		relX++
		if relX*relX+relY*relY > limit {
			relY--
		}
	}
	return nil
}

// Disc draws the filled circle with the given center and radius, clipped to
// the view. Complexity: O(radius²).
func Disc[P pixel.Format](v *buffer.ViewMut[P], center buffer.Point, radius buffer.Dimension, src Source[P]) error {
	if _, err := v.View(); err != nil {
		return err
	}
	cx, cy := int64(center.X), int64(center.Y)
	r := int64(radius)
	limit := r*r + r

	for dy := -r; dy <= r; dy++ {
		half := int64(0)
		for half*half+dy*dy <= limit {
			half++
		}
		for dx := -half + 1; dx < half; dx++ {
			if err := plotClipped(v, cx+dx, cy+dy, src); err != nil {
				return err
			}
		}
	}
	return nil
}

// plotClipped writes one pixel if (x, y) lies inside the view, and skips it
// silently otherwise.
func plotClipped[P pixel.Format](v *buffer.ViewMut[P], x, y int64, src Source[P]) error {
	if x < 0 || y < 0 || x >= int64(v.Width()) || y >= int64(v.Height()) {
		return nil
	}
	pt := buffer.Point{X: buffer.Dimension(x), Y: buffer.Dimension(y)}
	px, err := v.PixelMut(pt)
	if err != nil {
		return err
	}
	*px = src(pt)
	return nil
}
