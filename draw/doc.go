// Package draw renders primitive shapes directly onto mutable views.
//
// What:
//
//   - Line: integer Bresenham segment, both endpoints inclusive.
//   - Circumference / Disc: midpoint circle outline and filled circle.
//   - FillRect: rectangular fill through the row interface.
//
// Every primitive takes a color source func(Point) P, so gradients and
// patterns cost nothing extra over a constant color.
//
// Why:
//
//   - Drawing exercises the exclusive-view write path without pulling in an
//     image-processing dependency; it composes with splitting, so disjoint
//     tiles can be drawn concurrently.
//
// Bounds policy: Line and FillRect reject out-of-bounds input with
// buffer.ErrOutOfBounds (nothing is clamped); Circumference and Disc clip to
// the view, since a partially visible circle is well-defined.
package draw
