package buffer_test

import (
	"testing"

	"github.com/katalvlaran/pict/buffer"
)

// TestRectContains exercises point containment at the half-open edges.
func TestRectContains(t *testing.T) {
	r := buffer.Rect{X: 2, Y: 3, W: 4, H: 2}
	in := []buffer.Point{{X: 2, Y: 3}, {X: 5, Y: 4}, {X: 3, Y: 3}}
	for _, pt := range in {
		if !r.Contains(pt) {
			t.Errorf("Contains(%v) = false; want true", pt)
		}
	}
	out := []buffer.Point{{X: 1, Y: 3}, {X: 6, Y: 3}, {X: 2, Y: 5}, {X: 0, Y: 0}}
	for _, pt := range out {
		if r.Contains(pt) {
			t.Errorf("Contains(%v) = true; want false", pt)
		}
	}
}

// TestRectContainsRect exercises rectangle containment, including the exact
// fit and zero-extent cases.
func TestRectContainsRect(t *testing.T) {
	parent := buffer.Rect{W: 4, H: 4}
	cases := []struct {
		name string
		r    buffer.Rect
		want bool
	}{
		{"ExactFit", buffer.Rect{W: 4, H: 4}, true},
		{"Interior", buffer.Rect{X: 1, Y: 1, W: 2, H: 2}, true},
		{"TouchingEdge", buffer.Rect{X: 2, Y: 2, W: 2, H: 2}, true},
		{"WidthSpill", buffer.Rect{X: 2, Y: 0, W: 3, H: 1}, false},
		{"HeightSpill", buffer.Rect{X: 0, Y: 3, W: 1, H: 2}, false},
		{"EmptyAtCorner", buffer.Rect{X: 4, Y: 4}, true},
		{"EmptyBeyond", buffer.Rect{X: 5, Y: 0}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := parent.ContainsRect(tc.r); got != tc.want {
				t.Errorf("ContainsRect(%v) = %v; want %v", tc.r, got, tc.want)
			}
		})
	}
}

// TestRectOverlaps exercises the axis-aligned intersection predicate,
// including containment and edge-touching cases.
func TestRectOverlaps(t *testing.T) {
	cases := []struct {
		name string
		a, b buffer.Rect
		want bool
	}{
		{"DisjointDiagonal", buffer.Rect{W: 2, H: 2}, buffer.Rect{X: 2, Y: 2, W: 2, H: 2}, false},
		{"SharedEdge", buffer.Rect{W: 2, H: 4}, buffer.Rect{X: 2, Y: 0, W: 2, H: 4}, false},
		{"Contained", buffer.Rect{W: 3, H: 3}, buffer.Rect{X: 1, Y: 1, W: 2, H: 2}, true},
		{"PartialCorner", buffer.Rect{W: 3, H: 3}, buffer.Rect{X: 2, Y: 2, W: 3, H: 3}, true},
		{"EmptyNeverOverlaps", buffer.Rect{W: 0, H: 5}, buffer.Rect{W: 5, H: 5}, false},
		{"SelfOverlap", buffer.Rect{X: 1, Y: 1, W: 2, H: 2}, buffer.Rect{X: 1, Y: 1, W: 2, H: 2}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Overlaps(tc.b); got != tc.want {
				t.Errorf("%v.Overlaps(%v) = %v; want %v", tc.a, tc.b, got, tc.want)
			}
			if got := tc.b.Overlaps(tc.a); got != tc.want {
				t.Errorf("Overlaps is not symmetric for %v, %v", tc.a, tc.b)
			}
		})
	}
}

// TestRectAccessors covers the small helpers.
func TestRectAccessors(t *testing.T) {
	r := buffer.NewRect(buffer.Point{X: 1, Y: 2}, 3, 4)
	if w, h := r.Dimensions(); w != 3 || h != 4 {
		t.Errorf("Dimensions = (%d,%d); want (3,4)", w, h)
	}
	if r.Empty() {
		t.Error("Empty() = true for a 3×4 rect")
	}
	if !(buffer.Rect{W: 0, H: 7}).Empty() {
		t.Error("Empty() = false for a zero-width rect")
	}
}
