package buffer

import (
	"fmt"
	"math"
	"math/bits"
	"sync/atomic"

	"github.com/katalvlaran/pict/pixel"
)

// Buffer is exclusively-owned, contiguous, row-major pixel storage with
// explicit dimensions. It is the sole owner of its allocation; every View and
// ViewMut derived from it aliases that allocation without copying.
//
// A Buffer must not be copied after first use (it carries the exclusivity
// token for its mutable views).
type Buffer[P pixel.Format] struct {
	pix    []P
	width  Dimension
	height Dimension

	// live counts the exclusive (ViewMut) handles currently outstanding.
	// Consumed parents hold no count; released children return theirs.
	live atomic.Int32
}

// storageCount validates width*height*pixelSize against the addressable range
// and returns the pixel count. Failure modes are distinguished: arithmetic
// overflow yields ErrDimensionOverflow, a representable but unindexable size
// yields ErrAllocate.
func storageCount[P pixel.Format](width, height Dimension) (int, error) {
	carry, pixels := bits.Mul64(uint64(width), uint64(height))
	if carry != 0 {
		return 0, fmt.Errorf("%w: %d×%d pixels", ErrDimensionOverflow, width, height)
	}
	carry, bytes := bits.Mul64(pixels, uint64(pixel.Size[P]()))
	if carry != 0 {
		return 0, fmt.Errorf("%w: %d×%d×%d bytes", ErrDimensionOverflow, width, height, pixel.Size[P]())
	}
	if bytes > uint64(math.MaxInt) {
		return 0, fmt.Errorf("%w: %d bytes", ErrAllocate, bytes)
	}
	return int(pixels), nil
}

// New allocates a zero-filled width×height buffer.
// Returns ErrDimensionOverflow if width*height*pixelSize cannot be
// represented, ErrAllocate if the byte size exceeds the addressable range.
// Complexity: O(W×H) for the zeroed allocation.
func New[P pixel.Format](width, height Dimension) (*Buffer[P], error) {
	count, err := storageCount[P](width, height)
	if err != nil {
		return nil, err
	}
	return &Buffer[P]{pix: make([]P, count), width: width, height: height}, nil
}

// FromBytes adopts data as width×height pixel storage without copying.
// The buffer aliases data; the caller must not retain overlapping mutable
// access to it. Returns ErrLengthMismatch unless len(data) is exactly
// width*height*pixelSize, or pixel.ErrTypeMismatch if data is misaligned for P.
// Complexity: O(1).
func FromBytes[P pixel.Format](data []byte, width, height Dimension) (*Buffer[P], error) {
	count, err := storageCount[P](width, height)
	if err != nil {
		return nil, err
	}
	if len(data) != count*pixel.Size[P]() {
		return nil, fmt.Errorf("%w: got %d bytes, want %d for %d×%d %s",
			ErrLengthMismatch, len(data), count*pixel.Size[P](), width, height, formatName[P]())
	}
	pix, err := pixel.FromBytes[P](data)
	if err != nil {
		return nil, err
	}
	return &Buffer[P]{pix: pix, width: width, height: height}, nil
}

// FromPixels adopts an existing pixel slice as width×height storage without
// copying. Returns ErrLengthMismatch unless len(pix) == width*height.
// Complexity: O(1).
func FromPixels[P pixel.Format](pix []P, width, height Dimension) (*Buffer[P], error) {
	count, err := storageCount[P](width, height)
	if err != nil {
		return nil, err
	}
	if len(pix) != count {
		return nil, fmt.Errorf("%w: got %d pixels, want %d for %d×%d",
			ErrLengthMismatch, len(pix), count, width, height)
	}
	return &Buffer[P]{pix: pix, width: width, height: height}, nil
}

// Width reports the buffer width in pixels.
func (b *Buffer[P]) Width() Dimension { return b.width }

// Height reports the buffer height in pixels.
func (b *Buffer[P]) Height() Dimension { return b.height }

// Dimensions reports (width, height).
func (b *Buffer[P]) Dimensions() (Dimension, Dimension) { return b.width, b.height }

// Size reports the total pixel count.
func (b *Buffer[P]) Size() int { return len(b.pix) }

// Bounds reports the full-extent rectangle of the buffer.
func (b *Buffer[P]) Bounds() Rect { return Rect{W: b.width, H: b.height} }

// Bytes exposes the raw storage as bytes without copying. The slice aliases
// the buffer; mutating it while exclusive views are live is the caller's
// responsibility.
func (b *Buffer[P]) Bytes() []byte { return pixel.Bytes(b.pix) }

// PixelAt reads the pixel at pt. Returns ErrOutOfBounds if pt is outside the
// buffer. Complexity: O(1).
func (b *Buffer[P]) PixelAt(pt Point) (P, error) {
	return b.View().PixelAt(pt)
}

// View produces a read-only, full-extent window into the buffer. Views are
// untracked: any number may coexist and overlap.
func (b *Buffer[P]) View() View[P] {
	return View[P]{pix: b.pix, stride: b.width, bounds: b.Bounds()}
}

// ViewMut produces the exclusive, full-extent window that is the entry point
// for all mutation and splitting. It fails with ErrBufferBorrowed while any
// exclusive handle from a previous ViewMut call is still live; Release every
// handle (or child handle) to re-enable acquisition.
func (b *Buffer[P]) ViewMut() (*ViewMut[P], error) {
	if !b.live.CompareAndSwap(0, 1) {
		return nil, fmt.Errorf("%w: release all outstanding mutable views first", ErrBufferBorrowed)
	}
	return &ViewMut[P]{pix: b.pix, stride: b.width, bounds: b.Bounds(), live: &b.live}, nil
}

// formatName names P for error messages.
func formatName[P pixel.Format]() string {
	var zero P
	return zero.Name()
}
