package buffer

import "errors"

var (
	// ErrDimensionOverflow indicates width*height*pixelSize cannot be
	// represented without overflow.
	ErrDimensionOverflow = errors.New("buffer: dimensions overflow addressable size")
	// ErrAllocate indicates the computed storage size exceeds the range an
	// allocation can be indexed over on this platform.
	ErrAllocate = errors.New("buffer: pixel storage exceeds addressable size")
	// ErrLengthMismatch indicates supplied data does not match the requested
	// dimensions exactly.
	ErrLengthMismatch = errors.New("buffer: data length does not match dimensions")
	// ErrOutOfBounds indicates coordinates or a requested region lie outside
	// the view's extent.
	ErrOutOfBounds = errors.New("buffer: coordinates outside view bounds")
	// ErrOutOfRange indicates a split coordinate beyond the view's extent.
	ErrOutOfRange = errors.New("buffer: split coordinate outside view extent")
	// ErrOverlappingRegions indicates two requested regions of a multi-view
	// call share at least one pixel.
	ErrOverlappingRegions = errors.New("buffer: requested regions overlap")
	// ErrBufferBorrowed indicates an exclusive view into the buffer is still
	// live, so another one cannot be granted.
	ErrBufferBorrowed = errors.New("buffer: an exclusive view is still live")
	// ErrViewConsumed indicates the view was consumed by a split or
	// multi-view call and can no longer be used directly.
	ErrViewConsumed = errors.New("buffer: view was consumed by a split")
	// ErrViewReleased indicates the view's exclusivity was already released.
	ErrViewReleased = errors.New("buffer: view was already released")
	// ErrDimensionMismatch indicates two views of differing extents were
	// passed to an operation requiring equal extents.
	ErrDimensionMismatch = errors.New("buffer: view dimensions differ")
)
