//go:build pictdim64

package buffer

// Dimension is the per-axis coordinate type. This build carries 64-bit axes,
// selected by the pictdim64 build tag.
type Dimension = uint64
