//go:build !pictdim64

package buffer

// Dimension is the per-axis coordinate type. Builds default to 32-bit axes;
// compiling with the pictdim64 build tag selects 64-bit axes instead. Exactly
// one width is active per build.
type Dimension = uint32
