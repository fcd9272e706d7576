// Package buffer provides owned pixel storage and the family of zero-copy
// views over it, including runtime-checked splitting into multiple
// simultaneously-live, independently mutable sub-regions.
//
// What:
//
//   - Buffer[P]: exclusively-owned, contiguous, row-major pixel storage.
//   - View[P]: read-only rectangular window; many may coexist and overlap.
//   - ViewMut[P]: exclusive rectangular window; the set of live ViewMut
//     footprints over one Buffer is pairwise disjoint at every instant.
//   - SplitXAtMut / SplitYAtMut / ViewMutMultiple: consume a parent ViewMut
//     and grant its exclusivity to disjoint children, atomically.
//   - Row-major lazy iteration over pixels, with or without coordinates.
//
// Why:
//
//   - Tile-parallel image work: hand each disjoint child to its own
//     goroutine with no locks and no copies.
//   - Codec and drawing layers operate on views, so a sub-region encodes or
//     renders without being repacked first.
//
// Exclusivity model:
//
//	Go has no compile-time borrow checking, so exclusivity is enforced with
//	a runtime token. A Buffer hands out at most one live ViewMut tree at a
//	time; splitting consumes the parent (permanently — later access fails
//	with ErrViewConsumed) and activates the children; Release returns a
//	child's share. Buffer.ViewMut fails with ErrBufferBorrowed until every
//	handle of the previous tree is released. Read-only Views are untracked:
//	overlap between readers has no safety implication.
//
// Complexity:
//
//   - PixelAt / PixelMut / Row / splits: O(1).
//   - ViewMutMultiple: O(N²) pairwise disjointness checks; N is
//     caller-bounded and typically small.
//   - Iteration: O(W×H), bounds validated once up front.
//
// Errors:
//
//   - ErrDimensionOverflow: width×height×pixel-size not representable.
//   - ErrAllocate: storage size exceeds the addressable range.
//   - ErrLengthMismatch: supplied data does not match dimensions exactly.
//   - ErrOutOfBounds: coordinates or region outside the view's extent.
//   - ErrOutOfRange: split coordinate beyond the extent.
//   - ErrOverlappingRegions: two requested regions share pixels.
//   - ErrBufferBorrowed / ErrViewConsumed / ErrViewReleased: exclusivity
//     token violations.
//   - ErrDimensionMismatch: CopyFrom/SwapWith extents differ.
package buffer
