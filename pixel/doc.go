// Package pixel defines the catalog of compact pixel formats and the checked,
// zero-copy reinterpretation of raw bytes as typed pixel slices.
//
// What:
//
//   - Format: the constraint every pixel type satisfies (fixed size, known
//     channel count, comparable bit pattern).
//   - Catalog: Luma8, LumaAlpha8, RGB8, RGBA8 plus the 16-bit extensions
//     RGB16 and RGBA16.
//   - FromBytes / Bytes: reinterpret a byte region as typed pixels (and back)
//     without copying, after validating length and alignment.
//
// Why:
//
//   - Codecs produce and consume raw bytes; buffers store typed pixels.
//     A checked cast between the two avoids a full copy per decode/encode.
//   - Keeping the validation here means the buffer and codec packages never
//     touch unsafe themselves.
//
// Complexity:
//
//   - Size / Align / Channels: O(1).
//   - FromBytes / Bytes: O(1) — no element is visited.
//
// Errors:
//
//   - ErrTypeMismatch: byte length is not a multiple of the pixel size, or
//     the region's base address violates the pixel type's alignment.
package pixel
