// Package qoi implements the QOI ("Quite OK Image") format, version 1.0,
// over the pict view/buffer contract.
//
// What:
//
//   - Decode: full streaming decode of RGB and RGBA QOI images into a
//     format-tagged codec.Image.
//   - Encode: generic encoder over any read view of RGB8 or RGBA8 pixels —
//     a sub-view encodes directly, without being copied into a buffer first.
//
// Why:
//
//   - QOI is a one-pass, byte-oriented lossless codec: the natural
//     round-trip test bed for the zero-copy view contract.
//
// Wire format (summary): a 14-byte header ("qoif", big-endian width and
// height, channel count 3|4, colorspace), a stream of RGB / RGBA / INDEX /
// DIFF / LUMA / RUN chunks against a rolling 64-entry color index, and an
// 8-byte end marker.
//
// Complexity: Encode and Decode are O(W×H) single passes.
//
// Errors: every failure wraps codec.ErrDecode or codec.ErrEncode with a
// reason (short data, bad magic, bad header field, truncated stream,
// missing end marker, run past the pixel count).
package qoi
