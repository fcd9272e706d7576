// Package png implements the PNG subset the pict core needs: 8-bit
// grayscale, grayscale+alpha, RGB and RGBA images, critical chunks only.
//
// What:
//
//   - Decode: IHDR/IDAT/IEND parsing with CRC verification, all five row
//     filters, resolving to a format-tagged codec.Image. Ancillary chunks
//     are skipped.
//   - Encode: generic encoder over any read view of an 8-bit format, with a
//     configurable row filter and compression level. Sub-views encode
//     without copying.
//
// Why:
//
//   - PNG is the lossless interchange baseline; the DEFLATE stage rides on
//     github.com/klauspost/compress/zlib.
//
// Options:
//
//   - Options.Filter: row filter applied uniformly on encode (default Paeth).
//   - Options.Level: zlib compression level (default zlib.DefaultCompression).
//
// Errors:
//
//   - ErrIndexed: indexed-color PNGs are not supported.
//   - ErrUnsupported: interlacing or bit depths other than 8.
//   - All failures additionally wrap codec.ErrDecode / codec.ErrEncode.
package png
