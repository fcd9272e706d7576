// Package stdimage bridges pict buffers and the standard library image
// types.
//
// What:
//
//   - FromImage: normalize any image.Image into an owned RGBA8 buffer,
//     using golang.org/x/image/draw for the color-model conversion.
//   - ToNRGBA / ToGray: copy a pict view into the matching stdlib type.
//
// Why:
//
//   - The stdlib ecosystem (decoders, font rendering, x/image scalers)
//     speaks image.Image; these adapters are the only place that world and
//     the zero-copy view world meet. Adapters always copy: the two sides
//     have different ownership models.
package stdimage
