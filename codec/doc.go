// Package codec defines the boundary contract between the pixel-buffer core
// and concrete image format implementations.
//
// What:
//
//   - Format: tag naming which pixel format a decode resolved to.
//   - Image: a decoded buffer tagged with its Format (exactly one of the
//     typed buffer fields is set).
//   - Decoder: the capability of turning encoded bytes into a tagged Image.
//
// Why:
//
//   - Decoders learn the pixel format from the byte stream, not from the
//     caller, so their result must carry the resolved format as data.
//   - Encoders are generic functions in the codec packages themselves (a Go
//     interface cannot carry a generic method); by contract they depend only
//     on the View read surface, so any sub-view encodes without copying.
//
// Codec packages (png, qoi) are selected at build time by importing them;
// a codec that is not imported is simply absent from the build.
//
// Errors:
//
//   - ErrDecode / ErrEncode: the base sentinels every codec failure wraps,
//     so callers can match any codec error with errors.Is while still
//     reading the format-specific reason.
package codec
