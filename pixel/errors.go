package pixel

import "errors"

// ErrTypeMismatch indicates a byte region cannot be reinterpreted as the
// requested pixel type: its length is not an exact multiple of the pixel
// size, or its base address violates the pixel type's alignment.
var ErrTypeMismatch = errors.New("pixel: byte region does not match pixel layout")
