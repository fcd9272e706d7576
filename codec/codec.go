package codec

import (
	"errors"

	"github.com/katalvlaran/pict/buffer"
	"github.com/katalvlaran/pict/pixel"
)

var (
	// ErrDecode is the base error wrapped by every decoder failure.
	ErrDecode = errors.New("codec: decode failed")
	// ErrEncode is the base error wrapped by every encoder failure.
	ErrEncode = errors.New("codec: encode failed")
)

// Format tags which pixel format a decoded image resolved to.
type Format int

const (
	// FormatLuma8 tags a single-channel 8-bit image.
	FormatLuma8 Format = iota
	// FormatLumaAlpha8 tags a two-channel 8-bit image.
	FormatLumaAlpha8
	// FormatRGB8 tags a three-channel 8-bit image.
	FormatRGB8
	// FormatRGBA8 tags a four-channel 8-bit image.
	FormatRGBA8
)

// String names the tag.
func (f Format) String() string {
	switch f {
	case FormatLuma8:
		return "Luma8"
	case FormatLumaAlpha8:
		return "LumaAlpha8"
	case FormatRGB8:
		return "RGB8"
	case FormatRGBA8:
		return "RGBA8"
	default:
		return "unknown"
	}
}

// Channels reports the channel count of the tagged format.
func (f Format) Channels() int {
	switch f {
	case FormatLuma8:
		return 1
	case FormatLumaAlpha8:
		return 2
	case FormatRGB8:
		return 3
	case FormatRGBA8:
		return 4
	default:
		return 0
	}
}

// Image is a decoded buffer tagged with the pixel format the encoded content
// resolved to. Exactly one typed field is non-nil, the one matching Format.
type Image struct {
	Format Format

	Luma8      *buffer.Buffer[pixel.Luma8]
	LumaAlpha8 *buffer.Buffer[pixel.LumaAlpha8]
	RGB8       *buffer.Buffer[pixel.RGB8]
	RGBA8      *buffer.Buffer[pixel.RGBA8]
}

// Dimensions reports the decoded image's (width, height).
func (img *Image) Dimensions() (buffer.Dimension, buffer.Dimension) {
	switch img.Format {
	case FormatLuma8:
		return img.Luma8.Dimensions()
	case FormatLumaAlpha8:
		return img.LumaAlpha8.Dimensions()
	case FormatRGB8:
		return img.RGB8.Dimensions()
	case FormatRGBA8:
		return img.RGBA8.Dimensions()
	default:
		return 0, 0
	}
}

// Decoder is the capability of decoding an encoded byte stream into a
// format-tagged Image. Malformed input fails with an error wrapping
// ErrDecode.
type Decoder interface {
	Decode(data []byte) (*Image, error)
}
