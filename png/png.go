package png

import (
	"errors"

	"github.com/klauspost/compress/zlib"

	"github.com/katalvlaran/pict/pixel"
)

var (
	// ErrIndexed indicates an indexed-color (palette) PNG, which this
	// package does not support.
	ErrIndexed = errors.New("png: indexed color is unsupported")
	// ErrUnsupported indicates a valid PNG feature outside this package's
	// subset: interlacing, or a bit depth other than 8.
	ErrUnsupported = errors.New("png: unsupported feature")
)

// Pixel constrains the pixel formats the PNG encoder accepts.
type Pixel interface {
	pixel.Format
	pixel.Luma8 | pixel.LumaAlpha8 | pixel.RGB8 | pixel.RGBA8
}

// Filter selects the PNG row filter the encoder applies to every row.
type Filter uint8

const (
	// FilterNone stores rows unfiltered.
	FilterNone Filter = 0
	// FilterSub predicts each byte from its left neighbor.
	FilterSub Filter = 1
	// FilterUp predicts each byte from the byte above.
	FilterUp Filter = 2
	// FilterAverage predicts from the mean of left and above.
	FilterAverage Filter = 3
	// FilterPaeth predicts with the Paeth heuristic.
	FilterPaeth Filter = 4
)

// Options configures the encoder.
type Options struct {
	// Filter is applied uniformly to every row.
	Filter Filter
	// Level is the zlib compression level.
	Level int
}

// DefaultOptions returns the encoder defaults: Paeth filtering at the zlib
// default compression level.
func DefaultOptions() Options {
	return Options{Filter: FilterPaeth, Level: zlib.DefaultCompression}
}

var signature = [8]byte{137, 'P', 'N', 'G', '\r', '\n', 26, '\n'}

// PNG color types for the supported 8-bit formats.
const (
	colorGray      = 0
	colorRGB       = 2
	colorIndexed   = 3
	colorGrayAlpha = 4
	colorRGBA      = 6
)

// channelCount maps a supported color type to its channel count; 0 marks an
// unsupported type.
func channelCount(colorType uint8) int {
	switch colorType {
	case colorGray:
		return 1
	case colorGrayAlpha:
		return 2
	case colorRGB:
		return 3
	case colorRGBA:
		return 4
	default:
		return 0
	}
}
