package qoi

import (
	"github.com/katalvlaran/pict/pixel"
)

// Colorspace is the purely-informative colorspace field of the QOI header.
type Colorspace uint8

const (
	// ColorspaceSRGB marks sRGB channels with linear alpha.
	ColorspaceSRGB Colorspace = 0
	// ColorspaceLinear marks all channels linear.
	ColorspaceLinear Colorspace = 1
)

// Options configures the encoder.
type Options struct {
	// Colorspace is written into the header verbatim; it does not affect
	// the encoded pixel data.
	Colorspace Colorspace
}

// DefaultOptions returns the encoder defaults: sRGB colorspace.
func DefaultOptions() Options {
	return Options{Colorspace: ColorspaceSRGB}
}

// Pixel constrains the pixel formats QOI can encode.
type Pixel interface {
	pixel.Format
	pixel.RGB8 | pixel.RGBA8
}

const (
	headerLen = 14
	markerLen = 8

	opIndex = 0x00 // 0b00xxxxxx 6-bit index
	opDiff  = 0x40 // 0b01xxxxxx 3×2-bit channel diffs
	opLuma  = 0x80 // 0b10xxxxxx 6-bit green diff + second byte
	opRun   = 0xc0 // 0b11xxxxxx run length 1..62
	opRGB   = 0xfe
	opRGBA  = 0xff

	maxRun = 62 // 0xfe and 0xff would collide with opRGB/opRGBA
)

var magic = [4]byte{'q', 'o', 'i', 'f'}

// endMarker terminates every QOI stream: seven zero bytes and a one.
var endMarker = [markerLen]byte{0, 0, 0, 0, 0, 0, 0, 1}

// rgba is the rolling decoder/encoder pixel state.
type rgba struct {
	r, g, b, a uint8
}

// indexPos is the QOI index hash: (r*3 + g*5 + b*7 + a*11) % 64.
func indexPos(p rgba) int {
	return (int(p.r)*3 + int(p.g)*5 + int(p.b)*7 + int(p.a)*11) % 64
}
