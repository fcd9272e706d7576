package qoi

import (
	"encoding/binary"
	"fmt"

	"github.com/katalvlaran/pict/buffer"
	"github.com/katalvlaran/pict/codec"
	"github.com/katalvlaran/pict/pixel"
)

// Decoder decodes QOI streams. It is stateless and satisfies codec.Decoder.
type Decoder struct{}

// Decode decodes a complete QOI stream into a format-tagged image: channel
// count 3 resolves to an RGB8 buffer, 4 to an RGBA8 buffer.
//
// Every malformed-input failure wraps codec.ErrDecode with a reason. The
// pixel stream must cover the advertised width×height exactly and be
// followed by the 8-byte end marker.
func (Decoder) Decode(data []byte) (*codec.Image, error) {
	if len(data) < headerLen+markerLen {
		return nil, decodeErr("%d bytes is shorter than header plus end marker", len(data))
	}
	if [4]byte(data[:4]) != magic {
		return nil, decodeErr("bad magic %q", data[:4])
	}
	width := binary.BigEndian.Uint32(data[4:8])
	height := binary.BigEndian.Uint32(data[8:12])
	channels := data[12]
	colorspace := data[13]
	if width == 0 || height == 0 {
		return nil, decodeErr("zero dimension %d×%d", width, height)
	}
	if channels != 3 && channels != 4 {
		return nil, decodeErr("channel count %d", channels)
	}
	if colorspace > uint8(ColorspaceLinear) {
		return nil, decodeErr("colorspace %d", colorspace)
	}

	total := uint64(width) * uint64(height)
	// A QOI byte can expand to at most maxRun pixels, so anything beyond
	// this bound is a forged header, not a large image.
	if total > uint64(len(data)-headerLen-markerLen)*maxRun {
		return nil, decodeErr("%d pixels cannot fit in %d stream bytes", total, len(data))
	}

	pix, err := decodePixels(data[headerLen:len(data)-markerLen], total)
	if err != nil {
		return nil, err
	}
	if [markerLen]byte(data[len(data)-markerLen:]) != endMarker {
		return nil, decodeErr("missing end marker")
	}

	return tagImage(pix, channels, buffer.Dimension(width), buffer.Dimension(height))
}

// decodePixels runs the chunk stream, producing exactly total pixels.
func decodePixels(stream []byte, total uint64) ([]rgba, error) {
	pix := make([]rgba, total)
	var index [64]rgba
	px := rgba{a: 0xff}

	out := 0
	pos := 0
	for uint64(out) < total {
		if pos >= len(stream) {
			return nil, decodeErr("stream truncated at pixel %d of %d", out, total)
		}
		b := stream[pos]
		pos++

		switch {
		case b == opRGB:
			if pos+3 > len(stream) {
				return nil, decodeErr("truncated RGB chunk")
			}
			px.r, px.g, px.b = stream[pos], stream[pos+1], stream[pos+2]
			pos += 3
		case b == opRGBA:
			if pos+4 > len(stream) {
				return nil, decodeErr("truncated RGBA chunk")
			}
			px = rgba{stream[pos], stream[pos+1], stream[pos+2], stream[pos+3]}
			pos += 4
		case b&0xc0 == opIndex:
			px = index[b&0x3f]
		case b&0xc0 == opDiff:
			px.r += b>>4&0x03 - 2
			px.g += b>>2&0x03 - 2
			px.b += b&0x03 - 2
		case b&0xc0 == opLuma:
			if pos >= len(stream) {
				return nil, decodeErr("truncated LUMA chunk")
			}
			dg := b&0x3f - 32
			b2 := stream[pos]
			pos++
			px.r += dg + b2>>4&0x0f - 8
			px.g += dg
			px.b += dg + b2&0x0f - 8
		default: // opRun
			run := int(b&0x3f) + 1
			if uint64(out+run) > total {
				return nil, decodeErr("run of %d past pixel count %d", run, total)
			}
			for i := 0; i < run; i++ {
				pix[out] = px
				out++
			}
			continue
		}

		index[indexPos(px)] = px
		pix[out] = px
		out++
	}
	if pos != len(stream) {
		return nil, decodeErr("%d trailing bytes after last pixel", len(stream)-pos)
	}
	return pix, nil
}

// tagImage narrows the decoded rgba plane to the advertised channel count and
// wraps it in a tagged image.
func tagImage(pix []rgba, channels uint8, width, height buffer.Dimension) (*codec.Image, error) {
	if channels == 4 {
		out := make([]pixel.RGBA8, len(pix))
		for i, p := range pix {
			out[i] = pixel.RGBA8{R: p.r, G: p.g, B: p.b, A: p.a}
		}
		buf, err := buffer.FromPixels(out, width, height)
		if err != nil {
			return nil, fmt.Errorf("%w: qoi: %w", codec.ErrDecode, err)
		}
		return &codec.Image{Format: codec.FormatRGBA8, RGBA8: buf}, nil
	}

	out := make([]pixel.RGB8, len(pix))
	for i, p := range pix {
		out[i] = pixel.RGB8{R: p.r, G: p.g, B: p.b}
	}
	buf, err := buffer.FromPixels(out, width, height)
	if err != nil {
		return nil, fmt.Errorf("%w: qoi: %w", codec.ErrDecode, err)
	}
	return &codec.Image{Format: codec.FormatRGB8, RGB8: buf}, nil
}

func decodeErr(format string, args ...any) error {
	return fmt.Errorf("%w: qoi: %s", codec.ErrDecode, fmt.Sprintf(format, args...))
}
