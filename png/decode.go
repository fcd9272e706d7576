package png

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"io"
	"math"
	"math/bits"

	"github.com/klauspost/compress/zlib"

	"github.com/katalvlaran/pict/buffer"
	"github.com/katalvlaran/pict/codec"
	"github.com/katalvlaran/pict/pixel"
)

// Decoder decodes PNG streams. It is stateless and satisfies codec.Decoder.
type Decoder struct{}

// header is the parsed IHDR payload.
type header struct {
	width, height uint32
	bitDepth      uint8
	colorType     uint8
	interlace     uint8
}

// Decode decodes a complete PNG stream into a format-tagged image: color
// types gray, gray+alpha, RGB and RGBA resolve to Luma8, LumaAlpha8, RGB8
// and RGBA8 buffers respectively.
//
// Chunk CRCs are verified; ancillary chunks are skipped. Indexed color fails
// with ErrIndexed; interlacing and non-8-bit depths fail with
// ErrUnsupported. All failures wrap codec.ErrDecode.
func (Decoder) Decode(data []byte) (*codec.Image, error) {
	if len(data) < len(signature) || [8]byte(data[:8]) != signature {
		return nil, decodeErr("bad signature")
	}

	hdr, idat, err := readChunks(data[len(signature):])
	if err != nil {
		return nil, err
	}
	channels := channelCount(hdr.colorType)

	// Header fields are untrusted; the size products run through checked
	// arithmetic so a forged IHDR cannot wrap them.
	rowBytes64 := uint64(hdr.width) * uint64(channels)
	carry, rawTotal := bits.Mul64(uint64(hdr.height), rowBytes64+1)
	if carry != 0 || rawTotal > uint64(math.MaxInt) {
		return nil, decodeErr("%d×%d×%d exceeds addressable size", hdr.width, hdr.height, channels)
	}

	raw, err := inflate(idat)
	if err != nil {
		return nil, err
	}
	rowBytes := int(rowBytes64)
	if uint64(len(raw)) != rawTotal {
		return nil, decodeErr("inflated size %d, want %d for %d×%d×%d",
			len(raw), rawTotal, hdr.width, hdr.height, channels)
	}

	out := make([]byte, 0, len(raw)-int(hdr.height))
	var prev []byte
	for y := 0; y < int(hdr.height); y++ {
		line := raw[y*(1+rowBytes) : (y+1)*(1+rowBytes)]
		cur := line[1:]
		if !unfilterRow(Filter(line[0]), cur, prev, channels) {
			return nil, decodeErr("row %d: unknown filter %d", y, line[0])
		}
		out = append(out, cur...)
		prev = cur
	}

	w, h := buffer.Dimension(hdr.width), buffer.Dimension(hdr.height)
	switch hdr.colorType {
	case colorGray:
		return tagImage[pixel.Luma8](out, w, h)
	case colorGrayAlpha:
		return tagImage[pixel.LumaAlpha8](out, w, h)
	case colorRGB:
		return tagImage[pixel.RGB8](out, w, h)
	default:
		return tagImage[pixel.RGBA8](out, w, h)
	}
}

// readChunks walks the chunk stream, validating CRCs, and returns the parsed
// IHDR plus the concatenated IDAT payload.
func readChunks(rest []byte) (header, []byte, error) {
	var hdr header
	var idat []byte
	seenIHDR, seenIEND := false, false

	for !seenIEND {
		if len(rest) < 12 {
			return hdr, nil, decodeErr("truncated chunk stream")
		}
		length := binary.BigEndian.Uint32(rest[:4])
		if uint64(len(rest)) < 12+uint64(length) {
			return hdr, nil, decodeErr("chunk length %d past end of stream", length)
		}
		typ := string(rest[4:8])
		payload := rest[8 : 8+length]
		crc := binary.BigEndian.Uint32(rest[8+length : 12+length])
		if crc32.ChecksumIEEE(rest[4:8+length]) != crc {
			return hdr, nil, decodeErr("%s chunk CRC mismatch", typ)
		}
		rest = rest[12+length:]

		switch typ {
		case "IHDR":
			if seenIHDR {
				return hdr, nil, decodeErr("duplicate IHDR")
			}
			seenIHDR = true
			h, err := parseIHDR(payload)
			if err != nil {
				return hdr, nil, err
			}
			hdr = h
		case "IDAT":
			if !seenIHDR {
				return hdr, nil, decodeErr("IDAT before IHDR")
			}
			idat = append(idat, payload...)
		case "IEND":
			seenIEND = true
		default:
			// Ancillary chunk: skipped.
		}
	}
	if !seenIHDR {
		return hdr, nil, decodeErr("missing IHDR")
	}
	if len(idat) == 0 {
		return hdr, nil, decodeErr("missing IDAT")
	}
	return hdr, idat, nil
}

func parseIHDR(payload []byte) (header, error) {
	var hdr header
	if len(payload) != 13 {
		return hdr, decodeErr("IHDR length %d, want 13", len(payload))
	}
	hdr.width = binary.BigEndian.Uint32(payload[0:4])
	hdr.height = binary.BigEndian.Uint32(payload[4:8])
	hdr.bitDepth = payload[8]
	hdr.colorType = payload[9]
	hdr.interlace = payload[12]

	if hdr.width == 0 || hdr.height == 0 {
		return hdr, decodeErr("zero dimension %d×%d", hdr.width, hdr.height)
	}
	if hdr.colorType == colorIndexed {
		return hdr, fmt.Errorf("%w: png: %w", codec.ErrDecode, ErrIndexed)
	}
	if channelCount(hdr.colorType) == 0 {
		return hdr, decodeErr("color type %d", hdr.colorType)
	}
	if hdr.bitDepth != 8 {
		return hdr, fmt.Errorf("%w: png: %w: bit depth %d", codec.ErrDecode, ErrUnsupported, hdr.bitDepth)
	}
	if hdr.interlace != 0 {
		return hdr, fmt.Errorf("%w: png: %w: interlaced", codec.ErrDecode, ErrUnsupported)
	}
	if payload[10] != 0 || payload[11] != 0 {
		return hdr, decodeErr("compression/filter method %d/%d", payload[10], payload[11])
	}
	return hdr, nil
}

func inflate(idat []byte) ([]byte, error) {
	zr, err := zlib.NewReader(bytes.NewReader(idat))
	if err != nil {
		return nil, decodeErr("zlib: %v", err)
	}
	defer zr.Close()
	raw, err := io.ReadAll(zr)
	if err != nil {
		return nil, decodeErr("zlib: %v", err)
	}
	return raw, nil
}

// tagImage adopts the unfiltered bytes as a typed buffer and tags it.
func tagImage[P Pixel](data []byte, w, h buffer.Dimension) (*codec.Image, error) {
	buf, err := buffer.FromBytes[P](data, w, h)
	if err != nil {
		return nil, fmt.Errorf("%w: png: %w", codec.ErrDecode, err)
	}
	img := &codec.Image{}
	switch b := any(buf).(type) {
	case *buffer.Buffer[pixel.Luma8]:
		img.Format, img.Luma8 = codec.FormatLuma8, b
	case *buffer.Buffer[pixel.LumaAlpha8]:
		img.Format, img.LumaAlpha8 = codec.FormatLumaAlpha8, b
	case *buffer.Buffer[pixel.RGB8]:
		img.Format, img.RGB8 = codec.FormatRGB8, b
	case *buffer.Buffer[pixel.RGBA8]:
		img.Format, img.RGBA8 = codec.FormatRGBA8, b
	}
	return img, nil
}

func decodeErr(format string, args ...any) error {
	return fmt.Errorf("%w: png: %s", codec.ErrDecode, fmt.Sprintf(format, args...))
}
