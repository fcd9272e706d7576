package png

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"hash/crc32"

	"github.com/klauspost/compress/zlib"

	"github.com/katalvlaran/pict/buffer"
	"github.com/katalvlaran/pict/codec"
	"github.com/katalvlaran/pict/pixel"
)

// Encode encodes any read view of an 8-bit pixel format into a PNG byte
// stream: Luma8 as grayscale, LumaAlpha8 as grayscale+alpha, RGB8 as
// truecolor, RGBA8 as truecolor+alpha. Only the view read contract is used,
// so a sub-view encodes without being copied into a buffer first.
//
// Fails wrapping codec.ErrEncode on a zero extent, an axis beyond the
// 32-bit IHDR fields, or an invalid Options value.
// Complexity: O(W×H) plus the DEFLATE pass.
func Encode[P Pixel](view buffer.View[P], opts Options) ([]byte, error) {
	width, height := view.Dimensions()
	if width == 0 || height == 0 {
		return nil, encodeErr("zero dimension %d×%d", width, height)
	}
	if uint64(width) > 0xffffffff || uint64(height) > 0xffffffff {
		return nil, encodeErr("%d×%d exceeds 32-bit IHDR fields", width, height)
	}
	if opts.Filter > FilterPaeth {
		return nil, encodeErr("unknown filter %d", opts.Filter)
	}

	bpp := pixel.Size[P]()
	rowBytes := int(width) * bpp
	raw := make([]byte, 0, int(height)*(1+rowBytes))
	var prev []byte
	for y := buffer.Dimension(0); y < height; y++ {
		row, err := view.Row(y)
		if err != nil {
			return nil, fmt.Errorf("%w: png: %w", codec.ErrEncode, err)
		}
		cur := pixel.Bytes(row)
		raw = append(raw, byte(opts.Filter))
		raw = filterRow(raw, opts.Filter, cur, prev, bpp)
		prev = cur
	}

	var compressed bytes.Buffer
	zw, err := zlib.NewWriterLevel(&compressed, opts.Level)
	if err != nil {
		return nil, encodeErr("zlib level %d: %v", opts.Level, err)
	}
	if _, err = zw.Write(raw); err != nil {
		return nil, encodeErr("zlib: %v", err)
	}
	if err = zw.Close(); err != nil {
		return nil, encodeErr("zlib: %v", err)
	}

	ihdr := make([]byte, 0, 13)
	ihdr = binary.BigEndian.AppendUint32(ihdr, uint32(width))
	ihdr = binary.BigEndian.AppendUint32(ihdr, uint32(height))
	ihdr = append(ihdr, 8, colorTypeFor[P](), 0, 0, 0)

	out := append([]byte(nil), signature[:]...)
	out = appendChunk(out, "IHDR", ihdr)
	out = appendChunk(out, "IDAT", compressed.Bytes())
	out = appendChunk(out, "IEND", nil)
	return out, nil
}

// colorTypeFor maps a supported pixel format to its PNG color type.
func colorTypeFor[P Pixel]() uint8 {
	switch pixel.Size[P]() {
	case 1:
		return colorGray
	case 2:
		return colorGrayAlpha
	case 3:
		return colorRGB
	default:
		return colorRGBA
	}
}

// appendChunk appends one PNG chunk: length, type, payload, CRC over type
// and payload.
func appendChunk(out []byte, typ string, payload []byte) []byte {
	out = binary.BigEndian.AppendUint32(out, uint32(len(payload)))
	start := len(out)
	out = append(out, typ...)
	out = append(out, payload...)
	return binary.BigEndian.AppendUint32(out, crc32.ChecksumIEEE(out[start:]))
}

func encodeErr(format string, args ...any) error {
	return fmt.Errorf("%w: png: %s", codec.ErrEncode, fmt.Sprintf(format, args...))
}
