package png_test

import (
	"bytes"
	"encoding/binary"
	"hash/crc32"
	"image"
	"image/color"
	stdpng "image/png"
	"testing"

	"github.com/klauspost/compress/zlib"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pict/buffer"
	"github.com/katalvlaran/pict/codec"
	"github.com/katalvlaran/pict/pixel"
	"github.com/katalvlaran/pict/png"
)

const testW, testH = 7, 5

// fillGradient writes a deterministic per-coordinate pattern so every filter
// has structure to predict against.
func fillGradient[P png.Pixel](t *testing.T, buf *buffer.Buffer[P], at func(x, y uint8) P) {
	t.Helper()
	vm, err := buf.ViewMut()
	require.NoError(t, err)
	defer vm.Release()
	seq, err := vm.PixelsWithCoordsMut()
	require.NoError(t, err)
	for pt, px := range seq {
		*px = at(uint8(pt.X), uint8(pt.Y))
	}
}

func roundTrip[P png.Pixel](t *testing.T, buf *buffer.Buffer[P], opts png.Options) *codec.Image {
	t.Helper()
	data, err := png.Encode(buf.View(), opts)
	require.NoError(t, err)
	img, err := png.Decoder{}.Decode(data)
	require.NoError(t, err)
	w, h := img.Dimensions()
	require.Equal(t, buf.Width(), w)
	require.Equal(t, buf.Height(), h)
	return img
}

// TestRoundTrip_AllFormats covers the four supported color types under the
// default (Paeth) filter.
func TestRoundTrip_AllFormats(t *testing.T) {
	t.Run("Luma8", func(t *testing.T) {
		buf, err := buffer.New[pixel.Luma8](testW, testH)
		require.NoError(t, err)
		fillGradient(t, buf, func(x, y uint8) pixel.Luma8 {
			return pixel.Luma8{L: x*16 + y}
		})
		img := roundTrip(t, buf, png.DefaultOptions())
		require.Equal(t, codec.FormatLuma8, img.Format)
		require.Equal(t, buf.Bytes(), img.Luma8.Bytes())
	})
	t.Run("LumaAlpha8", func(t *testing.T) {
		buf, err := buffer.New[pixel.LumaAlpha8](testW, testH)
		require.NoError(t, err)
		fillGradient(t, buf, func(x, y uint8) pixel.LumaAlpha8 {
			return pixel.LumaAlpha8{L: x * 30, A: 255 - y*20}
		})
		img := roundTrip(t, buf, png.DefaultOptions())
		require.Equal(t, codec.FormatLumaAlpha8, img.Format)
		require.Equal(t, buf.Bytes(), img.LumaAlpha8.Bytes())
	})
	t.Run("RGB8", func(t *testing.T) {
		buf, err := buffer.New[pixel.RGB8](testW, testH)
		require.NoError(t, err)
		fillGradient(t, buf, func(x, y uint8) pixel.RGB8 {
			return pixel.RGB8{R: x * 31, G: y * 47, B: x ^ y}
		})
		img := roundTrip(t, buf, png.DefaultOptions())
		require.Equal(t, codec.FormatRGB8, img.Format)
		require.Equal(t, buf.Bytes(), img.RGB8.Bytes())
	})
	t.Run("RGBA8", func(t *testing.T) {
		buf, err := buffer.New[pixel.RGBA8](testW, testH)
		require.NoError(t, err)
		fillGradient(t, buf, func(x, y uint8) pixel.RGBA8 {
			return pixel.RGBA8{R: x * 31, G: y * 47, B: x + y, A: 200 + x}
		})
		img := roundTrip(t, buf, png.DefaultOptions())
		require.Equal(t, codec.FormatRGBA8, img.Format)
		require.Equal(t, buf.Bytes(), img.RGBA8.Bytes())
	})
}

// TestRoundTrip_AllFilters runs the same RGB image through each of the five
// row filters; the decoder must undo every one of them.
func TestRoundTrip_AllFilters(t *testing.T) {
	buf, err := buffer.New[pixel.RGB8](testW, testH)
	require.NoError(t, err)
	fillGradient(t, buf, func(x, y uint8) pixel.RGB8 {
		return pixel.RGB8{R: x * 40, G: 255 - y*50, B: x * y}
	})

	filters := []struct {
		name   string
		filter png.Filter
	}{
		{"None", png.FilterNone},
		{"Sub", png.FilterSub},
		{"Up", png.FilterUp},
		{"Average", png.FilterAverage},
		{"Paeth", png.FilterPaeth},
	}
	for _, tc := range filters {
		t.Run(tc.name, func(t *testing.T) {
			img := roundTrip(t, buf, png.Options{Filter: tc.filter, Level: 6})
			require.Equal(t, buf.Bytes(), img.RGB8.Bytes())
		})
	}
}

// TestEncode_SubView verifies a window encodes through the read contract
// identically to its snapshot.
func TestEncode_SubView(t *testing.T) {
	buf, err := buffer.New[pixel.RGBA8](8, 8)
	require.NoError(t, err)
	fillGradient(t, buf, func(x, y uint8) pixel.RGBA8 {
		return pixel.RGBA8{R: x * 9, G: y * 9, B: x + y, A: 255}
	})
	sub, err := buf.View().SubView(buffer.Rect{X: 2, Y: 1, W: 4, H: 5})
	require.NoError(t, err)

	direct, err := png.Encode(sub, png.DefaultOptions())
	require.NoError(t, err)
	copied, err := png.Encode(sub.ToBuffer().View(), png.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, copied, direct)
}

// TestDecode_StdlibInterop decodes streams produced by image/png and feeds
// this package's streams back through it.
func TestDecode_StdlibInterop(t *testing.T) {
	t.Run("FromStdlib", func(t *testing.T) {
		// Not fully opaque, or image/png would downgrade to truecolor.
		src := image.NewNRGBA(image.Rect(0, 0, 4, 3))
		for y := 0; y < 3; y++ {
			for x := 0; x < 4; x++ {
				src.SetNRGBA(x, y, color.NRGBA{R: uint8(x * 60), G: uint8(y * 80), B: 5, A: uint8(200 + x)})
			}
		}
		var encoded bytes.Buffer
		require.NoError(t, stdpng.Encode(&encoded, src))

		img, err := png.Decoder{}.Decode(encoded.Bytes())
		require.NoError(t, err)
		require.Equal(t, codec.FormatRGBA8, img.Format)
		for pt, px := range img.RGBA8.View().PixelsWithCoords() {
			want := src.NRGBAAt(int(pt.X), int(pt.Y))
			require.Equal(t, pixel.RGBA8{R: want.R, G: want.G, B: want.B, A: want.A}, px)
		}
	})

	t.Run("ToStdlib", func(t *testing.T) {
		buf, err := buffer.New[pixel.RGBA8](4, 3)
		require.NoError(t, err)
		fillGradient(t, buf, func(x, y uint8) pixel.RGBA8 {
			return pixel.RGBA8{R: x * 60, G: y * 80, B: 5, A: 255}
		})
		data, err := png.Encode(buf.View(), png.DefaultOptions())
		require.NoError(t, err)

		decoded, err := stdpng.Decode(bytes.NewReader(data))
		require.NoError(t, err)
		require.Equal(t, image.Rect(0, 0, 4, 3), decoded.Bounds())
		for pt, px := range buf.View().PixelsWithCoords() {
			got := color.NRGBAModel.Convert(decoded.At(int(pt.X), int(pt.Y))).(color.NRGBA)
			require.Equal(t, pixel.RGBA8{R: got.R, G: got.G, B: got.B, A: got.A}, px)
		}
	})
}

// TestDecode_Indexed verifies palette PNGs are refused with ErrIndexed.
func TestDecode_Indexed(t *testing.T) {
	src := image.NewPaletted(image.Rect(0, 0, 2, 2), color.Palette{
		color.NRGBA{A: 255}, color.NRGBA{R: 255, A: 255},
	})
	src.SetColorIndex(1, 1, 1)
	var encoded bytes.Buffer
	require.NoError(t, stdpng.Encode(&encoded, src))

	_, err := png.Decoder{}.Decode(encoded.Bytes())
	require.ErrorIs(t, err, png.ErrIndexed)
	require.ErrorIs(t, err, codec.ErrDecode)
}

// TestDecode_SixteenBit verifies 16-bit depth is refused with ErrUnsupported.
func TestDecode_SixteenBit(t *testing.T) {
	src := image.NewGray16(image.Rect(0, 0, 2, 2))
	src.SetGray16(0, 0, color.Gray16{Y: 0xabcd})
	var encoded bytes.Buffer
	require.NoError(t, stdpng.Encode(&encoded, src))

	_, err := png.Decoder{}.Decode(encoded.Bytes())
	require.ErrorIs(t, err, png.ErrUnsupported)
	require.ErrorIs(t, err, codec.ErrDecode)
}

func TestDecode_Malformed(t *testing.T) {
	valid := func() []byte {
		buf, err := buffer.New[pixel.Luma8](3, 3)
		require.NoError(t, err)
		fillGradient(t, buf, func(x, y uint8) pixel.Luma8 { return pixel.Luma8{L: x + y*3} })
		data, err := png.Encode(buf.View(), png.DefaultOptions())
		require.NoError(t, err)
		return data
	}

	t.Run("BadSignature", func(t *testing.T) {
		d := valid()
		d[0] = 0
		_, err := png.Decoder{}.Decode(d)
		require.ErrorIs(t, err, codec.ErrDecode)
	})
	t.Run("Truncated", func(t *testing.T) {
		d := valid()
		_, err := png.Decoder{}.Decode(d[:len(d)-13])
		require.ErrorIs(t, err, codec.ErrDecode)
	})
	t.Run("CorruptCRC", func(t *testing.T) {
		d := valid()
		// Last byte of the IHDR CRC, which sits right after the signature.
		d[8+8+13+3] ^= 0xff
		_, err := png.Decoder{}.Decode(d)
		require.ErrorIs(t, err, codec.ErrDecode)
	})
	t.Run("Empty", func(t *testing.T) {
		_, err := png.Decoder{}.Decode(nil)
		require.ErrorIs(t, err, codec.ErrDecode)
	})
}

// chunk appends one length/type/payload/CRC chunk, for hand-built streams.
func chunk(out []byte, typ string, payload []byte) []byte {
	out = binary.BigEndian.AppendUint32(out, uint32(len(payload)))
	start := len(out)
	out = append(out, typ...)
	out = append(out, payload...)
	return binary.BigEndian.AppendUint32(out, crc32.ChecksumIEEE(out[start:]))
}

// TestDecode_ForgedDimensions feeds a stream whose IHDR dimensions are
// chosen so height×(1+width×4) wraps 64-bit arithmetic to 4, matching a
// 4-byte inflated payload. The decoder must refuse it with a decode error,
// not trust the wrapped product.
func TestDecode_ForgedDimensions(t *testing.T) {
	var idat bytes.Buffer
	zw := zlib.NewWriter(&idat)
	_, err := zw.Write(make([]byte, 4))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	ihdr := make([]byte, 0, 13)
	ihdr = binary.BigEndian.AppendUint32(ihdr, 2684272641)
	ihdr = binary.BigEndian.AppendUint32(ihdr, 1718039348)
	ihdr = append(ihdr, 8, 6, 0, 0, 0) // depth 8, RGBA, no interlace

	data := []byte{137, 'P', 'N', 'G', '\r', '\n', 26, '\n'}
	data = chunk(data, "IHDR", ihdr)
	data = chunk(data, "IDAT", idat.Bytes())
	data = chunk(data, "IEND", nil)

	require.NotPanics(t, func() {
		_, err = png.Decoder{}.Decode(data)
	})
	require.ErrorIs(t, err, codec.ErrDecode)
}

func TestEncode_Errors(t *testing.T) {
	empty, err := buffer.New[pixel.RGB8](0, 4)
	require.NoError(t, err)
	_, err = png.Encode(empty.View(), png.DefaultOptions())
	require.ErrorIs(t, err, codec.ErrEncode)

	one, err := buffer.New[pixel.RGB8](1, 1)
	require.NoError(t, err)
	_, err = png.Encode(one.View(), png.Options{Filter: 9})
	require.ErrorIs(t, err, codec.ErrEncode)
	_, err = png.Encode(one.View(), png.Options{Filter: png.FilterNone, Level: 42})
	require.ErrorIs(t, err, codec.ErrEncode)
}
