package qoi

import (
	"encoding/binary"
	"fmt"

	"github.com/katalvlaran/pict/buffer"
	"github.com/katalvlaran/pict/codec"
	"github.com/katalvlaran/pict/pixel"
)

// Encode encodes any read view of RGB8 or RGBA8 pixels into a QOI byte
// stream. Only the view read contract is used, so encoding a sub-view never
// copies it into a buffer first.
//
// Fails wrapping codec.ErrEncode if the view has a zero extent (the QOI
// header cannot express it) or an axis exceeds the header's 32-bit fields.
// Complexity: O(W×H), single pass.
func Encode[P Pixel](view buffer.View[P], opts Options) ([]byte, error) {
	width, height := view.Dimensions()
	if width == 0 || height == 0 {
		return nil, fmt.Errorf("%w: qoi: zero dimension %d×%d", codec.ErrEncode, width, height)
	}
	if uint64(width) > 0xffffffff || uint64(height) > 0xffffffff {
		return nil, fmt.Errorf("%w: qoi: %d×%d exceeds 32-bit header fields", codec.ErrEncode, width, height)
	}
	if opts.Colorspace > ColorspaceLinear {
		return nil, fmt.Errorf("%w: qoi: colorspace %d", codec.ErrEncode, opts.Colorspace)
	}

	out := make([]byte, 0, headerLen+view.Size()+markerLen)
	out = append(out, magic[:]...)
	out = binary.BigEndian.AppendUint32(out, uint32(width))
	out = binary.BigEndian.AppendUint32(out, uint32(height))
	out = append(out, uint8(pixel.Size[P]()), uint8(opts.Colorspace))

	var index [64]rgba
	prev := rgba{a: 0xff}
	run := 0

	for p := range view.Pixels() {
		px := toRGBA(p)
		if px == prev {
			run++
			if run == maxRun {
				out = append(out, opRun|uint8(run-1))
				run = 0
			}
			continue
		}
		if run > 0 {
			out = append(out, opRun|uint8(run-1))
			run = 0
		}

		pos := indexPos(px)
		switch {
		case index[pos] == px:
			out = append(out, opIndex|uint8(pos))
		case px.a != prev.a:
			index[pos] = px
			out = append(out, opRGBA, px.r, px.g, px.b, px.a)
		default:
			index[pos] = px
			out = appendDiff(out, prev, px)
		}
		prev = px
	}
	if run > 0 {
		out = append(out, opRun|uint8(run-1))
	}

	return append(out, endMarker[:]...), nil
}

// appendDiff emits the smallest chunk expressing px against prev with equal
// alpha: DIFF, then LUMA, then a full RGB chunk. Channel differences wrap,
// as the format prescribes.
func appendDiff(out []byte, prev, px rgba) []byte {
	dr := int8(px.r - prev.r)
	dg := int8(px.g - prev.g)
	db := int8(px.b - prev.b)

	if dr >= -2 && dr <= 1 && dg >= -2 && dg <= 1 && db >= -2 && db <= 1 {
		return append(out, opDiff|uint8(dr+2)<<4|uint8(dg+2)<<2|uint8(db+2))
	}

	drg := int8(uint8(dr) - uint8(dg))
	dbg := int8(uint8(db) - uint8(dg))
	if dg >= -32 && dg <= 31 && drg >= -8 && drg <= 7 && dbg >= -8 && dbg <= 7 {
		return append(out, opLuma|uint8(dg+32), uint8(drg+8)<<4|uint8(dbg+8))
	}

	return append(out, opRGB, px.r, px.g, px.b)
}

// toRGBA widens an encodable pixel to the rolling rgba state; RGB8 carries an
// implicit opaque alpha.
func toRGBA[P Pixel](p P) rgba {
	switch q := any(p).(type) {
	case pixel.RGB8:
		return rgba{r: q.R, g: q.G, b: q.B, a: 0xff}
	case pixel.RGBA8:
		return rgba{r: q.R, g: q.G, b: q.B, a: q.A}
	default:
		return rgba{}
	}
}
