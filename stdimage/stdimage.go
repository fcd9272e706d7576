package stdimage

import (
	"fmt"
	"image"

	xdraw "golang.org/x/image/draw"

	"github.com/katalvlaran/pict/buffer"
	"github.com/katalvlaran/pict/pixel"
)

// FromImage converts any image.Image into an owned RGBA8 buffer. The source
// is drawn through x/image/draw with the Src operator, which performs the
// color-model conversion (YCbCr, paletted, Gray16, …) in one pass; the
// resulting NRGBA plane is then adopted without a second copy.
//
// Returns buffer.ErrDimensionOverflow if an axis does not fit the active
// Dimension width. An empty source yields an empty buffer.
func FromImage(src image.Image) (*buffer.Buffer[pixel.RGBA8], error) {
	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if uint64(w) > uint64(^buffer.Dimension(0)) || uint64(h) > uint64(^buffer.Dimension(0)) {
		return nil, fmt.Errorf("%w: source image is %d×%d", buffer.ErrDimensionOverflow, w, h)
	}

	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	xdraw.Draw(dst, dst.Bounds(), src, bounds.Min, xdraw.Src)
	return buffer.FromBytes[pixel.RGBA8](dst.Pix, buffer.Dimension(w), buffer.Dimension(h))
}

// ToNRGBA copies an RGBA8 view into a fresh *image.NRGBA. The result is
// independent of the view's storage.
func ToNRGBA(v buffer.View[pixel.RGBA8]) *image.NRGBA {
	width, height := v.Dimensions()
	img := image.NewNRGBA(image.Rect(0, 0, int(width), int(height)))
	for y := buffer.Dimension(0); y < height; y++ {
		row, _ := v.Row(y) // y is always in bounds here
		copy(img.Pix[int(y)*img.Stride:], pixel.Bytes(row))
	}
	return img
}

// ToGray copies a Luma8 view into a fresh *image.Gray.
func ToGray(v buffer.View[pixel.Luma8]) *image.Gray {
	width, height := v.Dimensions()
	img := image.NewGray(image.Rect(0, 0, int(width), int(height)))
	for y := buffer.Dimension(0); y < height; y++ {
		row, _ := v.Row(y)
		copy(img.Pix[int(y)*img.Stride:], pixel.Bytes(row))
	}
	return img
}
