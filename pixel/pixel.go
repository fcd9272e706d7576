package pixel

// Format is the constraint satisfied by every pixel type in the catalog.
// A pixel is a fixed-size, bit-pattern-transparent value: its in-memory
// layout is exactly its channels, in declaration order, with no padding
// between channels of the same width. Comparability is required so pixels
// can be used as map keys and compared in tests.
type Format interface {
	comparable

	// Channels reports the number of color/alpha channels in the format.
	Channels() int
	// Name reports the canonical format name, e.g. "RGBA8".
	Name() string
}

// Luma8 is a single 8-bit luminance channel.
type Luma8 struct {
	L uint8
}

// Channels reports 1.
func (Luma8) Channels() int { return 1 }

// Name reports "Luma8".
func (Luma8) Name() string { return "Luma8" }

// LumaAlpha8 is an 8-bit luminance channel paired with an 8-bit alpha channel.
type LumaAlpha8 struct {
	L uint8
	A uint8
}

// Channels reports 2.
func (LumaAlpha8) Channels() int { return 2 }

// Name reports "LumaAlpha8".
func (LumaAlpha8) Name() string { return "LumaAlpha8" }

// RGB8 is a 3×8-bit red/green/blue pixel.
type RGB8 struct {
	R uint8
	G uint8
	B uint8
}

// Channels reports 3.
func (RGB8) Channels() int { return 3 }

// Name reports "RGB8".
func (RGB8) Name() string { return "RGB8" }

// RGBA8 is a 4×8-bit red/green/blue/alpha pixel.
type RGBA8 struct {
	R uint8
	G uint8
	B uint8
	A uint8
}

// Channels reports 4.
func (RGBA8) Channels() int { return 4 }

// Name reports "RGBA8".
func (RGBA8) Name() string { return "RGBA8" }

// RGB16 is a 3×16-bit red/green/blue pixel, stored in native byte order.
// It is part of the wider bit-depth extension point; codecs in this module
// operate on the 8-bit formats only.
type RGB16 struct {
	R uint16
	G uint16
	B uint16
}

// Channels reports 3.
func (RGB16) Channels() int { return 3 }

// Name reports "RGB16".
func (RGB16) Name() string { return "RGB16" }

// RGBA16 is a 4×16-bit red/green/blue/alpha pixel, stored in native byte order.
type RGBA16 struct {
	R uint16
	G uint16
	B uint16
	A uint16
}

// Channels reports 4.
func (RGBA16) Channels() int { return 4 }

// Name reports "RGBA16".
func (RGBA16) Name() string { return "RGBA16" }
