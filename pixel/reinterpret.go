package pixel

import (
	"fmt"
	"unsafe"
)

// Size reports the byte width of one pixel of type P.
// Complexity: O(1), resolved at compile time.
func Size[P Format]() int {
	var zero P
	return int(unsafe.Sizeof(zero))
}

// Align reports the alignment requirement, in bytes, of pixel type P.
// Complexity: O(1), resolved at compile time.
func Align[P Format]() int {
	var zero P
	return int(unsafe.Alignof(zero))
}

// FromBytes reinterprets data as a slice of P without copying.
//
// The returned slice aliases data: writes through either are visible through
// both. Returns ErrTypeMismatch if len(data) is not an exact multiple of
// Size[P], or if the base address of data does not satisfy Align[P].
// A nil or empty input yields a nil slice.
// Complexity: O(1).
func FromBytes[P Format](data []byte) ([]P, error) {
	if len(data) == 0 {
		return nil, nil
	}
	size := Size[P]()
	if len(data)%size != 0 {
		return nil, fmt.Errorf("%w: %d bytes is not a multiple of the %d-byte pixel size",
			ErrTypeMismatch, len(data), size)
	}
	base := unsafe.Pointer(unsafe.SliceData(data))
	if uintptr(base)%uintptr(Align[P]()) != 0 {
		return nil, fmt.Errorf("%w: base address not aligned to %d bytes",
			ErrTypeMismatch, Align[P]())
	}
	return unsafe.Slice((*P)(base), len(data)/size), nil
}

// Bytes reinterprets a pixel slice as its underlying bytes without copying.
// The inverse of FromBytes; always valid since pixel types have no padding
// and byte alignment is 1.
// Complexity: O(1).
func Bytes[P Format](pix []P) []byte {
	if len(pix) == 0 {
		return nil
	}
	base := unsafe.Pointer(unsafe.SliceData(pix))
	return unsafe.Slice((*byte)(base), len(pix)*Size[P]())
}

// Append appends the raw bytes of p to dst and returns the extended slice.
// Multi-byte channels are appended in native byte order; codecs that need a
// fixed wire order must serialize those formats themselves.
func Append[P Format](dst []byte, p P) []byte {
	raw := unsafe.Slice((*byte)(unsafe.Pointer(&p)), Size[P]())
	return append(dst, raw...)
}
