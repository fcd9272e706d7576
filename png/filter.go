package png

// PNG row filters operate byte-wise against the left neighbor (a), the byte
// above (b) and the upper-left byte (c), at a distance of bpp bytes per
// pixel. Reference: PNG specification, section "Filtering".

// paeth is the Paeth predictor: whichever of a, b, c is closest to a+b-c.
func paeth(a, b, c uint8) uint8 {
	p := int(a) + int(b) - int(c)
	pa := abs(p - int(a))
	pb := abs(p - int(b))
	pc := abs(p - int(c))
	if pa <= pb && pa <= pc {
		return a
	}
	if pb <= pc {
		return b
	}
	return c
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// filterRow appends the filtered form of cur to dst. prev is the unfiltered
// previous row, or nil for the first row (treated as zeros).
func filterRow(dst []byte, f Filter, cur, prev []byte, bpp int) []byte {
	for i := range cur {
		var a, b, c uint8
		if i >= bpp {
			a = cur[i-bpp]
		}
		if prev != nil {
			b = prev[i]
			if i >= bpp {
				c = prev[i-bpp]
			}
		}
		switch f {
		case FilterNone:
			dst = append(dst, cur[i])
		case FilterSub:
			dst = append(dst, cur[i]-a)
		case FilterUp:
			dst = append(dst, cur[i]-b)
		case FilterAverage:
			dst = append(dst, cur[i]-uint8((int(a)+int(b))/2))
		case FilterPaeth:
			dst = append(dst, cur[i]-paeth(a, b, c))
		}
	}
	return dst
}

// unfilterRow reconstructs cur in place from its filtered form. prev is the
// already-reconstructed previous row, or nil for the first row.
func unfilterRow(f Filter, cur, prev []byte, bpp int) bool {
	switch f {
	case FilterNone:
	case FilterSub:
		for i := bpp; i < len(cur); i++ {
			cur[i] += cur[i-bpp]
		}
	case FilterUp:
		if prev != nil {
			for i := range cur {
				cur[i] += prev[i]
			}
		}
	case FilterAverage:
		for i := range cur {
			var a, b uint8
			if i >= bpp {
				a = cur[i-bpp]
			}
			if prev != nil {
				b = prev[i]
			}
			cur[i] += uint8((int(a) + int(b)) / 2)
		}
	case FilterPaeth:
		for i := range cur {
			var a, b, c uint8
			if i >= bpp {
				a = cur[i-bpp]
			}
			if prev != nil {
				b = prev[i]
				if i >= bpp {
					c = prev[i-bpp]
				}
			}
			cur[i] += paeth(a, b, c)
		}
	default:
		return false
	}
	return true
}
