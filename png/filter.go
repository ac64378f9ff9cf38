package png

// FilterType selects the byte predictor applied to every scanline.
// The encoder applies one filter to the whole image; it does not pick
// filters adaptively per scanline.
type FilterType uint8

// Scanline filters of filter method 0, in tag-byte order.
const (
	FilterNone    FilterType = 0 // raw bytes
	FilterSub     FilterType = 1 // difference from the previous pixel
	FilterUp      FilterType = 2 // difference from the row above
	FilterAverage FilterType = 3 // difference from the truncated mean of both
	FilterPaeth   FilterType = 4 // difference from the Paeth predictor
)

// String returns the filter name.
func (t FilterType) String() string {
	switch t {
	case FilterNone:
		return "None"
	case FilterSub:
		return "Sub"
	case FilterUp:
		return "Up"
	case FilterAverage:
		return "Average"
	case FilterPaeth:
		return "Paeth"
	}
	return "Unknown"
}

// filterRows transforms packed scanlines into the serialized filtered
// stream: each scanline prefixed by its filter tag byte, every payload
// byte replaced by its difference from the chosen predictor (wrapping
// 8-bit arithmetic).
//
// For the byte at position i, the predictor inputs are
//
//	a = raw byte at i-bpp in the current scanline (0 inside the first pixel)
//	b = raw byte at i in the previous scanline
//	c = raw byte at i-bpp in the previous scanline
//
// with a virtual all-zero scanline above the first row. The reference
// row is always the raw previous scanline, never the filtered one, so
// prediction never compounds.
func filterRows(rows [][]byte, ft FilterType, bpp int) ([]byte, error) {
	if len(rows) == 0 {
		return nil, nil
	}

	rowSize := len(rows[0])
	out := make([]byte, 0, len(rows)*(1+rowSize))
	prev := make([]byte, rowSize)

	for _, row := range rows {
		out = append(out, byte(ft))
		for i, x := range row {
			var a, c byte
			if i >= bpp {
				a = row[i-bpp]
				c = prev[i-bpp]
			}
			b := prev[i]

			var f byte
			switch ft {
			case FilterNone:
				f = x
			case FilterSub:
				f = x - a
			case FilterUp:
				f = x - b
			case FilterAverage:
				// Truncating division; unfiltering relies on it.
				f = x - byte((int(a)+int(b))/2)
			case FilterPaeth:
				f = x - paeth(a, b, c)
			default:
				return nil, ErrUnsupportedFilter
			}
			out = append(out, f)
		}
		prev = row
	}

	return out, nil
}

// paeth returns whichever of a, b, c is closest to a+b-c.
// Ties prefer a over b over c; the order is load-bearing for
// byte-exact conformance.
func paeth(a, b, c byte) byte {
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

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
