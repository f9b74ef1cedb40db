package qamask

// Mode selects how an extracted field is compared against the target value.
type Mode int

const (
	// Exact matches cells whose field equals the target exactly.
	Exact Mode = iota
	// AtLeast matches cells whose field is at or above the target. This is
	// the "cumulative" masking of QA products: requesting medium confidence
	// also matches high.
	AtLeast
)

// Extract isolates the field's bit range in every cell of g and compares it
// against target, returning a mask with g's dimensions. The input grid is
// never modified.
//
// Both modes AND each cell with the field's full range mask before
// comparing, so AtLeast sees the complete field value rather than a subset
// of its bits.
func Extract(g *Grid, f Field, target uint32, mode Mode) (*Mask, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}

	rangeMask := f.rangeMask()
	want := target << f.Offset

	m := NewMask(g.Width, g.Height)
	if mode == AtLeast {
		for i, cell := range g.Pix {
			m.Bits[i] = cell&rangeMask >= want
		}
	} else {
		for i, cell := range g.Pix {
			m.Bits[i] = cell&rangeMask == want
		}
	}
	return m, nil
}

// ExtractBits is Extract with the target written as a '0'/'1' literal,
// e.g. "011" for value 3. The literal's width is not validated against the
// field width.
func ExtractBits(g *Grid, f Field, bits string, mode Mode) (*Mask, error) {
	target, err := parseBits(bits)
	if err != nil {
		return nil, err
	}
	return Extract(g, f, target, mode)
}
