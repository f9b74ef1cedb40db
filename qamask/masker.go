package qamask

// Masker owns a loaded QA grid and answers extraction queries against it.
// Every query is a pure read; maskers are safe for concurrent use as long as
// nothing mutates the backing grid.
//
// Masker is the product-agnostic base. LandsatMasker and ModisMasker wrap it
// with their condition catalogs.
type Masker struct {
	grid *Grid
}

// NewMasker returns a masker over an in-memory grid. File-backed grids come
// from the raster package; the caller loads the band and passes the grid in
// explicitly.
func NewMasker(g *Grid) *Masker {
	return &Masker{grid: g}
}

// Grid returns the backing grid.
func (m *Masker) Grid() *Grid {
	return m.grid
}

// Mask extracts the given field and compares it against target, using
// at-least comparison when cumulative is set.
func (m *Masker) Mask(f Field, target uint32, cumulative bool) (*Mask, error) {
	mode := Exact
	if cumulative {
		mode = AtLeast
	}
	return Extract(m.grid, f, target, mode)
}

// MaskBits is Mask with the target written as a '0'/'1' literal.
func (m *Masker) MaskBits(f Field, bits string, cumulative bool) (*Mask, error) {
	target, err := parseBits(bits)
	if err != nil {
		return nil, err
	}
	return m.Mask(f, target, cumulative)
}

// allTrue is the seed for exclusive (AND) composition: every cell passes
// before any condition is applied.
func (m *Masker) allTrue() *Mask {
	out := NewMask(m.grid.Width, m.grid.Height)
	for i := range out.Bits {
		out.Bits[i] = true
	}
	return out
}

// allFalse is the seed for inclusive (OR) composition.
func (m *Masker) allFalse() *Mask {
	return NewMask(m.grid.Width, m.grid.Height)
}
