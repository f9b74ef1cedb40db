package qamask

import (
	"fmt"

	"github.com/RoaringBitmap/roaring"
)

// Grid is a 2-D band of unsigned integer cells stored in row-major order.
// Cells are at most CellBits wide, which covers 16- and 32-bit QA encodings.
// A Grid is treated as read-only once handed to a Masker.
type Grid struct {
	Width  int
	Height int
	Pix    []uint32
}

// NewGrid returns a zero-filled grid with the given dimensions.
func NewGrid(width, height int) *Grid {
	return &Grid{
		Width:  width,
		Height: height,
		Pix:    make([]uint32, width*height),
	}
}

// GridFromRows builds a grid from row slices. All rows must have the same
// length.
func GridFromRows(rows [][]uint32) (*Grid, error) {
	if len(rows) == 0 {
		return &Grid{}, nil
	}
	width := len(rows[0])
	g := NewGrid(width, len(rows))
	for y, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("row %d has %d cells, want %d: %w", y, len(row), width, ErrRaggedRows)
		}
		copy(g.Pix[y*width:], row)
	}
	return g, nil
}

// GridFromUint16 builds a grid from a flat row-major slice of 16-bit cells,
// the common Landsat QA band encoding.
func GridFromUint16(width, height int, pix []uint16) (*Grid, error) {
	if len(pix) != width*height {
		return nil, fmt.Errorf("have %d cells, want %dx%d: %w", len(pix), width, height, ErrDimensionMismatch)
	}
	g := NewGrid(width, height)
	for i, v := range pix {
		g.Pix[i] = uint32(v)
	}
	return g, nil
}

// At returns the cell at (x, y).
func (g *Grid) At(x, y int) uint32 {
	return g.Pix[y*g.Width+x]
}

// Set stores a cell value at (x, y).
func (g *Grid) Set(x, y int, v uint32) {
	g.Pix[y*g.Width+x] = v
}

// NumCells returns the total number of cells.
func (g *Grid) NumCells() int {
	return g.Width * g.Height
}

// Mask is a 2-D boolean grid with the same dimensions as the source Grid.
type Mask struct {
	Width  int
	Height int
	Bits   []bool
}

// NewMask returns an all-false mask with the given dimensions.
func NewMask(width, height int) *Mask {
	return &Mask{
		Width:  width,
		Height: height,
		Bits:   make([]bool, width*height),
	}
}

// At returns the mask value at (x, y).
func (m *Mask) At(x, y int) bool {
	return m.Bits[y*m.Width+x]
}

// Set stores a mask value at (x, y).
func (m *Mask) Set(x, y int, v bool) {
	m.Bits[y*m.Width+x] = v
}

// And folds other into m with logical AND. The masks must have identical
// dimensions.
func (m *Mask) And(other *Mask) error {
	if err := m.checkDims(other); err != nil {
		return err
	}
	for i, v := range other.Bits {
		m.Bits[i] = m.Bits[i] && v
	}
	return nil
}

// Or folds other into m with logical OR. The masks must have identical
// dimensions.
func (m *Mask) Or(other *Mask) error {
	if err := m.checkDims(other); err != nil {
		return err
	}
	for i, v := range other.Bits {
		m.Bits[i] = m.Bits[i] || v
	}
	return nil
}

func (m *Mask) checkDims(other *Mask) error {
	if m.Width != other.Width || m.Height != other.Height {
		return fmt.Errorf("%dx%d vs %dx%d: %w", m.Width, m.Height, other.Width, other.Height, ErrDimensionMismatch)
	}
	return nil
}

// CountTrue returns the number of true cells.
func (m *Mask) CountTrue() uint64 {
	return m.Bitmap().GetCardinality()
}

// Bitmap returns the row-major indices of the true cells as a roaring
// bitmap. The compressed form is cheap to count, combine, and serialize for
// callers that keep many masks around.
func (m *Mask) Bitmap() *roaring.Bitmap {
	bmp := roaring.New()
	for i, v := range m.Bits {
		if v {
			bmp.Add(uint32(i))
		}
	}
	return bmp
}

// Ints returns the mask as a flat row-major 0/1 grid, the form raster
// writers consume.
func (m *Mask) Ints() []int32 {
	out := make([]int32, len(m.Bits))
	for i, v := range m.Bits {
		if v {
			out[i] = 1
		}
	}
	return out
}

// Clone returns a deep copy of the mask.
func (m *Mask) Clone() *Mask {
	c := &Mask{Width: m.Width, Height: m.Height, Bits: make([]bool, len(m.Bits))}
	copy(c.Bits, m.Bits)
	return c
}
