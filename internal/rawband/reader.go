// Package rawband reads flat binary raster bands: a bare sequence of
// fixed-width unsigned integer cells with no header, the layout of raw .img
// band exports.
package rawband

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// ErrCellSize is returned when an unsupported cell size is configured.
var ErrCellSize = errors.New("invalid cell size: must be 2 or 4")

// Config describes a flat band's on-disk encoding.
type Config struct {
	ByteOrder binary.ByteOrder
	CellSize  int // 2 or 4 bytes per cell
}

// DefaultConfig returns the common QA band encoding: little-endian 16-bit
// cells.
func DefaultConfig() Config {
	return Config{
		ByteOrder: binary.LittleEndian,
		CellSize:  2,
	}
}

// Reader decodes fixed-width cells from an underlying io.ReaderAt.
type Reader struct {
	r        io.ReaderAt
	order    binary.ByteOrder
	cellSize int
	pos      int64
}

// NewReader creates a band reader with the given configuration.
func NewReader(r io.ReaderAt, cfg Config) (*Reader, error) {
	if cfg.CellSize != 2 && cfg.CellSize != 4 {
		return nil, fmt.Errorf("%d: %w", cfg.CellSize, ErrCellSize)
	}
	order := cfg.ByteOrder
	if order == nil {
		order = binary.LittleEndian
	}
	return &Reader{
		r:        r,
		order:    order,
		cellSize: cfg.CellSize,
		pos:      0,
	}, nil
}

// At returns a new reader positioned at the given byte offset. The new
// reader shares the underlying io.ReaderAt but has independent position.
func (r *Reader) At(offset int64) *Reader {
	return &Reader{
		r:        r.r,
		order:    r.order,
		cellSize: r.cellSize,
		pos:      offset,
	}
}

// Pos returns the current read position in bytes.
func (r *Reader) Pos() int64 {
	return r.pos
}

// ReadCell reads one cell at the current position and advances past it.
func (r *Reader) ReadCell() (uint32, error) {
	buf := make([]byte, r.cellSize)
	if _, err := io.ReadFull(io.NewSectionReader(r.r, r.pos, int64(r.cellSize)), buf); err != nil {
		return 0, err
	}
	r.pos += int64(r.cellSize)
	if r.cellSize == 2 {
		return uint32(r.order.Uint16(buf)), nil
	}
	return r.order.Uint32(buf), nil
}

// ReadCells reads exactly n cells starting at the current position.
func (r *Reader) ReadCells(n int) ([]uint32, error) {
	if n <= 0 {
		return nil, nil
	}
	buf := make([]byte, n*r.cellSize)
	if _, err := io.ReadFull(io.NewSectionReader(r.r, r.pos, int64(len(buf))), buf); err != nil {
		return nil, fmt.Errorf("reading %d cells: %w", n, err)
	}
	r.pos += int64(len(buf))

	cells := make([]uint32, n)
	if r.cellSize == 2 {
		for i := range cells {
			cells[i] = uint32(r.order.Uint16(buf[i*2:]))
		}
	} else {
		for i := range cells {
			cells[i] = r.order.Uint32(buf[i*4:])
		}
	}
	return cells, nil
}
