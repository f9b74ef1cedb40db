package qamask

import (
	"fmt"
	"strconv"
)

// Field identifies a contiguous bit range within a QA cell: Width bits
// starting at bit Offset (least-significant bit is offset 0). Fields for a
// given product are fixed at compile time and never overlap within one
// catalog.
type Field struct {
	Offset uint
	Width  uint
}

// Validate checks the descriptor. A zero-width field would degenerate to an
// always-true mask and is rejected, as is a range extending past CellBits.
func (f Field) Validate() error {
	if f.Width == 0 {
		return fmt.Errorf("field at offset %d has zero width: %w", f.Offset, ErrFieldDescriptor)
	}
	if f.Offset+f.Width > CellBits {
		return fmt.Errorf("field [%d,%d) exceeds %d-bit cells: %w", f.Offset, f.Offset+f.Width, CellBits, ErrFieldDescriptor)
	}
	return nil
}

// rangeMask returns the cell mask covering the field's full bit range,
// e.g. offset 14 width 3 gives 0b111 << 14.
func (f Field) rangeMask() uint32 {
	return uint32(((uint64(1) << f.Width) - 1) << f.Offset)
}

// parseBits parses a '0'/'1' literal as a base-2 target value. The literal's
// length is deliberately not checked against any field width; callers use
// these for readable bit patterns and the parsed value is compared as-is.
func parseBits(bits string) (uint32, error) {
	v, err := strconv.ParseUint(bits, 2, CellBits)
	if err != nil {
		return 0, fmt.Errorf("%q: %w", bits, ErrTargetLiteral)
	}
	return uint32(v), nil
}
