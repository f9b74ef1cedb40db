// Package qamask decodes bit-packed quality-assessment (QA) bands from
// remote-sensing products into per-condition boolean masks.
//
// A QA band stores several independent per-pixel flags in each cell, each
// flag occupying a fixed bit range. The package extracts those ranges,
// compares them against requested confidence or quality levels, and combines
// multiple conditions with AND/OR semantics. It operates purely on in-memory
// grids; reading and writing raster files is the raster package's job.
package qamask

import "errors"

// Common errors
var (
	ErrFieldDescriptor   = errors.New("invalid field descriptor")
	ErrTargetLiteral     = errors.New("invalid binary target literal")
	ErrLevel             = errors.New("invalid level")
	ErrUnknownCondition  = errors.New("unknown condition")
	ErrDimensionMismatch = errors.New("mask dimensions do not match")
	ErrRaggedRows        = errors.New("rows have inconsistent lengths")
)

// CellBits is the widest cell value the extractor supports. QA bands are
// encoded as 16- or 32-bit unsigned integers; field descriptors must fit
// within this width.
const CellBits = 32
