// Package raster loads QA bands into qamask grids and writes masks back out.
// It is the thin I/O collaborator around the qamask core: the core never
// touches files or georeferencing, and this package never interprets bits.
package raster

import (
	"errors"

	"github.com/robert-malhotra/go-qamask/qamask"
)

// Common errors
var (
	ErrBandFormat = errors.New("unsupported band sample format")
	ErrWorldFile  = errors.New("malformed world file")
)

// Band is a decoded raster band: the cell grid plus whatever georeference
// accompanied it on disk. Georef is nil when the source carried none.
type Band struct {
	Grid   *qamask.Grid
	Georef *Georef
}

// Georef carries a band's georeference: a CRS description and the six-term
// affine transform (origin x, pixel width, row rotation, origin y, column
// rotation, pixel height). It is copied from input to output untouched.
type Georef struct {
	CRS       string
	Transform [6]float64
}
