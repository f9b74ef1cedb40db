package raster

import (
	"fmt"
	"os"

	"github.com/robert-malhotra/go-qamask/internal/rawband"
	"github.com/robert-malhotra/go-qamask/qamask"
)

// ReadRaw loads a headerless flat binary band with the given dimensions.
// The encoding (byte order, cell size) comes from cfg; raw bands carry no
// georeference.
func ReadRaw(path string, cfg rawband.Config, width, height int) (*Band, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening band: %w", err)
	}
	defer f.Close()

	r, err := rawband.NewReader(f, cfg)
	if err != nil {
		return nil, err
	}
	cells, err := r.ReadCells(width * height)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	grid := qamask.NewGrid(width, height)
	copy(grid.Pix, cells)
	return &Band{Grid: grid}, nil
}
