package main

import (
	"encoding/binary"

	"github.com/spf13/cobra"

	"github.com/robert-malhotra/go-qamask/internal/rawband"
	"github.com/robert-malhotra/go-qamask/raster"
)

// rawFlags select the flat-binary input path for bands that are not TIFF.
type rawFlags struct {
	width     int
	height    int
	cellSize  int
	bigEndian bool
}

func (r *rawFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&r.width, "raw-width", 0, "width of a headerless flat binary band")
	cmd.Flags().IntVar(&r.height, "raw-height", 0, "height of a headerless flat binary band")
	cmd.Flags().IntVar(&r.cellSize, "raw-cell-size", 2, "bytes per cell of a flat binary band (2 or 4)")
	cmd.Flags().BoolVar(&r.bigEndian, "raw-big-endian", false, "flat binary band is big-endian")
}

func (r *rawFlags) set() bool {
	return r.width > 0 || r.height > 0
}

func (r *rawFlags) config() rawband.Config {
	cfg := rawband.Config{
		ByteOrder: binary.LittleEndian,
		CellSize:  r.cellSize,
	}
	if r.bigEndian {
		cfg.ByteOrder = binary.BigEndian
	}
	return cfg
}

// loadBand reads the input band, choosing the raw path when raw dimensions
// were given and TIFF otherwise.
func loadBand(path string, raw rawFlags) (*raster.Band, error) {
	if raw.set() {
		return raster.ReadRaw(path, raw.config(), raw.width, raw.height)
	}
	return raster.ReadTIFF(path)
}

// writeMaskOptions assembles output options: georeference passthrough from
// the input band plus the configured mask scaling.
func writeMaskOptions(band *raster.Band) []raster.WriteOption {
	var opts []raster.WriteOption
	if band.Georef != nil {
		opts = append(opts, raster.WithGeoref(band.Georef))
	}
	if defaults.VisibleMasks {
		opts = append(opts, raster.WithVisibleMask())
	}
	return opts
}
