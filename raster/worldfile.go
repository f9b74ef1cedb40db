package raster

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// World files describe a raster's affine transform as six lines: pixel
// width, row rotation, column rotation, pixel height, then the x and y
// coordinates of the CENTER of the upper-left pixel. The Georef transform
// keeps the corner-origin convention, so the origin shifts by half a pixel
// in each direction on the way through.

func worldFilePath(rasterPath string) string {
	return trimRasterExt(rasterPath) + ".tfw"
}

func prjFilePath(rasterPath string) string {
	return trimRasterExt(rasterPath) + ".prj"
}

func trimRasterExt(path string) string {
	if i := strings.LastIndexByte(path, '.'); i > strings.LastIndexByte(path, '/') {
		return path[:i]
	}
	return path
}

// readSidecars loads the georeference next to a raster, if any. A missing
// world file is not an error; a malformed one is.
func readSidecars(rasterPath string) (*Georef, error) {
	raw, err := os.ReadFile(worldFilePath(rasterPath))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading world file: %w", err)
	}

	lines := strings.Fields(string(raw))
	if len(lines) != 6 {
		return nil, fmt.Errorf("%s has %d values, want 6: %w", worldFilePath(rasterPath), len(lines), ErrWorldFile)
	}
	var vals [6]float64
	for i, line := range lines {
		v, err := strconv.ParseFloat(line, 64)
		if err != nil {
			return nil, fmt.Errorf("%s line %d: %w", worldFilePath(rasterPath), i+1, ErrWorldFile)
		}
		vals[i] = v
	}

	g := &Georef{}
	// World file order: A D B E C F.
	g.Transform[1] = vals[0] // pixel width
	g.Transform[4] = vals[1] // row rotation
	g.Transform[2] = vals[2] // column rotation
	g.Transform[5] = vals[3] // pixel height (negative for north-up)
	g.Transform[0] = vals[4] - vals[0]/2
	g.Transform[3] = vals[5] - vals[3]/2

	if prj, err := os.ReadFile(prjFilePath(rasterPath)); err == nil {
		g.CRS = strings.TrimSpace(string(prj))
	}
	return g, nil
}

// writeSidecars stores the georeference next to a raster.
func writeSidecars(rasterPath string, g *Georef) error {
	var b strings.Builder
	for _, v := range [6]float64{
		g.Transform[1],
		g.Transform[4],
		g.Transform[2],
		g.Transform[5],
		g.Transform[0] + g.Transform[1]/2,
		g.Transform[3] + g.Transform[5]/2,
	} {
		fmt.Fprintf(&b, "%.10f\n", v)
	}
	if err := os.WriteFile(worldFilePath(rasterPath), []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("writing world file: %w", err)
	}

	if g.CRS != "" {
		if err := os.WriteFile(prjFilePath(rasterPath), []byte(g.CRS+"\n"), 0o644); err != nil {
			return fmt.Errorf("writing prj file: %w", err)
		}
	}
	return nil
}
