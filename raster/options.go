package raster

// WriteOption configures mask output.
type WriteOption func(*writeOptions)

type writeOptions struct {
	georef *Georef
	scale  uint8
}

func defaultWriteOptions() *writeOptions {
	return &writeOptions{
		scale: 1,
	}
}

// WithGeoref attaches a georeference to the output. The transform is written
// as a world-file sidecar and the CRS as a .prj sidecar next to the raster.
func WithGeoref(g *Georef) WriteOption {
	return func(o *writeOptions) {
		o.georef = g
	}
}

// WithVisibleMask writes true cells as 255 instead of 1, so the mask is
// viewable in plain image tools.
func WithVisibleMask() WriteOption {
	return func(o *writeOptions) {
		o.scale = 255
	}
}
