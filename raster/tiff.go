package raster

import (
	"fmt"
	"image"
	"os"

	"golang.org/x/image/tiff"

	"github.com/robert-malhotra/go-qamask/qamask"
)

// ReadTIFF loads a single-band grayscale TIFF as a QA grid. 8- and 16-bit
// samples are supported. If a world-file sidecar sits next to the raster,
// its georeference is attached to the band.
func ReadTIFF(path string) (*Band, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening band: %w", err)
	}
	defer f.Close()

	img, err := tiff.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}

	grid, err := gridFromImage(img)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	georef, err := readSidecars(path)
	if err != nil {
		return nil, err
	}
	return &Band{Grid: grid, Georef: georef}, nil
}

// gridFromImage copies a decoded image's samples into a grid.
func gridFromImage(img image.Image) (*qamask.Grid, error) {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	grid := qamask.NewGrid(w, h)

	switch src := img.(type) {
	case *image.Gray:
		for y := 0; y < h; y++ {
			row := src.Pix[y*src.Stride:]
			for x := 0; x < w; x++ {
				grid.Set(x, y, uint32(row[x]))
			}
		}
	case *image.Gray16:
		// Gray16 stores big-endian sample pairs.
		for y := 0; y < h; y++ {
			row := src.Pix[y*src.Stride:]
			for x := 0; x < w; x++ {
				grid.Set(x, y, uint32(row[x*2])<<8|uint32(row[x*2+1]))
			}
		}
	default:
		return nil, fmt.Errorf("%T: %w", img, ErrBandFormat)
	}
	return grid, nil
}

// WriteTIFF stores a mask as an 8-bit grayscale TIFF, true cells as 1 (or
// 255 with WithVisibleMask). WithGeoref additionally writes world-file and
// .prj sidecars.
func WriteTIFF(path string, m *qamask.Mask, opts ...WriteOption) error {
	o := defaultWriteOptions()
	for _, opt := range opts {
		opt(o)
	}

	img := image.NewGray(image.Rect(0, 0, m.Width, m.Height))
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			if m.At(x, y) {
				img.Pix[y*img.Stride+x] = o.scale
			}
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output: %w", err)
	}
	if err := tiff.Encode(f, img, &tiff.Options{Compression: tiff.Deflate}); err != nil {
		f.Close()
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return err
	}

	if o.georef != nil {
		if err := writeSidecars(path, o.georef); err != nil {
			return err
		}
	}
	return nil
}
