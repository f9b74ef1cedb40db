package raster

import (
	"encoding/binary"
	"errors"
	"image"
	"math"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/tiff"

	"github.com/robert-malhotra/go-qamask/internal/rawband"
	"github.com/robert-malhotra/go-qamask/qamask"
)

func writeGray16TIFF(t *testing.T, path string, w, h int, cells []uint16) {
	t.Helper()
	img := image.NewGray16(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := cells[y*w+x]
			img.Pix[y*img.Stride+x*2] = byte(v >> 8)
			img.Pix[y*img.Stride+x*2+1] = byte(v)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("creating %s: %v", path, err)
	}
	defer f.Close()
	if err := tiff.Encode(f, img, nil); err != nil {
		t.Fatalf("encoding %s: %v", path, err)
	}
}

func TestReadTIFFGray16(t *testing.T) {
	path := filepath.Join(t.TempDir(), "qa.tif")
	writeGray16TIFF(t, path, 2, 2, []uint16{0xC000, 0x0001, 0x4000, 0x0000})

	band, err := ReadTIFF(path)
	if err != nil {
		t.Fatalf("ReadTIFF failed: %v", err)
	}
	if band.Grid.Width != 2 || band.Grid.Height != 2 {
		t.Fatalf("got %dx%d, want 2x2", band.Grid.Width, band.Grid.Height)
	}
	if band.Grid.At(0, 0) != 0xC000 || band.Grid.At(0, 1) != 0x4000 {
		t.Errorf("cell values misplaced: %v", band.Grid.Pix)
	}
	if band.Georef != nil {
		t.Error("expected nil georef without sidecars")
	}
}

func TestWriteTIFFRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mask.tif")

	m := qamask.NewMask(3, 1)
	m.Set(1, 0, true)
	if err := WriteTIFF(path, m); err != nil {
		t.Fatalf("WriteTIFF failed: %v", err)
	}

	band, err := ReadTIFF(path)
	if err != nil {
		t.Fatalf("ReadTIFF failed: %v", err)
	}
	want := []uint32{0, 1, 0}
	for i, w := range want {
		if band.Grid.Pix[i] != w {
			t.Errorf("cell %d: got %d, want %d", i, band.Grid.Pix[i], w)
		}
	}
}

func TestGeorefSidecarRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mask.tif")

	georef := &Georef{
		CRS:       `PROJCS["WGS 84 / UTM zone 33N"]`,
		Transform: [6]float64{300000, 30, 0, 5000010, 0, -30},
	}
	m := qamask.NewMask(1, 1)
	if err := WriteTIFF(path, m, WithGeoref(georef)); err != nil {
		t.Fatalf("WriteTIFF failed: %v", err)
	}

	band, err := ReadTIFF(path)
	if err != nil {
		t.Fatalf("ReadTIFF failed: %v", err)
	}
	if band.Georef == nil {
		t.Fatal("expected georef from sidecars")
	}
	if band.Georef.CRS != georef.CRS {
		t.Errorf("CRS = %q, want %q", band.Georef.CRS, georef.CRS)
	}
	for i := range georef.Transform {
		if math.Abs(band.Georef.Transform[i]-georef.Transform[i]) > 1e-6 {
			t.Errorf("transform[%d] = %g, want %g", i, band.Georef.Transform[i], georef.Transform[i])
		}
	}
}

func TestReadSidecarsMalformed(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "qa.tif")
	writeGray16TIFF(t, path, 1, 1, []uint16{0})
	if err := os.WriteFile(filepath.Join(dir, "qa.tfw"), []byte("30\n0\n0\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := ReadTIFF(path); !errors.Is(err, ErrWorldFile) {
		t.Errorf("got %v, want ErrWorldFile", err)
	}
}

func TestWriteTIFFVisibleMask(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mask.tif")
	m := qamask.NewMask(1, 1)
	m.Set(0, 0, true)
	if err := WriteTIFF(path, m, WithVisibleMask()); err != nil {
		t.Fatalf("WriteTIFF failed: %v", err)
	}

	band, err := ReadTIFF(path)
	if err != nil {
		t.Fatalf("ReadTIFF failed: %v", err)
	}
	if band.Grid.At(0, 0) != 255 {
		t.Errorf("got %d, want 255", band.Grid.At(0, 0))
	}
}

func TestReadRaw(t *testing.T) {
	path := filepath.Join(t.TempDir(), "qa.img")
	cells := []uint16{0xC000, 0x0001, 0x4000, 0xFFFF, 0x0000, 0x0010}
	buf := make([]byte, len(cells)*2)
	for i, v := range cells {
		binary.LittleEndian.PutUint16(buf[i*2:], v)
	}
	if err := os.WriteFile(path, buf, 0o644); err != nil {
		t.Fatal(err)
	}

	band, err := ReadRaw(path, rawband.DefaultConfig(), 3, 2)
	if err != nil {
		t.Fatalf("ReadRaw failed: %v", err)
	}
	if band.Grid.Width != 3 || band.Grid.Height != 2 {
		t.Fatalf("got %dx%d, want 3x2", band.Grid.Width, band.Grid.Height)
	}
	for i, v := range cells {
		if band.Grid.Pix[i] != uint32(v) {
			t.Errorf("cell %d: got %#x, want %#x", i, band.Grid.Pix[i], v)
		}
	}
}

func TestReadRawTruncated(t *testing.T) {
	path := filepath.Join(t.TempDir(), "qa.img")
	if err := os.WriteFile(path, []byte{1, 2, 3}, 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := ReadRaw(path, rawband.DefaultConfig(), 2, 2); err == nil {
		t.Error("expected error for truncated band")
	}
}
