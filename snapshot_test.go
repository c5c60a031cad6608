package scatter

import (
	"errors"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestSnapshotImageSize(t *testing.T) {
	pts := []Point{Pt(0.5, 0.5)}
	img, err := SnapshotImage(pts, []int{0}, unitAxis, Grid{NX: 10, NY: 5}, 1, 4)
	if err != nil {
		t.Fatalf("SnapshotImage error: %v", err)
	}
	b := img.Bounds()
	if b.Dx() != 40 || b.Dy() != 20 {
		t.Errorf("snapshot size = %dx%d, want 40x20", b.Dx(), b.Dy())
	}
}

func TestSnapshotImageMarksOccupiedCells(t *testing.T) {
	// Radius 0 marker on a 2x2 grid: the corner point occupies exactly one
	// cell, white, and the opposite corner stays black.
	pts := []Point{Pt(0, 0), Pt(1, 1)}
	img, err := SnapshotImage(pts, []int{0}, unitAxis, Grid{NX: 2, NY: 2}, 0, 1)
	if err != nil {
		t.Fatalf("SnapshotImage error: %v", err)
	}

	if got := color.GrayModel.Convert(img.At(0, 0)).(color.Gray).Y; got != 0xff {
		t.Errorf("occupied cell gray = %#x, want 0xff", got)
	}
	if got := color.GrayModel.Convert(img.At(1, 1)).(color.Gray).Y; got != 0 {
		t.Errorf("empty cell gray = %#x, want 0", got)
	}
}

func TestSnapshotImageErrors(t *testing.T) {
	pts := []Point{Pt(0.5, 0.5)}
	grid := Grid{NX: 4, NY: 4}

	if _, err := SnapshotImage(pts, []int{0}, Axis{XMin: 1, XMax: 1, YMin: 0, YMax: 1}, grid, 1, 1); !errors.Is(err, ErrAxisRange) {
		t.Errorf("degenerate axis error = %v, want ErrAxisRange", err)
	}
	if _, err := SnapshotImage(pts, []int{0}, unitAxis, grid, -1, 1); !errors.Is(err, ErrMarkerRadius) {
		t.Errorf("negative radius error = %v, want ErrMarkerRadius", err)
	}
	if _, err := SnapshotImage(pts, []int{0}, unitAxis, grid, 1, 0); err == nil {
		t.Error("scale 0 should be rejected")
	}
	if _, err := SnapshotImage(pts, []int{3}, unitAxis, grid, 1, 1); err == nil {
		t.Error("out-of-range retained index should be rejected")
	}
}

func TestSnapshotPNG(t *testing.T) {
	pts := randomPoints(500)
	grid := Grid{NX: 16, NY: 16}
	retained, err := Simplify(pts, unitAxis, grid, 1)
	if err != nil {
		t.Fatalf("Simplify error: %v", err)
	}

	path := filepath.Join(t.TempDir(), "snapshot.png")
	if err := SnapshotPNG(path, pts, retained, unitAxis, grid, 1, 2); err != nil {
		t.Fatalf("SnapshotPNG error: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open snapshot: %v", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode snapshot: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 32 || b.Dy() != 32 {
		t.Errorf("snapshot size = %dx%d, want 32x32", b.Dx(), b.Dy())
	}
}
