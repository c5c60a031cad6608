package scatter

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"

	"golang.org/x/image/draw"
)

// SnapshotImage renders a diagnostic view of the occupied framebuffer
// cells: the retained points are stamped back into an NX×NY grid and every
// covered cell is drawn white on black, upscaled by the integer factor
// scale with nearest-neighbor so individual cells stay visible.
//
// This is a debugging aid for inspecting what Simplify kept, not a plot:
// there are no axes, no colors, and no per-point attributes. scale must be
// at least 1, retained indices must be valid for points, and axis, grid and
// radius follow the same rules as Simplify.
func SnapshotImage(points []Point, retained []int, axis Axis, grid Grid, radius float64, scale int) (*image.RGBA, error) {
	if err := axis.validate(); err != nil {
		return nil, err
	}
	if err := grid.validate(); err != nil {
		return nil, err
	}
	if radius < 0 || math.IsNaN(radius) {
		return nil, fmt.Errorf("%w: %v", ErrMarkerRadius, radius)
	}
	if scale < 1 {
		return nil, fmt.Errorf("scatter: snapshot scale must be at least 1, got %d", scale)
	}

	kept := make([]Point, len(retained))
	for i, idx := range retained {
		if idx < 0 || idx >= len(points) {
			return nil, fmt.Errorf("scatter: retained index %d out of range [0, %d)", idx, len(points))
		}
		kept[i] = points[idx]
	}

	buf := newPixelBuffer(grid.NX, grid.NY)
	st := newStamper(buf, axis, diskMask(radius), radius, nil)
	st.stampChunk(kept, 0, len(kept))

	cells := image.NewGray(image.Rect(0, 0, grid.NX, grid.NY))
	for y := range grid.NY {
		for x := range grid.NX {
			if buf.at(x, y) != emptyCell {
				cells.SetGray(x, y, color.Gray{Y: 0xff})
			}
		}
	}

	dst := image.NewRGBA(image.Rect(0, 0, grid.NX*scale, grid.NY*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), cells, cells.Bounds(), draw.Src, nil)
	return dst, nil
}

// SnapshotPNG renders the snapshot and writes it to a PNG file.
func SnapshotPNG(path string, points []Point, retained []int, axis Axis, grid Grid, radius float64, scale int) error {
	img, err := SnapshotImage(points, retained, axis, grid, radius, scale)
	if err != nil {
		return err
	}

	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	return png.Encode(f, img)
}
