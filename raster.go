package scatter

import (
	"math"

	"github.com/otvam/scatter-simplify-go/internal/parallel"
)

// offGrid marks a projected point whose footprint cannot reach any grid
// cell. Such points are culled once per chunk instead of per mask offset.
const offGrid = math.MinInt32

// band is a contiguous range of buffer rows owned by one worker during
// parallel stamping. Bands partition the cells exactly, so no two workers
// ever write the same cell.
type band struct {
	y0, y1 int
}

// stamper projects chunks of points to pixel coordinates and stamps their
// indices into the buffer through the disk mask. Scratch slices are
// allocated on the first chunk and reused for the rest, keeping transient
// memory proportional to the chunk size rather than the input size.
type stamper struct {
	buf  *pixelBuffer
	mask []offset

	// Linear projection per axis: pixel = round((coord - min) * scale).
	xMin, yMin float64
	sx, sy     float64

	// Cull bounds for projected centers. A center further than the mask
	// reach outside the grid cannot touch any cell.
	loX, hiX float64
	loY, hiY float64

	px, py []int // per-chunk scratch of projected pixel coordinates

	pool  *parallel.WorkerPool
	bands []band
}

// newStamper prepares stamping into buf for the given axis mapping and
// mask. A nil pool selects the sequential path.
func newStamper(buf *pixelBuffer, axis Axis, mask []offset, radius float64, pool *parallel.WorkerPool) *stamper {
	reach := math.Ceil(radius)
	s := &stamper{
		buf:  buf,
		mask: mask,
		xMin: axis.XMin,
		yMin: axis.YMin,
		sx:   float64(buf.nx-1) / (axis.XMax - axis.XMin),
		sy:   float64(buf.ny-1) / (axis.YMax - axis.YMin),
		loX:  -reach,
		hiX:  float64(buf.nx-1) + reach,
		loY:  -reach,
		hiY:  float64(buf.ny-1) + reach,
		pool: pool,
	}
	if pool != nil {
		s.bands = splitBands(buf.ny, pool.Workers())
	}
	return s
}

// stampChunk applies points[lo:hi] to the buffer. Chunks must be applied
// in ascending order: a later chunk overwrites earlier ones, which is what
// encodes draw priority across chunks.
func (s *stamper) stampChunk(points []Point, lo, hi int) {
	n := hi - lo
	if cap(s.px) < n {
		s.px = make([]int, n)
		s.py = make([]int, n)
	}
	px := s.px[:n]
	py := s.py[:n]

	for i, p := range points[lo:hi] {
		fx := math.Round((p.X - s.xMin) * s.sx)
		fy := math.Round((p.Y - s.yMin) * s.sy)
		// The negated test also rejects NaN coordinates.
		if !(fx >= s.loX && fx <= s.hiX && fy >= s.loY && fy <= s.hiY) {
			px[i] = offGrid
			continue
		}
		px[i], py[i] = int(fx), int(fy)
	}

	if s.pool == nil {
		s.buf.stampBand(px, py, lo, s.mask, 0, s.buf.ny)
		return
	}

	work := make([]func(), len(s.bands))
	for i, bd := range s.bands {
		work[i] = func() {
			s.buf.stampBand(px, py, lo, s.mask, bd.y0, bd.y1)
		}
	}
	s.pool.ExecuteAll(work)
}

// stampBand writes the chunk's point indices into every in-bounds cell of
// their mask footprints, restricted to rows [y0, y1). Points are applied in
// ascending index order, so the last write to a contested cell is always
// the highest colliding index — the same rule that holds across chunks.
func (b *pixelBuffer) stampBand(px, py []int, base int, mask []offset, y0, y1 int) {
	for i, cx := range px {
		if cx == offGrid {
			continue
		}
		cy := py[i]
		idx := base + i
		for _, o := range mask {
			y := cy + o.dy
			if y < y0 || y >= y1 {
				continue
			}
			x := cx + o.dx
			if x < 0 || x >= b.nx {
				continue
			}
			b.cells[y*b.nx+x] = idx
		}
	}
}

// splitBands divides ny rows into at most workers contiguous bands of
// near-equal height.
func splitBands(ny, workers int) []band {
	if workers > ny {
		workers = ny
	}
	bands := make([]band, 0, workers)
	base, rem := ny/workers, ny%workers
	y := 0
	for i := range workers {
		h := base
		if i < rem {
			h++
		}
		bands = append(bands, band{y0: y, y1: y + h})
		y += h
	}
	return bands
}
