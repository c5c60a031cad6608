package scatter

import (
	"fmt"
	"math"
	"runtime"

	"github.com/otvam/scatter-simplify-go/internal/chunk"
	"github.com/otvam/scatter-simplify-go/internal/parallel"
)

// Simplify returns the indices of the points that would remain visible in a
// scatter plot of the given resolution, in ascending order.
//
// Each point stamps a disk of the given radius (in pixels) onto a simulated
// NX×NY framebuffer; later points overwrite earlier ones, and an index is
// retained iff at least one of its pixels survives to the end. The result
// is therefore at most NX*NY indices long regardless of the input size.
//
// Points outside the axis range, or whose footprint misses the grid
// entirely, are silently dropped — only invalid configuration is an error:
// a degenerate axis range (ErrAxisRange), non-positive grid dimensions
// (ErrGridSize), a negative marker radius (ErrMarkerRadius), or a
// non-positive chunk size (ErrChunkSize). All of these are rejected before
// any allocation. An empty input yields an empty result and no error.
func Simplify(points []Point, axis Axis, grid Grid, radius float64, opts ...Option) ([]int, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if err := axis.validate(); err != nil {
		return nil, err
	}
	if err := grid.validate(); err != nil {
		return nil, err
	}
	if radius < 0 || math.IsNaN(radius) {
		return nil, fmt.Errorf("%w: %v", ErrMarkerRadius, radius)
	}
	if o.chunkSize <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrChunkSize, o.chunkSize)
	}
	if len(points) == 0 {
		return nil, nil
	}

	mask := diskMask(radius)
	buf := newPixelBuffer(grid.NX, grid.NY)

	workers := o.workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	var pool *parallel.WorkerPool
	if workers > 1 && grid.NY > 1 {
		pool = parallel.NewWorkerPool(workers)
		defer pool.Close()
	}

	st := newStamper(buf, axis, mask, radius, pool)
	chunks := 0
	for r := range chunk.Ranges(len(points), o.chunkSize) {
		st.stampChunk(points, r.Lo, r.Hi)
		chunks++
	}

	retained := buf.indices(len(points))
	Logger().Debug("scatter: simplify done",
		"points", len(points),
		"mask", len(mask),
		"chunks", chunks,
		"retained", len(retained))
	return retained, nil
}
