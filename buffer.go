package scatter

import "math/bits"

// emptyCell marks a pixel no point has covered. An explicit integer
// sentinel keeps the buffer free of any encoding tricks: every other cell
// value is a valid 0-based point index.
const emptyCell = -1

// pixelBuffer is the simulated framebuffer. Each cell records the index of
// the last point whose disk footprint covered it, so after all chunks have
// been applied in ascending order a non-empty cell holds the maximum index
// among its covering points.
type pixelBuffer struct {
	nx, ny int
	cells  []int // row-major, cells[y*nx+x]
}

// newPixelBuffer creates a buffer with all cells empty.
func newPixelBuffer(nx, ny int) *pixelBuffer {
	cells := make([]int, nx*ny)
	for i := range cells {
		cells[i] = emptyCell
	}
	return &pixelBuffer{nx: nx, ny: ny, cells: cells}
}

// at returns the cell value at (x, y). Used by tests and the snapshot
// renderer; the stamping hot path indexes cells directly.
func (b *pixelBuffer) at(x, y int) int {
	return b.cells[y*b.nx+x]
}

// indices returns the distinct point indices surviving in the buffer, in
// ascending order. n is the total point count; duplicate cells are folded
// through a visited bitset so the scan stays a single pass over the buffer
// with no per-cell allocation.
func (b *pixelBuffer) indices(n int) []int {
	words := make([]uint64, (n+63)/64)
	count := 0
	for _, c := range b.cells {
		if c == emptyCell {
			continue
		}
		w, bit := uint(c)/64, uint(c)%64
		if words[w]&(1<<bit) == 0 {
			words[w] |= 1 << bit
			count++
		}
	}

	out := make([]int, 0, count)
	for w, word := range words {
		for word != 0 {
			bit := bits.TrailingZeros64(word)
			out = append(out, w*64+bit)
			word &^= 1 << bit
		}
	}
	return out
}
