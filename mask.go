package scatter

import "math"

// offset is a pixel displacement relative to a point's own pixel.
type offset struct {
	dx, dy int
}

// diskMask returns every integer offset (dx, dy) with hypot(dx, dy) <= r,
// row-major from the top-left of the bounding square. It is a pure function
// of r: the same radius always yields the same mask, and r = 0 degenerates
// to the single offset (0, 0). The mask is computed once per Simplify call
// and reused for every point in every chunk.
func diskMask(r float64) []offset {
	reach := int(math.Ceil(r))
	r2 := r * r
	mask := make([]offset, 0, (2*reach+1)*(2*reach+1))
	for dy := -reach; dy <= reach; dy++ {
		for dx := -reach; dx <= reach; dx++ {
			if float64(dx*dx+dy*dy) <= r2 {
				mask = append(mask, offset{dx: dx, dy: dy})
			}
		}
	}
	return mask
}
