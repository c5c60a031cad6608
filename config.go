package scatter

import (
	"errors"
	"fmt"
)

// Configuration errors returned by Simplify. All of them are detected
// upfront, before any buffer allocation.
var (
	// ErrAxisRange indicates a degenerate axis range (max <= min on either
	// axis), which would divide by zero during normalization.
	ErrAxisRange = errors.New("scatter: degenerate axis range")

	// ErrGridSize indicates a non-positive pixel count in either dimension.
	ErrGridSize = errors.New("scatter: grid dimensions must be positive")

	// ErrMarkerRadius indicates a negative marker radius.
	ErrMarkerRadius = errors.New("scatter: marker radius must be non-negative")

	// ErrChunkSize indicates a non-positive chunk size.
	ErrChunkSize = errors.New("scatter: chunk size must be positive")
)

// Axis defines the linear mapping from data space to pixel space.
// Points outside the range are allowed; they just never land on the grid.
type Axis struct {
	XMin, XMax float64
	YMin, YMax float64
}

func (a Axis) validate() error {
	// The negated comparisons also reject NaN limits.
	if !(a.XMax > a.XMin) {
		return fmt.Errorf("%w: x in [%v, %v]", ErrAxisRange, a.XMin, a.XMax)
	}
	if !(a.YMax > a.YMin) {
		return fmt.Errorf("%w: y in [%v, %v]", ErrAxisRange, a.YMin, a.YMax)
	}
	return nil
}

// Grid is the resolution of the simulated framebuffer, in pixels.
type Grid struct {
	NX, NY int
}

func (g Grid) validate() error {
	if g.NX <= 0 || g.NY <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrGridSize, g.NX, g.NY)
	}
	return nil
}
