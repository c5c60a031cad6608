package scatter

// Point represents a 2D data point. Its position in the input slice is its
// draw order: a higher index means drawn later, and therefore on top.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}
