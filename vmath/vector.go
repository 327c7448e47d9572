package vmath

import "math"

// Heading returns the angle of the vector (x, y)
func Heading(x, y float64) float64 {
	return math.Atan2(y, x)
}

// Magnitude returns the euclidean length of (x, y)
func Magnitude(x, y float64) float64 {
	return math.Sqrt(x*x + y*y)
}

// DistSq returns the squared distance between two points
func DistSq(ax, ay, bx, by float64) float64 {
	dx := bx - ax
	dy := by - ay
	return dx*dx + dy*dy
}

// Polar returns the cartesian vector of given length and angle
func Polar(angle, length float64) (x, y float64) {
	return float64(math.Cos(angle) * length), float64(math.Sin(angle) * length)
}

// Rotate rotates (x, y) by angle radians
func Rotate(x, y, angle float64) (float64, float64) {
	c, s := math.Cos(angle), math.Sin(angle)
	return x*c - y*s, x*s + y*c
}

// Finite reports whether all values are neither NaN nor infinite
func Finite(vals ...float64) bool {
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
