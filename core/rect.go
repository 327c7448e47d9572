package core

// Rect is an axis-aligned rectangle, edges inclusive
type Rect struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// Outside reports whether the point lies strictly outside the rectangle
func (r Rect) Outside(x, y float64) bool {
	return x < r.MinX || x > r.MaxX || y < r.MinY || y > r.MaxY
}

// Clamp pulls the point into the rectangle
func (r Rect) Clamp(x, y float64) (float64, float64) {
	if x < r.MinX {
		x = r.MinX
	} else if x > r.MaxX {
		x = r.MaxX
	}
	if y < r.MinY {
		y = r.MinY
	} else if y > r.MaxY {
		y = r.MaxY
	}
	return x, y
}
