package physics

import "github.com/kako-jun/yatagarrage/core"

// BoxAround returns the rectangle of size w×h centered at (x, y)
func BoxAround(x, y, w, h float64) core.Rect {
	return core.Rect{MinX: x - w/2, MinY: y - h/2, MaxX: x + w/2, MaxY: y + h/2}
}

// CircleRect reports whether a circle touches or overlaps a rectangle
func CircleRect(cx, cy, r float64, b core.Rect) bool {
	nx := cx
	if nx < b.MinX {
		nx = b.MinX
	} else if nx > b.MaxX {
		nx = b.MaxX
	}
	ny := cy
	if ny < b.MinY {
		ny = b.MinY
	} else if ny > b.MaxY {
		ny = b.MaxY
	}
	dx := cx - nx
	dy := cy - ny
	return dx*dx+dy*dy <= r*r
}

// RectOverlap reports whether two rectangles intersect with positive area
func RectOverlap(a, b core.Rect) bool {
	return a.MinX < b.MaxX && a.MaxX > b.MinX && a.MinY < b.MaxY && a.MaxY > b.MinY
}
