package canvas

// Rect is an axis-aligned bounding box in board space.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Contains checks if a point is inside the rect.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width && y >= r.Y && y <= r.Y+r.Height
}

// IsEmpty checks if the rect has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Union returns the smallest rect containing both rects. A rect with zero
// area still contributes its position, so unioning point rects accumulates
// a polyline's bounds correctly.
func (r Rect) Union(other Rect) Rect {
	minX := min(r.X, other.X)
	minY := min(r.Y, other.Y)
	maxX := max(r.X+r.Width, other.X+other.Width)
	maxY := max(r.Y+r.Height, other.Y+other.Height)

	return Rect{
		X:      minX,
		Y:      minY,
		Width:  maxX - minX,
		Height: maxY - minY,
	}
}

// Center returns the center point of the rect.
func (r Rect) Center() (float64, float64) {
	return r.X + r.Width/2, r.Y + r.Height/2
}
