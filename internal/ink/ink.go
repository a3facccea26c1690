// Package ink implements the freehand stroke geometry used by the canvas:
// corner detection, shape recognition, and path smoothing. All functions are
// pure and operate on points in canvas logical space (post pan/zoom); the
// package performs no coordinate transforms of its own.
package ink

import "math"

// Point is a 2D coordinate in canvas logical space.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Dist returns the Euclidean distance to other.
func (p Point) Dist(other Point) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// StrokeBuilder accumulates pointer samples for an in-progress stroke.
// It is owned by the input-handling layer; the recognizer and smoother only
// ever see the sealed point slice.
type StrokeBuilder struct {
	points []Point
	sealed bool
}

// NewStrokeBuilder returns an empty builder, created at pointer-down.
func NewStrokeBuilder() *StrokeBuilder {
	return &StrokeBuilder{points: make([]Point, 0, 64)}
}

// Add appends a sample to the stroke. Samples after Seal are dropped.
func (b *StrokeBuilder) Add(p Point) {
	if b.sealed {
		return
	}
	b.points = append(b.points, p)
}

// Len returns the number of samples collected so far.
func (b *StrokeBuilder) Len() int {
	return len(b.points)
}

// Seal marks the stroke complete and returns the point sequence. The builder
// keeps no reference to the returned slice; callers treat it as immutable.
func (b *StrokeBuilder) Seal() []Point {
	b.sealed = true
	points := b.points
	b.points = nil
	return points
}

// pathLength returns the sum of consecutive-point distances.
func pathLength(points []Point) float64 {
	total := 0.0
	for i := 1; i < len(points); i++ {
		total += points[i].Dist(points[i-1])
	}
	return total
}

// bounds returns the axis-aligned bounding box of points as min/max pairs.
// Caller guarantees len(points) > 0.
func bounds(points []Point) (minX, minY, maxX, maxY float64) {
	minX, minY = points[0].X, points[0].Y
	maxX, maxY = points[0].X, points[0].Y
	for _, p := range points[1:] {
		minX = min(minX, p.X)
		minY = min(minY, p.Y)
		maxX = max(maxX, p.X)
		maxY = max(maxY, p.Y)
	}
	return minX, minY, maxX, maxY
}
