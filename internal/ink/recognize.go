package ink

import "math"

// ShapeKind identifies the primitive a stroke was recognized as.
type ShapeKind int

const (
	// ShapeNone means no primitive met the recognition thresholds; the
	// caller falls back to the freehand path.
	ShapeNone ShapeKind = iota

	// ShapeLine is a straight segment between the stroke's endpoints.
	ShapeLine

	// ShapeCircle is a circle centered on the stroke's bounding box.
	ShapeCircle

	// ShapeRect is the stroke's axis-aligned bounding box.
	ShapeRect
)

// String returns the wire name of the kind, matching element types on the
// canvas document.
func (k ShapeKind) String() string {
	switch k {
	case ShapeLine:
		return "line"
	case ShapeCircle:
		return "circle"
	case ShapeRect:
		return "rect"
	default:
		return "none"
	}
}

// Shape holds the parameters of a recognized primitive. Kind indicates which
// fields are meaningful.
type Shape struct {
	Kind ShapeKind

	// Line endpoints (the stroke's first and last sample).
	X1, Y1, X2, Y2 float64

	// Circle center and radius.
	X, Y, Radius float64

	// Rect min corner and extent.
	RectX, RectY, Width, Height float64
}

// Recognition thresholds. These were tuned against real drawing sessions;
// changing them changes which sketches snap to primitives.
const (
	minRecognizePoints = 8

	lineLinearity  = 0.85
	lineMinLength  = 50.0
	closeMinDist   = 30.0
	closeSizeRatio = 0.15
	minShapeSize   = 30.0

	circleScore       = 0.75
	circleAspect      = 0.7
	rectFallbackScore = 0.6

	rectMinCorners = 4
	rectMaxCorners = 6
)

// RecognizeShape classifies a completed stroke as a line, circle, or
// rectangle, or returns a ShapeNone result when the stroke should stay
// freehand. Rules are checked in strict order: a nearly straight stroke is
// always a line, even when its endpoints happen to nearly touch — otherwise
// a tight back-and-forth scribble would score as a degenerate circle.
func RecognizeShape(points []Point) Shape {
	if len(points) < minRecognizePoints {
		return Shape{Kind: ShapeNone}
	}

	minX, minY, maxX, maxY := bounds(points)
	width := maxX - minX
	height := maxY - minY
	centerX := (minX + maxX) / 2
	centerY := (minY + maxY) / 2
	size := max(width, height)

	first := points[0]
	last := points[len(points)-1]

	// Line: displacement close to total drawn length.
	totalLength := pathLength(points)
	if totalLength > 0 {
		linearity := first.Dist(last) / totalLength
		if linearity > lineLinearity && totalLength > lineMinLength {
			return Shape{
				Kind: ShapeLine,
				X1:   first.X, Y1: first.Y,
				X2: last.X, Y2: last.Y,
			}
		}
	}

	// Only closed strokes can be circles or rectangles.
	closingDist := first.Dist(last)
	if closingDist >= max(closeMinDist, size*closeSizeRatio) || size <= minShapeSize {
		return Shape{Kind: ShapeNone}
	}

	// Circularity: how constant the radial distance from the bounding-box
	// center is across all samples.
	avgRadius := (width + height) / 4
	circularity := 0.0
	avgActualRadius := 0.0
	if avgRadius > 0 {
		radiusSum := 0.0
		radiusVariance := 0.0
		for _, p := range points {
			r := math.Sqrt((p.X-centerX)*(p.X-centerX) + (p.Y-centerY)*(p.Y-centerY))
			radiusSum += r
			radiusVariance += math.Abs(r - avgRadius)
		}
		n := float64(len(points))
		avgActualRadius = radiusSum / n
		circularity = 1 - (radiusVariance/n)/avgRadius
	}

	aspectRatio := min(width, height) / max(width, height)

	if circularity > circleScore && aspectRatio > circleAspect {
		return Shape{
			Kind: ShapeCircle,
			X:    centerX, Y: centerY,
			Radius: avgActualRadius,
		}
	}

	rect := Shape{
		Kind:  ShapeRect,
		RectX: minX, RectY: minY,
		Width: width, Height: height,
	}

	// Users draw imperfect rectangles more often than imperfect circles, so
	// corner count is consulted before giving up on a closed stroke.
	corners := FindCorners(points)
	if len(corners) >= rectMinCorners && len(corners) <= rectMaxCorners {
		return rect
	}

	if aspectRatio < circleAspect || circularity < rectFallbackScore {
		return rect
	}

	return Shape{Kind: ShapeNone}
}
