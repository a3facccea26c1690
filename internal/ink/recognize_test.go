package ink

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// circlePoints samples n+1 points around a circle, closing back on the start.
func circlePoints(cx, cy, r float64, n int) []Point {
	points := make([]Point, 0, n+1)
	for i := 0; i <= n; i++ {
		angle := float64(i) * 2 * math.Pi / float64(n)
		points = append(points, Point{
			X: cx + r*math.Cos(angle),
			Y: cy + r*math.Sin(angle),
		})
	}
	return points
}

// linePoints samples n points evenly between two endpoints.
func linePoints(x1, y1, x2, y2 float64, n int) []Point {
	points := make([]Point, 0, n)
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n-1)
		points = append(points, Point{
			X: x1 + t*(x2-x1),
			Y: y1 + t*(y2-y1),
		})
	}
	return points
}

func TestRecognizeShapeTooFewPoints(t *testing.T) {
	for n := 0; n < 8; n++ {
		points := linePoints(0, 0, 200, 0, 12)[:n]
		got := RecognizeShape(points)
		assert.Equal(t, ShapeNone, got.Kind, "%d points must never classify", n)
	}
}

func TestRecognizeShapeLine(t *testing.T) {
	// 12 near-collinear samples from (0,0) to (200,0) with small vertical noise.
	points := linePoints(0, 0, 200, 0, 12)
	for i := 1; i < len(points)-1; i++ {
		if i%2 == 0 {
			points[i].Y += 1.5
		} else {
			points[i].Y -= 1.5
		}
	}

	got := RecognizeShape(points)
	require.Equal(t, ShapeLine, got.Kind)

	// Endpoints are the stroke's first and last samples, untouched.
	assert.Equal(t, 0.0, got.X1)
	assert.Equal(t, 0.0, got.Y1)
	assert.Equal(t, 200.0, got.X2)
	assert.Equal(t, 0.0, got.Y2)
}

func TestRecognizeShapeShortLineStaysFreehand(t *testing.T) {
	// Perfectly straight but under the 50px minimum length.
	got := RecognizeShape(linePoints(0, 0, 40, 0, 10))
	assert.Equal(t, ShapeNone, got.Kind)
}

func TestRecognizeShapeCircle(t *testing.T) {
	points := circlePoints(200, 200, 50, 20)

	got := RecognizeShape(points)
	require.Equal(t, ShapeCircle, got.Kind)

	assert.InDelta(t, 200, got.X, 1.0)
	assert.InDelta(t, 200, got.Y, 1.0)
	assert.InDelta(t, 50, got.Radius, 0.5)
}

func TestRecognizeShapeRectangle(t *testing.T) {
	// Eight samples tracing a 100x100 square outline, closing within 5px.
	points := []Point{
		{0, 0}, {100, 0}, {100, 50}, {100, 100},
		{50, 100}, {0, 100}, {0, 50}, {0, 4},
	}

	got := RecognizeShape(points)
	require.Equal(t, ShapeRect, got.Kind)

	assert.InDelta(t, 0, got.RectX, 0.001)
	assert.InDelta(t, 0, got.RectY, 0.001)
	assert.InDelta(t, 100, got.Width, 0.001)
	assert.InDelta(t, 100, got.Height, 0.001)
}

func TestRecognizeShapeFlatClosedStrokeIsRectangle(t *testing.T) {
	// A closed stroke with a squashed aspect ratio falls back to a
	// rectangle even when its corner count is ambiguous.
	points := make([]Point, 0, 41)
	for i := 0; i <= 40; i++ {
		angle := float64(i) * 2 * math.Pi / 40
		points = append(points, Point{
			X: 100 + 100*math.Cos(angle),
			Y: 100 + 30*math.Sin(angle),
		})
	}

	got := RecognizeShape(points)
	assert.Equal(t, ShapeRect, got.Kind)
}

func TestRecognizeShapeOpenArcStaysFreehand(t *testing.T) {
	// Half circle: far from closed, so neither circle nor rectangle.
	points := make([]Point, 0, 20)
	for i := 0; i < 20; i++ {
		angle := float64(i) * math.Pi / 19
		points = append(points, Point{
			X: 100 * math.Cos(angle),
			Y: 100 * math.Sin(angle),
		})
	}

	got := RecognizeShape(points)
	assert.Equal(t, ShapeNone, got.Kind)
}

func TestRecognizeShapeTinyClosedStrokeStaysFreehand(t *testing.T) {
	// Closed but under the minimum shape size.
	got := RecognizeShape(circlePoints(10, 10, 8, 16))
	assert.Equal(t, ShapeNone, got.Kind)
}

func TestRecognizeShapeDegenerateStroke(t *testing.T) {
	// All samples identical: zero path length and zero bounding box must
	// not divide by zero, and the stroke stays freehand.
	points := make([]Point, 20)
	for i := range points {
		points[i] = Point{X: 42, Y: 42}
	}

	got := RecognizeShape(points)
	assert.Equal(t, ShapeNone, got.Kind)
}

func TestRecognizeShapeLineBeforeClosedCheck(t *testing.T) {
	// A long stroke that overshoots and doubles back a little is still
	// mostly straight; linearity wins before the closed-shape branch is
	// ever consulted.
	points := append(linePoints(0, 0, 300, 0, 13), Point{X: 295, Y: 0}, Point{X: 290, Y: 0})
	got := RecognizeShape(points)
	require.Equal(t, ShapeLine, got.Kind)
	assert.Equal(t, 290.0, got.X2)
}

func TestShapeKindString(t *testing.T) {
	assert.Equal(t, "none", ShapeNone.String())
	assert.Equal(t, "line", ShapeLine.String())
	assert.Equal(t, "circle", ShapeCircle.String())
	assert.Equal(t, "rect", ShapeRect.String())
}
