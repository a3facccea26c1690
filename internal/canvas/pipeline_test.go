package canvas

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slateboard/slateboard/backend-go/internal/document"
	"github.com/slateboard/slateboard/backend-go/internal/ink"
)

func circleStroke(cx, cy, r float64, n int) []ink.Point {
	points := make([]ink.Point, 0, n+1)
	for i := 0; i <= n; i++ {
		angle := float64(i) * 2 * math.Pi / float64(n)
		points = append(points, ink.Point{
			X: cx + r*math.Cos(angle),
			Y: cy + r*math.Sin(angle),
		})
	}
	return points
}

func lineStroke(x1, y1, x2, y2 float64, n int) []ink.Point {
	points := make([]ink.Point, 0, n)
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n-1)
		points = append(points, ink.Point{
			X: x1 + t*(x2-x1),
			Y: y1 + t*(y2-y1),
		})
	}
	return points
}

var allOn = document.Settings{ShapeRecognition: true, SmoothDrawing: true}

func TestProcessStrokeRecognizesCircle(t *testing.T) {
	el := ProcessStroke(circleStroke(200, 200, 50, 20), allOn, document.DefaultStyle())

	require.Equal(t, document.ElementCircle, el.Type)
	assert.NotEmpty(t, el.ID)
	assert.True(t, el.Visible)
	assert.InDelta(t, 200, el.CX, 1.0)
	assert.InDelta(t, 200, el.CY, 1.0)
	assert.InDelta(t, 50, el.Radius, 0.5)
	assert.Empty(t, el.Points, "a recognized shape keeps no raw points")
}

func TestProcessStrokeRecognizesLine(t *testing.T) {
	el := ProcessStroke(lineStroke(10, 10, 250, 20, 14), allOn, document.DefaultStyle())

	require.Equal(t, document.ElementLine, el.Type)
	assert.Equal(t, 10.0, el.X1)
	assert.Equal(t, 250.0, el.X2)
}

func TestProcessStrokeFallsBackToSmoothedPath(t *testing.T) {
	// An open arc: not recognizable, so it stays freehand and is densified.
	stroke := make([]ink.Point, 0, 12)
	for i := 0; i < 12; i++ {
		angle := float64(i) * math.Pi / 11
		stroke = append(stroke, ink.Point{X: 100 * math.Cos(angle), Y: 100 * math.Sin(angle)})
	}

	el := ProcessStroke(stroke, allOn, document.DefaultStyle())

	require.Equal(t, document.ElementPath, el.Type)
	assert.Greater(t, len(el.Points), len(stroke))
	assert.Equal(t, stroke[0], el.Points[0])
	assert.Equal(t, stroke[len(stroke)-1], el.Points[len(el.Points)-1])
}

func TestProcessStrokeRecognitionDisabled(t *testing.T) {
	stroke := circleStroke(200, 200, 50, 20)
	settings := document.Settings{ShapeRecognition: false, SmoothDrawing: false}

	el := ProcessStroke(stroke, settings, document.DefaultStyle())

	require.Equal(t, document.ElementPath, el.Type)
	assert.Equal(t, stroke, el.Points, "with both toggles off the raw points pass through")
}

func TestProcessStrokeSmoothingOnlyWhenEnabled(t *testing.T) {
	stroke := lineStroke(0, 0, 20, 20, 6) // too short to be a line

	smoothed := ProcessStroke(stroke, document.Settings{SmoothDrawing: true}, document.DefaultStyle())
	raw := ProcessStroke(stroke, document.Settings{}, document.DefaultStyle())

	assert.Greater(t, len(smoothed.Points), len(raw.Points))
	assert.Len(t, raw.Points, len(stroke))
}

func TestBounds(t *testing.T) {
	line := document.Element{Type: document.ElementLine, X1: 100, Y1: 50, X2: 20, Y2: 90}
	assert.Equal(t, Rect{X: 20, Y: 50, Width: 80, Height: 40}, Bounds(line))

	circle := document.Element{Type: document.ElementCircle, CX: 50, CY: 50, Radius: 10}
	assert.Equal(t, Rect{X: 40, Y: 40, Width: 20, Height: 20}, Bounds(circle))

	rect := document.Element{Type: document.ElementRect, X: 5, Y: 6, Width: 7, Height: 8}
	assert.Equal(t, Rect{X: 5, Y: 6, Width: 7, Height: 8}, Bounds(rect))

	path := document.Element{Type: document.ElementPath, Points: []ink.Point{
		{X: 10, Y: 20}, {X: 40, Y: 5}, {X: 25, Y: 35},
	}}
	assert.Equal(t, Rect{X: 10, Y: 5, Width: 30, Height: 30}, Bounds(path))
}

func TestElementAtPicksTopmost(t *testing.T) {
	doc := document.NewEmptyDocument("board_test", "Test")
	bottom := document.Element{ID: "el_bottom", Type: document.ElementRect, X: 0, Y: 0, Width: 100, Height: 100, Visible: true}
	top := document.Element{ID: "el_top", Type: document.ElementRect, X: 50, Y: 50, Width: 100, Height: 100, Visible: true}
	doc.Elements[bottom.ID] = bottom
	doc.Elements[top.ID] = top
	doc.Order = []string{bottom.ID, top.ID}

	assert.Equal(t, "el_top", ElementAt(doc, 75, 75), "overlap resolves to the later element in z-order")
	assert.Equal(t, "el_bottom", ElementAt(doc, 10, 10))
	assert.Equal(t, "", ElementAt(doc, 300, 300))
}

func TestElementAtSkipsHiddenAndLocked(t *testing.T) {
	doc := document.NewEmptyDocument("board_test", "Test")
	hidden := document.Element{ID: "el_hidden", Type: document.ElementRect, X: 0, Y: 0, Width: 50, Height: 50, Visible: false}
	locked := document.Element{ID: "el_locked", Type: document.ElementRect, X: 0, Y: 0, Width: 50, Height: 50, Visible: true, Locked: true}
	doc.Elements[hidden.ID] = hidden
	doc.Elements[locked.ID] = locked
	doc.Order = []string{hidden.ID, locked.ID}

	assert.Equal(t, "", ElementAt(doc, 25, 25))
}

func TestTransformTranslatesEveryElementKind(t *testing.T) {
	m := Translate(10, -5)

	line := document.Element{Type: document.ElementLine, X1: 0, Y1: 0, X2: 10, Y2: 10}
	Transform(&line, m)
	assert.Equal(t, 10.0, line.X1)
	assert.Equal(t, -5.0, line.Y1)

	circle := document.Element{Type: document.ElementCircle, CX: 50, CY: 50, Radius: 10}
	Transform(&circle, m)
	assert.Equal(t, 60.0, circle.CX)
	assert.Equal(t, 10.0, circle.Radius, "translation leaves the radius alone")

	path := document.Element{Type: document.ElementPath, Points: []ink.Point{{X: 1, Y: 2}}}
	Transform(&path, m)
	assert.Equal(t, ink.Point{X: 11, Y: -3}, path.Points[0])

	rect := document.Element{Type: document.ElementRect, X: 5, Y: 5, Width: 10, Height: 10}
	Transform(&rect, m)
	assert.Equal(t, Rect{X: 15, Y: 0, Width: 10, Height: 10}, Bounds(rect))
}

func TestTransformScalesCircleRadius(t *testing.T) {
	circle := document.Element{Type: document.ElementCircle, CX: 0, CY: 0, Radius: 10}
	Transform(&circle, Scale(2, 2))
	assert.Equal(t, 20.0, circle.Radius)
}
