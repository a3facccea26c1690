// Package canvas turns completed freehand strokes into board elements and
// provides the element-level geometry (bounds, transforms, styles) the
// collaboration layer needs to keep the board document consistent.
package canvas

import (
	"github.com/slateboard/slateboard/backend-go/internal/document"
	"github.com/slateboard/slateboard/backend-go/internal/ink"
	"github.com/slateboard/slateboard/backend-go/internal/typeid"
)

// ProcessStroke converts a sealed stroke into exactly one new board element.
// Recognition runs first when the board has it enabled; a recognized
// primitive becomes a line/circle/rect element. Everything else stays a
// freehand path, smoothed when smoothing is enabled. The raw stroke is not
// retained anywhere beyond the returned element.
func ProcessStroke(points []ink.Point, settings document.Settings, style document.Style) document.Element {
	el := document.Element{
		ID:      typeid.NewElementID(),
		Style:   style,
		Visible: true,
	}

	if settings.ShapeRecognition {
		shape := ink.RecognizeShape(points)
		switch shape.Kind {
		case ink.ShapeLine:
			el.Type = document.ElementLine
			el.X1, el.Y1 = shape.X1, shape.Y1
			el.X2, el.Y2 = shape.X2, shape.Y2
			return el
		case ink.ShapeCircle:
			el.Type = document.ElementCircle
			el.CX, el.CY = shape.X, shape.Y
			el.Radius = shape.Radius
			return el
		case ink.ShapeRect:
			el.Type = document.ElementRect
			el.X, el.Y = shape.RectX, shape.RectY
			el.Width, el.Height = shape.Width, shape.Height
			return el
		}
	}

	if settings.SmoothDrawing {
		points = ink.SmoothPath(points)
	}
	el.Type = document.ElementPath
	el.Points = points
	return el
}

// Bounds returns the axis-aligned bounding box of an element in board space.
func Bounds(el document.Element) Rect {
	switch el.Type {
	case document.ElementLine:
		return Rect{
			X:      min(el.X1, el.X2),
			Y:      min(el.Y1, el.Y2),
			Width:  max(el.X1, el.X2) - min(el.X1, el.X2),
			Height: max(el.Y1, el.Y2) - min(el.Y1, el.Y2),
		}
	case document.ElementCircle:
		return Rect{
			X:      el.CX - el.Radius,
			Y:      el.CY - el.Radius,
			Width:  2 * el.Radius,
			Height: 2 * el.Radius,
		}
	case document.ElementPath:
		if len(el.Points) == 0 {
			return Rect{}
		}
		r := Rect{X: el.Points[0].X, Y: el.Points[0].Y}
		for _, p := range el.Points[1:] {
			r = r.Union(Rect{X: p.X, Y: p.Y})
		}
		return r
	default:
		return Rect{X: el.X, Y: el.Y, Width: el.Width, Height: el.Height}
	}
}

// ElementAt returns the ID of the topmost visible, unlocked element whose
// bounds contain the point, or "" when the point hits empty canvas. Used by
// the eraser tool.
func ElementAt(doc *document.BoardDocument, x, y float64) string {
	for i := len(doc.Order) - 1; i >= 0; i-- {
		id := doc.Order[i]
		el, ok := doc.Elements[id]
		if !ok || !el.Visible || el.Locked {
			continue
		}
		if Bounds(el).Contains(x, y) {
			return id
		}
	}
	return ""
}

// Transform applies an affine matrix to an element's geometry in place.
func Transform(el *document.Element, m Matrix2D) {
	switch el.Type {
	case document.ElementLine:
		el.X1, el.Y1 = m.TransformPoint(el.X1, el.Y1)
		el.X2, el.Y2 = m.TransformPoint(el.X2, el.Y2)
	case document.ElementCircle:
		el.CX, el.CY = m.TransformPoint(el.CX, el.CY)
		// A circle stays a circle: scale the radius by the mean axis scale.
		sx := m[0]
		sy := m[3]
		el.Radius *= (abs(sx) + abs(sy)) / 2
	case document.ElementPath:
		for i, p := range el.Points {
			x, y := m.TransformPoint(p.X, p.Y)
			el.Points[i] = ink.Point{X: x, Y: y}
		}
	default:
		r := m.TransformRect(Rect{X: el.X, Y: el.Y, Width: el.Width, Height: el.Height})
		el.X, el.Y = r.X, r.Y
		el.Width, el.Height = r.Width, r.Height
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
