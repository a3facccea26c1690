package collab

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slateboard/slateboard/backend-go/internal/document"
	"github.com/slateboard/slateboard/backend-go/internal/ink"
)

func newTestState() *DocumentState {
	return NewDocumentState(document.NewEmptyDocument("board_test", "Test Board"))
}

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

func TestCompleteStrokeRecognizesAndStoresOneElement(t *testing.T) {
	ds := newTestState()

	op := &Operation{ID: "op_1", Type: OpStrokeComplete, Points: circleStroke(200, 200, 50, 20)}
	el, seq, err := ds.CompleteStroke(op)
	require.NoError(t, err)

	assert.Equal(t, int64(1), seq)
	assert.Equal(t, document.ElementCircle, el.Type)
	assert.True(t, ds.Dirty())

	doc := ds.GetDocument()
	assert.Len(t, doc.Elements, 1)
	assert.Equal(t, []string{el.ID}, doc.Order)
}

func TestCompleteStrokeHonorsBoardSettings(t *testing.T) {
	ds := newTestState()
	ds.doc.Board.Settings = document.Settings{ShapeRecognition: false, SmoothDrawing: false}

	stroke := circleStroke(200, 200, 50, 20)
	el, _, err := ds.CompleteStroke(&Operation{Type: OpStrokeComplete, Points: stroke})
	require.NoError(t, err)

	assert.Equal(t, document.ElementPath, el.Type)
	assert.Equal(t, stroke, el.Points)
}

func TestCompleteStrokeRejectsEmptyStroke(t *testing.T) {
	ds := newTestState()
	_, _, err := ds.CompleteStroke(&Operation{Type: OpStrokeComplete})
	assert.Error(t, err)
}

func TestApplyCreateAndDelete(t *testing.T) {
	ds := newTestState()

	elJSON, _ := json.Marshal(document.Element{
		ID: "el_1", Type: document.ElementRect,
		X: 0, Y: 0, Width: 50, Height: 50,
		Style:   document.DefaultStyle(),
		Visible: true,
	})

	createOp := &Operation{ID: "op_1", Type: OpElementCreate, Element: elJSON}
	seq, err := ds.ApplyOperation(createOp)
	require.NoError(t, err)
	assert.Equal(t, int64(1), seq)
	assert.Equal(t, "el_1", createOp.ElementID)

	deleteOp := &Operation{ID: "op_2", Type: OpElementDelete, ElementID: "el_1"}
	seq, err = ds.ApplyOperation(deleteOp)
	require.NoError(t, err)
	assert.Equal(t, int64(2), seq)
	assert.Empty(t, ds.GetDocument().Elements)
	assert.Empty(t, ds.GetDocument().Order)
}

func TestApplyEraseResolvesHit(t *testing.T) {
	ds := newTestState()
	ds.doc.Elements["el_1"] = document.Element{
		ID: "el_1", Type: document.ElementRect,
		X: 0, Y: 0, Width: 100, Height: 100, Visible: true,
	}
	ds.doc.Order = []string{"el_1"}

	x, y := 50.0, 50.0
	op := &Operation{Type: OpElementErase, X: &x, Y: &y}
	_, err := ds.ApplyOperation(op)
	require.NoError(t, err)

	assert.Equal(t, "el_1", op.ElementID, "the broadcast op names the deleted element")
	assert.Empty(t, ds.GetDocument().Elements)
}

func TestApplyEraseMisses(t *testing.T) {
	ds := newTestState()
	x, y := 50.0, 50.0
	_, err := ds.ApplyOperation(&Operation{Type: OpElementErase, X: &x, Y: &y})
	assert.Error(t, err)
}

func TestApplyTransformDragsElement(t *testing.T) {
	ds := newTestState()
	ds.doc.Elements["el_1"] = document.Element{
		ID: "el_1", Type: document.ElementCircle,
		CX: 100, CY: 100, Radius: 20, Visible: true,
	}
	ds.doc.Order = []string{"el_1"}

	op := &Operation{
		Type:      OpElementTransform,
		ElementID: "el_1",
		Transform: &TransformChange{DX: 30, DY: -10},
	}
	_, err := ds.ApplyOperation(op)
	require.NoError(t, err)

	el := ds.GetDocument().Elements["el_1"]
	assert.InDelta(t, 130, el.CX, 1e-9)
	assert.InDelta(t, 90, el.CY, 1e-9)
	assert.InDelta(t, 20, el.Radius, 1e-9, "a drag without scale keeps the radius")
}

func TestApplyStyleMergesPartialUpdate(t *testing.T) {
	ds := newTestState()
	ds.doc.Elements["el_1"] = document.Element{
		ID: "el_1", Type: document.ElementRect,
		Style:   document.Style{Stroke: "#112233", Fill: "#445566", StrokeWidth: 2, Opacity: 1},
		Visible: true,
	}
	ds.doc.Order = []string{"el_1"}

	op := &Operation{
		Type:      OpElementStyle,
		ElementID: "el_1",
		Style:     json.RawMessage(`{"fill":"#FFEEDD"}`),
	}
	_, err := ds.ApplyOperation(op)
	require.NoError(t, err)

	el := ds.GetDocument().Elements["el_1"]
	assert.Equal(t, "#ffeedd", el.Style.Fill)
	assert.Equal(t, "#112233", el.Style.Stroke, "untouched fields survive the merge")
}

func TestApplyStyleRejectsBadColor(t *testing.T) {
	ds := newTestState()
	ds.doc.Elements["el_1"] = document.Element{ID: "el_1", Type: document.ElementRect, Visible: true}
	ds.doc.Order = []string{"el_1"}

	op := &Operation{
		Type:      OpElementStyle,
		ElementID: "el_1",
		Style:     json.RawMessage(`{"stroke":"red-ish"}`),
	}
	_, err := ds.ApplyOperation(op)
	assert.Error(t, err)
}

func TestApplySettingsUpdate(t *testing.T) {
	ds := newTestState()

	settings := document.Settings{ShapeRecognition: false, SmoothDrawing: true}
	_, err := ds.ApplyOperation(&Operation{Type: OpSettingsUpdate, Settings: &settings})
	require.NoError(t, err)

	assert.Equal(t, settings, ds.GetDocument().Board.Settings)
}

func TestApplyUnknownOperation(t *testing.T) {
	ds := newTestState()
	_, err := ds.ApplyOperation(&Operation{Type: "element.frobnicate"})
	assert.Error(t, err)
	assert.False(t, ds.Dirty(), "a rejected op leaves the document clean")
}

func TestMarkSavedClearsDirty(t *testing.T) {
	ds := newTestState()
	_, _, err := ds.CompleteStroke(&Operation{Type: OpStrokeComplete, Points: circleStroke(0, 0, 40, 16)})
	require.NoError(t, err)
	require.True(t, ds.Dirty())

	ds.MarkSaved()
	assert.False(t, ds.Dirty())
}
