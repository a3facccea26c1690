package collab

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/slateboard/slateboard/backend-go/internal/canvas"
	"github.com/slateboard/slateboard/backend-go/internal/document"
	"github.com/slateboard/slateboard/backend-go/internal/typeid"
)

var errElementNotFound = errors.New("element not found")

// DocumentState holds the authoritative board document for a room.
type DocumentState struct {
	mu        sync.RWMutex
	doc       *document.BoardDocument
	serverSeq int64
	opLog     []Operation
	dirty     bool
}

// NewDocumentState creates a new document state from a loaded document.
func NewDocumentState(doc *document.BoardDocument) *DocumentState {
	return &DocumentState{
		doc:   doc,
		opLog: make([]Operation, 0),
	}
}

// GetDocument returns the current document. Callers must not mutate it.
func (ds *DocumentState) GetDocument() *document.BoardDocument {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	return ds.doc
}

// Dirty reports whether the document changed since the last save.
func (ds *DocumentState) Dirty() bool {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	return ds.dirty
}

// MarkSaved clears the dirty flag after a successful persist.
func (ds *DocumentState) MarkSaved() {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	ds.dirty = false
}

// ApplyOperation applies an operation to the document and returns the server
// sequence. The operation may be filled in with server-side results (e.g.
// element.erase resolves the hit element ID) before it is broadcast.
func (ds *DocumentState) ApplyOperation(op *Operation) (int64, error) {
	ds.mu.Lock()
	defer ds.mu.Unlock()

	if err := ds.applyOperationLocked(op); err != nil {
		return 0, err
	}

	ds.serverSeq++
	ds.opLog = append(ds.opLog, *op)
	ds.dirty = true

	return ds.serverSeq, nil
}

// CompleteStroke runs the stroke pipeline on a sealed stroke and inserts the
// derived element. Exactly one element is created per stroke: either the
// recognized primitive or the (optionally smoothed) freehand path. The raw
// points are not stored.
func (ds *DocumentState) CompleteStroke(op *Operation) (document.Element, int64, error) {
	if len(op.Points) == 0 {
		return document.Element{}, 0, errors.New("stroke has no points")
	}

	style := document.DefaultStyle()
	if op.StrokeStyle != nil {
		normalized, err := canvas.NormalizeStyle(*op.StrokeStyle)
		if err != nil {
			return document.Element{}, 0, err
		}
		style = normalized
	}

	ds.mu.Lock()
	defer ds.mu.Unlock()

	el := canvas.ProcessStroke(op.Points, ds.doc.Board.Settings, style)
	ds.doc.Elements[el.ID] = el
	ds.doc.Order = append(ds.doc.Order, el.ID)

	ds.serverSeq++
	ds.dirty = true

	// Log the result, not the raw stroke: replaying the op log must not
	// re-run recognition.
	elJSON, err := json.Marshal(el)
	if err != nil {
		return document.Element{}, 0, fmt.Errorf("marshal element: %w", err)
	}
	ds.opLog = append(ds.opLog, Operation{
		ID:        typeid.NewOpID(),
		Type:      OpElementCreate,
		Timestamp: op.Timestamp,
		ElementID: el.ID,
		Element:   elJSON,
	})

	return el, ds.serverSeq, nil
}

func (ds *DocumentState) applyOperationLocked(op *Operation) error {
	switch op.Type {
	case OpElementCreate:
		return ds.applyCreate(op)
	case OpElementDelete:
		return ds.applyDelete(op.ElementID)
	case OpElementErase:
		return ds.applyErase(op)
	case OpElementTransform:
		return ds.applyTransform(op)
	case OpElementStyle:
		return ds.applyStyle(op)
	case OpElementVisibility:
		return ds.applyVisibility(op)
	case OpElementLocked:
		return ds.applyLocked(op)
	case OpBoardRename:
		return ds.applyRename(op)
	case OpSettingsUpdate:
		return ds.applySettings(op)
	default:
		return fmt.Errorf("unknown operation type: %s", op.Type)
	}
}

func (ds *DocumentState) applyCreate(op *Operation) error {
	var el document.Element
	if err := json.Unmarshal(op.Element, &el); err != nil {
		return fmt.Errorf("invalid element: %w", err)
	}
	if el.ID == "" {
		el.ID = typeid.NewElementID()
	}

	normalized, err := canvas.NormalizeStyle(el.Style)
	if err != nil {
		return err
	}
	el.Style = normalized

	ds.doc.Elements[el.ID] = el

	if op.Index != nil && *op.Index >= 0 && *op.Index <= len(ds.doc.Order) {
		order := make([]string, 0, len(ds.doc.Order)+1)
		order = append(order, ds.doc.Order[:*op.Index]...)
		order = append(order, el.ID)
		order = append(order, ds.doc.Order[*op.Index:]...)
		ds.doc.Order = order
	} else {
		ds.doc.Order = append(ds.doc.Order, el.ID)
	}

	op.ElementID = el.ID
	return nil
}

func (ds *DocumentState) applyDelete(elementID string) error {
	if _, ok := ds.doc.Elements[elementID]; !ok {
		return fmt.Errorf("%w: %s", errElementNotFound, elementID)
	}

	delete(ds.doc.Elements, elementID)

	order := make([]string, 0, len(ds.doc.Order))
	for _, id := range ds.doc.Order {
		if id != elementID {
			order = append(order, id)
		}
	}
	ds.doc.Order = order
	return nil
}

func (ds *DocumentState) applyErase(op *Operation) error {
	if op.X == nil || op.Y == nil {
		return errors.New("erase requires a point")
	}

	// Resolve the pick server-side so every client deletes the same element.
	id := canvas.ElementAt(ds.doc, *op.X, *op.Y)
	if id == "" {
		return errElementNotFound
	}
	op.ElementID = id
	return ds.applyDelete(id)
}

func (ds *DocumentState) applyTransform(op *Operation) error {
	el, ok := ds.doc.Elements[op.ElementID]
	if !ok {
		return fmt.Errorf("%w: %s", errElementNotFound, op.ElementID)
	}
	if op.Transform == nil {
		return errors.New("transform payload is required")
	}

	t := *op.Transform
	// A pure drag arrives with zero scale factors; treat them as identity.
	if t.SX == 0 {
		t.SX = 1
	}
	if t.SY == 0 {
		t.SY = 1
	}

	cx, cy := canvas.Bounds(el).Center()
	m := canvas.TransformAbout(t.DX, t.DY, t.SX, t.SY, t.R, cx, cy)
	canvas.Transform(&el, m)

	ds.doc.Elements[op.ElementID] = el
	return nil
}

func (ds *DocumentState) applyStyle(op *Operation) error {
	el, ok := ds.doc.Elements[op.ElementID]
	if !ok {
		return fmt.Errorf("%w: %s", errElementNotFound, op.ElementID)
	}

	// Partial update: fields absent from the payload keep their value.
	merged := el.Style
	if err := json.Unmarshal(op.Style, &merged); err != nil {
		return fmt.Errorf("invalid style: %w", err)
	}

	normalized, err := canvas.NormalizeStyle(merged)
	if err != nil {
		return err
	}

	el.Style = normalized
	ds.doc.Elements[op.ElementID] = el
	return nil
}

func (ds *DocumentState) applyVisibility(op *Operation) error {
	el, ok := ds.doc.Elements[op.ElementID]
	if !ok {
		return fmt.Errorf("%w: %s", errElementNotFound, op.ElementID)
	}

	if op.Visible != nil {
		el.Visible = *op.Visible
	}

	ds.doc.Elements[op.ElementID] = el
	return nil
}

func (ds *DocumentState) applyLocked(op *Operation) error {
	el, ok := ds.doc.Elements[op.ElementID]
	if !ok {
		return fmt.Errorf("%w: %s", errElementNotFound, op.ElementID)
	}

	if op.Locked != nil {
		el.Locked = *op.Locked
	}

	ds.doc.Elements[op.ElementID] = el
	return nil
}

func (ds *DocumentState) applyRename(op *Operation) error {
	if op.Name == "" {
		return errors.New("name is required")
	}
	ds.doc.Board.Name = op.Name
	return nil
}

func (ds *DocumentState) applySettings(op *Operation) error {
	if op.Settings == nil {
		return errors.New("settings payload is required")
	}
	ds.doc.Board.Settings = *op.Settings
	return nil
}

// GetServerTimestamp returns the current server timestamp.
func GetServerTimestamp() int64 {
	return time.Now().UnixMilli()
}
