package document

import (
	"time"

	"github.com/slateboard/slateboard/backend-go/internal/ink"
)

// BoardDocument is the full persisted state of a whiteboard: the board
// metadata plus every drawing element, in z-order.
type BoardDocument struct {
	Board    Board              `json:"board"`
	Elements map[string]Element `json:"elements"`
	Order    []string           `json:"order"`
}

type Board struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Version    int      `json:"version"`
	Background string   `json:"background"`
	Settings   Settings `json:"settings"`
	CreatedAt  string   `json:"createdAt"`
	UpdatedAt  string   `json:"updatedAt"`
}

// Settings are the board-level drawing toggles. They gate whether the stroke
// pipeline attempts shape recognition and/or smoothing; the geometry core
// itself never reads them.
type Settings struct {
	ShapeRecognition bool `json:"shapeRecognition"`
	SmoothDrawing    bool `json:"smoothDrawing"`
}

type ElementType string

const (
	ElementPath   ElementType = "path"
	ElementLine   ElementType = "line"
	ElementRect   ElementType = "rect"
	ElementCircle ElementType = "circle"
	ElementImage  ElementType = "image"
	ElementText   ElementType = "text"
	ElementSticky ElementType = "sticky"
)

// Element is one drawing element on a board. The struct is flat across all
// element types; Type indicates which geometry fields are meaningful:
// Points for paths, X1..Y2 for lines, CX/CY/Radius for circles, and
// X/Y/Width/Height for everything box-shaped.
type Element struct {
	ID   string      `json:"id"`
	Type ElementType `json:"type"`

	Points []ink.Point `json:"points,omitempty"`

	X1 float64 `json:"x1,omitempty"`
	Y1 float64 `json:"y1,omitempty"`
	X2 float64 `json:"x2,omitempty"`
	Y2 float64 `json:"y2,omitempty"`

	CX     float64 `json:"cx,omitempty"`
	CY     float64 `json:"cy,omitempty"`
	Radius float64 `json:"radius,omitempty"`

	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`

	// Image and text payloads.
	AssetID string `json:"assetId,omitempty"`
	Text    string `json:"text,omitempty"`

	Style   Style `json:"style"`
	Visible bool  `json:"visible"`
	Locked  bool  `json:"locked"`
}

type Style struct {
	Stroke      string  `json:"stroke"`
	Fill        string  `json:"fill"`
	StrokeWidth float64 `json:"strokeWidth"`
	Opacity     float64 `json:"opacity"`
}

// DefaultStyle is applied to elements created from strokes when the client
// sends no style of its own.
func DefaultStyle() Style {
	return Style{
		Stroke:      "#1a1a2e",
		Fill:        "",
		StrokeWidth: 2,
		Opacity:     1,
	}
}

// NewEmptyDocument creates the initial document for a new board. Both
// drawing toggles default to on.
func NewEmptyDocument(boardID, boardName string) *BoardDocument {
	now := time.Now().UTC().Format(time.RFC3339)
	return &BoardDocument{
		Board: Board{
			ID:         boardID,
			Name:       boardName,
			Version:    1,
			Background: "#ffffff",
			Settings: Settings{
				ShapeRecognition: true,
				SmoothDrawing:    true,
			},
			CreatedAt: now,
			UpdatedAt: now,
		},
		Elements: map[string]Element{},
		Order:    []string{},
	}
}
