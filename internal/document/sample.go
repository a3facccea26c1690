package document

import (
	"time"

	"github.com/slateboard/slateboard/backend-go/internal/ink"
	"github.com/slateboard/slateboard/backend-go/internal/typeid"
)

// NewSampleDocument builds the playground board shown to anonymous users:
// one of each element type so every rendering and editing path is exercised.
func NewSampleDocument(boardID string) *BoardDocument {
	now := time.Now().UTC().Format(time.RFC3339)

	rectID := typeid.NewElementID()
	circleID := typeid.NewElementID()
	lineID := typeid.NewElementID()
	pathID := typeid.NewElementID()
	stickyID := typeid.NewElementID()

	return &BoardDocument{
		Board: Board{
			ID:         boardID,
			Name:       "Playground",
			Version:    1,
			Background: "#ffffff",
			Settings: Settings{
				ShapeRecognition: true,
				SmoothDrawing:    true,
			},
			CreatedAt: now,
			UpdatedAt: now,
		},
		Elements: map[string]Element{
			rectID: {
				ID:   rectID,
				Type: ElementRect,
				X:    120, Y: 120, Width: 220, Height: 140,
				Style: Style{
					Stroke: "#e94560", Fill: "#fde2e7", StrokeWidth: 2, Opacity: 1,
				},
				Visible: true,
			},
			circleID: {
				ID:   circleID,
				Type: ElementCircle,
				CX:   560, CY: 220, Radius: 80,
				Style: Style{
					Stroke: "#0f3460", Fill: "#dbe7ff", StrokeWidth: 2, Opacity: 1,
				},
				Visible: true,
			},
			lineID: {
				ID:   lineID,
				Type: ElementLine,
				X1:   340, Y1: 190, X2: 480, Y2: 220,
				Style: Style{
					Stroke: "#1a1a2e", StrokeWidth: 2, Opacity: 1,
				},
				Visible: true,
			},
			pathID: {
				ID:   pathID,
				Type: ElementPath,
				Points: []ink.Point{
					{X: 150, Y: 420}, {X: 190, Y: 380}, {X: 240, Y: 440},
					{X: 300, Y: 390}, {X: 360, Y: 430}, {X: 410, Y: 400},
				},
				Style: Style{
					Stroke: "#2d6a4f", StrokeWidth: 3, Opacity: 1,
				},
				Visible: true,
			},
			stickyID: {
				ID:   stickyID,
				Type: ElementSticky,
				X:    520, Y: 380, Width: 180, Height: 180,
				Text: "Draw a circle and watch it snap!",
				Style: Style{
					Stroke: "#c78400", Fill: "#fff3c4", StrokeWidth: 1, Opacity: 1,
				},
				Visible: true,
			},
		},
		Order: []string{rectID, circleID, lineID, pathID, stickyID},
	}
}
