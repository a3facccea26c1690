package canvas

import (
	"encoding/json"
	"net/http"

	"github.com/slateboard/slateboard/backend-go/internal/document"
	"github.com/slateboard/slateboard/backend-go/internal/ink"
)

// Handler exposes the stroke pipeline over HTTP for clients that defer
// recognition to the server (thin clients, the playground before a socket
// is established).
type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

type recognizeRequest struct {
	Points   []ink.Point        `json:"points"`
	Settings *document.Settings `json:"settings,omitempty"`
	Style    *document.Style    `json:"style,omitempty"`
}

type recognizeResponse struct {
	Element    document.Element `json:"element"`
	Recognized bool             `json:"recognized"`
	Kind       string           `json:"kind"`
}

// Recognize handles POST /ink/recognize: runs the full stroke pipeline on
// the submitted points and returns the derived element without persisting
// anything.
func (h *Handler) Recognize(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}

	var req recognizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if len(req.Points) == 0 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "points are required"})
		return
	}

	settings := document.Settings{ShapeRecognition: true, SmoothDrawing: true}
	if req.Settings != nil {
		settings = *req.Settings
	}

	style := document.DefaultStyle()
	if req.Style != nil {
		normalized, err := NormalizeStyle(*req.Style)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}
		style = normalized
	}

	el := ProcessStroke(req.Points, settings, style)

	writeJSON(w, http.StatusOK, recognizeResponse{
		Element:    el,
		Recognized: el.Type != document.ElementPath,
		Kind:       string(el.Type),
	})
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
