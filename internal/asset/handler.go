package asset

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"

	"github.com/slateboard/slateboard/backend-go/internal/typeid"
)

const (
	maxUploadSize = 10 << 20 // 10MB
	thumbMaxSize  = 256
)

// UploadResponse is returned from the upload endpoint.
type UploadResponse struct {
	ID       string `json:"id"`
	URL      string `json:"url"`
	ThumbURL string `json:"thumbUrl"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	Type     string `json:"type"`
	Name     string `json:"name"`
}

// Handler serves asset upload and retrieval endpoints.
type Handler struct {
	dir string // directory to store asset files
}

// NewHandler creates a new asset handler that stores files in dir.
func NewHandler(dir string) *Handler {
	// Ensure directory exists
	if err := os.MkdirAll(dir, 0755); err != nil {
		slog.Error("create asset dir", "error", err, "dir", dir)
	}
	return &Handler{dir: dir}
}

// Upload handles POST /assets/upload (multipart form with "file" field).
// Every upload is re-encoded as PNG and gets a thumbnail alongside it so
// board listings never load full-size images.
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		http.Error(w, "file too large (max 10MB)", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "missing file field", http.StatusBadRequest)
		return
	}
	defer file.Close()

	// Validate content type
	contentType := header.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/png") && !strings.HasPrefix(contentType, "image/jpeg") {
		http.Error(w, "only PNG and JPEG images are supported", http.StatusBadRequest)
		return
	}

	img, err := imaging.Decode(file, imaging.AutoOrientation(true))
	if err != nil {
		http.Error(w, "invalid image: "+err.Error(), http.StatusBadRequest)
		return
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	assetID := typeid.NewAssetID()
	filename := assetID + ".png"
	filePath := filepath.Join(h.dir, filename)

	if err := imaging.Save(img, filePath); err != nil {
		slog.Error("save asset", "error", err)
		http.Error(w, "failed to save file", http.StatusInternalServerError)
		return
	}

	thumbName := assetID + "_thumb.png"
	thumb := imaging.Fit(img, thumbMaxSize, thumbMaxSize, imaging.Lanczos)
	if err := imaging.Save(thumb, filepath.Join(h.dir, thumbName)); err != nil {
		slog.Error("save thumbnail", "error", err)
		os.Remove(filePath)
		http.Error(w, "failed to save thumbnail", http.StatusInternalServerError)
		return
	}

	resp := UploadResponse{
		ID:       assetID,
		URL:      fmt.Sprintf("/assets/%s", filename),
		ThumbURL: fmt.Sprintf("/assets/%s", thumbName),
		Width:    width,
		Height:   height,
		Type:     "png",
		Name:     header.Filename,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(resp)
}

// Serve returns an http.Handler that serves stored asset files with caching headers.
func (h *Handler) Serve() http.Handler {
	fs := http.FileServer(http.Dir(h.dir))
	return http.StripPrefix("/assets/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Asset IDs are unique, so files are immutable
		w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
		fs.ServeHTTP(w, r)
	}))
}

// Delete removes an asset and its thumbnail from disk (for cleanup).
func (h *Handler) Delete(assetID string) error {
	removed := false
	for _, name := range []string{assetID + ".png", assetID + "_thumb.png"} {
		if err := os.Remove(filepath.Join(h.dir, name)); err == nil {
			removed = true
		}
	}
	if !removed {
		return fmt.Errorf("asset not found: %s", assetID)
	}
	return nil
}
