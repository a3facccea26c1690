// Package export turns a rendered board capture into a downloadable image.
package export

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"github.com/lucasb-eyer/go-colorful"
)

const (
	maxUploadSize = 50 << 20 // 50MB
	maxScale      = 4.0
)

type Handler struct {
	dir string // directory where finished exports are kept
}

func NewHandler(dir string) *Handler {
	if err := os.MkdirAll(dir, 0755); err != nil {
		slog.Error("create export dir", "error", err, "dir", dir)
	}
	return &Handler{dir: dir}
}

// ExportImage handles POST /export/image. The client renders the board to a
// PNG capture and uploads it; the server rescales, optionally flattens it
// onto a background color, and re-encodes in the requested format.
func (h *Handler) ExportImage(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		http.Error(w, "request too large", http.StatusBadRequest)
		return
	}
	defer r.MultipartForm.RemoveAll()

	format := r.FormValue("format")
	if format == "" {
		format = "png"
	}
	if format != "png" && format != "jpeg" {
		http.Error(w, "invalid format: must be png or jpeg", http.StatusBadRequest)
		return
	}

	scale := 1.0
	if s := r.FormValue("scale"); s != "" {
		parsed, err := strconv.ParseFloat(s, 64)
		if err != nil || parsed <= 0 || parsed > maxScale {
			http.Error(w, fmt.Sprintf("invalid scale: must be in (0, %g]", maxScale), http.StatusBadRequest)
			return
		}
		scale = parsed
	}

	quality, err := strconv.Atoi(r.FormValue("quality"))
	if err != nil || quality <= 0 || quality > 100 {
		quality = 90
	}

	name := r.FormValue("name")
	if name == "" {
		name = "board"
	}
	// Sanitize filename
	name = strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '-' || r == '_' {
			return r
		}
		return '-'
	}, name)

	var background color.Color
	if bg := r.FormValue("background"); bg != "" {
		c, err := colorful.Hex(bg)
		if err != nil {
			http.Error(w, "invalid background color: "+bg, http.StatusBadRequest)
			return
		}
		background = c
	}

	file, _, err := r.FormFile("image")
	if err != nil {
		http.Error(w, "missing image field", http.StatusBadRequest)
		return
	}
	defer file.Close()

	img, err := imaging.Decode(file)
	if err != nil {
		http.Error(w, "invalid image: "+err.Error(), http.StatusBadRequest)
		return
	}

	if scale != 1.0 {
		width := int(float64(img.Bounds().Dx()) * scale)
		img = imaging.Resize(img, width, 0, imaging.Lanczos)
	}

	// JPEG has no alpha channel, so a transparent capture must be flattened.
	if background == nil && format == "jpeg" {
		background = color.White
	}
	if background != nil {
		flat := imaging.New(img.Bounds().Dx(), img.Bounds().Dy(), background)
		draw.Draw(flat, flat.Bounds(), img, img.Bounds().Min, draw.Over)
		img = flat
	}

	outputFile := filepath.Join(h.dir, fmt.Sprintf("%s-%d.%s", name, time.Now().UnixMilli(), format))
	if err := h.save(img, outputFile, format, quality); err != nil {
		slog.Error("save export", "error", err)
		http.Error(w, "encoding failed", http.StatusInternalServerError)
		return
	}

	outFile, err := os.Open(outputFile)
	if err != nil {
		slog.Error("open output file", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	defer outFile.Close()

	stat, err := outFile.Stat()
	if err != nil {
		slog.Error("stat output file", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	contentType := "image/png"
	if format == "jpeg" {
		contentType = "image/jpeg"
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s.%s"`, name, format))
	w.Header().Set("Content-Length", strconv.FormatInt(stat.Size(), 10))
	io.Copy(w, outFile)

	slog.Info("export complete", "format", format, "size", stat.Size())
}

func (h *Handler) save(img image.Image, path, format string, quality int) error {
	if format == "jpeg" {
		return imaging.Save(img, path, imaging.JPEGQuality(quality))
	}
	return imaging.Save(img, path)
}
