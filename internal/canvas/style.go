package canvas

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/slateboard/slateboard/backend-go/internal/document"
)

// NormalizeStyle validates a client-supplied style and returns its canonical
// form: colors as lowercase #rrggbb hex, opacity clamped to [0, 1], and a
// positive stroke width. Empty color strings are allowed (no stroke/fill).
func NormalizeStyle(s document.Style) (document.Style, error) {
	var err error
	if s.Stroke, err = normalizeColor(s.Stroke); err != nil {
		return document.Style{}, fmt.Errorf("stroke: %w", err)
	}
	if s.Fill, err = normalizeColor(s.Fill); err != nil {
		return document.Style{}, fmt.Errorf("fill: %w", err)
	}

	if s.Opacity < 0 {
		s.Opacity = 0
	}
	if s.Opacity > 1 {
		s.Opacity = 1
	}

	if s.StrokeWidth < 0 {
		return document.Style{}, fmt.Errorf("strokeWidth must not be negative")
	}

	return s, nil
}

func normalizeColor(c string) (string, error) {
	if c == "" {
		return "", nil
	}
	parsed, err := colorful.Hex(c)
	if err != nil {
		return "", fmt.Errorf("invalid color %q: %w", c, err)
	}
	return parsed.Hex(), nil
}
