package canvas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slateboard/slateboard/backend-go/internal/document"
)

func TestNormalizeStyle(t *testing.T) {
	got, err := NormalizeStyle(document.Style{
		Stroke:      "#FF0000",
		Fill:        "",
		StrokeWidth: 2,
		Opacity:     1.5,
	})
	require.NoError(t, err)

	assert.Equal(t, "#ff0000", got.Stroke, "colors are canonicalized to lowercase hex")
	assert.Equal(t, "", got.Fill)
	assert.Equal(t, 1.0, got.Opacity, "opacity clamps to [0, 1]")
}

func TestNormalizeStyleRejectsBadColor(t *testing.T) {
	_, err := NormalizeStyle(document.Style{Stroke: "not-a-color"})
	assert.Error(t, err)
}

func TestNormalizeStyleRejectsNegativeWidth(t *testing.T) {
	_, err := NormalizeStyle(document.Style{StrokeWidth: -1})
	assert.Error(t, err)
}
