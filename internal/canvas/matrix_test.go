package canvas

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatrixIdentity(t *testing.T) {
	x, y := Identity().TransformPoint(3, 4)
	assert.Equal(t, 3.0, x)
	assert.Equal(t, 4.0, y)
}

func TestMatrixCompose(t *testing.T) {
	// Scale then translate: point (1, 1) → (2, 2) → (12, 7).
	m := Translate(10, 5).Multiply(Scale(2, 2))
	x, y := m.TransformPoint(1, 1)
	assert.Equal(t, 12.0, x)
	assert.Equal(t, 7.0, y)
}

func TestMatrixRotate(t *testing.T) {
	x, y := Rotate(math.Pi / 2).TransformPoint(1, 0)
	assert.InDelta(t, 0, x, 1e-12)
	assert.InDelta(t, 1, y, 1e-12)
}

func TestMatrixTransformRect(t *testing.T) {
	// Rotating a rect by 45 degrees grows its axis-aligned bounds.
	r := Rotate(math.Pi/4).TransformRect(Rect{X: -5, Y: -5, Width: 10, Height: 10})
	assert.InDelta(t, 10*math.Sqrt2, r.Width, 1e-9)
	assert.InDelta(t, 10*math.Sqrt2, r.Height, 1e-9)
}

func TestTransformAboutPivot(t *testing.T) {
	// Scaling about the rect center keeps the center fixed.
	m := TransformAbout(0, 0, 2, 2, 0, 50, 50)
	x, y := m.TransformPoint(50, 50)
	assert.InDelta(t, 50, x, 1e-12)
	assert.InDelta(t, 50, y, 1e-12)

	x, y = m.TransformPoint(40, 40)
	assert.InDelta(t, 30, x, 1e-12)
	assert.InDelta(t, 30, y, 1e-12)
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 10, Width: 20, Height: 20}
	assert.True(t, r.Contains(10, 10))
	assert.True(t, r.Contains(30, 30))
	assert.False(t, r.Contains(31, 20))
}

func TestRectUnion(t *testing.T) {
	a := Rect{X: 0, Y: 0, Width: 10, Height: 10}
	b := Rect{X: 20, Y: 5, Width: 10, Height: 10}
	assert.Equal(t, Rect{X: 0, Y: 0, Width: 30, Height: 15}, a.Union(b))
}
