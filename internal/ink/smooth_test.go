package ink

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSmoothPathShortInputIdentity(t *testing.T) {
	for n := 0; n < 4; n++ {
		points := linePoints(0, 0, 30, 30, 5)[:n]
		got := SmoothPath(points)
		assert.Equal(t, points, got, "%d points must pass through unchanged", n)
	}
}

func TestSmoothPathEndpointPreservation(t *testing.T) {
	points := []Point{
		{0, 0}, {10, 40}, {35, 55}, {70, 30}, {90, 80}, {120, 85},
	}

	got := SmoothPath(points)
	require.NotEmpty(t, got)

	assert.Equal(t, points[0], got[0])
	assert.Equal(t, points[len(points)-1], got[len(got)-1])
}

func TestSmoothPathDensifies(t *testing.T) {
	points := linePoints(0, 0, 100, 50, 10)

	got := SmoothPath(points)

	// Four samples per window of four control points, plus both endpoints.
	assert.Len(t, got, 4*(len(points)-3)+2)
	assert.Greater(t, len(got), len(points))
}

func TestSmoothPathNotIdempotent(t *testing.T) {
	points := []Point{{0, 0}, {20, 30}, {50, 10}, {80, 40}, {100, 0}}

	once := SmoothPath(points)
	twice := SmoothPath(once)

	// Re-smoothing densifies again; only the endpoints are stable.
	assert.Greater(t, len(twice), len(once))
	assert.Equal(t, once[0], twice[0])
	assert.Equal(t, once[len(once)-1], twice[len(twice)-1])
}

func TestSmoothPathInterpolatesControlPoints(t *testing.T) {
	points := []Point{{0, 0}, {30, 30}, {60, 0}, {90, 30}, {120, 0}, {150, 30}}

	got := SmoothPath(points)

	// Catmull-Rom passes through its interior control points: each window
	// emits its second control point exactly at t=0.
	assert.Contains(t, got, points[1])
	assert.Contains(t, got, points[2])
	assert.Contains(t, got, points[3])
}

func TestSmoothPathStraightLineStaysOnLine(t *testing.T) {
	points := linePoints(0, 0, 100, 100, 8)

	for _, p := range SmoothPath(points) {
		assert.InDelta(t, p.X, p.Y, 1e-9, "smoothing a diagonal must stay on the diagonal")
	}
}
