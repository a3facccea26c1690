package ink

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindCornersStraightStroke(t *testing.T) {
	assert.Empty(t, FindCorners(linePoints(0, 0, 100, 0, 12)))
}

func TestFindCornersShortStroke(t *testing.T) {
	points := []Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	assert.Empty(t, FindCorners(points))
}

func TestFindCornersRightAngle(t *testing.T) {
	// An L: along the x axis, then straight up.
	points := []Point{
		{0, 0}, {10, 0}, {20, 0}, {30, 0}, {40, 0},
		{40, 10}, {40, 20}, {40, 30}, {40, 40},
	}

	corners := FindCorners(points)
	require.NotEmpty(t, corners)

	// Every flagged point sits at the bend.
	for _, c := range corners {
		assert.InDelta(t, 40, c.X+c.Y, 20, "corner %v should be near the bend", c)
	}
}

func TestFindCornersShallowTurnIgnored(t *testing.T) {
	// A gentle 30 degree turn stays below the threshold.
	points := []Point{
		{0, 0}, {10, 0}, {20, 0}, {30, 0}, {40, 0},
		{48.7, 5}, {57.3, 10}, {66, 15}, {74.6, 20},
	}

	assert.Empty(t, FindCorners(points))
}

func TestFindCornersSquareOutline(t *testing.T) {
	// A densely sampled square has one corner cluster per vertex it passes.
	var points []Point
	points = append(points, linePoints(0, 0, 100, 0, 6)...)
	points = append(points, linePoints(100, 20, 100, 100, 5)...)
	points = append(points, linePoints(80, 100, 0, 100, 5)...)
	points = append(points, linePoints(0, 80, 0, 20, 4)...)

	corners := FindCorners(points)
	assert.GreaterOrEqual(t, len(corners), 3)
	assert.LessOrEqual(t, len(corners), 6)
}
