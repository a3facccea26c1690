package ink

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStrokeBuilderCollectsAndSeals(t *testing.T) {
	b := NewStrokeBuilder()
	assert.Equal(t, 0, b.Len())

	b.Add(Point{X: 0, Y: 0})
	b.Add(Point{X: 10, Y: 0})
	b.Add(Point{X: 20, Y: 5})
	assert.Equal(t, 3, b.Len())

	points := b.Seal()
	assert.Equal(t, []Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 20, Y: 5}}, points)

	// Late samples after pointer-up must not mutate the sealed stroke
	b.Add(Point{X: 99, Y: 99})
	assert.Equal(t, 0, b.Len())
	assert.Len(t, points, 3)
}

func TestPointDist(t *testing.T) {
	assert.InDelta(t, 5, Point{X: 0, Y: 0}.Dist(Point{X: 3, Y: 4}), 1e-9)
	assert.Zero(t, Point{X: 7, Y: -2}.Dist(Point{X: 7, Y: -2}))
}

func TestPathLength(t *testing.T) {
	assert.Zero(t, pathLength(nil))
	assert.Zero(t, pathLength([]Point{{X: 1, Y: 1}}))

	length := pathLength([]Point{{X: 0, Y: 0}, {X: 3, Y: 4}, {X: 3, Y: 14}})
	assert.InDelta(t, 15, length, 1e-9)
}
