package ink

import "math"

// cornerAngle is the direction change (radians) above which a point counts
// as a corner.
const cornerAngle = math.Pi / 4

// FindCorners scans a stroke for points where the local drawing direction
// changes by more than 45 degrees. Direction is measured over a two-point
// lookbehind/lookahead window, which keeps pointer jitter from registering
// as corners. Strokes with fewer than 5 points yield no corners.
func FindCorners(points []Point) []Point {
	var corners []Point
	for i := 2; i < len(points)-2; i++ {
		prev := points[i-2]
		cur := points[i]
		next := points[i+2]

		angle1 := math.Atan2(cur.Y-prev.Y, cur.X-prev.X)
		angle2 := math.Atan2(next.Y-cur.Y, next.X-cur.X)

		diff := math.Abs(angle2 - angle1)
		if diff > math.Pi {
			diff = 2*math.Pi - diff
		}

		if diff > cornerAngle {
			corners = append(corners, cur)
		}
	}
	return corners
}
