package canvas

import "math"

// Matrix2D is a 2D affine transformation matrix.
// Layout: [a, b, c, d, e, f] representing:
// | a  c  e |
// | b  d  f |
// | 0  0  1 |
//
// a, d carry scale; b, c skew/rotation; e, f translation.
type Matrix2D [6]float64

// Identity returns the identity matrix.
func Identity() Matrix2D {
	return Matrix2D{1, 0, 0, 1, 0, 0}
}

// Translate returns a translation matrix.
func Translate(tx, ty float64) Matrix2D {
	return Matrix2D{1, 0, 0, 1, tx, ty}
}

// Scale returns a scale matrix.
func Scale(sx, sy float64) Matrix2D {
	return Matrix2D{sx, 0, 0, sy, 0, 0}
}

// Rotate returns a rotation matrix (angle in radians).
func Rotate(radians float64) Matrix2D {
	cos := math.Cos(radians)
	sin := math.Sin(radians)
	return Matrix2D{cos, sin, -sin, cos, 0, 0}
}

// Multiply multiplies this matrix by another: result = m * other.
// This applies 'other' first, then 'm'.
func (m Matrix2D) Multiply(other Matrix2D) Matrix2D {
	return Matrix2D{
		m[0]*other[0] + m[2]*other[1],
		m[1]*other[0] + m[3]*other[1],
		m[0]*other[2] + m[2]*other[3],
		m[1]*other[2] + m[3]*other[3],
		m[0]*other[4] + m[2]*other[5] + m[4],
		m[1]*other[4] + m[3]*other[5] + m[5],
	}
}

// TransformPoint applies the matrix to a point.
func (m Matrix2D) TransformPoint(x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

// TransformRect transforms a rectangle and returns its axis-aligned
// bounding box.
func (m Matrix2D) TransformRect(r Rect) Rect {
	x0, y0 := m.TransformPoint(r.X, r.Y)
	x1, y1 := m.TransformPoint(r.X+r.Width, r.Y)
	x2, y2 := m.TransformPoint(r.X+r.Width, r.Y+r.Height)
	x3, y3 := m.TransformPoint(r.X, r.Y+r.Height)

	minX := min(x0, min(x1, min(x2, x3)))
	minY := min(y0, min(y1, min(y2, y3)))
	maxX := max(x0, max(x1, max(x2, x3)))
	maxY := max(y0, max(y1, max(y2, y3)))

	return Rect{
		X:      minX,
		Y:      minY,
		Width:  maxX - minX,
		Height: maxY - minY,
	}
}

// TransformAbout composes the matrix for a drag/resize/rotate gesture:
// translate by (dx, dy), then scale and rotate about the pivot (cx, cy).
// Rotation is in degrees, matching the wire format the client sends.
func TransformAbout(dx, dy, sx, sy, rDegrees, cx, cy float64) Matrix2D {
	m := Translate(dx+cx, dy+cy)
	if rDegrees != 0 {
		m = m.Multiply(Rotate(rDegrees * math.Pi / 180.0))
	}
	if sx != 1 || sy != 1 {
		m = m.Multiply(Scale(sx, sy))
	}
	return m.Multiply(Translate(-cx, -cy))
}
