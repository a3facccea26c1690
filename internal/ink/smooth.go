package ink

// smoothStep is the Catmull-Rom sampling increment: four interpolated points
// per control-point window.
const smoothStep = 0.25

// SmoothPath densifies a freehand stroke by running a Catmull-Rom spline
// through its points. Each window of four consecutive control points emits
// four interpolated samples; the first and last input points are preserved
// exactly. Inputs shorter than four points are returned unchanged.
func SmoothPath(points []Point) []Point {
	if len(points) < 4 {
		return points
	}

	smoothed := make([]Point, 0, 4*(len(points)-3)+2)
	smoothed = append(smoothed, points[0])

	for i := 0; i+3 < len(points); i++ {
		p0 := points[i]
		p1 := points[i+1]
		p2 := points[i+2]
		p3 := points[i+3]

		for t := 0.0; t < 1; t += smoothStep {
			smoothed = append(smoothed, Point{
				X: catmullRom(p0.X, p1.X, p2.X, p3.X, t),
				Y: catmullRom(p0.Y, p1.Y, p2.Y, p3.Y, t),
			})
		}
	}

	return append(smoothed, points[len(points)-1])
}

// catmullRom evaluates the standard Catmull-Rom cubic basis for one axis at
// parameter t in [0, 1).
func catmullRom(p0, p1, p2, p3, t float64) float64 {
	t2 := t * t
	t3 := t2 * t
	return 0.5 * (2*p1 +
		(-p0+p2)*t +
		(2*p0-5*p1+4*p2-p3)*t2 +
		(-p0+3*p1-3*p2+p3)*t3)
}
