package calm

import "math"

// EllipsePoints returns n points on an ellipse centered on (x, y) with radii
// rx, ry, rotated by rot radians.
func EllipsePoints(x, y, rx, ry, rot float64, n int) []Vec2 {
	pts := make([]Vec2, n)
	sr, cr := math.Sincos(rot)
	for i := range pts {
		s, c := math.Sincos(float64(i) / float64(n) * 2 * math.Pi)
		ex, ey := c*rx, s*ry
		pts[i] = Vec2{x + ex*cr - ey*sr, y + ex*sr + ey*cr}
	}
	return pts
}

// QuadPoints flattens the quadratic Bézier p0-p1-p2 into n+1 points,
// endpoints included.
func QuadPoints(p0, p1, p2 Vec2, n int) []Vec2 {
	pts := make([]Vec2, n+1)
	for i := range pts {
		t := float64(i) / float64(n)
		u := 1 - t
		pts[i] = Vec2{
			u*u*p0.X + 2*u*t*p1.X + t*t*p2.X,
			u*u*p0.Y + 2*u*t*p1.Y + t*t*p2.Y,
		}
	}
	return pts
}

// CubicPoints flattens the cubic Bézier p0-p1-p2-p3 into n+1 points,
// endpoints included.
func CubicPoints(p0, p1, p2, p3 Vec2, n int) []Vec2 {
	pts := make([]Vec2, n+1)
	for i := range pts {
		t := float64(i) / float64(n)
		u := 1 - t
		a, b, c, d := u*u*u, 3*u*u*t, 3*u*t*t, t*t*t
		pts[i] = Vec2{
			a*p0.X + b*p1.X + c*p2.X + d*p3.X,
			a*p0.Y + b*p1.Y + c*p2.Y + d*p3.Y,
		}
	}
	return pts
}
