package geometry

import "dxf-export/internal/exporter/models"

// splineSegments matches the flattening density of the source exporter
// (101 evaluated points per spline).
const splineSegments = 100

// ApproximateSpline flattens a B-spline by de Boor evaluation at uniform
// parameter steps. When the degree/knot/control-point triple is not
// consistent the control polygon is returned as a last resort; with no
// control points the fit points are used, and failing that the result is
// empty. Rational weights are ignored.
func ApproximateSpline(s models.Spline) []models.Point {
	if len(s.ControlPoints) == 0 {
		if len(s.FitPoints) > 0 {
			return append([]models.Point(nil), s.FitPoints...)
		}
		return nil
	}

	if !splineConsistent(s) {
		return append([]models.Point(nil), s.ControlPoints...)
	}

	n := len(s.ControlPoints)
	lo := s.Knots[s.Degree]
	hi := s.Knots[n]
	if hi <= lo {
		return append([]models.Point(nil), s.ControlPoints...)
	}

	points := make([]models.Point, 0, splineSegments+1)
	for i := 0; i <= splineSegments; i++ {
		u := lo + (hi-lo)*float64(i)/splineSegments
		points = append(points, deBoor(u, s.Degree, s.Knots, s.ControlPoints))
	}
	return points
}

func splineConsistent(s models.Spline) bool {
	if s.Degree < 1 || len(s.ControlPoints) <= s.Degree {
		return false
	}
	if len(s.Knots) != len(s.ControlPoints)+s.Degree+1 {
		return false
	}
	for i := 1; i < len(s.Knots); i++ {
		if s.Knots[i] < s.Knots[i-1] {
			return false
		}
	}
	return true
}

// deBoor evaluates the curve at parameter u. Standard de Boor recursion
// over the knot span containing u.
func deBoor(u float64, degree int, knots []float64, ctrl []models.Point) models.Point {
	n := len(ctrl)

	k := degree
	for k < n-1 && u >= knots[k+1] {
		k++
	}

	d := make([]models.Point, degree+1)
	copy(d, ctrl[k-degree:k+1])

	for r := 1; r <= degree; r++ {
		for j := degree; j >= r; j-- {
			i := j + k - degree
			denom := knots[i+degree-r+1] - knots[i]
			var alpha float64
			if denom != 0 {
				alpha = (u - knots[i]) / denom
			}
			d[j] = models.Point{
				X: (1-alpha)*d[j-1].X + alpha*d[j].X,
				Y: (1-alpha)*d[j-1].Y + alpha*d[j].Y,
			}
		}
	}
	return d[degree]
}
