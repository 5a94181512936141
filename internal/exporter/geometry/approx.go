// Package geometry approximates curved DXF primitives as ordered point
// sequences. Every function returns an empty sequence on irrecoverable
// input instead of an error; callers drop empty results at the
// classification thresholds.
package geometry

import (
	"math"

	"dxf-export/internal/exporter/models"
)

// circleSegments is the fixed sample count for full circles and ellipses.
const circleSegments = 32

// ============================================================
// Arc / Circle / Ellipse
// ============================================================

// ApproximateArc samples an arc given in degrees. The sweep always runs
// counter-clockwise: when end < start the end angle gains a full turn.
// Sample density is one point per 5 degrees with a floor of 8 steps,
// inclusive of both endpoints.
func ApproximateArc(center models.Point, radius, startAngle, endAngle float64) []models.Point {
	if !finite(center.X, center.Y, radius, startAngle, endAngle) || radius <= 0 {
		return nil
	}
	if endAngle < startAngle {
		endAngle += 360
	}

	steps := int(math.Round((endAngle - startAngle) / 5))
	if steps < 8 {
		steps = 8
	}

	points := make([]models.Point, 0, steps+1)
	for i := 0; i <= steps; i++ {
		angle := startAngle + (endAngle-startAngle)*float64(i)/float64(steps)
		rad := angle * math.Pi / 180
		points = append(points, models.Point{
			X: center.X + radius*math.Cos(rad),
			Y: center.Y + radius*math.Sin(rad),
		})
	}
	return points
}

// ApproximateCircle samples 32 equally spaced points starting at angle 0
// and closes the ring with a duplicate of the first point (33 total).
func ApproximateCircle(center models.Point, radius float64) []models.Point {
	if !finite(center.X, center.Y, radius) || radius <= 0 {
		return nil
	}

	points := make([]models.Point, 0, circleSegments+1)
	for i := 0; i < circleSegments; i++ {
		angle := 2 * math.Pi * float64(i) / circleSegments
		points = append(points, models.Point{
			X: center.X + radius*math.Cos(angle),
			Y: center.Y + radius*math.Sin(angle),
		})
	}
	return append(points, points[0])
}

// ApproximateEllipse samples 32 parametric points and closes the ring.
// The minor axis length is majorLen*ratio. Sampling ignores the direction
// of the major-axis vector: rings for ellipses whose major axis is not
// X-aligned come out axis-aligned. Preserved as-is from the source
// behavior; downstream consumers may compensate.
func ApproximateEllipse(center, majorAxis models.Point, ratio float64) []models.Point {
	if !finite(center.X, center.Y, majorAxis.X, majorAxis.Y, ratio) {
		return nil
	}

	majorLen := math.Hypot(majorAxis.X, majorAxis.Y)
	if majorLen <= 0 || ratio <= 0 {
		return nil
	}
	minorLen := majorLen * ratio

	points := make([]models.Point, 0, circleSegments+1)
	for i := 0; i < circleSegments; i++ {
		angle := 2 * math.Pi * float64(i) / circleSegments
		points = append(points, models.Point{
			X: center.X + majorLen*math.Cos(angle),
			Y: center.Y + minorLen*math.Sin(angle),
		})
	}
	return append(points, points[0])
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
