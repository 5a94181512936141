// Package classify decides whether a drawing entity yields a line
// geometry, an area geometry, or nothing.
package classify

import (
	"dxf-export/internal/exporter/geometry"
	"dxf-export/internal/exporter/models"
)

type GeometryClass int

const (
	ClassNone GeometryClass = iota
	ClassLine
	ClassArea
)

// Classified is the outcome for one entity. Invariant: ClassLine carries
// at least 2 points, ClassArea at least 3.
type Classified struct {
	Class  GeometryClass
	Points []models.Point
}

// Classify tries the line path first; the area path is consulted only
// when the line path yields fewer than 2 points. Entities satisfying
// neither threshold classify as None and produce no output.
func Classify(e models.Entity) Classified {
	if pts := linePoints(e); len(pts) >= 2 {
		return Classified{Class: ClassLine, Points: pts}
	}
	if pts := areaPoints(e); len(pts) >= 3 {
		return Classified{Class: ClassArea, Points: pts}
	}
	return Classified{Class: ClassNone}
}

// linePoints extracts open-path coordinates. Polyline bulges are ignored:
// vertices are connected by straight segments.
func linePoints(e models.Entity) []models.Point {
	switch v := e.(type) {
	case models.Line:
		return []models.Point{v.Start, v.End}
	case models.LWPolyline:
		return v.Vertices
	case models.Polyline:
		return v.Vertices
	case models.Spline:
		return geometry.ApproximateSpline(v)
	}
	return nil
}

// areaPoints extracts ring coordinates. Circles, ellipses and arcs are
// always area-eligible regardless of closure; polylines only when their
// closed flag is set. For HATCH only the first boundary path is used,
// additional loops are discarded.
func areaPoints(e models.Entity) []models.Point {
	switch v := e.(type) {
	case models.Circle:
		return geometry.ApproximateCircle(v.Center, v.Radius)
	case models.Ellipse:
		return geometry.ApproximateEllipse(v.Center, v.MajorAxis, v.Ratio)
	case models.Arc:
		return geometry.ApproximateArc(v.Center, v.Radius, v.StartAngle, v.EndAngle)
	case models.Hatch:
		if len(v.Paths) > 0 {
			return v.Paths[0]
		}
	case models.LWPolyline:
		if v.Closed {
			return v.Vertices
		}
	case models.Polyline:
		if v.Closed {
			return v.Vertices
		}
	}
	return nil
}
