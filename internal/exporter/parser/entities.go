package parser

import "dxf-export/internal/exporter/models"

// ============================================================
// Entity builders
// ============================================================

// closedFlag is bit 0 of group code 70 on polylines.
const closedFlag = 1

// buildEntity materializes one raw entity, or nil for kinds outside the
// supported set. Z coordinates (codes 30/31) are discarded: the export
// is strictly 2D.
func buildEntity(raw rawEntity) models.Entity {
	switch raw.name {
	case "LINE":
		return buildLine(raw.tags)
	case "LWPOLYLINE":
		return buildLWPolyline(raw.tags)
	case "POLYLINE":
		return buildPolyline(raw)
	case "SPLINE":
		return buildSpline(raw.tags)
	case "CIRCLE":
		return buildCircle(raw.tags)
	case "ELLIPSE":
		return buildEllipse(raw.tags)
	case "ARC":
		return buildArc(raw.tags)
	case "HATCH":
		return buildHatch(raw.tags)
	}
	return nil
}

// commonAttrs pulls the shared style tags out of an entity's tag list.
func commonAttrs(tags []tag) models.Attrs {
	attrs := models.DefaultAttrs()
	for _, t := range tags {
		switch t.code {
		case 8:
			if t.value != "" {
				attrs.Layer = t.value
			}
		case 6:
			attrs.Linetype = t.value
		case 62:
			attrs.Color = parseInt(t.value)
		case 370:
			attrs.Lineweight = parseInt(t.value)
		}
	}
	return attrs
}

func buildLine(tags []tag) models.Entity {
	e := models.Line{Attrs: commonAttrs(tags)}
	for _, t := range tags {
		switch t.code {
		case 10:
			e.Start.X = parseFloat(t.value)
		case 20:
			e.Start.Y = parseFloat(t.value)
		case 11:
			e.End.X = parseFloat(t.value)
		case 21:
			e.End.Y = parseFloat(t.value)
		}
	}
	return e
}

func buildLWPolyline(tags []tag) models.Entity {
	e := models.LWPolyline{Attrs: commonAttrs(tags)}
	for _, t := range tags {
		switch t.code {
		case 70:
			e.Closed = parseInt(t.value)&closedFlag != 0
		case 10:
			e.Vertices = append(e.Vertices, models.Point{X: parseFloat(t.value)})
		case 20:
			if n := len(e.Vertices); n > 0 {
				e.Vertices[n-1].Y = parseFloat(t.value)
			}
		}
	}
	return e
}

func buildPolyline(raw rawEntity) models.Entity {
	e := models.Polyline{Attrs: commonAttrs(raw.tags)}
	for _, t := range raw.tags {
		if t.code == 70 {
			e.Closed = parseInt(t.value)&closedFlag != 0
		}
	}
	for _, vtags := range raw.vertices {
		var p models.Point
		for _, t := range vtags {
			switch t.code {
			case 10:
				p.X = parseFloat(t.value)
			case 20:
				p.Y = parseFloat(t.value)
			}
		}
		e.Vertices = append(e.Vertices, p)
	}
	return e
}

func buildSpline(tags []tag) models.Entity {
	e := models.Spline{Attrs: commonAttrs(tags)}
	for _, t := range tags {
		switch t.code {
		case 71:
			e.Degree = parseInt(t.value)
		case 40:
			e.Knots = append(e.Knots, parseFloat(t.value))
		case 10:
			e.ControlPoints = append(e.ControlPoints, models.Point{X: parseFloat(t.value)})
		case 20:
			if n := len(e.ControlPoints); n > 0 {
				e.ControlPoints[n-1].Y = parseFloat(t.value)
			}
		case 11:
			e.FitPoints = append(e.FitPoints, models.Point{X: parseFloat(t.value)})
		case 21:
			if n := len(e.FitPoints); n > 0 {
				e.FitPoints[n-1].Y = parseFloat(t.value)
			}
		}
	}
	return e
}

func buildCircle(tags []tag) models.Entity {
	e := models.Circle{Attrs: commonAttrs(tags)}
	for _, t := range tags {
		switch t.code {
		case 10:
			e.Center.X = parseFloat(t.value)
		case 20:
			e.Center.Y = parseFloat(t.value)
		case 40:
			e.Radius = parseFloat(t.value)
		}
	}
	return e
}

func buildEllipse(tags []tag) models.Entity {
	e := models.Ellipse{Attrs: commonAttrs(tags)}
	for _, t := range tags {
		switch t.code {
		case 10:
			e.Center.X = parseFloat(t.value)
		case 20:
			e.Center.Y = parseFloat(t.value)
		case 11:
			e.MajorAxis.X = parseFloat(t.value)
		case 21:
			e.MajorAxis.Y = parseFloat(t.value)
		case 40:
			e.Ratio = parseFloat(t.value)
		}
	}
	return e
}

func buildArc(tags []tag) models.Entity {
	e := models.Arc{Attrs: commonAttrs(tags)}
	for _, t := range tags {
		switch t.code {
		case 10:
			e.Center.X = parseFloat(t.value)
		case 20:
			e.Center.Y = parseFloat(t.value)
		case 40:
			e.Radius = parseFloat(t.value)
		case 50:
			e.StartAngle = parseFloat(t.value)
		case 51:
			e.EndAngle = parseFloat(t.value)
		}
	}
	return e
}

// buildHatch collects boundary-path vertices. Code 92 opens a new path,
// code 98 starts the seed-point region where 10/20 pairs no longer
// describe boundary geometry. Line-edge end points (11/21) duplicate the
// next edge's start and are skipped.
func buildHatch(tags []tag) models.Entity {
	e := models.Hatch{Attrs: commonAttrs(tags)}
	inPaths := false
	for _, t := range tags {
		switch t.code {
		case 91:
			inPaths = true
		case 92:
			if inPaths {
				e.Paths = append(e.Paths, nil)
			}
		case 98:
			inPaths = false
		case 10:
			if inPaths && len(e.Paths) > 0 {
				n := len(e.Paths) - 1
				e.Paths[n] = append(e.Paths[n], models.Point{X: parseFloat(t.value)})
			}
		case 20:
			if inPaths && len(e.Paths) > 0 {
				n := len(e.Paths) - 1
				if m := len(e.Paths[n]); m > 0 {
					e.Paths[n][m-1].Y = parseFloat(t.value)
				}
			}
		}
	}
	return e
}
