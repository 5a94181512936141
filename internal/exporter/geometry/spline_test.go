package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dxf-export/internal/exporter/models"
)

func TestApproximateSpline_DegreeOne(t *testing.T) {
	s := models.Spline{
		Degree:        1,
		Knots:         []float64{0, 0, 1, 1},
		ControlPoints: []models.Point{{X: 0, Y: 0}, {X: 10, Y: 10}},
	}

	points := ApproximateSpline(s)

	require.Len(t, points, 101)
	assert.InDelta(t, 0, points[0].X, 1e-9)
	assert.InDelta(t, 10, points[100].X, 1e-9)
	assert.InDelta(t, 10, points[100].Y, 1e-9)
	// A degree-1 spline over two control points is the straight segment.
	assert.InDelta(t, 5, points[50].X, 1e-9)
	assert.InDelta(t, 5, points[50].Y, 1e-9)
}

func TestApproximateSpline_QuadraticBezier(t *testing.T) {
	s := models.Spline{
		Degree:        2,
		Knots:         []float64{0, 0, 0, 1, 1, 1},
		ControlPoints: []models.Point{{X: 0, Y: 0}, {X: 1, Y: 2}, {X: 2, Y: 0}},
	}

	points := ApproximateSpline(s)

	require.Len(t, points, 101)
	assert.InDelta(t, 0, points[0].X, 1e-9)
	assert.InDelta(t, 0, points[0].Y, 1e-9)
	assert.InDelta(t, 2, points[100].X, 1e-9)
	assert.InDelta(t, 0, points[100].Y, 1e-9)
	// Apex of the quadratic at the parameter midpoint.
	assert.InDelta(t, 1, points[50].X, 1e-9)
	assert.InDelta(t, 1, points[50].Y, 1e-9)
}

func TestApproximateSpline_InconsistentKnotsFallsBack(t *testing.T) {
	ctrl := []models.Point{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 0}}
	s := models.Spline{
		Degree:        2,
		Knots:         []float64{0, 1}, // wrong length
		ControlPoints: ctrl,
	}

	assert.Equal(t, ctrl, ApproximateSpline(s))
}

func TestApproximateSpline_FitPointsFallback(t *testing.T) {
	fit := []models.Point{{X: 1, Y: 1}, {X: 2, Y: 2}}
	s := models.Spline{FitPoints: fit}

	assert.Equal(t, fit, ApproximateSpline(s))
}

func TestApproximateSpline_Empty(t *testing.T) {
	assert.Empty(t, ApproximateSpline(models.Spline{}))
}
