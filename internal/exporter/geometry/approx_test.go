package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dxf-export/internal/exporter/models"
)

func TestApproximateArc_QuarterCircle(t *testing.T) {
	points := ApproximateArc(models.Point{X: 0, Y: 0}, 10, 0, 90)

	// 90/5 = 18 steps, inclusive endpoints.
	require.Len(t, points, 19)
	assert.InDelta(t, 10, points[0].X, 1e-9)
	assert.InDelta(t, 0, points[0].Y, 1e-9)
	assert.InDelta(t, 0, points[len(points)-1].X, 1e-9)
	assert.InDelta(t, 10, points[len(points)-1].Y, 1e-9)
}

func TestApproximateArc_MinimumSteps(t *testing.T) {
	// 10 degree sweep would give 2 steps; the floor is 8.
	points := ApproximateArc(models.Point{}, 1, 0, 10)
	assert.Len(t, points, 9)
}

func TestApproximateArc_WrapsNegativeSweep(t *testing.T) {
	// end < start sweeps counter-clockwise through 360.
	points := ApproximateArc(models.Point{}, 1, 350, 10)

	require.NotEmpty(t, points)
	first := points[0]
	last := points[len(points)-1]
	assert.InDelta(t, math.Cos(350*math.Pi/180), first.X, 1e-9)
	assert.InDelta(t, math.Cos(10*math.Pi/180), last.X, 1e-9)
	assert.InDelta(t, math.Sin(10*math.Pi/180), last.Y, 1e-9)
}

func TestApproximateArc_BadInput(t *testing.T) {
	assert.Empty(t, ApproximateArc(models.Point{}, 0, 0, 90))
	assert.Empty(t, ApproximateArc(models.Point{}, -1, 0, 90))
	assert.Empty(t, ApproximateArc(models.Point{}, math.NaN(), 0, 90))
}

func TestApproximateCircle(t *testing.T) {
	points := ApproximateCircle(models.Point{X: 0, Y: 0}, 5)

	// 32 samples plus the closing duplicate.
	require.Len(t, points, 33)
	assert.Equal(t, points[0], points[32])
	assert.InDelta(t, 5, points[0].X, 1e-9)
	assert.InDelta(t, 0, points[0].Y, 1e-9)

	for _, p := range points {
		assert.InDelta(t, 5, math.Hypot(p.X, p.Y), 1e-9)
	}
}

func TestApproximateCircle_BadRadius(t *testing.T) {
	assert.Empty(t, ApproximateCircle(models.Point{}, 0))
	assert.Empty(t, ApproximateCircle(models.Point{}, math.Inf(1)))
}

func TestApproximateEllipse(t *testing.T) {
	points := ApproximateEllipse(models.Point{X: 1, Y: 2}, models.Point{X: 4, Y: 0}, 0.5)

	require.Len(t, points, 33)
	assert.Equal(t, points[0], points[32])
	// First sample sits at the major-axis extent.
	assert.InDelta(t, 5, points[0].X, 1e-9)
	assert.InDelta(t, 2, points[0].Y, 1e-9)
	// Quarter turn reaches the minor extent.
	assert.InDelta(t, 1, points[8].X, 1e-9)
	assert.InDelta(t, 4, points[8].Y, 1e-9)
}

func TestApproximateEllipse_BadInput(t *testing.T) {
	assert.Empty(t, ApproximateEllipse(models.Point{}, models.Point{}, 0.5))
	assert.Empty(t, ApproximateEllipse(models.Point{}, models.Point{X: 1}, 0))
}
