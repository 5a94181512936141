package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLineString(t *testing.T) {
	g := NewLineString([]Point{{X: 1, Y: 2}, {X: 3, Y: 4}})

	assert.Equal(t, "LineString", g.Type)
	assert.Equal(t, [][]float64{{1, 2}, {3, 4}}, g.Coordinates)
}

func TestNewPolygon_NestsRing(t *testing.T) {
	g := NewPolygon([]Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: 0}})

	assert.Equal(t, "Polygon", g.Type)
	rings, ok := g.Coordinates.([][][]float64)
	require.True(t, ok)
	require.Len(t, rings, 1)
	assert.Len(t, rings[0], 4)
}

func TestFeature_MarshalShape(t *testing.T) {
	f := Feature{
		Type:       "Feature",
		Properties: map[string]any{"type": "LINE", "layer": "A"},
		Geometry:   NewLineString([]Point{{X: 0, Y: 0}, {X: 10, Y: 10}}),
	}

	data, err := json.Marshal(f)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "Feature", decoded["type"])
	geom := decoded["geometry"].(map[string]any)
	assert.Equal(t, "LineString", geom["type"])
}
