package export

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"dxf-export/internal/exporter/models"
)

func TestSafeLayer(t *testing.T) {
	tests := []struct {
		name  string
		layer string
		want  string
	}{
		{"plain", "Walls", "Walls"},
		{"keeps underscore and dash", "floor_2-b", "floor_2-b"},
		{"drops punctuation", "a/b:c*d", "abcd"},
		{"strips trailing underscores", "roads__", "roads"},
		{"cjk survives", "轴线保护区", "轴线保护区"},
		{"spaces dropped", "site plan", "siteplan"},
		{"empty becomes placeholder", "", "layer"},
		{"only punctuation becomes placeholder", "***", "layer"},
		{"only underscores becomes placeholder", "___", "layer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SafeLayer(tt.layer))
		})
	}
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "A_LINE_0000.geojson", Filename("A", models.KindLine, 0))
	assert.Equal(t, "B_CIRCLE_0001.geojson", Filename("B", models.KindCircle, 1))
	assert.Equal(t, "layer_HATCH_0042.geojson", Filename("##", models.KindHatch, 42))
}
