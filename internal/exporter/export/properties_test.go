package export

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"dxf-export/internal/exporter/models"
)

func TestProperties_ByLayerSentinelsOmitted(t *testing.T) {
	e := models.Line{Attrs: models.DefaultAttrs()}

	props := Properties(e)

	assert.Equal(t, map[string]any{
		"type":  "LINE",
		"layer": "0",
	}, props)
}

func TestProperties_ExplicitStyleIncluded(t *testing.T) {
	e := models.Circle{
		Attrs: models.Attrs{
			Layer:      "B",
			Color:      3,
			Lineweight: 25,
			Linetype:   "DASHED",
		},
		Radius: 1,
	}

	props := Properties(e)

	assert.Equal(t, map[string]any{
		"type":       "CIRCLE",
		"layer":      "B",
		"color":      3,
		"lineweight": 25,
		"linetype":   "DASHED",
	}, props)
}

func TestProperties_MissingLayerDefaultsToZero(t *testing.T) {
	props := Properties(models.Line{})
	assert.Equal(t, "0", props["layer"])
}

func TestProperties_AbsentLinetypeOmitted(t *testing.T) {
	props := Properties(models.Line{Attrs: models.Attrs{Linetype: ""}})
	_, ok := props["linetype"]
	assert.False(t, ok)
}
