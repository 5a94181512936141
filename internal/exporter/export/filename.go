package export

import (
	"fmt"
	"strings"
	"unicode"

	"dxf-export/internal/exporter/models"
)

// fallbackLayer replaces layer names that sanitize to nothing.
const fallbackLayer = "layer"

// SafeLayer sanitizes a layer name for use in filenames: Unicode letters
// and digits plus '_' and '-' survive, trailing underscores are stripped.
// CJK layer names pass through intact.
func SafeLayer(layer string) string {
	var b strings.Builder
	for _, r := range layer {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '-' {
			b.WriteRune(r)
		}
	}
	safe := strings.TrimRight(b.String(), "_")
	if safe == "" {
		return fallbackLayer
	}
	return safe
}

// Filename builds the per-entity output name. The index is dense over
// accepted entities, so the (layer, type, index) triple cannot collide
// within a run.
func Filename(layer string, kind models.EntityKind, index int) string {
	return fmt.Sprintf("%s_%s_%04d.geojson", SafeLayer(layer), kind, index)
}
