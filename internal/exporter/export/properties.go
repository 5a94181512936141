package export

import "dxf-export/internal/exporter/models"

// Properties derives the sparse property record for one entity. The
// record always carries type and layer; style fields appear only when
// they are not at their by-layer sentinel.
func Properties(e models.Entity) map[string]any {
	attrs := e.Attributes()

	layer := attrs.Layer
	if layer == "" {
		layer = "0"
	}

	props := map[string]any{
		"type":  string(e.Kind()),
		"layer": layer,
	}
	if attrs.Color != models.ColorByLayer {
		props["color"] = attrs.Color
	}
	if attrs.Lineweight != models.LineweightByLayer {
		props["lineweight"] = attrs.Lineweight
	}
	if attrs.Linetype != "" && attrs.Linetype != models.LinetypeByLayer {
		props["linetype"] = attrs.Linetype
	}
	return props
}
