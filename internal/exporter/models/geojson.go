package models

// ============================================================
// GeoJSON output types
// ============================================================

// Feature is a GeoJSON Feature. Exactly one Feature is emitted per
// successfully classified entity.
type Feature struct {
	Type       string         `json:"type"`
	Properties map[string]any `json:"properties"`
	Geometry   Geometry       `json:"geometry"`
}

// Geometry carries either LineString ([][]float64) or Polygon
// ([][][]float64) coordinates.
type Geometry struct {
	Type        string `json:"type"`
	Coordinates any    `json:"coordinates"`
}

// NewLineString builds a LineString geometry from a point sequence.
func NewLineString(points []Point) Geometry {
	return Geometry{Type: "LineString", Coordinates: toPositions(points)}
}

// NewPolygon builds a single-ring Polygon geometry from a point sequence.
func NewPolygon(ring []Point) Geometry {
	return Geometry{Type: "Polygon", Coordinates: [][][]float64{toPositions(ring)}}
}

func toPositions(points []Point) [][]float64 {
	coords := make([][]float64, len(points))
	for i, p := range points {
		coords[i] = []float64{p.X, p.Y}
	}
	return coords
}

// Summary is the FeatureCollection-shaped run summary written to
// summary.geojson after all individual files.
type Summary struct {
	Type       string            `json:"type"`
	Properties SummaryProperties `json:"properties"`
	Features   []Feature         `json:"features"`
}

type SummaryProperties struct {
	Summary SummaryBlock `json:"summary"`
}

type SummaryBlock struct {
	TotalFeatures   int      `json:"total_features"`
	Lines           int      `json:"lines"`
	Areas           int      `json:"areas"`
	Layers          []string `json:"layers"`
	IndividualFiles []string `json:"individual_files"`
}
