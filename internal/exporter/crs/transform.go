// Package crs reprojects point sequences between coordinate reference
// systems using proj4 semantics (always XY axis order).
package crs

import (
	"fmt"

	"github.com/ctessum/geom/proj"

	"dxf-export/internal/exporter/models"
)

// Transformer reprojects point sequences. The zero source configuration
// is a passthrough: raw drawing XY is exported unchanged.
type Transformer struct {
	transform proj.Transformer
}

// NewTransformer builds the transform once per run. An empty srcCRS
// yields the passthrough transformer. Identifiers are parsed by
// proj.Parse: named codes (EPSG:4326, EPSG:3857, WGS84, ...) or raw
// proj4 "+..." strings. Any parse or construction failure is a
// configuration error and must abort the run before processing starts.
func NewTransformer(srcCRS, dstCRS string) (*Transformer, error) {
	if srcCRS == "" {
		return &Transformer{}, nil
	}

	src, err := proj.Parse(srcCRS)
	if err != nil {
		return nil, fmt.Errorf("parse source CRS %q: %w", srcCRS, err)
	}
	dst, err := proj.Parse(dstCRS)
	if err != nil {
		return nil, fmt.Errorf("parse destination CRS %q: %w", dstCRS, err)
	}

	t, err := src.NewTransform(dst)
	if err != nil {
		return nil, fmt.Errorf("build transform %s -> %s: %w", srcCRS, dstCRS, err)
	}
	return &Transformer{transform: t}, nil
}

// Passthrough reports whether Apply returns its input unchanged.
func (t *Transformer) Passthrough() bool {
	return t.transform == nil
}

// Apply reprojects one whole sequence, preserving length and order.
// Empty input returns without touching the transform.
func (t *Transformer) Apply(points []models.Point) ([]models.Point, error) {
	if t.transform == nil || len(points) == 0 {
		return points, nil
	}

	out := make([]models.Point, len(points))
	for i, p := range points {
		x, y, err := t.transform(p.X, p.Y)
		if err != nil {
			return nil, fmt.Errorf("transform point %d (%g, %g): %w", i, p.X, p.Y, err)
		}
		out[i] = models.Point{X: x, Y: y}
	}
	return out, nil
}
