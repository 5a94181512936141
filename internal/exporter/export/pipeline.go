// Package export drives the extraction pipeline: filter, classify,
// reproject, and write one GeoJSON file per accepted entity plus the
// aggregate summary.geojson.
package export

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"dxf-export/internal/exporter/classify"
	"dxf-export/internal/exporter/crs"
	"dxf-export/internal/exporter/models"
)

// SummaryFilename is the aggregate document written after all
// individual feature files.
const SummaryFilename = "summary.geojson"

// Options configures one pipeline run.
type Options struct {
	AllowTypes  []string // empty = the 8 supported kinds
	AllowLayers []string // empty = all layers
	SrcCRS      string   // empty = raw XY passthrough
	DstCRS      string   // empty = EPSG:4326
}

// Run walks the entity stream once and writes all output files into
// outputDir. The returned summary mirrors summary.geojson. A CRS
// configuration problem aborts before any entity is processed; files
// already written before a later failure stay on disk, each one is
// independently valid.
func Run(entities []models.Entity, outputDir string, opts Options) (*models.Summary, error) {
	dstCRS := opts.DstCRS
	if dstCRS == "" {
		dstCRS = "EPSG:4326"
	}
	transformer, err := crs.NewTransformer(opts.SrcCRS, dstCRS)
	if err != nil {
		return nil, err
	}

	types := toUpperSet(opts.AllowTypes)
	layers := toSet(opts.AllowLayers)

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	var (
		lineFeatures []models.Feature
		areaFeatures []models.Feature
		files        []string
		layerOrder   []string
		layerSeen    = map[string]bool{}
		index        int
	)

	for _, entity := range entities {
		kind := string(entity.Kind())
		if types != nil && !types[strings.ToUpper(kind)] {
			continue
		}
		layer := entity.Attributes().Layer
		if layer == "" {
			layer = "0"
		}
		if layers != nil && !layers[layer] {
			continue
		}

		classified := classify.Classify(entity)
		if classified.Class == classify.ClassNone {
			continue
		}

		transformed, err := transformer.Apply(classified.Points)
		if err != nil {
			// Out-of-domain coordinates are a per-entity condition,
			// not a run failure.
			log.Printf("[EXPORT] skip %s on layer %s: %v", kind, layer, err)
			continue
		}

		var geom models.Geometry
		if classified.Class == classify.ClassLine {
			geom = models.NewLineString(transformed)
		} else {
			geom = models.NewPolygon(transformed)
		}

		feature := models.Feature{
			Type:       "Feature",
			Properties: Properties(entity),
			Geometry:   geom,
		}

		name := Filename(layer, entity.Kind(), index)
		if err := writeJSON(filepath.Join(outputDir, name), feature); err != nil {
			return nil, fmt.Errorf("write %s: %w", name, err)
		}

		files = append(files, name)
		if classified.Class == classify.ClassLine {
			lineFeatures = append(lineFeatures, feature)
		} else {
			areaFeatures = append(areaFeatures, feature)
		}
		if !layerSeen[layer] {
			layerSeen[layer] = true
			layerOrder = append(layerOrder, layer)
		}
		index++
	}

	summary := &models.Summary{
		Type: "FeatureCollection",
		Properties: models.SummaryProperties{
			Summary: models.SummaryBlock{
				TotalFeatures:   len(lineFeatures) + len(areaFeatures),
				Lines:           len(lineFeatures),
				Areas:           len(areaFeatures),
				Layers:          layerOrder,
				IndividualFiles: files,
			},
		},
		Features: append(lineFeatures, areaFeatures...),
	}
	if summary.Features == nil {
		summary.Features = []models.Feature{}
	}
	if summary.Properties.Summary.Layers == nil {
		summary.Properties.Summary.Layers = []string{}
	}
	if summary.Properties.Summary.IndividualFiles == nil {
		summary.Properties.Summary.IndividualFiles = []string{}
	}

	if err := writeJSON(filepath.Join(outputDir, SummaryFilename), summary); err != nil {
		return nil, fmt.Errorf("write %s: %w", SummaryFilename, err)
	}
	return summary, nil
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func toSet(values []string) map[string]bool {
	if len(values) == 0 {
		return nil
	}
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}

func toUpperSet(values []string) map[string]bool {
	if len(values) == 0 {
		return nil
	}
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[strings.ToUpper(v)] = true
	}
	return set
}
