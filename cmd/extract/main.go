package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"dxf-export/internal/exporter/export"
	"dxf-export/internal/exporter/models"
	"dxf-export/internal/exporter/parser"
	"dxf-export/internal/exporter/watcher"
)

// ============================================================
// Extraction CLI
// ============================================================

func main() {
	var (
		input     = flag.String("input", "", "path to the DXF file (or a directory with -watch)")
		outputDir = flag.String("output-dir", "", "directory for the individual GeoJSON files")
		types     = flag.String("types", strings.Join(models.DefaultKinds(), ","), "comma-separated entity types to include")
		layers    = flag.String("layers", "", "comma-separated layer names to include; empty for all")
		srcCRS    = flag.String("src-crs", "", "source CRS (e.g. EPSG:3857 or a proj4 string); empty exports raw XY")
		dstCRS    = flag.String("dst-crs", "EPSG:4326", "destination CRS")
		watch     = flag.Bool("watch", false, "watch the input directory and extract every dropped .dxf")
	)
	flag.Parse()

	if *input == "" || *outputDir == "" {
		flag.Usage()
		os.Exit(2)
	}

	opts := export.Options{
		AllowTypes:  splitList(*types),
		AllowLayers: splitList(*layers),
		SrcCRS:      *srcCRS,
		DstCRS:      *dstCRS,
	}

	if *watch {
		if err := watchDir(*input, *outputDir, opts); err != nil {
			log.Fatalf("Watch failed: %v", err)
		}
		return
	}

	if _, err := os.Stat(*input); err != nil {
		log.Fatalf("Input file not found: %s", *input)
	}
	summary, err := extractFile(*input, *outputDir, opts)
	if err != nil {
		log.Fatalf("Extraction failed: %v", err)
	}
	printSummary(*outputDir, summary)
}

func extractFile(input, outputDir string, opts export.Options) (*models.Summary, error) {
	doc, err := parser.ReadFile(input)
	if err != nil {
		return nil, err
	}
	return export.Run(doc.Entities, outputDir, opts)
}

// watchDir extracts every existing .dxf in dir, then keeps extracting
// newly dropped files until interrupted. Each input gets its own
// subdirectory under outputRoot, named after the file base.
func watchDir(dir, outputRoot string, opts export.Options) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("read watch dir: %w", err)
	}
	handle := func(path string) {
		base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		summary, err := extractFile(path, filepath.Join(outputRoot, base), opts)
		if err != nil {
			log.Printf("[WATCH] %s: %v", path, err)
			return
		}
		log.Printf("[WATCH] %s: %d features", path, summary.Properties.Summary.TotalFeatures)
	}

	for _, entry := range entries {
		if !entry.IsDir() && strings.EqualFold(filepath.Ext(entry.Name()), ".dxf") {
			handle(filepath.Join(dir, entry.Name()))
		}
	}

	w, err := watcher.New()
	if err != nil {
		return err
	}
	defer w.Stop()

	log.Printf("Watching %s for new DXF files", dir)
	return w.Watch(context.Background(), dir, handle)
}

func printSummary(outputDir string, summary *models.Summary) {
	block := summary.Properties.Summary
	log.Printf("Extraction completed")
	log.Printf("Output directory: %s", outputDir)
	log.Printf("Total features: %d (lines: %d, areas: %d)", block.TotalFeatures, block.Lines, block.Areas)
	log.Printf("Layers: %s", strings.Join(block.Layers, ", "))
	log.Printf("Summary file: %s", filepath.Join(outputDir, export.SummaryFilename))
	log.Printf("Individual files: %d", len(block.IndividualFiles))
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
