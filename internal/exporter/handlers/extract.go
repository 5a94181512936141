package handlers

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"dxf-export/internal/exporter/export"
	"dxf-export/internal/exporter/parser"
	"dxf-export/internal/exporter/repository"
)

// ============================================================
// Extract Handlers
// ============================================================

type Extract struct {
	OutputRoot string
	DstCRS     string
	Runs       *repository.Repository
}

// Upload accepts a DXF file via multipart/form-data, runs the extraction
// pipeline into a fresh task directory and records the run. Optional form
// fields: types, layers (comma-separated), src_crs, dst_crs.
func (h *Extract) Upload(c fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{
			"error": "file required in multipart/form-data",
		})
	}
	if !strings.EqualFold(filepath.Ext(file.Filename), ".dxf") {
		return c.Status(400).JSON(fiber.Map{
			"error": "a .dxf file is required",
		})
	}

	f, err := file.Open()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "failed to open file"})
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "failed to read file"})
	}

	doc, err := parser.Read(bytes.NewReader(data))
	if err != nil {
		log.Printf("[EXTRACT] parse error: %v", err)
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	dstCRS := c.FormValue("dst_crs")
	if dstCRS == "" {
		dstCRS = h.DstCRS
	}
	opts := export.Options{
		AllowTypes:  splitList(c.FormValue("types")),
		AllowLayers: splitList(c.FormValue("layers")),
		SrcCRS:      c.FormValue("src_crs"),
		DstCRS:      dstCRS,
	}

	taskID := uuid.NewString()
	outDir := filepath.Join(h.OutputRoot, taskID)

	log.Printf("[EXTRACT] task %s: %s (%d entities)", taskID, file.Filename, len(doc.Entities))
	summary, err := export.Run(doc.Entities, outDir, opts)
	if err != nil {
		log.Printf("[EXTRACT] task %s failed: %v", taskID, err)
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	run := repository.Run{
		ID:            taskID,
		InputFile:     file.Filename,
		TotalFeatures: summary.Properties.Summary.TotalFeatures,
		Lines:         summary.Properties.Summary.Lines,
		Areas:         summary.Properties.Summary.Areas,
		Layers:        summary.Properties.Summary.Layers,
		CreatedAt:     time.Now(),
	}
	if err := h.Runs.Insert(context.Background(), run); err != nil {
		log.Printf("[EXTRACT] task %s: record run: %v", taskID, err)
	}

	return c.Status(201).JSON(fiber.Map{
		"task_id": taskID,
		"summary": summary.Properties.Summary,
	})
}

// ListRuns returns all recorded runs, newest first.
func (h *Extract) ListRuns(c fiber.Ctx) error {
	runs, err := h.Runs.List(context.Background())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "failed to list runs"})
	}
	return c.JSON(runs)
}

// GetRun returns one recorded run.
func (h *Extract) GetRun(c fiber.Ctx) error {
	run, err := h.Runs.GetByID(context.Background(), c.Params("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "run not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "failed to load run"})
	}
	return c.JSON(run)
}

// GetFile serves one output file of a run (individual feature files and
// summary.geojson) for the viewer.
func (h *Extract) GetFile(c fiber.Ctx) error {
	id := c.Params("id")
	name := c.Params("name")
	// Both segments must stay inside the task directory.
	if strings.ContainsAny(id+name, `/\`) || id == ".." || name == ".." {
		return c.Status(400).JSON(fiber.Map{"error": "invalid path"})
	}
	return c.SendFile(filepath.Join(h.OutputRoot, id, name))
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
