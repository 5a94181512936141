package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"dxf-export/internal/common/config"
	"dxf-export/internal/common/middleware"
	"dxf-export/internal/exporter/handlers"
	"dxf-export/internal/exporter/repository"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/recover"
	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

// ============================================================
// DXF Export Service
// ============================================================

func main() {
	cfg := config.Load()

	db, err := repository.OpenSQLite(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	runs := repository.New(db)
	if err := runs.Init(context.Background()); err != nil {
		log.Fatalf("Failed to init run registry: %v", err)
	}

	extract := &handlers.Extract{
		OutputRoot: cfg.OutputRoot,
		DstCRS:     cfg.DstCRS,
		Runs:       runs,
	}

	app := fiber.New(fiber.Config{
		ReadTimeout:  time.Duration(cfg.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeout) * time.Second,
		AppName:      "DXF Export Service",
	})

	// ============================================================
	// Global Middleware
	// ============================================================

	app.Use(recover.New())
	app.Use(middleware.Logger())
	app.Use(middleware.CORS())

	// ============================================================
	// Health Check Routes
	// ============================================================

	app.Get("/health/live", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "alive"})
	})

	app.Get("/health/ready", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ready"})
	})

	// ============================================================
	// Export Routes
	// ============================================================

	app.Post("/extract", extract.Upload)
	app.Get("/runs", extract.ListRuns)
	app.Get("/runs/:id", extract.GetRun)
	app.Get("/runs/:id/files/:name", extract.GetFile)

	// ============================================================
	// Server Start
	// ============================================================

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Printf("Starting DXF Export Service on %s (env: %s)", addr, cfg.Environment)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
