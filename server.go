package main

import (
	"log"
	"path/filepath"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

const uploadsSubdir = "uploads"

func startServer(dataDir, publicDir string, port int) {
	logger := NewLogger()

	store, err := NewStore(dataDir, logger)
	if err != nil {
		log.Fatalf("failed to open store: %v", err)
	}

	// Seed the documents the site depends on.
	if err := Ensure(store, "events", []Record{}); err != nil {
		log.Fatalf("failed to seed events: %v", err)
	}
	if err := Ensure(store, "news", []Record{}); err != nil {
		log.Fatalf("failed to seed news: %v", err)
	}
	if err := Ensure(store, "home", Record{"heroImage": ""}); err != nil {
		log.Fatalf("failed to seed home: %v", err)
	}

	uploads, err := NewUploads(filepath.Join(publicDir, uploadsSubdir), uploadsSubdir)
	if err != nil {
		log.Fatalf("failed to prepare uploads dir: %v", err)
	}

	app := fiber.New()

	RegisterRoutes(app, NewAPI(store, uploads, logger))
	app.Static("/", publicDir)

	log.Printf("🚀 CMS server running at http://localhost:%d", port)
	log.Printf("📁 Data: %s", dataDir)
	log.Printf("🖼  Public: %s", publicDir)

	log.Fatal(app.Listen(":" + strconv.Itoa(port)))
}
