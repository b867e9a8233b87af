package main

import (
	"log"

	"appstarter/internal/config"
	"appstarter/internal/wire"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load .env file and environment
	settings, err := config.LoadSettings()
	if err != nil {
		log.Fatalf("Failed to load settings: %v", err)
	}

	// Initialize services
	app, err := wire.Build(settings)
	if err != nil {
		log.Fatalf("Failed to initialize services: %v", err)
	}
	defer app.Close()

	r := gin.Default()
	wire.RegisterRoutes(r, app)

	log.Printf("[INFO] Listening on %s", settings.Port)
	if err := r.Run(settings.Port); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
