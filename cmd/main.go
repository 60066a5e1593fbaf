package main

import (
	"support-desk/internal/app"
	"support-desk/pkg/config"
	"support-desk/pkg/logger"
)

func main() {
	// Initialize configuration
	cfg := config.NewConfig()

	// Initialize logger
	logger.InitLogger(cfg)

	// Create and start the application server
	server := app.NewAppServer(cfg)
	server.Serve()
}
