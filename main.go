package main

import (
	"log"

	"github.com/joho/godotenv"

	"indiebyll/cmd"
	"indiebyll/internal/config"
	"indiebyll/internal/logger"
)

func main() {
	// A .env file is optional; most installs run on defaults alone.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Printf("Warning: Could not load configuration: %v", err)
		if err := logger.Setup(logger.DefaultConfig()); err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
	} else {
		if err := logger.Setup(cfg.GetLoggerConfig()); err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
	}

	cmd.Execute()
}
