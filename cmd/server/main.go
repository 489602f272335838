package main

import (
	"context"
	"log"
	"os"

	"go.uber.org/zap"

	"github.com/Freeeeeet/mergington_activities/internal/app"
	"github.com/Freeeeeet/mergington_activities/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := app.NewLogger(cfg.Environment)
	defer logger.Sync()

	logger.Sugar().Infow("Starting Mergington activities API",
		"environment", cfg.Environment,
		"addr", cfg.HTTPAddr,
		"journal", cfg.JournalEnabled())

	ctx := context.Background()

	application, err := app.New(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to initialize application", zap.Error(err))
		os.Exit(1)
	}

	if err := application.Run(ctx); err != nil {
		logger.Error("Application stopped with error", zap.Error(err))
		os.Exit(1)
	}
}
