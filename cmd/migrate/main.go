package main

import (
	"os"

	"lessonplan-review-be/internal/config"
	"lessonplan-review-be/internal/model"
	"lessonplan-review-be/pkg/database"

	"github.com/fatih/color"
)

func main() {
	// 1. Load Environment Variables
	cfg := config.Load()
	if cfg.Database.Connection == "" {
		color.Red("Error: DB_CONNECTION_STRING is not set")
		os.Exit(1)
	}

	// 2. Connect to Database using existing GORM helpers
	db, err := database.NewGormDBFromDSN(cfg.Database.Connection, true)
	if err != nil {
		color.Red("Error: Failed to connect to database: %v", err)
		os.Exit(1)
	}

	color.Cyan("Starting archive migration...")

	color.Yellow("Step 1: Setting up extensions...")
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`).Error; err != nil {
		color.Yellow("Warn: Failed to create extension: %v. Continuing...", err)
	}

	color.Yellow("Step 2: Running AutoMigrate for archive tables...")
	models := []interface{}{
		&model.ScoreRecord{},
		&model.Note{},
		&model.ChatTurn{},
	}
	if err := db.AutoMigrate(models...); err != nil {
		color.Red("Error: AutoMigrate failed: %v", err)
		os.Exit(1)
	}

	color.Green("✅ Success: %d archive tables migrated.", len(models))
}
