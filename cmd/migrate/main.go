package main

import (
	"log"
	"os"

	"github.com/237films-bot/subtrack/internal/model"
	"github.com/237films-bot/subtrack/pkg/database"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	// 2. Connect to Database using existing GORM helpers
	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	color.Cyan("🚀 Starting GORM migration")

	// 3. Pre-Migration: extensions GORM AutoMigrate does not handle
	setupSQL := []string{
		`CREATE EXTENSION IF NOT EXISTS pgcrypto;`,
		`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
	}
	for _, sql := range setupSQL {
		if err := db.Exec(sql).Error; err != nil {
			log.Printf("Warn: Failed to execute setup SQL: %v. Continuing...", err)
		}
	}

	// 4. AutoMigrate all models
	models := []interface{}{
		&model.Subscription{},
		&model.CreditPool{},
		&model.RenewalEvent{},
		&model.CreditChange{},
		&model.ServicePreset{},
	}
	if err := db.AutoMigrate(models...); err != nil {
		color.Red("AutoMigrate failed: %v", err)
		os.Exit(1)
	}

	color.Green("✅ Database migration completed successfully via GORM.")
}
