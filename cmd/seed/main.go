package main

import (
	"context"
	"log"
	"os"

	"github.com/237films-bot/subtrack/internal/presets"
	"github.com/237films-bot/subtrack/internal/repository/implementation"
	"github.com/237films-bot/subtrack/pkg/database"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
)

func main() {
	// Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	color.Cyan("🚀 Seeding AI service preset catalog")

	repo := implementation.NewPresetRepository(db)
	ctx := context.Background()

	seeded := 0
	for _, preset := range presets.Defaults() {
		p := preset
		if err := repo.Upsert(ctx, &p); err != nil {
			color.Red("Failed to seed '%s': %v", p.Name, err)
			continue
		}
		seeded++
		color.Green("Seeded preset: %s", p.Name)
	}

	color.Cyan("✅ Preset seeding completed (%d entries)", seeded)
}
