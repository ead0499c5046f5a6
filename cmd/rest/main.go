package main

import (
	"context"
	"log"

	"github.com/237films-bot/subtrack/internal/bootstrap"
	"github.com/237films-bot/subtrack/internal/config"
	"github.com/237films-bot/subtrack/internal/server"
	"github.com/237films-bot/subtrack/internal/tracer"
	"github.com/237films-bot/subtrack/pkg/database"

	"gorm.io/gorm"
)

func main() {
	// 0. Initialize Tracer (no-op unless OTEL_ENABLED=true)
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	// 1. Load Configuration
	cfg := config.Load()

	// 2. Initialize Database (skipped entirely on the memory driver)
	var gormDB *gorm.DB
	if cfg.App.StorageDriver != "memory" {
		db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
		if err != nil {
			log.Panicf("Unable to connect to GORM DB: %v", err)
		}
		gormDB = db
	}

	// 3. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(gormDB, cfg)

	// 4. Start Background Services
	go func() {
		log.Println("Background: Starting Notifier Service...")
		if err := container.NotifierService.Consume(context.Background()); err != nil {
			log.Printf("Background Notifier Error: %v", err)
		}
	}()
	go func() {
		log.Println("Background: Starting Reminder Service...")
		container.ReminderService.Run(context.Background())
	}()

	// 5. Initialize Server
	srv := server.New(cfg, container)

	// 6. Run Server
	log.Fatal(srv.Run())
}
