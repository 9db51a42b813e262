package main

import (
	"context"
	"log"

	"viralpost-be/internal/bootstrap"
	"viralpost-be/internal/config"
	"viralpost-be/internal/server"
	"viralpost-be/internal/tracer"
	"viralpost-be/pkg/database"
)

func main() {
	// 0. Initialize Tracer (no-op unless OTEL_ENABLED=true)
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	// 1. Load Configuration
	cfg := config.Load()

	// 2. Initialize Database
	gormDB, err := database.NewGormDB(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	// 3. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(gormDB, cfg)

	// 4. Start Background Services
	go func() {
		log.Println("Background: Subscribing notification relay to event bus...")
		if err := container.NotificationHandler.SubscribeBus(context.Background(), container.EventBus); err != nil {
			log.Printf("Background Notification Relay Error: %v", err)
		}
	}()

	// 5. Initialize Server
	srv := server.New(cfg, container)

	// 6. Run Server
	log.Fatal(srv.Run())
}
