package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"ai-assistant-be/internal/bootstrap"
	"ai-assistant-be/internal/config"
	"ai-assistant-be/internal/model"
	"ai-assistant-be/internal/server"
	"ai-assistant-be/internal/tracer"
	"ai-assistant-be/pkg/database"
)

func main() {
	// 0. Tracer (no-op unless OTEL_ENABLED=true)
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	// 1. Load Configuration
	cfg := config.Load()

	// 2. Initialize Database
	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Task{},
		&model.EmailMessage{},
		&model.CalendarEvent{},
		&model.Suggestion{},
		&model.ChatMessage{},
	); err != nil {
		log.Panicf("Auto-migration failed: %v", err)
	}

	// 3. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(gormDB, cfg)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 4. Start Background Services
	go func() {
		log.Println("Background: Starting Suggestion Dispatcher...")
		if err := container.DispatcherService.Consume(ctx); err != nil {
			log.Printf("Background Dispatcher Error: %v", err)
		}
	}()

	if container.RelayService != nil {
		container.RelayService.Start()
	}

	container.ReviewScheduler.Start(ctx)
	defer container.ReviewScheduler.Stop()

	// 5. Initialize Server
	srv := server.New(cfg, container)

	// 6. Run Server with graceful shutdown
	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig
		log.Println("Shutting down...")
		cancel()
		if err := srv.Shutdown(); err != nil {
			log.Printf("Server shutdown error: %v", err)
		}
	}()

	if err := srv.Run(); err != nil {
		log.Printf("Server stopped: %v", err)
	}
}
