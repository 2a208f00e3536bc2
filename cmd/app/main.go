package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/AminElhag/Elixir/internal/auth"
	"github.com/AminElhag/Elixir/internal/booking"
	"github.com/AminElhag/Elixir/internal/config"
	"github.com/AminElhag/Elixir/internal/db"
	"github.com/AminElhag/Elixir/internal/logger"
	"github.com/AminElhag/Elixir/internal/product"
	"github.com/AminElhag/Elixir/internal/server"
	"github.com/AminElhag/Elixir/internal/session"
	"github.com/AminElhag/Elixir/internal/trainer"
)

// @title Elixir API
// @version 1.0
// @description API for the Elixir gym member app: trainer booking, calendar and sessions.
// @host localhost:8080
// @BasePath /
func main() {
	logger.Init()
	logger.Info("Starting Elixir application")

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	logger.Info("Opening database", "path", cfg.DatabasePath)
	database, err := db.Connect(cfg.DatabasePath)
	if err != nil {
		logger.Fatalf("Failed to open database: %v", err)
	}
	defer database.Close()

	if err := db.RunMigrations(database, "migrations"); err != nil {
		logger.Fatalf("Failed to run migrations: %v", err)
	}
	logger.Info("Migrations completed")

	var sessionStore session.Store
	switch cfg.SessionBackend {
	case "memory":
		sessionStore = session.NewMemoryStore()
		logger.Info("Using in-memory session store")
	default:
		sessionStore = session.NewSQLStore(database)
	}
	sessions := session.NewManager(sessionStore)

	accountRepo := auth.NewAccountRepository(database)
	authService := auth.NewService(sessions, accountRepo, cfg.JWTSecret, cfg.AuthDelay)

	bookingService := booking.NewService(booking.NewRepository(database))
	if err := bookingService.Seed(context.Background()); err != nil {
		logger.Fatalf("Failed to seed bookings: %v", err)
	}

	srv := server.New(cfg, server.Deps{
		Sessions:    sessions,
		AuthService: authService,
		Bookings:    bookingService,
		Trainers:    trainer.NewStaticProvider(),
		Products:    product.NewStaticProvider(),
	})

	serverErrChan := make(chan error, 1)
	go func() {
		logger.Infof("Server starting on port %s", cfg.Port)
		if err := srv.Start(cfg.Port); err != nil && err != http.ErrServerClosed {
			serverErrChan <- err
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		logger.Infof("Received signal: %v", sig)
	case err := <-serverErrChan:
		logger.Errorf("Server error: %v", err)
	}

	logger.Info("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("Error during server shutdown: %v", err)
	}

	logger.Info("Server stopped")
}
