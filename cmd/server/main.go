package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "mobility-rental-backend/internal/api/http"
	"mobility-rental-backend/internal/clock"
	"mobility-rental-backend/internal/config"
	"mobility-rental-backend/internal/jobs"
	"mobility-rental-backend/internal/logger"
	"mobility-rental-backend/internal/repository"
	"mobility-rental-backend/internal/scheduler"
	"mobility-rental-backend/internal/service"
	"mobility-rental-backend/internal/storage"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	withScheduler := flag.Bool("scheduler", true, "Run the maintenance jobs in-process")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Mobility Rental Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Policy configuration",
		"standard_loan_months", cfg.Policy.StandardLoanMonths,
		"priority_loan_months", cfg.Policy.PriorityLoanMonths,
		"retention_days", cfg.Policy.RetentionDays,
		"time_zone", cfg.Policy.TimeZone)

	ctx := context.Background()

	// Initialize Storage
	kv, closeStore, err := storage.Open(ctx, cfg.StorageOptions())
	if err != nil {
		logger.Error("Failed to initialize storage", "error", err, "type", cfg.Storage.Type)
		log.Fatalf("Failed to initialize storage: %v", err)
	}
	defer closeStore()

	// Load state
	state, err := service.OpenState(ctx, repository.NewJSONStateStore(kv, cfg.Catalogue()))
	if err != nil {
		logger.Error("Failed to load state", "error", err)
		log.Fatalf("Failed to load state: %v", err)
	}

	// Initialize Services
	clk := clock.NewRealClock(cfg.Location())
	policy := service.RentalPolicy{
		StandardLoanMonths: cfg.Policy.StandardLoanMonths,
		PriorityLoanMonths: cfg.Policy.PriorityLoanMonths,
		RetentionWindow:    cfg.RetentionWindow(),
	}
	rentalSvc := service.NewRentalService(state, clk, service.UUIDGenerator{}, policy)
	inventorySvc := service.NewInventoryService(state)
	stockSvc := service.NewStockService(state, clk)

	// Prune expired history on start
	if removed, err := rentalSvc.PruneHistory(ctx); err != nil {
		logger.Warn("Failed to prune history on start", "error", err)
	} else {
		logger.Info("History pruned on start", "removed", removed)
	}

	// Initialize Scheduler
	if *withScheduler {
		cronScheduler, err := scheduler.NewScheduler(jobs.NewJobRunner(rentalSvc, cfg))
		if err != nil {
			log.Fatalf("Failed to initialize scheduler: %v", err)
		}
		cronScheduler.Start()
		defer cronScheduler.Stop()
	}

	// Set up HTTP server
	router := httpapi.NewRouter(httpapi.Services{
		Inventory: inventorySvc,
		Stock:     stockSvc,
		Rentals:   rentalSvc,
	})
	srv := &http.Server{
		Addr:              cfg.GetServerAddress(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("HTTP server listening", "address", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server error", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	// Graceful shutdown
	logger.Info("Shutting down HTTP server...")
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown failed", "error", err)
	}
	logger.Info("Server stopped. Goodbye!")
}
